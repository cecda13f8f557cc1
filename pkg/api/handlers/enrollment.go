package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/collabhq/collabhub/pkg/api/errors"
	"github.com/collabhq/collabhub/pkg/campaign"
	"github.com/collabhq/collabhub/pkg/enrollment"
	"github.com/collabhq/collabhub/pkg/metrics"
	"github.com/collabhq/collabhub/pkg/models"
)

// EnrollmentHandler handles the enrollment lifecycle
type EnrollmentHandler struct {
	service   *enrollment.Service
	campaigns *campaign.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(service *enrollment.Service, campaigns *campaign.Service, m *metrics.Metrics) *EnrollmentHandler {
	return &EnrollmentHandler{
		service:   service,
		campaigns: campaigns,
		metrics:   m,
		validator: validator.New(),
	}
}

// ListEnrollments godoc
// @Summary List enrollments
// @Description Get all enrollments in creation order
// @Tags Enrollments
// @Produce json
// @Success 200 {array} enrollment.Enrollment
// @Router /api/v1/enrollments [get]
func (h *EnrollmentHandler) ListEnrollments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Store().List())
}

// GetEnrollment godoc
// @Summary Get an enrollment
// @Description Get a single enrollment by ID
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} enrollment.Enrollment
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/enrollments/{id} [get]
func (h *EnrollmentHandler) GetEnrollment(c echo.Context) error {
	e, ok := h.service.Store().Get(c.Param("id"))
	if !ok {
		return apierrors.NotFoundError(c, "enrollment")
	}
	return c.JSON(http.StatusOK, e)
}

// CreateEnrollment godoc
// @Summary Enroll in a campaign
// @Description Create a new enrollment for the given campaign
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param request body models.EnrollRequest true "Enrollment request"
// @Success 201 {object} enrollment.Enrollment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/enrollments [post]
func (h *EnrollmentHandler) CreateEnrollment(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.EnrollRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	camp, err := h.campaigns.Get(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, campaign.ErrNotFound) {
			return apierrors.NotFoundError(c, "campaign")
		}
		return apierrors.InternalError(c, err)
	}

	e := h.service.Enroll(camp)
	if h.metrics != nil {
		h.metrics.RecordEnrollment()
	}
	return c.JSON(http.StatusCreated, e)
}

// UploadVideo godoc
// @Summary Upload a video
// @Description Attach a video file descriptor to an enrollment
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param request body models.UploadRequest true "Uploaded file descriptor"
// @Success 200 {object} enrollment.Enrollment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/enrollments/{id}/upload [post]
func (h *EnrollmentHandler) UploadVideo(c echo.Context) error {
	var req models.UploadRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	e, ok := h.service.Upload(c.Param("id"), enrollment.UploadedFile{Name: req.Name, Size: req.Size})
	if !ok {
		return apierrors.NotFoundError(c, "enrollment")
	}
	if h.metrics != nil {
		h.metrics.RecordVideoUpload()
	}
	return c.JSON(http.StatusOK, e)
}

// SubmitVideo godoc
// @Summary Submit a video for review
// @Description Move an uploaded enrollment into the review pipeline
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} enrollment.Enrollment
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/enrollments/{id}/submit [post]
func (h *EnrollmentHandler) SubmitVideo(c echo.Context) error {
	e, ok := h.service.Submit(c.Param("id"))
	if !ok {
		return apierrors.NotFoundError(c, "enrollment")
	}
	if h.metrics != nil {
		h.metrics.RecordVideoSubmit()
	}
	return c.JSON(http.StatusOK, e)
}

// AdvanceEnrollment godoc
// @Summary Advance an enrollment
// @Description Move an enrollment one step along the review pipeline
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} enrollment.Enrollment
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/enrollments/{id}/advance [post]
func (h *EnrollmentHandler) AdvanceEnrollment(c echo.Context) error {
	e, ok := h.service.Advance(c.Param("id"))
	if !ok {
		return apierrors.NotFoundError(c, "enrollment")
	}
	if h.metrics != nil && e.Status == enrollment.StatusApproved {
		h.metrics.RecordDecision(true)
	}
	return c.JSON(http.StatusOK, e)
}

// ApproveEnrollment godoc
// @Summary Approve an enrollment
// @Description Jump an enrollment straight to approved with synthesized stats
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} enrollment.Enrollment
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/enrollments/{id}/approve [post]
func (h *EnrollmentHandler) ApproveEnrollment(c echo.Context) error {
	e, ok := h.service.AdvanceToApproved(c.Param("id"))
	if !ok {
		return apierrors.NotFoundError(c, "enrollment")
	}
	if h.metrics != nil && e.Status == enrollment.StatusApproved {
		h.metrics.RecordDecision(true)
	}
	return c.JSON(http.StatusOK, e)
}

// RejectEnrollment godoc
// @Summary Reject an enrollment
// @Description Move an enrollment to rejected with a reason
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param request body models.RejectRequest false "Rejection reason"
// @Success 200 {object} enrollment.Enrollment
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/enrollments/{id}/reject [post]
func (h *EnrollmentHandler) RejectEnrollment(c echo.Context) error {
	var req models.RejectRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	e, ok := h.service.Reject(c.Param("id"), req.Reason)
	if !ok {
		return apierrors.NotFoundError(c, "enrollment")
	}
	if h.metrics != nil && e.Status == enrollment.StatusRejected {
		h.metrics.RecordDecision(false)
	}
	return c.JSON(http.StatusOK, e)
}

// DeleteEnrollment godoc
// @Summary Remove an enrollment
// @Description Delete an enrollment and cancel any pending review transitions
// @Tags Enrollments
// @Param id path string true "Enrollment ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/enrollments/{id} [delete]
func (h *EnrollmentHandler) DeleteEnrollment(c echo.Context) error {
	if !h.service.Store().Remove(c.Param("id")) {
		return apierrors.NotFoundError(c, "enrollment")
	}
	return c.NoContent(http.StatusNoContent)
}

package enrollment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabhq/collabhub/pkg/campaign"
)

func setupService(t *testing.T, cfg Config) (*Service, *Store) {
	store := NewStore()
	svc := NewService(store, cfg, nil)
	t.Cleanup(svc.Stop)
	return svc, store
}

func testCampaign() campaign.Campaign {
	return campaign.FallbackCampaigns[0]
}

func TestEnroll(t *testing.T) {
	svc, store := setupService(t, Config{})

	t.Run("Success - New enrollment starts enrolled with zeroed stats", func(t *testing.T) {
		e := svc.Enroll(testCampaign())

		assert.NotEmpty(t, e.ID)
		assert.Equal(t, StatusEnrolled, e.Status)
		assert.Empty(t, e.ReferralURL)
		assert.Nil(t, e.Stats)
		assert.Zero(t, e.Clicks)
		assert.Zero(t, e.Orders)
		assert.Zero(t, e.Earnings)
		assert.False(t, e.EnrolledAt.IsZero())

		stored, ok := store.Get(e.ID)
		require.True(t, ok)
		assert.Equal(t, e.ID, stored.ID)
	})

	t.Run("Success - Enrollments keep creation order", func(t *testing.T) {
		a := svc.Enroll(testCampaign())
		b := svc.Enroll(testCampaign())

		list := store.List()
		require.GreaterOrEqual(t, len(list), 3)
		assert.Equal(t, a.ID, list[len(list)-2].ID)
		assert.Equal(t, b.ID, list[len(list)-1].ID)
	})
}

func TestUpload(t *testing.T) {
	svc, _ := setupService(t, Config{})

	t.Run("Success - Upload moves enrolled to uploaded", func(t *testing.T) {
		e := svc.Enroll(testCampaign())

		e, ok := svc.Upload(e.ID, UploadedFile{Name: "clip.mp4", Size: 2_000_000})
		require.True(t, ok)
		assert.Equal(t, StatusUploaded, e.Status)
		require.NotNil(t, e.UploadedFile)
		assert.Equal(t, "clip.mp4", e.UploadedFile.Name)
		assert.Equal(t, int64(2_000_000), e.UploadedFile.Size)
	})

	t.Run("Success - Re-upload before submission replaces the file", func(t *testing.T) {
		e := svc.Enroll(testCampaign())

		_, ok := svc.Upload(e.ID, UploadedFile{Name: "take1.mp4", Size: 100})
		require.True(t, ok)
		e, ok = svc.Upload(e.ID, UploadedFile{Name: "take2.mp4", Size: 200})
		require.True(t, ok)

		assert.Equal(t, StatusUploaded, e.Status)
		assert.Equal(t, "take2.mp4", e.UploadedFile.Name)
	})

	t.Run("Error - Upload on missing id", func(t *testing.T) {
		_, ok := svc.Upload("missing", UploadedFile{Name: "x.mp4", Size: 1})
		assert.False(t, ok)
	})

	t.Run("Success - Upload after approval is a silent no-op", func(t *testing.T) {
		e := svc.Enroll(testCampaign())
		e, ok := svc.AdvanceToApproved(e.ID)
		require.True(t, ok)
		require.Equal(t, StatusApproved, e.Status)

		after, ok := svc.Upload(e.ID, UploadedFile{Name: "late.mp4", Size: 1})
		require.True(t, ok)
		assert.Equal(t, StatusApproved, after.Status)
		assert.Nil(t, after.UploadedFile)
	})
}

func TestSubmitSchedulesReview(t *testing.T) {
	svc, store := setupService(t, Config{
		ReviewDelay:   30 * time.Millisecond,
		ApprovalDelay: 30 * time.Millisecond,
	})

	t.Run("Success - Submit walks processing, under-review, approved", func(t *testing.T) {
		e := svc.Enroll(testCampaign())
		_, ok := svc.Upload(e.ID, UploadedFile{Name: "clip.mp4", Size: 2_000_000})
		require.True(t, ok)

		e, ok = svc.Submit(e.ID)
		require.True(t, ok)
		assert.Equal(t, StatusProcessing, e.Status)

		time.Sleep(45 * time.Millisecond)
		e, _ = store.Get(e.ID)
		assert.Equal(t, StatusUnderReview, e.Status)

		time.Sleep(45 * time.Millisecond)
		e, _ = store.Get(e.ID)
		require.Equal(t, StatusApproved, e.Status)
		require.NotNil(t, e.Stats)
		assert.GreaterOrEqual(t, e.Stats.Clicks, 100)
		assert.Less(t, e.Stats.Clicks, 500)
		assert.GreaterOrEqual(t, e.Stats.Orders, 10)
		assert.Less(t, e.Stats.Orders, 50)
		assert.GreaterOrEqual(t, e.Stats.Earnings, 50.0)
		assert.Less(t, e.Stats.Earnings, 200.0)
		assert.Contains(t, e.ReferralURL, e.Campaign.ID)
		assert.Contains(t, e.ReferralURL, "?c=")
	})

	t.Run("Success - Submit without an upload is a no-op", func(t *testing.T) {
		e := svc.Enroll(testCampaign())

		e, ok := svc.Submit(e.ID)
		require.True(t, ok)
		assert.Equal(t, StatusEnrolled, e.Status)
	})

	t.Run("Success - Reject while processing beats the pending timers", func(t *testing.T) {
		e := svc.Enroll(testCampaign())
		_, ok := svc.Upload(e.ID, UploadedFile{Name: "clip.mp4", Size: 1})
		require.True(t, ok)
		_, ok = svc.Submit(e.ID)
		require.True(t, ok)

		e, ok = svc.Reject(e.ID, "Missing discount mention")
		require.True(t, ok)
		assert.Equal(t, StatusRejected, e.Status)
		assert.Equal(t, "Missing discount mention", e.RejectionReason)

		// The scheduled transitions must not resurrect the record
		time.Sleep(90 * time.Millisecond)
		e, _ = store.Get(e.ID)
		assert.Equal(t, StatusRejected, e.Status)
	})

	t.Run("Success - Removal makes pending timers lookup-miss no-ops", func(t *testing.T) {
		e := svc.Enroll(testCampaign())
		_, ok := svc.Upload(e.ID, UploadedFile{Name: "clip.mp4", Size: 1})
		require.True(t, ok)
		_, ok = svc.Submit(e.ID)
		require.True(t, ok)

		require.True(t, store.Remove(e.ID))
		time.Sleep(90 * time.Millisecond)
		_, ok = store.Get(e.ID)
		assert.False(t, ok)
	})
}

func TestAdvance(t *testing.T) {
	svc, _ := setupService(t, Config{})

	t.Run("Success - Advance moves one step at a time", func(t *testing.T) {
		e := svc.Enroll(testCampaign())

		for _, want := range []Status{StatusUploaded, StatusProcessing, StatusUnderReview, StatusApproved} {
			var ok bool
			e, ok = svc.Advance(e.ID)
			require.True(t, ok)
			assert.Equal(t, want, e.Status)
		}
	})

	t.Run("Success - Reaching approved synthesizes stats", func(t *testing.T) {
		e := svc.Enroll(testCampaign())
		for i := 0; i < 4; i++ {
			e, _ = svc.Advance(e.ID)
		}

		require.Equal(t, StatusApproved, e.Status)
		require.NotNil(t, e.Stats)
		assert.NotEmpty(t, e.ReferralURL)
	})

	t.Run("Success - Advancing a terminal enrollment is unchanged", func(t *testing.T) {
		e := svc.Enroll(testCampaign())
		e, ok := svc.AdvanceToApproved(e.ID)
		require.True(t, ok)
		stats := *e.Stats

		e, ok = svc.Advance(e.ID)
		require.True(t, ok)
		assert.Equal(t, StatusApproved, e.Status)
		assert.Equal(t, stats, *e.Stats)
	})
}

func TestAdvanceToApproved(t *testing.T) {
	svc, _ := setupService(t, Config{})

	t.Run("Success - Jumps straight to approved with wider stat spans", func(t *testing.T) {
		e := svc.Enroll(testCampaign())

		e, ok := svc.AdvanceToApproved(e.ID)
		require.True(t, ok)
		require.Equal(t, StatusApproved, e.Status)
		require.NotNil(t, e.Stats)
		assert.GreaterOrEqual(t, e.Stats.Clicks, 100)
		assert.Less(t, e.Stats.Clicks, 600)
		assert.GreaterOrEqual(t, e.Stats.Orders, 10)
		assert.Less(t, e.Stats.Orders, 60)
		assert.GreaterOrEqual(t, e.Stats.Earnings, 50.0)
		assert.Less(t, e.Stats.Earnings, 250.0)
	})

	t.Run("Success - Rejected enrollment cannot be approved", func(t *testing.T) {
		e := svc.Enroll(testCampaign())
		_, ok := svc.Reject(e.ID, "")
		require.True(t, ok)

		e, ok = svc.AdvanceToApproved(e.ID)
		require.True(t, ok)
		assert.Equal(t, StatusRejected, e.Status)
		assert.Nil(t, e.Stats)
	})
}

func TestReject(t *testing.T) {
	svc, _ := setupService(t, Config{})

	t.Run("Success - Empty reason falls back to the default", func(t *testing.T) {
		e := svc.Enroll(testCampaign())

		e, ok := svc.Reject(e.ID, "")
		require.True(t, ok)
		assert.Equal(t, StatusRejected, e.Status)
		assert.Equal(t, DefaultRejectionReason, e.RejectionReason)
	})

	t.Run("Success - Custom reason is kept", func(t *testing.T) {
		e := svc.Enroll(testCampaign())

		e, ok := svc.Reject(e.ID, "Video too short")
		require.True(t, ok)
		assert.Equal(t, "Video too short", e.RejectionReason)
	})

	t.Run("Success - Rejecting an approved enrollment is unchanged", func(t *testing.T) {
		e := svc.Enroll(testCampaign())
		_, ok := svc.AdvanceToApproved(e.ID)
		require.True(t, ok)

		e, ok = svc.Reject(e.ID, "too late")
		require.True(t, ok)
		assert.Equal(t, StatusApproved, e.Status)
		assert.Empty(t, e.RejectionReason)
	})
}

package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/collabhq/collabhub/pkg/analytics"
	"github.com/collabhq/collabhub/pkg/campaign"
	"github.com/collabhq/collabhub/pkg/enrollment"
	"github.com/collabhq/collabhub/pkg/events"
	"github.com/collabhq/collabhub/pkg/leaderboard"
	"github.com/collabhq/collabhub/pkg/logger"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron        *cron.Cron
	campaigns   *campaign.Service
	leaderboard *leaderboard.Service
	events      *events.Service
	store       *enrollment.Store
	analytics   *analytics.Service
	log         logger.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(
	campaigns *campaign.Service,
	lb *leaderboard.Service,
	ev *events.Service,
	store *enrollment.Store,
	an *analytics.Service,
	log logger.Logger,
) *CronManager {
	if log == nil {
		log = logger.Default()
	}
	return &CronManager{
		cron:        cron.New(),
		campaigns:   campaigns,
		leaderboard: lb,
		events:      ev,
		store:       store,
		analytics:   an,
		log:         log,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.log.Info("setting up cron jobs")

	// Hourly: refresh the campaign catalog from its source
	_, err := cm.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := cm.campaigns.Refresh(ctx); err != nil {
			cm.log.Warn("campaign catalog refresh failed", "error", err)
			return
		}
		cm.log.Info("campaign catalog refreshed")
	})
	if err != nil {
		return err
	}

	// Midnight: rotate the daily winners and reload leaderboard sources
	_, err = cm.cron.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		cm.leaderboard.Load(ctx)
		cm.leaderboard.RotateDailyWinners()
		cm.events.Load(ctx)
		cm.log.Info("daily winners rotated")
	})
	if err != nil {
		return err
	}

	// Daily at 4 AM: log enrollment statistics
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		pool := cm.analytics.Pool()
		cm.log.Info("enrollment statistics",
			"enrollments", cm.store.Len(),
			"approved", cm.store.ApprovedCount(),
			"conversions", len(pool),
		)
	})
	if err != nil {
		return err
	}

	cm.log.Info("cron jobs configured",
		"jobs", []string{
			"hourly campaign refresh",
			"midnight daily winners rotation",
			"4 AM statistics log",
		})
	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.log.Info("starting cron scheduler")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.log.Info("stopping cron scheduler")
	cm.cron.Stop()
}

package cron

import (
	"context"
	"time"

	"github.com/wellnest-app/backend/internal/domain/challenge"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

// ExpireChallengesCronJob marks overdue active challenge enrollments as
// failed. The sweep is safe to rerun: terminal rows are never touched.
type ExpireChallengesCronJob struct {
	challengeManager *challenge.Manager
	interval         time.Duration
}

func NewExpireChallengesCronJob(
	challengeManager *challenge.Manager, interval time.Duration,
) *ExpireChallengesCronJob {
	return &ExpireChallengesCronJob{challengeManager: challengeManager, interval: interval}
}

func (job *ExpireChallengesCronJob) Do(ctx context.Context) {
	failed, err := job.challengeManager.ProcessExpired(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot process expired challenges: %v", err)
		return
	}

	if failed > 0 {
		xcontext.Logger(ctx).Infof("Marked %d expired challenges as failed", failed)
	}
}

func (job *ExpireChallengesCronJob) RunNow() bool {
	return true
}

func (job *ExpireChallengesCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}

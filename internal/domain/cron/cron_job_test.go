package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wellnest-app/backend/pkg/logger"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

type countingJob struct {
	runs   int64
	cancel context.CancelFunc
}

func (j *countingJob) Do(ctx context.Context) {
	atomic.AddInt64(&j.runs, 1)
	j.cancel()
}

func (j *countingJob) RunNow() bool { return true }

func (j *countingJob) Next() time.Time { return time.Now().Add(time.Hour) }

func Test_CronJobManager_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))

	job := &countingJob{cancel: cancel}

	manager := NewCronJobManager()
	manager.Register(job)

	done := make(chan struct{})
	go func() {
		manager.Start(ctx)
		close(done)
	}()

	// The job runs once, cancels the context, and Start winds down instead
	// of waiting out the hour-long reschedule.
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("manager did not stop after context cancellation")
	}

	require.Equal(t, int64(1), atomic.LoadInt64(&job.runs))
}

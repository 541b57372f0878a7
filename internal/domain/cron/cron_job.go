// Package cron runs the engine's periodic jobs on plain timers. Jobs are
// registered once at startup; the manager reschedules each one after it
// finishes and winds everything down when the context is canceled.
package cron

import (
	"context"
	"sync"
	"time"

	"github.com/wellnest-app/backend/pkg/xcontext"
)

type CronJob interface {
	Do(context.Context)
	RunNow() bool
	Next() time.Time
}

type CronJobManager struct {
	mutex   sync.Mutex
	wait    sync.WaitGroup
	stopped bool
	jobs    map[CronJob]*time.Timer
}

func NewCronJobManager() *CronJobManager {
	return &CronJobManager{jobs: make(map[CronJob]*time.Timer)}
}

// Register adds a job. It must be called before Start.
func (m *CronJobManager) Register(job CronJob) {
	m.jobs[job] = nil
}

// Start launches every registered job and blocks until the context is
// canceled and all jobs have wound down.
func (m *CronJobManager) Start(ctx context.Context) {
	xcontext.Logger(ctx).Infof("Cron job manager started")

	m.mutex.Lock()
	for job := range m.jobs {
		m.wait.Add(1)
		if job.RunNow() {
			go m.run(ctx, job)
		} else {
			m.scheduleLocked(ctx, job)
		}
	}
	m.mutex.Unlock()

	go func() {
		<-ctx.Done()
		m.stop(ctx)
	}()

	m.wait.Wait()
	xcontext.Logger(ctx).Infof("Cron job manager stopped")
}

// stop halts pending timers. A job that is mid-run finishes its current Do
// and releases itself when it tries to reschedule.
func (m *CronJobManager) stop(ctx context.Context) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.stopped {
		return
	}

	m.stopped = true
	for _, timer := range m.jobs {
		if timer != nil && timer.Stop() {
			m.wait.Done()
		}
	}
}

func (m *CronJobManager) run(ctx context.Context, job CronJob) {
	if ctx.Err() == nil {
		xcontext.Logger(ctx).Infof("%T is running...", job)
		job.Do(ctx)
		xcontext.Logger(ctx).Infof("%T ok", job)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.scheduleLocked(ctx, job)
}

// scheduleLocked arms the job's next timer, or releases the job from the
// wait group once the manager is stopping. Callers hold the mutex.
func (m *CronJobManager) scheduleLocked(ctx context.Context, job CronJob) {
	if m.stopped || ctx.Err() != nil {
		m.wait.Done()
		return
	}

	if _, ok := m.jobs[job]; ok {
		m.jobs[job] = time.AfterFunc(time.Until(job.Next()), func() { m.run(ctx, job) })
	}
}

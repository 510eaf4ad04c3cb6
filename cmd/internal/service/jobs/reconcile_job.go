package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
)

type NotificationReconciler interface {
	RunChecks() error
	SweepReadNotifications()
}

// ReconcileJob runs the notification checks on a fixed interval.
// Cycles never overlap: the next wait only starts after the previous
// run finished.
type ReconcileJob struct {
	reconciler NotificationReconciler
	interval   time.Duration
	cooldown   time.Duration
}

func NewReconcileJob(reconciler NotificationReconciler, interval, cooldown time.Duration) *ReconcileJob {
	return &ReconcileJob{
		reconciler: reconciler,
		interval:   interval,
		cooldown:   cooldown,
	}
}

// Start blocks until ctx is canceled. A failed cycle logs, backs off
// for the cooldown and then resumes the normal interval.
func (j *ReconcileJob) Start(ctx context.Context) {
	log.Infof("Notification reconcile job started, interval %s", j.interval)

	for {
		delay := j.interval

		select {
		case <-ctx.Done():
			log.Info("Stopping notification reconcile job...")
			return
		case <-time.After(delay):
		}

		if err := j.reconciler.RunChecks(); err != nil {
			log.Errorf("Reconcile job: checks failed: %v", err)
			select {
			case <-ctx.Done():
				log.Info("Stopping notification reconcile job...")
				return
			case <-time.After(j.cooldown):
			}
			continue
		}

		j.reconciler.SweepReadNotifications()
	}
}

package jobs

import (
	"context"
	"time"

	"goldcredit/cmd/internal/contract"

	"github.com/labstack/gommon/log"
)

const (
	// How often the job checks the wall clock while waiting for the
	// backup window.
	backupPollInterval = time.Minute

	// After a successful daily backup, skip past the rest of the day so
	// the same window does not fire twice.
	backupSkipAhead = 23 * time.Hour

	backupErrorCooldown = 5 * time.Minute
)

type BackupCreator interface {
	Create(reason string) (*contract.BackupResult, error)
}

// DailyBackupJob runs one backup per day at a fixed wall-clock time.
// It polls every minute until the configured HH:MM comes around.
type DailyBackupJob struct {
	backup BackupCreator
	hour   int
	minute int
}

func NewDailyBackupJob(backup BackupCreator, hour, minute int) *DailyBackupJob {
	return &DailyBackupJob{
		backup: backup,
		hour:   hour,
		minute: minute,
	}
}

// Start blocks until ctx is canceled. Failures are logged and followed
// by a cooldown; they never propagate to the caller.
func (j *DailyBackupJob) Start(ctx context.Context) {
	log.Infof("Daily backup job started, scheduled for %02d:%02d", j.hour, j.minute)

	for {
		delay := backupPollInterval

		now := time.Now()
		if now.Hour() == j.hour && now.Minute() == j.minute {
			if err := j.runOnce(); err != nil {
				log.Errorf("Backup job: %v", err)
				delay = backupErrorCooldown
			} else {
				delay = backupSkipAhead
			}
		}

		select {
		case <-ctx.Done():
			log.Info("Stopping daily backup job...")
			return
		case <-time.After(delay):
		}
	}
}

func (j *DailyBackupJob) runOnce() error {
	result, err := j.backup.Create("daily")
	if err != nil {
		return err
	}

	log.Infof("Backup job: created %s (%d bytes)", result.Filename, result.Size)
	return nil
}

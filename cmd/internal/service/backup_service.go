package service

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"goldcredit/cmd/internal/contract"

	"github.com/labstack/gommon/log"
)

const (
	backupPrefix    = "cedentes_backup_"
	backupExt       = ".db"
	backupTimestamp = "20060102_150405"
	modifiedLayout  = "02/01/2006 15:04:05"

	// How long the emergency copy survives after a restore before the
	// deferred cleanup removes it.
	emergencyGracePeriod = time.Minute
)

var ErrBackupNotFound = errors.New("backup file not found")

// BackupService copies the SQLite store file into a backup directory,
// rotates old copies and restores chosen ones.
type BackupService struct {
	dbPath    string
	backupDir string
	keepDays  int
}

func NewBackupService(dbPath, backupDir string, keepDays int) (*BackupService, error) {
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory %s: %w", backupDir, err)
	}

	return &BackupService{
		dbPath:    dbPath,
		backupDir: backupDir,
		keepDays:  keepDays,
	}, nil
}

// Create copies the live store into a timestamped backup file and
// prunes old backups afterwards. Pruning failures never fail the
// create itself.
func (b *BackupService) Create(reason string) (*contract.BackupResult, error) {
	if _, err := os.Stat(b.dbPath); err != nil {
		return nil, fmt.Errorf("database file not found at %s: %w", b.dbPath, err)
	}

	timestamp := time.Now().Format(backupTimestamp)
	filename := fmt.Sprintf("%s%s_%s%s", backupPrefix, timestamp, reason, backupExt)
	backupPath := filepath.Join(b.backupDir, filename)

	size, err := copyFile(b.dbPath, backupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to copy database to %s: %w", backupPath, err)
	}

	log.Infof("backup created: %s (%d bytes), reason: %s", filename, size, reason)
	b.prune()

	return &contract.BackupResult{
		Filename:  filename,
		Size:      size,
		Timestamp: timestamp,
	}, nil
}

// prune removes backups that are both beyond the newest keepDays
// entries and older than keepDays days. Recent-but-sparse backups
// survive on the count condition; frequent backups age out on the age
// condition.
func (b *BackupService) prune() {
	backups, err := b.listFiles()
	if err != nil {
		log.Errorf("failed to enumerate backups for pruning: %v", err)
		return
	}

	cutoff := time.Now().AddDate(0, 0, -b.keepDays)
	for i, backup := range backups {
		if i < b.keepDays {
			continue
		}

		if backup.modTime.After(cutoff) {
			continue
		}

		if err := os.Remove(backup.path); err != nil {
			log.Errorf("failed to remove old backup %s: %v", backup.name, err)
			continue
		}
		log.Infof("old backup removed: %s", backup.name)
	}
}

// Restore overwrites the live store with the chosen backup. A
// pre-restore backup and a separate emergency copy are taken first;
// the emergency copy is deleted after a grace period by a deferred
// best-effort task.
func (b *BackupService) Restore(filename string) error {
	backupPath := filepath.Join(b.backupDir, filepath.Base(filename))
	if _, err := os.Stat(backupPath); err != nil {
		return ErrBackupNotFound
	}

	if _, err := b.Create("pre_restore"); err != nil {
		log.Errorf("failed to create pre-restore backup: %v", err)
	}

	emergencyPath := filepath.Join(
		filepath.Dir(b.dbPath),
		fmt.Sprintf("cedentes_emergency_%s%s", time.Now().Format(backupTimestamp), backupExt),
	)
	if _, err := copyFile(b.dbPath, emergencyPath); err != nil {
		log.Errorf("failed to create emergency copy: %v", err)
	} else {
		b.scheduleEmergencyCleanup(emergencyPath)
	}

	if _, err := copyFile(backupPath, b.dbPath); err != nil {
		return fmt.Errorf("failed to restore backup %s: %w", filename, err)
	}

	log.Infof("backup restored: %s", filename)
	return nil
}

// scheduleEmergencyCleanup removes the emergency copy after the grace
// window. Best effort: it does not run if the process exits first.
func (b *BackupService) scheduleEmergencyCleanup(path string) {
	time.AfterFunc(emergencyGracePeriod, func() {
		if err := os.Remove(path); err != nil {
			log.Warnf("failed to remove emergency copy %s: %v", path, err)
			return
		}
		log.Infof("emergency copy removed: %s", path)
	})
}

// List returns the available backups, newest first.
func (b *BackupService) List() ([]*contract.BackupEntry, error) {
	backups, err := b.listFiles()
	if err != nil {
		return nil, err
	}

	entries := make([]*contract.BackupEntry, len(backups))
	for i, backup := range backups {
		entries[i] = &contract.BackupEntry{
			Filename: backup.name,
			Size:     backup.size,
			SizeMB:   roundMB(backup.size),
			Modified: backup.modTime.Format(modifiedLayout),
			Reason:   parseReason(backup.name),
		}
	}
	return entries, nil
}

func (b *BackupService) Stats() (*contract.BackupStats, error) {
	backups, err := b.listFiles()
	if err != nil {
		return nil, err
	}

	if len(backups) == 0 {
		return &contract.BackupStats{}, nil
	}

	var total int64
	for _, backup := range backups {
		total += backup.size
	}

	return &contract.BackupStats{
		Count:       len(backups),
		TotalSizeMB: roundMB(total),
		Newest:      backups[0].modTime.Format(modifiedLayout),
		Oldest:      backups[len(backups)-1].modTime.Format(modifiedLayout),
	}, nil
}

type backupFile struct {
	name    string
	path    string
	size    int64
	modTime time.Time
}

// listFiles enumerates files matching the backup naming convention,
// newest first by modification time.
func (b *BackupService) listFiles() ([]*backupFile, error) {
	dirEntries, err := os.ReadDir(b.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory %s: %w", b.backupDir, err)
	}

	var backups []*backupFile
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExt) {
			continue
		}

		info, err := dirEntry.Info()
		if err != nil {
			log.Warnf("failed to stat backup %s: %v", name, err)
			continue
		}

		backups = append(backups, &backupFile{
			name:    name,
			path:    filepath.Join(b.backupDir, name),
			size:    info.Size(),
			modTime: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].modTime.After(backups[j].modTime)
	})
	return backups, nil
}

// parseReason extracts the reason token from
// cedentes_backup_YYYYMMDD_HHMMSS_reason.db. Reasons may themselves
// contain underscores (pre_restore).
func parseReason(filename string) string {
	trimmed := strings.TrimSuffix(filename, backupExt)
	parts := strings.Split(trimmed, "_")
	if len(parts) < 5 {
		return "unknown"
	}
	return strings.Join(parts[4:], "_")
}

// copyFile copies src to dst preserving the source's modification
// time, and returns the number of bytes written.
func copyFile(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, err
	}

	if err := os.Chtimes(dst, time.Now(), info.ModTime()); err != nil {
		return 0, err
	}
	return written, nil
}

func roundMB(size int64) float64 {
	return math.Round(float64(size)/(1024*1024)*100) / 100
}

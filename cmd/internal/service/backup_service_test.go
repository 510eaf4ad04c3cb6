package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackupService(t *testing.T, keepDays int) (*BackupService, string, string) {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cedentes.db")
	backupDir := filepath.Join(dir, "backups")

	require.NoError(t, os.WriteFile(dbPath, []byte("0123456789"), 0o644))

	svc, err := NewBackupService(dbPath, backupDir, keepDays)
	require.NoError(t, err)
	return svc, dbPath, backupDir
}

func TestBackupCreate(t *testing.T) {
	svc, _, backupDir := newTestBackupService(t, 7)

	result, err := svc.Create("manual")
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.Size)
	assert.Contains(t, result.Filename, "cedentes_backup_")
	assert.Contains(t, result.Filename, "_manual.db")

	content, err := os.ReadFile(filepath.Join(backupDir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(content))
}

func TestBackupCreate_MissingDatabase(t *testing.T) {
	svc, dbPath, _ := newTestBackupService(t, 7)
	require.NoError(t, os.Remove(dbPath))

	_, err := svc.Create("manual")
	assert.Error(t, err)
}

func TestBackupList_NewestFirst(t *testing.T) {
	svc, _, backupDir := newTestBackupService(t, 7)

	writeBackup := func(name string, age time.Duration) {
		path := filepath.Join(backupDir, name)
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
		stamp := time.Now().Add(-age)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}

	writeBackup("cedentes_backup_20250101_020000_daily.db", 48*time.Hour)
	writeBackup("cedentes_backup_20250102_020000_manual.db", 24*time.Hour)
	writeBackup("cedentes_backup_20250103_120000_pre_restore.db", 1*time.Hour)
	// Unrelated files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(backupDir, "notes.txt"), []byte("x"), 0o644))

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "cedentes_backup_20250103_120000_pre_restore.db", entries[0].Filename)
	assert.Equal(t, "pre_restore", entries[0].Reason)
	assert.Equal(t, "manual", entries[1].Reason)
	assert.Equal(t, "daily", entries[2].Reason)
}

func TestParseReason(t *testing.T) {
	assert.Equal(t, "daily", parseReason("cedentes_backup_20250101_020000_daily.db"))
	assert.Equal(t, "pre_restore", parseReason("cedentes_backup_20250101_020000_pre_restore.db"))
	assert.Equal(t, "unknown", parseReason("cedentes_backup_20250101.db"))
}

func TestBackupPrune_CountAndAge(t *testing.T) {
	svc, _, backupDir := newTestBackupService(t, 2)

	writeAged := func(name string, ageDays int) string {
		path := filepath.Join(backupDir, name)
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
		stamp := time.Now().AddDate(0, 0, -ageDays)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
		return path
	}

	fresh := writeAged("cedentes_backup_20250110_020000_daily.db", 0)
	recent := writeAged("cedentes_backup_20250109_020000_daily.db", 1)
	// Beyond the keep count but newer than the cutoff: survives.
	youngExtra := writeAged("cedentes_backup_20250108_020000_daily.db", 1)
	// Beyond the keep count and older than the cutoff: pruned.
	oldExtra := writeAged("cedentes_backup_20250101_020000_daily.db", 10)

	svc.prune()

	assert.FileExists(t, fresh)
	assert.FileExists(t, recent)
	assert.FileExists(t, youngExtra)
	assert.NoFileExists(t, oldExtra)
}

func TestBackupRestore(t *testing.T) {
	svc, dbPath, _ := newTestBackupService(t, 7)

	result, err := svc.Create("manual")
	require.NoError(t, err)

	// Live store changes after the backup was taken.
	require.NoError(t, os.WriteFile(dbPath, []byte("corrupted"), 0o644))

	require.NoError(t, svc.Restore(result.Filename))

	content, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(content))

	// A pre-restore backup of the corrupted state was kept.
	entries, err := svc.List()
	require.NoError(t, err)

	var preRestore bool
	for _, entry := range entries {
		if entry.Reason == "pre_restore" {
			preRestore = true
		}
	}
	assert.True(t, preRestore, "restore should leave a pre_restore backup behind")
}

func TestBackupRestore_MissingFile(t *testing.T) {
	svc, _, _ := newTestBackupService(t, 7)

	err := svc.Restore("cedentes_backup_20990101_000000_daily.db")
	assert.ErrorIs(t, err, ErrBackupNotFound)
}

func TestBackupStats(t *testing.T) {
	svc, _, _ := newTestBackupService(t, 7)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.Empty(t, stats.Newest)

	_, err = svc.Create("manual")
	require.NoError(t, err)

	stats, err = svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.NotEmpty(t, stats.Newest)
	assert.Equal(t, stats.Newest, stats.Oldest)
}

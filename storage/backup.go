package storage

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// StartDailyBackup snapshots the uploads tree into backupDir once a day at
// the given local time and prunes snapshots older than retention. It never
// returns; callers start it in a goroutine.
func StartDailyBackup(uploadsDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		next := nextRunAfter(time.Now(), hour, min)
		log.Printf("⏳ Next uploads backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(time.Until(next))

		dest := filepath.Join(backupDir, time.Now().Format("2006-01-02_15-04-05"))
		if err := copyTree(uploadsDir, dest); err != nil {
			log.Printf("❌ Failed to back up uploads: %v", err)
		} else {
			log.Printf("✅ Uploads backed up to %s", dest)
		}

		sweepExpired(backupDir, retention)
	}
}

func nextRunAfter(now time.Time, hour, min int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// copyTree recursively copies the uploads directory into a snapshot folder.
func copyTree(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			err = copyTree(srcPath, destPath)
		} else {
			err = copySnapshotFile(srcPath, destPath)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func copySnapshotFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// sweepExpired removes snapshot folders older than the retention window.
func sweepExpired(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			log.Printf("❌ Failed to remove old backup %s: %v", path, err)
		} else {
			log.Printf("🗑️ Removed old backup: %s", path)
		}
	}
}

// Package archive moves a translation cache aside so the next run starts
// from scratch while older translations stay available.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveCache moves the cache at cachePath into an "archive" directory next
// to it, adding a timestamp to the name. It returns the new location.
func ArchiveCache(cachePath string) (string, error) {
	// Check if cache exists
	if _, err := os.Stat(cachePath); os.IsNotExist(err) {
		return "", fmt.Errorf("translation cache does not exist: %s", cachePath)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(cachePath)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(cachePath)
	base := strings.TrimSuffix(filepath.Base(cachePath), ext)

	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))
	}

	if err := os.Rename(cachePath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive translation cache: %w", err)
	}

	return archivePath, nil
}

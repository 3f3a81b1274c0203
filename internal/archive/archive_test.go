package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArchiveCache(t *testing.T) {
	tmpDir := t.TempDir()

	cachePath := filepath.Join(tmpDir, "translation_cache.json")
	if err := os.WriteFile(cachePath, []byte(`{"你好": "hallo"}`), 0644); err != nil {
		t.Fatalf("Failed to create cache file: %v", err)
	}

	archivedPath, err := ArchiveCache(cachePath)
	if err != nil {
		t.Fatalf("ArchiveCache failed: %v", err)
	}

	// Check that the cache no longer exists
	if _, err := os.Stat(cachePath); !os.IsNotExist(err) {
		t.Error("Cache file still exists after archiving")
	}

	// Check that archive directory was created
	archiveDir := filepath.Join(tmpDir, "archive")
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry in archive directory, got %d", len(entries))
	}

	// Verify the name keeps base name and extension (translation_cache-YYYYMMDD-HHMMSS.json)
	archivedName := entries[0].Name()
	if !strings.HasPrefix(archivedName, "translation_cache-") || !strings.HasSuffix(archivedName, ".json") {
		t.Errorf("Unexpected archive name: %s", archivedName)
	}
	if archivedPath != filepath.Join(archiveDir, archivedName) {
		t.Errorf("Returned path %s does not match %s", archivedPath, archivedName)
	}

	// Check that the content moved along
	data, err := os.ReadFile(archivedPath)
	if err != nil {
		t.Fatalf("Failed to read archived cache: %v", err)
	}
	if string(data) != `{"你好": "hallo"}` {
		t.Errorf("Archived content changed: %s", data)
	}
}

func TestArchiveCache_NonExistentFile(t *testing.T) {
	_, err := ArchiveCache(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err == nil {
		t.Fatal("Expected error for non-existent cache")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveCache_MultipleArchives(t *testing.T) {
	tmpDir := t.TempDir()
	cachePath := filepath.Join(tmpDir, "translation_cache.db")

	for i := 0; i < 2; i++ {
		if err := os.WriteFile(cachePath, []byte{byte(i)}, 0644); err != nil {
			t.Fatalf("Failed to create cache file: %v", err)
		}

		// Small delay to ensure different timestamps
		if i == 1 {
			time.Sleep(10 * time.Millisecond)
		}

		if _, err := ArchiveCache(cachePath); err != nil {
			t.Fatalf("ArchiveCache failed on iteration %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}

	if entries[0].Name() == entries[1].Name() {
		t.Error("Archive names are not unique")
	}
}

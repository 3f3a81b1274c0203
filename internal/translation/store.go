package translation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultCacheFile is the cache file name used when none is configured
const DefaultCacheFile = "translation_cache.json"

// ErrCorruptCache is wrapped by Load when persisted data cannot be parsed
var ErrCorruptCache = errors.New("translation cache is corrupt")

// Store persists the complete word -> translation mapping
type Store interface {
	// Load returns the persisted mapping. A store that does not exist yet
	// yields an empty mapping and no error.
	Load() (map[string]string, error)

	// Save replaces the persisted mapping with entries
	Save(entries map[string]string) error

	// Location describes where the mapping is kept
	Location() string
}

// NewStore creates the store for backend ("json" or "sqlite")
func NewStore(backend, path string) (Store, error) {
	switch backend {
	case "", "json":
		if path == "" {
			path = DefaultCacheFile
		}
		return NewJSONStore(path), nil
	case "sqlite":
		if path == "" {
			path = "translation_cache.db"
		}
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", backend)
	}
}

// JSONStore keeps the cache as a flat JSON object in a single file
type JSONStore struct {
	path string
}

// NewJSONStore creates a store for the JSON file at path
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Location returns the cache file path
func (s *JSONStore) Location() string {
	return s.path
}

// Load reads the cache file. A missing or blank file is an empty cache.
func (s *JSONStore) Load() (map[string]string, error) {
	entries := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return entries, fmt.Errorf("failed to read cache file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}

	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return entries, fmt.Errorf("%w: %s: %v", ErrCorruptCache, s.path, err)
	}
	for k, v := range parsed {
		entries[k] = v
	}
	return entries, nil
}

// Save writes all entries to a temporary file and renames it over the
// cache file, so a failed write leaves the previous cache intact.
func (s *JSONStore) Save(entries map[string]string) error {
	if entries == nil {
		entries = map[string]string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".translation_cache-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary cache file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	return nil
}

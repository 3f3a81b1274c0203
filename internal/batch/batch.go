// Package batch reads the list of documents to annotate in one run.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one document of a batch
type Entry struct {
	// Input is the Chinese text file
	Input string
	// Translation is the optional full translation file; empty means the
	// default companion file next to Input is used
	Translation string
}

// ReadBatchFile reads document entries from a batch file.
// Supports formats:
// - Input file only: "lesson1.txt"
// - With translation file: "lesson1.txt = lesson1_nl.txt"
//
// Empty lines and lines starting with '#' are skipped, as are lines without
// an input file. Relative paths are resolved against the batch file's
// directory.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	baseDir := filepath.Dir(filename)

	var entries []Entry
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		input, translation := line, ""
		if parts := strings.SplitN(line, "=", 2); len(parts) == 2 {
			input = strings.TrimSpace(parts[0])
			translation = strings.TrimSpace(parts[1])
		}

		// Ignore lines with an empty input part
		if input == "" {
			continue
		}

		entries = append(entries, Entry{
			Input:       resolve(baseDir, input),
			Translation: resolve(baseDir, translation),
		})
	}

	return entries, nil
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

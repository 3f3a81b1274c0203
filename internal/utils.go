package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// GenerateDocumentID creates a unique ID for a document based on timestamp and source
// Format: epochMillis_md5(source)[:8]
func GenerateDocumentID(source string) string {
	// Get current timestamp in milliseconds
	epochMillis := time.Now().UnixNano() / 1000000

	// Calculate MD5 hash of the source
	hash := md5.Sum([]byte(source))
	hashStr := hex.EncodeToString(hash[:])[:8] // Use first 8 chars of MD5

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string. Letters of any
// script, including Chinese characters, are kept.
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// OutputName returns the base name of the files generated for an input
// file, e.g. "texts/les 1.txt" gives "les_1".
func OutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	return SanitizeFilename(strings.TrimSuffix(base, filepath.Ext(base)))
}

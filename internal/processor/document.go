package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/hanyu/internal"
	"codeberg.org/snonux/hanyu/internal/annotate"
	"codeberg.org/snonux/hanyu/internal/vocab"
)

// Document is the annotated study document handed to renderers
type Document struct {
	ID              string          `json:"id"`
	Source          string          `json:"source"`
	Title           string          `json:"title,omitempty"`
	GeneratedAt     time.Time       `json:"generated_at"`
	TargetLanguage  string          `json:"target_language"`
	OriginalText    string          `json:"original_text"`
	FullTranslation string          `json:"full_translation,omitempty"`
	Words           []annotate.Word `json:"words"`
	Summary         vocab.Summary   `json:"summary"`
}

// NewDocument assembles a document and computes its vocabulary summary.
// An empty full translation means there is none.
func NewDocument(source, text, fullTranslation, targetLang string, words []annotate.Word) *Document {
	if words == nil {
		words = []annotate.Word{}
	}
	return &Document{
		ID:              internal.GenerateDocumentID(source),
		Source:          source,
		GeneratedAt:     time.Now().UTC(),
		TargetLanguage:  targetLang,
		OriginalText:    text,
		FullTranslation: fullTranslation,
		Words:           words,
		Summary:         vocab.Summarize(words),
	}
}

// Write saves the document as indented JSON
func (d *Document) Write(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

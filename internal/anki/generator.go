// Package anki exports the vocabulary of an annotated text as a CSV file
// that Anki can import as notes.
package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/hanyu/internal/annotate"
	"codeberg.org/snonux/hanyu/internal/hsk"
)

// Card represents a single Anki flashcard
type Card struct {
	Hanzi     string // The Chinese word
	Pinyin    string // Tone-marked pinyin
	Gloss     string // Translation
	Level     int    // HSK level, 0 if unknown
	Breakdown string // Character meanings, e.g. "世 = generatie; 界 = grens"
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	DeckName       string // Deck written into the file header
	IncludeHeaders bool   // Include Anki file headers
	SkipFailed     bool   // Leave out words that could not be translated
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		DeckName:       "Chinese Vocabulary",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddWords adds a card for every linguistic word not seen before
func (g *Generator) AddWords(words []annotate.Word) {
	seen := make(map[string]bool, len(g.cards))
	for _, c := range g.cards {
		seen[c.Hanzi] = true
	}

	for _, w := range words {
		if !w.IsLinguistic || seen[w.Surface] {
			continue
		}
		if g.options.SkipFailed && !w.Translated() {
			continue
		}
		seen[w.Surface] = true

		g.AddCard(Card{
			Hanzi:     w.Surface,
			Pinyin:    w.Transcription,
			Gloss:     w.Gloss,
			Level:     w.Level,
			Breakdown: FormatBreakdown(w.Breakdown),
		})
	}
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// FormatBreakdown renders character meanings as a single note field
func FormatBreakdown(breakdown []hsk.CharGloss) string {
	parts := make([]string, 0, len(breakdown))
	for _, cg := range breakdown {
		parts = append(parts, fmt.Sprintf("%s = %s", cg.Char, cg.Meaning))
	}
	return strings.Join(parts, "; ")
}

// levelTag returns the Anki tag for an HSK level
func levelTag(level int) string {
	if level < 1 {
		return "HSK-onbekend"
	}
	return fmt.Sprintf("HSK%d", level)
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	if dir := filepath.Dir(g.options.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	// Anki reads these header lines to configure the import
	if g.options.IncludeHeaders {
		headers := []string{"#separator:Comma", "#html:false", "#tags column:5"}
		if g.options.DeckName != "" {
			headers = append(headers, "#deck:"+g.options.DeckName)
		}
		for _, h := range headers {
			if _, err := fmt.Fprintln(file, h); err != nil {
				return fmt.Errorf("failed to write headers: %w", err)
			}
		}
	}

	writer := csv.NewWriter(file)
	for _, card := range g.cards {
		record := []string{
			card.Hanzi,
			card.Pinyin,
			card.Gloss,
			card.Breakdown,
			levelTag(card.Level),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withLevel, untranslated int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.Level > 0 {
			withLevel++
		}
		if card.Gloss == annotate.FailureGloss {
			untranslated++
		}
	}

	return
}

package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/hanyu/internal/hsk"
)

// CountingTranslator records every call and answers from a fixed table.
// Words listed in Errors fail with the given error; unknown words get
// "mock translation of <word>".
type CountingTranslator struct {
	Translations map[string]string
	Errors       map[string]error

	mu    sync.Mutex
	calls []string
}

// NewCountingTranslator creates a translator stub with known translations
func NewCountingTranslator(translations map[string]string) *CountingTranslator {
	return &CountingTranslator{
		Translations: translations,
		Errors:       map[string]error{},
	}
}

// Translate records the call and returns the canned answer
func (m *CountingTranslator) Translate(ctx context.Context, word string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, word)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err, ok := m.Errors[word]; ok {
		return "", err
	}

	if translation, ok := m.Translations[word]; ok {
		return translation, nil
	}

	return fmt.Sprintf("mock translation of %s", word), nil
}

// Calls returns the words passed to Translate, in order
func (m *CountingTranslator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times Translate was called
func (m *CountingTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// CallsFor returns how many times word was translated
func (m *CountingTranslator) CallsFor(word string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == word {
			n++
		}
	}
	return n
}

// StubTranscriber returns "pinyin(<word>)" or a fixed reading
type StubTranscriber struct {
	Readings map[string]string
	Err      error
}

// Transcribe returns the canned reading
func (s *StubTranscriber) Transcribe(word string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if reading, ok := s.Readings[word]; ok {
		return reading, nil
	}
	return "pinyin(" + word + ")", nil
}

// MapClassifier answers level and breakdown lookups from maps
type MapClassifier struct {
	Levels     map[string]int
	Breakdowns map[string][]hsk.CharGloss
}

// LevelOf returns the configured level and its frequency label
func (c *MapClassifier) LevelOf(word string) (int, string) {
	level := c.Levels[word]
	if level == 0 {
		return 0, ""
	}
	return level, hsk.FrequencyLabel(level)
}

// BreakdownOf returns the configured breakdown
func (c *MapClassifier) BreakdownOf(word string) []hsk.CharGloss {
	return c.Breakdowns[word]
}

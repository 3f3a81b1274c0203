// Package hsk holds the static reference data used to classify Chinese
// words: the HSK 1-6 vocabulary levels and per-character meanings. The
// data is embedded at build time and never changes at runtime.
package hsk

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/words.json data/chars.json
var dataFS embed.FS

// MaxLevel is the highest HSK tier in the table
const MaxLevel = 6

// CharGloss is the meaning of a single character inside a word
type CharGloss struct {
	Char    string `json:"char"`
	Meaning string `json:"meaning"`
}

// UnknownMeaning is used for characters missing from the table
const UnknownMeaning = "?"

// frequencyLabels describe how common words of each level are
var frequencyLabels = map[int]string{
	1: "zeer vaak",
	2: "vaak",
	3: "regelmatig",
	4: "gemiddeld",
	5: "minder vaak",
	6: "zeldzaam",
}

// levelNames are the learner-facing names of the tiers
var levelNames = map[int]string{
	1: "Beginner",
	2: "Elementair",
	3: "Gemiddeld",
	4: "Bovengemiddeld",
	5: "Gevorderd",
	6: "Meesterschap",
}

// Table answers level and breakdown lookups
type Table struct {
	words map[string]int
	chars map[string]string
}

// New creates a table from explicit data
func New(words map[string]int, chars map[string]string) *Table {
	if words == nil {
		words = map[string]int{}
	}
	if chars == nil {
		chars = map[string]string{}
	}
	return &Table{words: words, chars: chars}
}

// Load reads the embedded reference data
func Load() (*Table, error) {
	var words map[string]int
	if err := readJSON("data/words.json", &words); err != nil {
		return nil, err
	}

	var chars map[string]string
	if err := readJSON("data/chars.json", &chars); err != nil {
		return nil, err
	}

	return New(words, chars), nil
}

func readJSON(name string, v interface{}) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LevelOf returns the HSK level of word and its frequency label.
// Unknown words give level 0 and an empty label.
func (t *Table) LevelOf(word string) (int, string) {
	level, ok := t.words[word]
	if !ok || level < 1 || level > MaxLevel {
		return 0, ""
	}
	return level, FrequencyLabel(level)
}

// BreakdownOf splits a multi-character word into its characters and their
// meanings. Single characters and words without any known character have
// no breakdown.
func (t *Table) BreakdownOf(word string) []CharGloss {
	runes := []rune(word)
	if len(runes) < 2 {
		return nil
	}

	breakdown := make([]CharGloss, 0, len(runes))
	known := false
	for _, r := range runes {
		c := string(r)
		meaning, ok := t.chars[c]
		if ok {
			known = true
		} else {
			meaning = UnknownMeaning
		}
		breakdown = append(breakdown, CharGloss{Char: c, Meaning: meaning})
	}

	if !known {
		return nil
	}
	return breakdown
}

// Size returns the number of words and characters in the table
func (t *Table) Size() (words, chars int) {
	return len(t.words), len(t.chars)
}

// FrequencyLabel describes how common words of the given level are
func FrequencyLabel(level int) string {
	return frequencyLabels[level]
}

// LevelName returns the learner-facing name of a level, e.g. "HSK 1 (Beginner)"
func LevelName(level int) string {
	name, ok := levelNames[level]
	if !ok {
		return "Onbekend niveau"
	}
	return fmt.Sprintf("HSK %d (%s)", level, name)
}

// Package vocab aggregates annotated words into a vocabulary summary.
package vocab

import (
	"sort"
	"unicode/utf8"

	"codeberg.org/snonux/hanyu/internal/annotate"
)

// Summary describes the vocabulary of one annotated text
type Summary struct {
	// Unique holds the first occurrence of every linguistic word, in text order
	Unique []annotate.Word `json:"unique"`

	TokenCount      int `json:"token_count"`
	LinguisticCount int `json:"linguistic_count"`
	UniqueCount     int `json:"unique_count"`
	CharacterCount  int `json:"character_count"`

	// LevelCounts counts unique words per HSK level; level 0 is unknown
	LevelCounts map[int]int `json:"level_counts"`
}

// Summarize builds the summary of words in a single pass. Duplicates are
// dropped from Unique but still counted in LinguisticCount and
// CharacterCount.
func Summarize(words []annotate.Word) Summary {
	s := Summary{
		Unique:      []annotate.Word{},
		TokenCount:  len(words),
		LevelCounts: map[int]int{},
	}

	seen := make(map[string]bool)
	for _, w := range words {
		if !w.IsLinguistic {
			continue
		}

		s.LinguisticCount++
		s.CharacterCount += utf8.RuneCountInString(w.Surface)

		if seen[w.Surface] {
			continue
		}
		seen[w.Surface] = true
		s.Unique = append(s.Unique, w)
		s.LevelCounts[w.Level]++
	}

	s.UniqueCount = len(s.Unique)
	return s
}

// CountLevels returns how many unique words have one of the given levels
func (s Summary) CountLevels(levels ...int) int {
	n := 0
	for _, level := range levels {
		n += s.LevelCounts[level]
	}
	return n
}

// Levels returns the observed levels in ascending order
func (s Summary) Levels() []int {
	levels := make([]int, 0, len(s.LevelCounts))
	for level := range s.LevelCounts {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

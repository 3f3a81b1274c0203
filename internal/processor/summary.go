package processor

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/hanyu/internal/vocab"
)

// previewSize is the number of unique words printed in the summary
const previewSize = 10

// PrintSummary writes the vocabulary summary and a preview of the first
// unique words to w.
func PrintSummary(w io.Writer, s vocab.Summary) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "   Total words: %d\n", s.LinguisticCount)
	fmt.Fprintf(w, "   Unique words: %d\n", s.UniqueCount)
	fmt.Fprintf(w, "   Total characters: %d\n", s.CharacterCount)
	fmt.Fprintf(w, "   HSK 1-2 words: %d\n", s.CountLevels(1, 2))
	fmt.Fprintln(w)

	if s.UniqueCount == 0 {
		return
	}

	fmt.Fprintf(w, "PREVIEW (first %d words):\n", previewSize)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for i, word := range s.Unique {
		if i == previewSize {
			break
		}
		level := "?"
		if word.Level > 0 {
			level = fmt.Sprintf("HSK%d", word.Level)
		}
		fmt.Fprintf(w, "   %s | %s | %s | %s\n", word.Surface, word.Transcription, word.Gloss, level)
	}

	if s.UniqueCount > previewSize {
		fmt.Fprintf(w, "   ... and %d more words\n", s.UniqueCount-previewSize)
	}
	fmt.Fprintln(w)
}

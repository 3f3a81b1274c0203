package processor

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"codeberg.org/snonux/hanyu/internal/annotate"
	"codeberg.org/snonux/hanyu/internal/vocab"
)

func TestPrintSummary(t *testing.T) {
	var words []annotate.Word
	for i := 0; i < 12; i++ {
		words = append(words, annotate.Word{
			Surface:       fmt.Sprintf("字%d", i),
			Transcription: "zì",
			Gloss:         "teken",
			Level:         i % 3,
			IsLinguistic:  true,
		})
	}

	var buf bytes.Buffer
	PrintSummary(&buf, vocab.Summarize(words))
	out := buf.String()

	for _, want := range []string{
		"Total words: 12",
		"Unique words: 12",
		"Total characters: 24",
		"HSK 1-2 words: 8",
		"字0 | zì | teken | ?",
		"字1 | zì | teken | HSK1",
		"... and 2 more words",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary is missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "字10") {
		t.Error("Preview should stop after 10 words")
	}
}

func TestPrintSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, vocab.Summarize(nil))

	if !strings.Contains(buf.String(), "Total words: 0") {
		t.Errorf("Unexpected summary: %s", buf.String())
	}
	if strings.Contains(buf.String(), "PREVIEW") {
		t.Error("Empty summary should have no preview")
	}
}

package phonetic

import (
	"fmt"
	"strings"

	"github.com/mozillazg/go-pinyin"

	"codeberg.org/snonux/hanyu/internal/script"
)

// Transcriber produces the phonetic rendering of a word
type Transcriber interface {
	Transcribe(word string) (string, error)
}

// Pinyin transcribes words with tone-marked pinyin
type Pinyin struct {
	args      pinyin.Args
	separator string
}

// NewPinyin creates a transcriber that joins syllables with separator.
// An empty separator gives the compact form, e.g. "nǐhǎo".
func NewPinyin(separator string) *Pinyin {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone
	// Keep digits and Latin letters of mixed tokens such as "2023年"
	args.Fallback = func(r rune, a pinyin.Args) []string {
		return []string{string(r)}
	}

	return &Pinyin{
		args:      args,
		separator: separator,
	}
}

// Transcribe returns the pinyin of word. It fails only when the word has
// no ideographs at all, which means the caller skipped classification.
func (p *Pinyin) Transcribe(word string) (string, error) {
	if !script.HasHan(word) {
		return "", fmt.Errorf("no Chinese characters in %q", word)
	}

	syllables := pinyin.Pinyin(word, p.args)

	parts := make([]string, 0, len(syllables))
	for _, s := range syllables {
		if len(s) == 0 {
			continue
		}
		parts = append(parts, s[0])
	}

	return strings.Join(parts, p.separator), nil
}

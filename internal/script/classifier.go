package script

import (
	"strings"
	"unicode"
)

// Bounds of the CJK Unified Ideographs block.
const (
	hanFirst = '\u4e00'
	hanLast  = '\u9fff'
)

// punctuation holds the full-width and ASCII marks that never carry a gloss
var punctuation = map[rune]bool{}

func init() {
	for _, r := range "。，！？、；：“”‘’（）【】《》…—「」『』·" + `.,!?;:'"()[]-` {
		punctuation[r] = true
	}
}

// HasHan reports whether s contains at least one CJK ideograph.
// A single ideograph is enough, so mixed tokens like "2023年" qualify.
func HasHan(s string) bool {
	for _, r := range s {
		if r >= hanFirst && r <= hanLast {
			return true
		}
	}
	return false
}

// IsPunctuation reports whether s consists only of whitespace and
// recognized punctuation marks. The empty string counts as punctuation.
func IsPunctuation(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && !punctuation[r] {
			return false
		}
	}
	return true
}

// IsLinguistic reports whether a token should be fully annotated
func IsLinguistic(token string) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}
	return HasHan(token) && !IsPunctuation(token)
}

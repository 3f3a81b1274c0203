// Package segment splits Chinese text into word tokens. The segmentation
// itself is delegated to the gse dictionary segmenter.
package segment

import (
	"fmt"

	"github.com/go-ego/gse"
)

// Segmenter splits text into an ordered sequence of tokens. Concatenating
// the tokens must give back the input text.
type Segmenter interface {
	Segment(text string) []string
}

// GSE segments text with the embedded simplified Chinese dictionary
type GSE struct {
	seg gse.Segmenter
	hmm bool
}

// NewGSE loads the embedded dictionary. Loading takes a moment, so callers
// should build one GSE and reuse it for every document.
func NewGSE() (*GSE, error) {
	g := &GSE{hmm: true}
	if err := g.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("failed to load segmentation dictionary: %w", err)
	}
	return g, nil
}

// Segment cuts text into words, using the HMM model for words missing
// from the dictionary.
func (g *GSE) Segment(text string) []string {
	return g.seg.Cut(text, g.hmm)
}

// Fixed returns pre-computed tokens regardless of the input text.
// It is used for replaying a known segmentation and in tests.
type Fixed []string

// Segment returns the fixed tokens
func (f Fixed) Segment(string) []string {
	out := make([]string, len(f))
	copy(out, f)
	return out
}

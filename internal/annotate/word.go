package annotate

import "codeberg.org/snonux/hanyu/internal/hsk"

// FailureGloss is the gloss of a linguistic word that could not be translated
const FailureGloss = "?"

// Word is one annotated token of the source text
type Word struct {
	Surface        string          `json:"surface"`
	Transcription  string          `json:"transcription"`
	Gloss          string          `json:"gloss"`
	Level          int             `json:"level"`
	FrequencyLabel string          `json:"frequency_label,omitempty"`
	Breakdown      []hsk.CharGloss `json:"breakdown,omitempty"`
	IsLinguistic   bool            `json:"is_linguistic"`
}

// Translated reports whether the word carries a real translation
func (w Word) Translated() bool {
	return w.IsLinguistic && w.Gloss != FailureGloss
}

// passThrough returns the record of a token that is not annotated
func passThrough(token string) Word {
	return Word{
		Surface:       token,
		Transcription: token,
		Gloss:         token,
	}
}

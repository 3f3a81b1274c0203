// Package script decides which tokens of a Chinese text are worth
// annotating. Tokens containing CJK ideographs are linguistic; punctuation,
// digits and Latin text are passed through untouched.
package script

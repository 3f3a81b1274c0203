// Package phonetic renders Chinese words as Hanyu Pinyin with tone marks,
// the transcription shown above each word of a study text.
package phonetic

// Package annotate turns segmented Chinese text into an ordered sequence of
// annotated words.
//
// The Annotator handles a single token: pass-through tokens (punctuation,
// digits, Latin text) are returned verbatim, while linguistic tokens get
// pinyin, a gloss, an HSK level and a character breakdown. Translations come
// from the run's cache when possible and from the translation service
// otherwise; a failed translation yields FailureGloss instead of an error.
//
// The Pipeline owns the cache for one run. It loads the cache from its
// Store, annotates every token in order and saves the cache once at the end.
// Cache I/O problems are logged as warnings and never abort a run.
package annotate

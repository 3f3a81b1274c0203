package translation

// TranslationCache maps Chinese words to their translations. A cache is
// owned by a single pipeline run and is not safe for concurrent use.
type TranslationCache struct {
	translations map[string]string
	added        map[string]bool
}

// NewTranslationCache creates a new empty translation cache
func NewTranslationCache() *TranslationCache {
	return NewTranslationCacheFrom(nil)
}

// NewTranslationCacheFrom creates a cache holding a copy of entries
func NewTranslationCacheFrom(entries map[string]string) *TranslationCache {
	tc := &TranslationCache{
		translations: make(map[string]string, len(entries)),
		added:        make(map[string]bool),
	}
	for k, v := range entries {
		tc.translations[k] = v
	}
	return tc
}

// Add adds a translation to the cache. It does not persist anything.
func (tc *TranslationCache) Add(word, translation string) {
	if _, ok := tc.translations[word]; !ok {
		tc.added[word] = true
	}
	tc.translations[word] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(word string) (string, bool) {
	translation, ok := tc.translations[word]
	return translation, ok
}

// GetAll returns all cached translations
func (tc *TranslationCache) GetAll() map[string]string {
	// Return a copy to prevent external modification
	result := make(map[string]string, len(tc.translations))
	for k, v := range tc.translations {
		result[k] = v
	}
	return result
}

// Len returns the number of cached translations
func (tc *TranslationCache) Len() int {
	return len(tc.translations)
}

// Added returns how many words were added since the cache was created
func (tc *TranslationCache) Added() int {
	return len(tc.added)
}

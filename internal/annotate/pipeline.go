package annotate

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"codeberg.org/snonux/hanyu/internal/segment"
	"codeberg.org/snonux/hanyu/internal/translation"
)

// ErrEmptyInput is returned when there is no text to annotate
var ErrEmptyInput = errors.New("input text is empty")

// Pipeline segments a text and annotates every token in order
type Pipeline struct {
	Segmenter segment.Segmenter
	Annotator *Annotator
	Store     translation.Store
	Logger    *slog.Logger

	// PersistEachNew saves the cache after every new translation instead
	// of only at the end of the run
	PersistEachNew bool
}

// NewPipeline creates a pipeline that saves its cache once per run
func NewPipeline(segmenter segment.Segmenter, annotator *Annotator, store translation.Store, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		Segmenter: segmenter,
		Annotator: annotator,
		Store:     store,
		Logger:    logger,
	}
}

// Run annotates text with a cache loaded from the store and saves the cache
// afterwards. The cache is also saved when the run is cancelled or stopped
// by a transcription error; in that case the words annotated so far are
// returned along with the error.
func (p *Pipeline) Run(ctx context.Context, text string) ([]Word, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	cache := p.LoadCache()
	words, err := p.annotateAll(ctx, text, cache)
	p.SaveCache(cache)
	return words, err
}

// RunWithCache annotates text using a cache owned by the caller. Nothing is
// loaded; the cache is only saved when PersistEachNew is set.
func (p *Pipeline) RunWithCache(ctx context.Context, text string, cache *translation.TranslationCache) ([]Word, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	return p.annotateAll(ctx, text, cache)
}

// LoadCache reads the persisted cache. A missing store is an empty cache;
// an unreadable one is logged and replaced by an empty cache.
func (p *Pipeline) LoadCache() *translation.TranslationCache {
	if p.Store == nil {
		return translation.NewTranslationCache()
	}

	entries, err := p.Store.Load()
	if err != nil {
		p.logger().Warn("could not load translation cache, starting with an empty one",
			slog.String("path", p.Store.Location()),
			slog.String("error", err.Error()),
		)
		return translation.NewTranslationCache()
	}
	return translation.NewTranslationCacheFrom(entries)
}

// SaveCache writes the complete cache back to the store. Failures are
// logged and otherwise ignored.
func (p *Pipeline) SaveCache(cache *translation.TranslationCache) bool {
	if p.Store == nil {
		return false
	}

	if err := p.Store.Save(cache.GetAll()); err != nil {
		p.logger().Warn("could not save translation cache",
			slog.String("path", p.Store.Location()),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

func (p *Pipeline) annotateAll(ctx context.Context, text string, cache *translation.TranslationCache) ([]Word, error) {
	tokens := p.Segmenter.Segment(text)
	words := make([]Word, 0, len(tokens))

	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return words, err
		}

		added := cache.Added()
		word, err := p.Annotator.Annotate(ctx, token, cache)
		if err != nil {
			return words, err
		}
		words = append(words, word)

		if p.PersistEachNew && cache.Added() > added {
			p.SaveCache(cache)
		}
	}

	return words, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

package annotate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"codeberg.org/snonux/hanyu/internal/hsk"
	"codeberg.org/snonux/hanyu/internal/phonetic"
	"codeberg.org/snonux/hanyu/internal/script"
	"codeberg.org/snonux/hanyu/internal/translation"
)

// DefaultTimeout bounds a single translation call
const DefaultTimeout = 15 * time.Second

// Classifier looks up reference data for a word. Misses are level 0 and a
// nil breakdown, never errors.
type Classifier interface {
	LevelOf(word string) (int, string)
	BreakdownOf(word string) []hsk.CharGloss
}

// Annotator produces the annotated record of a single token
type Annotator struct {
	Translator  translation.Translator
	Transcriber phonetic.Transcriber
	Classifier  Classifier
	Logger      *slog.Logger

	// Timeout for one translation call; zero means DefaultTimeout
	Timeout time.Duration
}

// NewAnnotator creates an annotator with the default timeout
func NewAnnotator(translator translation.Translator, transcriber phonetic.Transcriber, classifier Classifier, logger *slog.Logger) *Annotator {
	return &Annotator{
		Translator:  translator,
		Transcriber: transcriber,
		Classifier:  classifier,
		Logger:      logger,
		Timeout:     DefaultTimeout,
	}
}

// Annotate annotates token, consulting and extending cache. Translation
// failures are absorbed into FailureGloss; a transcription error is
// returned since it means the pipeline itself is broken.
func (a *Annotator) Annotate(ctx context.Context, token string, cache *translation.TranslationCache) (Word, error) {
	if !script.IsLinguistic(token) {
		return passThrough(token), nil
	}

	gloss, err := a.gloss(ctx, token, cache)
	if err != nil {
		var failure *translation.Failure
		if !errors.As(err, &failure) {
			return Word{}, err
		}
		a.logger().Warn("translation failed",
			slog.String("word", failure.Word),
			slog.String("error", failure.Err.Error()),
		)
		gloss = FailureGloss
	}

	transcription, err := a.Transcriber.Transcribe(token)
	if err != nil {
		return Word{}, fmt.Errorf("failed to transcribe '%s': %w", token, err)
	}

	level, label := a.Classifier.LevelOf(token)
	if level == 0 {
		label = ""
	}

	return Word{
		Surface:        token,
		Transcription:  transcription,
		Gloss:          gloss,
		Level:          level,
		FrequencyLabel: label,
		Breakdown:      a.Classifier.BreakdownOf(token),
		IsLinguistic:   true,
	}, nil
}

// gloss returns the cached translation of word or asks the translator.
// Every translator problem comes back as a *translation.Failure.
func (a *Annotator) gloss(ctx context.Context, word string, cache *translation.TranslationCache) (string, error) {
	if cached, ok := cache.Get(word); ok {
		return cached, nil
	}

	if a.Translator == nil {
		return "", &translation.Failure{Word: word, Err: errors.New("no translator configured")}
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := a.Translator.Translate(tctx, word)
	if err != nil {
		return "", &translation.Failure{Word: word, Err: err}
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return "", &translation.Failure{Word: word, Err: translation.ErrEmptyTranslation}
	}

	cache.Add(word, result)
	return result, nil
}

func (a *Annotator) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

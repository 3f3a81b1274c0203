package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/hanyu/internal"
	"codeberg.org/snonux/hanyu/internal/anki"
	"codeberg.org/snonux/hanyu/internal/annotate"
	"codeberg.org/snonux/hanyu/internal/batch"
	"codeberg.org/snonux/hanyu/internal/cli"
	"codeberg.org/snonux/hanyu/internal/hsk"
	"codeberg.org/snonux/hanyu/internal/phonetic"
	"codeberg.org/snonux/hanyu/internal/segment"
	"codeberg.org/snonux/hanyu/internal/source"
	"codeberg.org/snonux/hanyu/internal/translation"
)

// breakerCooldown is how long translations pause once the breaker opens
const breakerCooldown = 30 * time.Second

// Processor handles the main document processing logic
type Processor struct {
	cfg      cli.Config
	logger   *slog.Logger
	out      io.Writer
	pipeline *annotate.Pipeline
	fetcher  *source.Fetcher
	anki     *anki.Generator
}

// NewProcessor builds the annotation pipeline described by cfg
func NewProcessor(ctx context.Context, cfg cli.Config, logger *slog.Logger) (*Processor, error) {
	translator, err := newTranslator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	breaker := translation.NewBreakerTranslator(translator, uint32(cfg.BreakerFailures), breakerCooldown, logger)

	segmenter, err := segment.NewGSE()
	if err != nil {
		return nil, err
	}

	table, err := hsk.Load()
	if err != nil {
		return nil, err
	}

	store, err := translation.NewStore(cfg.CacheBackend, cfg.CachePath)
	if err != nil {
		return nil, err
	}

	annotator := annotate.NewAnnotator(breaker, phonetic.NewPinyin(""), table, logger)
	if cfg.Timeout > 0 {
		annotator.Timeout = cfg.Timeout
	}

	pipeline := annotate.NewPipeline(segmenter, annotator, store, logger)
	pipeline.PersistEachNew = cfg.PersistEachNew

	return newProcessor(cfg, pipeline, logger, os.Stdout), nil
}

func newProcessor(cfg cli.Config, pipeline *annotate.Pipeline, logger *slog.Logger, out io.Writer) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		pipeline: pipeline,
		fetcher:  source.NewFetcher(nil),
		anki: anki.NewGenerator(&anki.GeneratorOptions{
			OutputPath:     filepath.Join(cfg.OutputDir, "anki_import.csv"),
			DeckName:       cfg.DeckName,
			IncludeHeaders: true,
		}),
	}
}

// newTranslator creates the translator of the configured provider
func newTranslator(ctx context.Context, cfg cli.Config) (translation.Translator, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini %w. Set GEMINI_API_KEY environment variable or configure translation.gemini_key in .hanyu.yaml", translation.ErrNoAPIKey)
		}
		return translation.NewGeminiTranslator(ctx, cfg.GeminiKey, cfg.Model, cfg.TargetLang)
	case "", "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI %w. Set OPENAI_API_KEY environment variable or configure translation.openai_key in .hanyu.yaml", translation.ErrNoAPIKey)
		}
		return translation.NewOpenAITranslator(cfg.OpenAIKey, cfg.Model, cfg.TargetLang), nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}
}

// ProcessFile annotates a text file and writes its study document. An empty
// inputPath means the default input file, which is created with a sample
// text when missing.
func (p *Processor) ProcessFile(ctx context.Context, inputPath, translationPath string) (*Document, error) {
	if inputPath == "" {
		inputPath = cli.DefaultInputFile
		created, err := source.EnsureSample(inputPath)
		if err != nil {
			return nil, err
		}
		if created {
			fmt.Fprintf(p.out, "Sample file '%s' created.\n", inputPath)
			fmt.Fprintf(p.out, "   Edit this file with your Chinese text and run hanyu again.\n\n")
		}
	}

	fmt.Fprintf(p.out, "Reading '%s'...\n", inputPath)
	text, err := source.ReadText(inputPath)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%s: %w", inputPath, annotate.ErrEmptyInput)
	}

	fullTranslation := p.loadTranslation(inputPath, translationPath)

	doc, err := p.annotate(ctx, inputPath, text, fullTranslation)
	if err != nil {
		return nil, err
	}

	if err := p.writeDocument(doc, internal.OutputName(inputPath)); err != nil {
		return nil, err
	}
	PrintSummary(p.out, doc.Summary)
	return doc, nil
}

// ProcessURL annotates the article at rawURL
func (p *Processor) ProcessURL(ctx context.Context, rawURL string) (*Document, error) {
	fmt.Fprintf(p.out, "Fetching %s...\n", rawURL)
	article, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if article.Title != "" {
		fmt.Fprintf(p.out, "Title: %s\n", article.Title)
	}
	if article.Text == "" {
		return nil, fmt.Errorf("%s: %w", rawURL, annotate.ErrEmptyInput)
	}

	doc, err := p.annotate(ctx, rawURL, article.Text, "")
	if err != nil {
		return nil, err
	}
	doc.Title = article.Title

	name := internal.SanitizeFilename(article.Title)
	if name == "" {
		name = "article_" + doc.ID
	}
	if err := p.writeDocument(doc, name); err != nil {
		return nil, err
	}
	PrintSummary(p.out, doc.Summary)
	return doc, nil
}

// ProcessBatch annotates every document listed in batchFile. All documents
// share one cache, which is saved once at the end, also when the run is
// interrupted.
func (p *Processor) ProcessBatch(ctx context.Context, batchFile string) error {
	entries, err := batch.ReadBatchFile(batchFile)
	if err != nil {
		return err
	}

	cache := p.pipeline.LoadCache()
	loaded := cache.Len()

	processedCount := 0
	errorCount := 0
	var runErr error

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		fmt.Fprintf(p.out, "\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Input)

		text, err := source.ReadText(entry.Input)
		if err == nil && text == "" {
			err = annotate.ErrEmptyInput
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Input, err)
			errorCount++
			continue
		}

		fullTranslation := p.loadTranslation(entry.Input, entry.Translation)

		words, err := p.pipeline.RunWithCache(ctx, text, cache)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				runErr = err
				break
			}
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Input, err)
			errorCount++
			continue
		}

		doc := NewDocument(entry.Input, text, fullTranslation, p.cfg.TargetLang, words)
		if err := p.writeDocument(doc, internal.OutputName(entry.Input)); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Input, err)
			errorCount++
			continue
		}
		p.anki.AddWords(words)
		processedCount++
	}

	if p.pipeline.SaveCache(cache) {
		fmt.Fprintf(p.out, "\nTranslation cache saved: %d entries (%d new)\n", cache.Len(), cache.Len()-loaded)
	}

	// Print summary
	fmt.Fprintf(p.out, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.out, "Total documents: %d\n", len(entries))
	fmt.Fprintf(p.out, "Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Fprintf(p.out, "Errors: %d\n", errorCount)
	}
	fmt.Fprintf(p.out, "================================\n")

	return runErr
}

// GenerateAnkiFile writes the collected vocabulary as an Anki CSV file and
// returns its path.
func (p *Processor) GenerateAnkiFile() (string, error) {
	total, withLevel, untranslated := p.anki.Stats()
	if total == 0 {
		return "", errors.New("no vocabulary to export")
	}

	if err := p.anki.GenerateCSV(); err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	fmt.Fprintf(p.out, "  Generated %d cards (%d with HSK level, %d without translation)\n",
		total, withLevel, untranslated)

	return filepath.Join(p.cfg.OutputDir, "anki_import.csv"), nil
}

func (p *Processor) annotate(ctx context.Context, origin, text, fullTranslation string) (*Document, error) {
	fmt.Fprintf(p.out, "Processing %d characters...\n\n", len([]rune(text)))

	words, err := p.pipeline.Run(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("annotation of %s stopped: %w", origin, err)
	}

	doc := NewDocument(origin, text, fullTranslation, p.cfg.TargetLang, words)
	p.anki.AddWords(words)
	return doc, nil
}

// loadTranslation reads the full translation of inputPath. Without an
// explicit file the companion file next to the input is used, and a
// placeholder is created when it does not exist yet.
func (p *Processor) loadTranslation(inputPath, translationPath string) string {
	if translationPath == "" {
		translationPath = source.TranslationPath(inputPath, p.cfg.TargetLang)
		created, err := source.EnsureTranslationPlaceholder(translationPath)
		if err != nil {
			p.logger.Warn("could not create translation file",
				slog.String("path", translationPath),
				slog.String("error", err.Error()),
			)
		} else if created {
			fmt.Fprintf(p.out, "No '%s' found. Empty file created, add the full translation there.\n", translationPath)
			return ""
		}
	}

	fullTranslation, err := source.ReadTranslation(translationPath)
	if err != nil {
		p.logger.Warn("could not read translation file",
			slog.String("path", translationPath),
			slog.String("error", err.Error()),
		)
		return ""
	}

	if fullTranslation != "" {
		fmt.Fprintf(p.out, "   Full translation loaded (%d characters)\n", len([]rune(fullTranslation)))
	}
	return fullTranslation
}

func (p *Processor) writeDocument(doc *Document, name string) error {
	path := filepath.Join(p.cfg.OutputDir, name+".json")
	if err := doc.Write(path); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Output saved to '%s'\n\n", path)
	return nil
}

package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/hanyu/internal/annotate"
	"codeberg.org/snonux/hanyu/internal/cli"
	"codeberg.org/snonux/hanyu/internal/hsk"
	"codeberg.org/snonux/hanyu/internal/segment"
	"codeberg.org/snonux/hanyu/internal/testutil"
	"codeberg.org/snonux/hanyu/internal/translation"
)

// memStore keeps the cache in memory and counts saves
type memStore struct {
	entries map[string]string
	saves   int
}

func (s *memStore) Load() (map[string]string, error) {
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out, nil
}

func (s *memStore) Save(entries map[string]string) error {
	s.saves++
	s.entries = entries
	return nil
}

func (s *memStore) Location() string {
	return "memory"
}

// tokenSegmenter splits text on the Chinese comma and full stop, keeping
// them as tokens
type tokenSegmenter struct{}

func (tokenSegmenter) Segment(text string) []string {
	var tokens []string
	current := ""
	for _, r := range text {
		if r == '，' || r == '。' || r == '\n' {
			if current != "" {
				tokens = append(tokens, current)
			}
			tokens = append(tokens, string(r))
			current = ""
			continue
		}
		current += string(r)
	}
	if current != "" {
		tokens = append(tokens, current)
	}
	return tokens
}

type fixture struct {
	proc       *Processor
	translator *testutil.CountingTranslator
	store      *memStore
	out        *bytes.Buffer
	logs       *bytes.Buffer
	dir        string
}

func newFixture(t *testing.T, seg segment.Segmenter) *fixture {
	t.Helper()

	dir := t.TempDir()
	logger, logs := testutil.NewCaptureLogger()
	tr := testutil.NewCountingTranslator(map[string]string{
		"你好": "hallo",
		"世界": "wereld",
		"朋友": "vriend",
	})
	store := &memStore{}

	table, err := hsk.Load()
	require.NoError(t, err)

	annotator := annotate.NewAnnotator(tr, &testutil.StubTranscriber{}, table, logger)
	pipeline := annotate.NewPipeline(seg, annotator, store, logger)

	cfg := cli.Config{
		OutputDir:    filepath.Join(dir, "out"),
		DeckName:     "Test Deck",
		Provider:     "openai",
		TargetLang:   "nl",
		CacheBackend: "json",
	}

	var out bytes.Buffer
	return &fixture{
		proc:       newProcessor(cfg, pipeline, logger, &out),
		translator: tr,
		store:      store,
		out:        &out,
		logs:       logs,
		dir:        dir,
	}
}

func readDocument(t *testing.T, path string) Document {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestNewTranslator(t *testing.T) {
	ctx := context.Background()

	_, err := newTranslator(ctx, cli.Config{Provider: "openai"})
	assert.ErrorIs(t, err, translation.ErrNoAPIKey)

	_, err = newTranslator(ctx, cli.Config{Provider: "gemini"})
	assert.ErrorIs(t, err, translation.ErrNoAPIKey)

	_, err = newTranslator(ctx, cli.Config{Provider: "deepl", OpenAIKey: "key"})
	assert.Error(t, err)

	tr, err := newTranslator(ctx, cli.Config{Provider: "openai", OpenAIKey: "key", TargetLang: "nl"})
	require.NoError(t, err)
	assert.IsType(t, &translation.OpenAITranslator{}, tr)
}

func TestNewProcessor_NoAPIKey(t *testing.T) {
	_, err := NewProcessor(context.Background(), cli.Config{Provider: "openai", CacheBackend: "json"}, nil)
	assert.ErrorIs(t, err, translation.ErrNoAPIKey)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestProcessFile(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})
	input := filepath.Join(f.dir, "les1.txt")
	testutil.CreateTestFile(t, input, []byte("你好，世界。\n"))

	doc, err := f.proc.ProcessFile(context.Background(), input, "")
	require.NoError(t, err)

	// The document is written to the output directory
	written := readDocument(t, filepath.Join(f.dir, "out", "les1.json"))
	assert.Equal(t, doc.ID, written.ID)
	assert.Equal(t, "你好，世界。", written.OriginalText)
	assert.Empty(t, written.FullTranslation)
	assert.Equal(t, "nl", written.TargetLanguage)

	require.Len(t, written.Words, 4)
	assert.Equal(t, "你好", written.Words[0].Surface)
	assert.Equal(t, "hallo", written.Words[0].Gloss)
	assert.Equal(t, 1, written.Words[0].Level)
	assert.False(t, written.Words[1].IsLinguistic)
	assert.Equal(t, 2, written.Summary.UniqueCount)
	assert.Equal(t, 2, written.Summary.LinguisticCount)

	// A placeholder for the full translation is created next to the input
	placeholder := filepath.Join(f.dir, "les1_nl.txt")
	testutil.AssertFileExists(t, placeholder)

	// Cache saved once with both translations
	assert.Equal(t, 1, f.store.saves)
	assert.Equal(t, map[string]string{"你好": "hallo", "世界": "wereld"}, f.store.entries)

	out := f.out.String()
	assert.Contains(t, out, "Total words: 2")
	assert.Contains(t, out, "Unique words: 2")
	assert.Contains(t, out, "你好 | pinyin(你好) | hallo | HSK1")
}

func TestProcessFile_WithTranslation(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})
	input := filepath.Join(f.dir, "input.txt")
	full := filepath.Join(f.dir, "vertaling.txt")
	testutil.CreateTestFile(t, input, []byte("你好，朋友"))
	testutil.CreateTestFile(t, full, []byte("# Nederlands\nHallo, vriend\n"))

	doc, err := f.proc.ProcessFile(context.Background(), input, full)
	require.NoError(t, err)

	assert.Equal(t, "Hallo, vriend", doc.FullTranslation)
	testutil.AssertFileNotExists(t, filepath.Join(f.dir, "input_nl.txt"))
}

func TestProcessFile_CompanionTranslation(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})
	input := filepath.Join(f.dir, "input.txt")
	testutil.CreateTestFile(t, input, []byte("你好"))
	testutil.CreateTestFile(t, filepath.Join(f.dir, "input_nl.txt"), []byte("Hallo"))

	doc, err := f.proc.ProcessFile(context.Background(), input, "")
	require.NoError(t, err)
	assert.Equal(t, "Hallo", doc.FullTranslation)
}

func TestProcessFile_DefaultInputCreatesSample(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})
	t.Chdir(f.dir)

	_, err := f.proc.ProcessFile(context.Background(), "", "")
	require.NoError(t, err)

	testutil.AssertFileExists(t, filepath.Join(f.dir, cli.DefaultInputFile))
	assert.Contains(t, f.out.String(), "Sample file 'input.txt' created")
	testutil.AssertFileExists(t, filepath.Join(f.dir, "out", "input.json"))
}

func TestProcessFile_EmptyInput(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})
	input := filepath.Join(f.dir, "empty.txt")
	testutil.CreateTestFile(t, input, []byte("  \n"))

	_, err := f.proc.ProcessFile(context.Background(), input, "")
	assert.ErrorIs(t, err, annotate.ErrEmptyInput)
	assert.Zero(t, f.translator.CallCount())
}

func TestProcessFile_TranslationFailure(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})
	f.translator.Errors["世界"] = errors.New("rate limited")
	input := filepath.Join(f.dir, "input.txt")
	testutil.CreateTestFile(t, input, []byte("你好，世界"))

	doc, err := f.proc.ProcessFile(context.Background(), input, "")
	require.NoError(t, err)

	require.Len(t, doc.Words, 3)
	assert.Equal(t, annotate.FailureGloss, doc.Words[2].Gloss)
	assert.Contains(t, f.logs.String(), "rate limited")
	assert.NotContains(t, f.store.entries, "世界")
}

func TestProcessBatch(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})
	testutil.CreateTestFile(t, filepath.Join(f.dir, "a.txt"), []byte("你好，世界"))
	testutil.CreateTestFile(t, filepath.Join(f.dir, "b.txt"), []byte("你好，朋友"))
	testutil.CreateTestFile(t, filepath.Join(f.dir, "b_vertaling.txt"), []byte("Hallo, vriend"))
	batchFile := filepath.Join(f.dir, "batch.txt")
	testutil.CreateTestFile(t, batchFile, []byte("a.txt\nmissing.txt\nb.txt = b_vertaling.txt\n"))

	err := f.proc.ProcessBatch(context.Background(), batchFile)
	require.NoError(t, err)

	// Shared cache: "你好" is translated once for both documents
	assert.Equal(t, 1, f.translator.CallsFor("你好"))
	assert.Equal(t, 1, f.store.saves)
	assert.Len(t, f.store.entries, 3)

	docB := readDocument(t, filepath.Join(f.dir, "out", "b.json"))
	assert.Equal(t, "Hallo, vriend", docB.FullTranslation)
	testutil.AssertFileExists(t, filepath.Join(f.dir, "out", "a.json"))

	out := f.out.String()
	assert.Contains(t, out, "Total documents: 3")
	assert.Contains(t, out, "Processed: 2")
	assert.Contains(t, out, "Errors: 1")
}

func TestProcessBatch_Cancelled(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})
	testutil.CreateTestFile(t, filepath.Join(f.dir, "a.txt"), []byte("你好"))
	batchFile := filepath.Join(f.dir, "batch.txt")
	testutil.CreateTestFile(t, batchFile, []byte("a.txt\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.proc.ProcessBatch(ctx, batchFile)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, f.store.saves)
	assert.Zero(t, f.translator.CallCount())
}

func TestGenerateAnkiFile(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})

	_, err := f.proc.GenerateAnkiFile()
	assert.Error(t, err)

	input := filepath.Join(f.dir, "input.txt")
	testutil.CreateTestFile(t, input, []byte("你好，世界。你好"))
	_, err = f.proc.ProcessFile(context.Background(), input, "")
	require.NoError(t, err)

	path, err := f.proc.GenerateAnkiFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.dir, "out", "anki_import.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "#deck:Test Deck")
	assert.Equal(t, 1, strings.Count(content, "你好,"))
	assert.Contains(t, f.out.String(), "Generated 2 cards")
}

func TestProcessURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>问候</title></head><body><article><h1>问候</h1>
<p>你好，世界。你好，朋友。你好，世界。你好，朋友。你好，世界。你好，朋友。你好，世界。你好，朋友。你好，世界。你好，朋友。你好，世界。你好，朋友。</p>
<p>你好，世界。你好，朋友。你好，世界。你好，朋友。你好，世界。你好，朋友。你好，世界。你好，朋友。你好，世界。你好，朋友。你好，世界。你好，朋友。</p>
</article></body></html>`))
	}))
	defer server.Close()

	f := newFixture(t, tokenSegmenter{})

	doc, err := f.proc.ProcessURL(context.Background(), server.URL+"/greeting")
	require.NoError(t, err)

	assert.Equal(t, server.URL+"/greeting", doc.Source)
	assert.Contains(t, doc.OriginalText, "你好")
	assert.GreaterOrEqual(t, doc.Summary.UniqueCount, 1)
	assert.LessOrEqual(t, f.translator.CallsFor("你好"), 1)

	if doc.Title != "" {
		testutil.AssertFileExists(t, filepath.Join(f.dir, "out", doc.Title+".json"))
	}
}

func TestProcessURL_Unreachable(t *testing.T) {
	f := newFixture(t, tokenSegmenter{})

	_, err := f.proc.ProcessURL(context.Background(), "not a url")
	assert.Error(t, err)
}

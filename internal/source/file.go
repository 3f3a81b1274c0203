package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SampleText is written to the default input file when it does not exist
const SampleText = `你好，我叫小明。我是中国人。我喜欢学习汉语。
今天天气很好。我想去公园散步。
你喜欢吃什么？我喜欢吃米饭和蔬菜。
`

// TranslationPlaceholder is the first line of a newly created translation file
const TranslationPlaceholder = "# Voeg hier de vertaling van de Chinese tekst toe\n"

// ReadText reads an input file and trims surrounding whitespace
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// EnsureSample writes SampleText to path if the file does not exist and
// reports whether it did so.
func EnsureSample(path string) (bool, error) {
	return createIfMissing(path, SampleText)
}

// EnsureTranslationPlaceholder creates an empty translation file holding
// only a comment, so the user knows where to put the translation.
func EnsureTranslationPlaceholder(path string) (bool, error) {
	return createIfMissing(path, TranslationPlaceholder)
}

func createIfMissing(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return true, nil
}

// TranslationPath returns the companion translation file of an input file,
// e.g. "story.txt" and "nl" give "story_nl.txt".
func TranslationPath(inputPath, lang string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	if ext == "" {
		ext = ".txt"
	}
	return fmt.Sprintf("%s_%s%s", base, strings.ToLower(lang), ext)
}

// ReadTranslation reads an optional full translation. Lines starting with
// '#' are comments. A missing file and a file without content both yield
// an empty string.
func ReadTranslation(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read translation file: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

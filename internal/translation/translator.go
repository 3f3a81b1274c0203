package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrNoAPIKey is returned when a translator is used without credentials
var ErrNoAPIKey = errors.New("API key not found")

// ErrEmptyTranslation is returned when a service answers with nothing
var ErrEmptyTranslation = errors.New("no translation returned")

// Translator translates a single Chinese word into the target language
type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

// Failure records that a word could not be translated. It is the only
// error kind the annotator recovers from.
type Failure struct {
	Word string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("could not translate '%s': %v", f.Word, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// languageNames maps target language codes to the names used in prompts
var languageNames = map[string]string{
	"nl": "Dutch",
	"en": "English",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"it": "Italian",
	"bg": "Bulgarian",
	"ru": "Russian",
}

// LanguageName returns the English name of a language code, or the code
// itself when unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

func buildPrompt(word, targetLang string) string {
	lang := LanguageName(targetLang)
	return fmt.Sprintf("Translate the Chinese word '%s' to %s. Respond with only the %s translation, nothing else.", word, lang, lang)
}

// OpenAITranslator translates words with an OpenAI chat model
type OpenAITranslator struct {
	apiKey     string
	model      string
	targetLang string
	client     *openai.Client
}

// NewOpenAITranslator creates a new OpenAI backed translator
func NewOpenAITranslator(apiKey, model, targetLang string) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{
		apiKey:     apiKey,
		model:      model,
		targetLang: targetLang,
		client:     openai.NewClient(apiKey),
	}
}

// Translate translates a Chinese word to the target language
func (t *OpenAITranslator) Translate(ctx context.Context, word string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI %w", ErrNoAPIKey)
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(word, t.targetLang),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyTranslation
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", ErrEmptyTranslation
	}
	return translation, nil
}

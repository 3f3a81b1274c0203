package cli

import "time"

// DefaultInputFile is annotated when no input is given
const DefaultInputFile = "input.txt"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile         string
	OutputDir       string
	TranslationFile string
	URL             string
	BatchFile       string
	GenerateAnki    bool
	DeckName        string
	ListModels      bool
	ResetCache      bool

	// Translation flags
	Provider        string
	Model           string
	TargetLang      string
	Timeout         time.Duration
	BreakerFailures int

	// Cache flags
	CacheBackend   string
	CachePath      string
	PersistEachNew bool

	// Logging flags
	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir:       ".",
		DeckName:        "Chinese Vocabulary",
		Provider:        "openai",
		TargetLang:      "nl",
		Timeout:         15 * time.Second,
		BreakerFailures: 5,
		CacheBackend:    "json",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/hanyu/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hanyu [input.txt]",
		Short: "Chinese text annotator for Mandarin study",
		Long: `hanyu annotates Chinese text word by word for Mandarin study.

Every word gets tone-marked pinyin, a translation, its HSK level and
a character breakdown. Translations are cached, so each distinct word
is sent to the translation service only once.

Examples:
  hanyu                               # Annotate input.txt
  hanyu story.txt --lang en           # Translate words into English
  hanyu --url https://example.com/a   # Annotate a web article
  hanyu --batch lessons.txt --anki    # Annotate many texts, export vocabulary`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.hanyu.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory")
	cmd.Flags().StringVarP(&flags.TranslationFile, "translation", "t", "", "Full translation of the text (default is <input>_<lang>.txt)")
	cmd.Flags().StringVar(&flags.URL, "url", "", "Annotate the article at this URL")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Annotate the input files listed in this file (one per line)")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Export the vocabulary as an Anki CSV file")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for the Anki export")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")
	cmd.Flags().BoolVar(&flags.ResetCache, "reset-cache", false, "Move the translation cache to the archive and exit")

	// Translation flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Translation model (default: gpt-4o-mini or gemini-2.0-flash)")
	cmd.Flags().StringVarP(&flags.TargetLang, "lang", "l", flags.TargetLang, "Target language code for word translations")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for a single word translation")
	cmd.Flags().IntVar(&flags.BreakerFailures, "breaker-failures", flags.BreakerFailures, "Consecutive translation failures before translations are paused")

	// Cache flags
	cmd.Flags().StringVar(&flags.CacheBackend, "cache-backend", flags.CacheBackend, "Translation cache backend: json or sqlite")
	cmd.Flags().StringVar(&flags.CachePath, "cache", "", "Translation cache location (default: translation_cache.json or translation_cache.db)")
	cmd.Flags().BoolVar(&flags.PersistEachNew, "persist-each", false, "Save the cache after every new translation")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("anki.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translation.target_language", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("translation.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("translation.breaker_failures", cmd.Flags().Lookup("breaker-failures"))
	viper.BindPFlag("cache.backend", cmd.Flags().Lookup("cache-backend"))
	viper.BindPFlag("cache.path", cmd.Flags().Lookup("cache"))
	viper.BindPFlag("cache.persist_each", cmd.Flags().Lookup("persist-each"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log.format", cmd.Flags().Lookup("log-format"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".hanyu" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hanyu")
	}

	// Environment variables, e.g. HANYU_TRANSLATION_MODEL
	viper.SetEnvPrefix("HANYU")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.gemini_key")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/hanyu/internal/archive"
	"codeberg.org/snonux/hanyu/internal/cli"
	"codeberg.org/snonux/hanyu/internal/models"
	"codeberg.org/snonux/hanyu/internal/processor"
	"codeberg.org/snonux/hanyu/internal/translation"
)

func main() {
	// Stop between words on Ctrl-C; the translation cache is still saved
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), args, flags)
	}

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, args []string, flags *cli.Flags) error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	// Handle --reset-cache flag
	if flags.ResetCache {
		store, err := translation.NewStore(cfg.CacheBackend, cfg.CachePath)
		if err != nil {
			return err
		}
		archivePath, err := archive.ArchiveCache(store.Location())
		if err != nil {
			return fmt.Errorf("failed to reset translation cache: %w", err)
		}
		fmt.Printf("Translation cache archived to: %s\n", archivePath)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cfg.OpenAIKey)
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	// Create processor
	proc, err := processor.NewProcessor(ctx, cfg, logger)
	if err != nil {
		return err
	}

	switch {
	case flags.BatchFile != "":
		if err := proc.ProcessBatch(ctx, flags.BatchFile); err != nil {
			return err
		}
	case flags.URL != "":
		if _, err := proc.ProcessURL(ctx, flags.URL); err != nil {
			return err
		}
	default:
		input := ""
		if len(args) > 0 {
			input = args[0]
		}
		if _, err := proc.ProcessFile(ctx, input, flags.TranslationFile); err != nil {
			return err
		}
	}

	// Generate Anki file if requested
	if flags.GenerateAnki {
		fmt.Printf("\nGenerating Anki import file...\n")
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		} else {
			fmt.Printf("Anki import file created: %s\n", outputPath)
		}
	}

	fmt.Printf("Done! Documents saved to: %s\n", cfg.OutputDir)
	return nil
}

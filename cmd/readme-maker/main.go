package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/ruminaider/readme-maker/internal/config"
	"github.com/ruminaider/readme-maker/internal/github"
	"github.com/ruminaider/readme-maker/internal/logging"
	"github.com/ruminaider/readme-maker/internal/paths"
	"github.com/ruminaider/readme-maker/internal/presets"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configPath  string
	presetsPath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "readme-maker",
	Short: "Generate a profile README from a form, a preset or a GitHub account",
	Long:  "readme-maker turns profile data (bio, socials, skills, education, projects) into a README.md using one of three templates, with an optional QR code for your portfolio URL.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the interactive editor
		return editCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("readme-maker %s\n", version)
	},
}

// app bundles what every command needs. It is built per invocation and
// carries no session state.
type app struct {
	cfg    config.Config
	store  *presets.Store
	log    zerolog.Logger
	closer io.Closer
}

// newApp loads .env, the config file and the logger. Flags override the
// config file.
func newApp() (*app, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		path = paths.ConfigFile()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if presetsPath != "" {
		cfg.PresetsFile = presetsPath
	}
	if cfg.PresetsFile == "" {
		cfg.PresetsFile = paths.PresetsFile()
	}

	logger, closer, err := logging.Setup(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("config", path).Str("presets", cfg.PresetsFile).Msg("configuration loaded")

	return &app{
		cfg:    cfg,
		store:  presets.New(cfg.PresetsFile),
		log:    logger,
		closer: closer,
	}, nil
}

func (a *app) Close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

func (a *app) githubClient() *github.Client {
	return github.NewClient(
		github.WithBaseURL(a.cfg.GitHub.BaseURL),
		github.WithTimeout(a.cfg.GitHub.Timeout),
		github.WithLogger(a.log),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.readme-maker/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&presetsPath, "presets", "", "Preset file (default ~/.readme-maker/presets.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

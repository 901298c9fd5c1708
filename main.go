package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/jot/config"
	"github.com/electr1fy0/jot/logger"
	"github.com/electr1fy0/jot/model"
	"github.com/electr1fy0/jot/storage"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	envFile     string
	apiURL      string
	logFile     string
	narrowWidth int
)

var rootCmd = &cobra.Command{
	Use:     "jot",
	Short:   "A small terminal notes manager",
	Long:    "jot keeps a list of notes in memory. Create, edit, favorite, search and delete them from the terminal.",
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("api-url") {
			cfg.APIURL = apiURL
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("narrow-width") {
			cfg.NarrowWidth = narrowWidth
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logData, err := logger.New().FromPath(cfg.LogFile).Make()
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer func() {
			_ = logData.Close()
		}()
		log := logData.Logger

		log.Info().Str("version", version).Bool("api", cfg.HasAPI()).Msg("starting")

		repo := storage.NewNotebook(storage.WelcomeNotes(time.Now()))
		p := tea.NewProgram(model.New(cfg, repo, log), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Error().Err(err).Msg("program exited")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file to read before the environment")
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "notes API endpoint (overrides "+config.EnvAPIURL+")")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file (overrides "+config.EnvLogFile+")")
	rootCmd.Flags().IntVar(&narrowWidth, "narrow-width", config.DefaultNarrowWidth, "hide the sidebar below this many columns")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

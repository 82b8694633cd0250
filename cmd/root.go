package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eccli/config"
	"eccli/database"
	"eccli/logger"
)

var (
	debug    bool
	quiet    bool
	basePath string
	profile  string
)

var rootCmd = &cobra.Command{
	Use:   "eccli",
	Short: "CLI for Everybody Codes puzzles",
	Long: `eccli downloads, decrypts and submits Everybody Codes puzzles from
the command line.

Commands:
  fetch    Download and decrypt puzzle inputs and descriptions
  read     Display a puzzle description in the terminal
  submit   Submit a puzzle answer
  status   Show unlocked parts and local submission history

Authentication uses the everybody-codes session cookie, taken from
EC_COOKIE, a Netscape cookie jar (EC_COOKIE_FILE) or
~/.everybodycodes.cookie.`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&basePath, "base-path", "", "base directory for downloaded files (default \"data\")")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "account profile from profiles.yaml")
}

// setup wires logging, configuration and the local database before any
// command runs. Flags beat the LOG_LEVEL env var for the log level.
func setup() error {
	logLevel := "info"
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		logLevel = value
	}
	if quiet {
		logLevel = "error"
	}
	if debug {
		logLevel = "debug"
	}
	logger.Init(logLevel)

	if err := config.LoadEnv(); err != nil {
		return err
	}
	if err := config.LoadProfiles(); err != nil {
		return err
	}
	if err := config.ApplyProfile(profile); err != nil {
		return err
	}
	if basePath != "" {
		config.Env.DataDir = basePath
	}

	database.Start(config.Env.DataDir)
	return nil
}

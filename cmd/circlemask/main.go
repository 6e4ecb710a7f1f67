package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smueschi/circlemask/internal/config"
)

var (
	configPath string
	verbose    bool

	cfg    = config.DefaultConfig()
	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:               "circlemask",
	Short:             "Cut a circular logo out of its checkerboard background",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages at debug level")
}

// setup loads the config file and configures logging before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(loaded.Log.Level)
	if err != nil {
		return err
	}
	if verbose {
		level = logrus.DebugLevel
	}

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(level)
	cfg = loaded
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

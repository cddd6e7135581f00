package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fyyur/internal/config"
	"fyyur/internal/logging"
)

var (
	// settings collects the environment and bound flags.
	settings = viper.New()
	// appConfig is loaded before any subcommand runs.
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fyyur",
	Short: "Fyyur - venue and artist booking directory",
	Long: `Fyyur lists venues and artists, lets them be searched and edited,
and books artists into shows at venues.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetGlobalLogger(logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	}))

	appConfig = cfg
	return nil
}

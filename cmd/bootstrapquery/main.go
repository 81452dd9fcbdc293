// Command bootstrapquery is a command-line interface for the bootstrap
// light-aircraft performance engine. It builds a data plate from a
// configuration file of airframe constants and flight-test observations,
// then answers plate/composites/vspeeds/performance/envelope queries
// against it.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func main() {
	cfg := viper.New()
	root := &cobra.Command{
		Use:   "bootstrapquery",
		Short: "Query a light-aircraft performance data plate.",
		Long: `bootstrapquery derives a bootstrap data plate from a configuration file
of airframe constants and flight-test observations, and answers queries
against it: the plate itself, the bootstrap composites, the characteristic
V-speeds, and point performance at a given airspeed/weight/altitude.

Configuration is read from the file named by the required --config flag
(JSON or YAML); BOOTSTRAPQUERY_* environment variables are also consulted
for individual settings.`,
		DisableAutoGenTag: true,
	}

	var configFile string
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to an airframe configuration file (required)")
	root.PersistentFlags().Float64("weight-lbf", 0, "gross weight in pounds-force")
	root.PersistentFlags().Float64("altitude-ft", 0, "pressure altitude in feet")
	root.PersistentFlags().Float64("oat-f", 0, "outside air temperature in °F (defaults to the standard atmosphere)")
	cfg.BindPFlag("weight-lbf", root.PersistentFlags().Lookup("weight-lbf"))
	cfg.BindPFlag("altitude-ft", root.PersistentFlags().Lookup("altitude-ft"))
	cfg.BindPFlag("oat-f", root.PersistentFlags().Lookup("oat-f"))
	cfg.SetEnvPrefix("BOOTSTRAPQUERY")
	cfg.AutomaticEnv()

	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		if configFile == "" {
			return fmt.Errorf("bootstrapquery: --config is required")
		}
		cfg.SetConfigFile(configFile)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("bootstrapquery: reading %s: %w", configFile, err)
		}
		return nil
	}

	root.AddCommand(
		plateCmd(cfg),
		compositesCmd(cfg),
		vspeedsCmd(cfg),
		performanceCmd(cfg),
		envelopeCmd(cfg),
	)

	if err := root.Execute(); err != nil {
		logger.WithError(err).Error("bootstrapquery failed")
		os.Exit(1)
	}
}

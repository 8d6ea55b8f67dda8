package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripdesk/getaway-cli/internal/config"
	"github.com/tripdesk/getaway-cli/internal/dataset"
	"github.com/tripdesk/getaway-cli/internal/geo"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "getaway-cli",
	Short: "Weekend getaway ranking over a travel destination dataset",
	Long:  "Scores destinations by weekend suitability from a source city using rating, state-level proximity, and category fit, then ranks the top candidates.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadTable loads the configured dataset, honoring a --dataset override.
func loadTable(override string) (*dataset.Table, error) {
	path := cfg.Dataset.Path
	if override != "" {
		path = override
	}
	return dataset.Load(path, dataset.Options{RatingColumn: cfg.Dataset.RatingColumn})
}

// loadTables returns the knowledge tables, from the configured YAML
// override when set, built-in defaults otherwise.
func loadTables() (*geo.Tables, error) {
	if cfg.Dataset.TablesPath != "" {
		return geo.Load(cfg.Dataset.TablesPath)
	}
	return geo.Default(), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

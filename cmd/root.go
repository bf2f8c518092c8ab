package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priyansh/neetdost/internal/llm"
	"github.com/priyansh/neetdost/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "neetdost",
	Short:         "AI study companion for NEET aspirants",
	Long:          "NEET-Dost — generates NEET-pattern practice questions and answers doubts with a web-grounded AI tutor.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NEETDOST_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NEETDOST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// setup builds the configured provider and opens the request log store.
// The caller owns closing the store.
func setup(cmd *cobra.Command) (llm.Provider, *store.Store, error) {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, s.RequestLog())
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	return provider, s, nil
}

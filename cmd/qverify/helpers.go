package main

import (
	"github.com/nvandessel/qverify/internal/config"
	"github.com/nvandessel/qverify/internal/store"
	"github.com/spf13/cobra"
)

// loadConfig resolves configuration from --config or the default locations,
// then validates it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDataDir returns --data-dir if set, otherwise the per-user default.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("data-dir")
	if dir != "" {
		return dir, nil
	}
	return store.DefaultDir()
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/fooditems/pkg/types"
)

// configFile is the structure written to config.yaml.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
	Output  string `yaml:"output"`
}

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and order journal",
		Long:  "Write a default config.yaml if none exists, then create the data directory and an empty order journal.",
		Args:  userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := a.resolveConfigDir()
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			configPath := filepath.Join(configDir, configFileBase)
			if err := writeConfigIfMissing(configPath, a.flags.dataDir); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			journal, err := a.attachJournal()
			if err != nil {
				return err
			}
			if err := journal.Detach(); err != nil {
				return fmt.Errorf("detach journal: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Initialized fooditems in", configDir)
			return nil
		},
	}
}

// writeConfigIfMissing creates config.yaml with default values. An existing
// file is left untouched.
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&configFile{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
		Output:  outputText,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

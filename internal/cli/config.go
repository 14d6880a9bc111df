package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/fooditems/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileBase = "config.yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"
	cfgKeyOutput  = "output"

	outputText = "text"
	outputJSON = "json"
)

// loadConfig reads config.yaml from the resolved config directory.
// A missing config.yaml is not an error; defaults apply.
func (a *app) loadConfig() error {
	configDir, err := a.resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyOutput, outputText)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	switch out := v.GetString(cfgKeyOutput); out {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("config %s: unknown output %q (valid: %s, %s)", cfgKeyOutput, out, outputText, outputJSON)
	}

	a.cfg = v
	return nil
}

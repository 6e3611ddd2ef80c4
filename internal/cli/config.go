package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyVerbose  = "verbose"
	cfgKeyOutFile  = "out_file"
	cfgKeyFormat   = "format"
	cfgKeyWorkers  = "workers"
	cfgKeyLogLevel = "log_level"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	cfgKeyVerbose:  "verbose",
	cfgKeyFormat:   "format",
	cfgKeyWorkers:  "workers",
	cfgKeyLogLevel: "log-level",
}

// loadConfig reads config.yaml from the resolved config directory using Viper.
// A missing config directory or config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyVerbose, def.Verbosity)
	v.SetDefault(cfgKeyFormat, def.Format)
	v.SetDefault(cfgKeyWorkers, def.Workers)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if _, err := os.Stat(filepath.Join(configDir, configFileExt)); errors.Is(err, fs.ErrNotExist) {
		return v, nil
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// bindFlags lets flags set on the command line win over config.yaml.
// Flags the command does not carry are skipped.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// newLogger builds the diagnostic logger. It writes JSON to stderr and
// never to the report destination.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	return cfg.Build()
}

// Package config loads the contact book configuration from config.yaml in
// the config directory, an optional .env file beside it, and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	dotEnvFileName = ".env"

	cfgKeyDataDir   = "data_dir"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	envLogLevel  = "CONTACTS_LOG_LEVEL"
	envLogFormat = "CONTACTS_LOG_FORMAT"

	defaultLogLevel  = types.LogLevelInfo
	defaultLogFormat = types.LogFormatText
)

// fileConfig is the structure written to a new config.yaml.
type fileConfig struct {
	DataDir   string `yaml:"data_dir,omitempty"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads the configuration for configDir and returns a validated Config.
//
// On first use it creates configDir and a default config.yaml. A .env file in
// configDir is loaded into the environment without overriding variables that
// are already set. CONTACTS_LOG_LEVEL and CONTACTS_LOG_FORMAT override the
// file. The data directory resolves as config value > CONTACTS_DATA_DIR >
// $(CWD)/.contacts.
func Load(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("%w: create config directory: %v", types.ErrConfig, err)
	}
	if err := writeConfigIfMissing(paths.ConfigFile(configDir)); err != nil {
		return types.Config{}, fmt.Errorf("%w: write config: %v", types.ErrConfig, err)
	}
	if err := loadDotEnv(filepath.Join(configDir, dotEnvFileName)); err != nil {
		return types.Config{}, fmt.Errorf("%w: load %s: %v", types.ErrConfig, dotEnvFileName, err)
	}

	v, err := newViper(configDir)
	if err != nil {
		return types.Config{}, err
	}

	dataDir, err := paths.ResolveDataDir("", v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("%w: resolve data directory: %v", types.ErrConfig, err)
	}

	cfg := types.Config{
		DataDir:   dataDir,
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// newViper reads config.yaml from configDir. A missing file is not an error.
func newViper(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.BindEnv(cfgKeyLogLevel, envLogLevel); err != nil {
		return nil, fmt.Errorf("%w: bind %s: %v", types.ErrConfig, envLogLevel, err)
	}
	if err := v.BindEnv(cfgKeyLogFormat, envLogFormat); err != nil {
		return nil, fmt.Errorf("%w: bind %s: %v", types.ErrConfig, envLogFormat, err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("%w: read config: %v", types.ErrConfig, err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. An existing file is left untouched.
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	data, err := yaml.Marshal(&fileConfig{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// loadDotEnv loads path into the process environment if it exists.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// Package config resolves runtime settings from flags, environment and the
// optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "DEVFOLIO"

const (
	DefaultContentDir  = "./content"
	DefaultProfileID   = "about"
	DefaultImportDelay = 400 * time.Millisecond
	DefaultLogLevel    = "info"
	DefaultTheme       = "dark"
)

// Keys understood in the config file and as DEVFOLIO_* variables
const (
	KeyContentDir      = "content_dir"
	KeyProfileID       = "profile_id"
	KeyInitialDocument = "initial_document"
	KeyImportDelay     = "import_delay"
	KeyLogFile         = "log_file"
	KeyLogLevel        = "log_level"
	KeyIndex           = "index"
	KeyTheme           = "theme"
)

// Config is the resolved configuration
type Config struct {
	ContentDir      string
	ProfileID       string
	InitialDocument string
	ImportDelay     time.Duration
	LogFile         string
	LogLevel        string
	Index           bool
	Theme           string
	ConfigFile      string // file that was read, empty when none
}

// ContentDir returns the content path from the DEVFOLIO_CONTENT env var,
// falling back to DefaultContentDir.
func ContentDir() string {
	if env := os.Getenv("DEVFOLIO_CONTENT"); env != "" {
		return env
	}
	return DefaultContentDir
}

// Dir returns the configuration directory
func Dir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "devfolio")
}

// DefaultLogFile returns the log location used by the interactive shell
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "devfolio", "devfolio.log")
}

// Setup registers defaults and environment bindings on v
func Setup(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyContentDir, DefaultContentDir)
	v.SetDefault(KeyProfileID, DefaultProfileID)
	v.SetDefault(KeyInitialDocument, "")
	v.SetDefault(KeyImportDelay, DefaultImportDelay)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyIndex, false)
	v.SetDefault(KeyTheme, DefaultTheme)

	// DEVFOLIO_CONTENT predates the generic DEVFOLIO_CONTENT_DIR form
	_ = v.BindEnv(KeyContentDir, "DEVFOLIO_CONTENT", "DEVFOLIO_CONTENT_DIR")
}

// Load reads the config file (cfgFile, or config.yaml under Dir) into v and
// returns the resolved configuration. A missing default file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		ContentDir:      v.GetString(KeyContentDir),
		ProfileID:       v.GetString(KeyProfileID),
		InitialDocument: v.GetString(KeyInitialDocument),
		ImportDelay:     v.GetDuration(KeyImportDelay),
		LogFile:         v.GetString(KeyLogFile),
		LogLevel:        v.GetString(KeyLogLevel),
		Index:           v.GetBool(KeyIndex),
		Theme:           v.GetString(KeyTheme),
		ConfigFile:      v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("%s must not be empty", KeyContentDir)
	}
	if c.ProfileID == "" {
		return fmt.Errorf("%s must not be empty", KeyProfileID)
	}
	if c.ImportDelay < 0 {
		return fmt.Errorf("%s must not be negative: %s", KeyImportDelay, c.ImportDelay)
	}
	return nil
}

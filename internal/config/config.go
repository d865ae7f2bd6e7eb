// Package config resolves switch settings from flags, SWITCH_* environment
// variables and an optional config.yaml, in that order of precedence.
package config

import (
	"errors"
	"strings"

	"github.com/glopal/envswitch/internal/logging"
	"github.com/glopal/envswitch/internal/root"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyRegistry = "registry"
	KeyLogLevel = "log_level"

	envPrefix      = "SWITCH"
	configFileName = "config"
	configFileType = "yaml"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	Registry string `mapstructure:"registry"`
	LogLevel string `mapstructure:"log_level"`
}

// FlagNames maps config keys onto the persistent flags bound to them.
var FlagNames = map[string]string{
	KeyRegistry: "registry",
	KeyLogLevel: "log-level",
}

// Load resolves the configuration. configPath selects an explicit file;
// when empty, config.yaml in ~/.config/switch is used if present. flags may
// be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	v.SetDefault(KeyRegistry, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range FlagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, oops.Wrapf(err, "binding flag --%s", name)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		if dir, err := root.ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, oops.Wrapf(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, oops.Wrapf(err, "decoding config")
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolve fills the registry path from the home directory when unset and
// expands a leading "~".
func (c *Config) resolve() error {
	if c.Registry == "" {
		path, err := root.RegistryPath()
		if err != nil {
			return err
		}
		c.Registry = path
		return nil
	}
	path, err := root.ExpandHome(c.Registry)
	if err != nil {
		return err
	}
	c.Registry = path
	return nil
}

// Validate checks settings that are not validated while loading.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Registry == "" {
		return oops.Errorf("registry path is empty")
	}
	return nil
}

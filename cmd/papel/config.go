package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAPIURL  = "http://localhost:8080"
	defaultTimeout = 30 * time.Second
)

// cliConfig holds the TUI-relevant configuration.
type cliConfig struct {
	APIURL         string        `mapstructure:"api-url"`
	DownloadDir    string        `mapstructure:"download-dir"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	Skin           string        `mapstructure:"skin"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	// Local .env files are optional and only fill the environment.
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PAPEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-url", defaultAPIURL)
	v.SetDefault("download-dir", ".")
	v.SetDefault("request-timeout", defaultTimeout)
	v.SetDefault("skin", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "papel", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the connection settings for the screenplay backend plus the
// shared navigation-context file location.
type Config struct {
	BaseURL     string `json:"base_url"`
	Token       string `json:"token"`
	ProjectID   string `json:"project_id"`
	ContextPath string `json:"context_path"`
}

// LoadConfig resolves configuration from .beatboard.yaml and the BEATBOARD_*
// environment, in that order of precedence.
func LoadConfig() (*Config, error) {
	viper.SetDefault("base_url", "https://api.scriptloft.dev")
	viper.SetDefault("context_path", "~/.beatboard/context.json")
	viper.SetConfigName(".beatboard") // .yaml is implicit
	viper.SetEnvPrefix("BEATBOARD")
	viper.AutomaticEnv()

	if override := os.Getenv("BEATBOARD_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("service: read config: %w", err)
		}
	}

	cfg := &Config{
		BaseURL:     viper.GetString("base_url"),
		Token:       viper.GetString("token"),
		ProjectID:   viper.GetString("project_id"),
		ContextPath: viper.GetString("context_path"),
	}
	expanded, err := homedir.Expand(cfg.ContextPath)
	if err != nil {
		return nil, fmt.Errorf("service: expand context path: %w", err)
	}
	cfg.ContextPath = filepath.Clean(expanded)
	return cfg, nil
}

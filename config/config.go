// Package config loads the service configuration once at startup. The
// resulting Config is read-only and injected into each component; nothing
// else reads ambient environment state.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/nitinsinghh27/TDS-PR1/constants"
)

// Config carries everything the pipeline components need
type Config struct {
	// Port is the HTTP listen port
	Port int
	// Secret authenticates inbound deployment requests
	Secret string
	// GitHubToken authenticates against the repository provider
	GitHubToken string
	// GitHubOwner is the account published repositories live under
	GitHubOwner string
	// GitHubAPIURL is the API root, overridable for enterprise or tests
	GitHubAPIURL string
	// GeneratorURL is an OpenAI-compatible chat-completions endpoint;
	// empty disables the provider and generation uses the template
	GeneratorURL string
	// GeneratorKey is the provider API key
	GeneratorKey string
	// GeneratorModel is the model requested from the provider
	GeneratorModel string
	// GenerateTimeout bounds one generation provider call
	GenerateTimeout time.Duration
	// PublishTimeout bounds one repository provider operation
	PublishTimeout time.Duration
	// NotifyTimeout bounds one evaluation callback attempt
	NotifyTimeout time.Duration
}

// Load builds a Config from viper's bound environment variables and applies
// defaults. Call once at startup, after the env bindings are registered.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            viper.GetInt(constants.PortEnvVar),
		Secret:          viper.GetString(constants.SecretEnvVar),
		GitHubToken:     viper.GetString(constants.TokenEnvVar),
		GitHubOwner:     viper.GetString(constants.OwnerEnvVar),
		GitHubAPIURL:    viper.GetString(constants.APIURLEnvVar),
		GeneratorURL:    viper.GetString(constants.GeneratorURLEnvVar),
		GeneratorKey:    viper.GetString(constants.GeneratorKeyEnvVar),
		GeneratorModel:  viper.GetString(constants.GeneratorModelEnvVar),
		GenerateTimeout: 120 * time.Second,
		PublishTimeout:  120 * time.Second,
		NotifyTimeout:   30 * time.Second,
	}
	if cfg.Port == 0 {
		cfg.Port = constants.DefaultPort
	}
	if cfg.GitHubAPIURL == "" {
		cfg.GitHubAPIURL = constants.DefaultAPIURL
	}
	if cfg.GeneratorModel == "" {
		cfg.GeneratorModel = constants.DefaultGeneratorModel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first missing required setting
func (c *Config) Validate() error {
	switch {
	case c.Secret == "":
		return fmt.Errorf("environment variable %s is not exported", constants.SecretEnvVar)
	case c.GitHubToken == "":
		return fmt.Errorf("environment variable %s is not exported", constants.TokenEnvVar)
	case c.GitHubOwner == "":
		return fmt.Errorf("environment variable %s is not exported", constants.OwnerEnvVar)
	}
	return nil
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"agelookup/internal/models"
)

// Default user-facing messages.
const (
	DefaultFetchErrorMessage = models.DefaultFetchErrorMessage
	DefaultPromptMessage     = "Enter a name to estimate an age."
	DefaultNoDataMessage     = "No age data available for this name."
)

// YAMLConfig represents the structure of the config.yaml file.
// Holds page copy that deployments localize without rebuilding.
type YAMLConfig struct {
	Messages MessagesConfig `yaml:"messages"`
	Examples []string       `yaml:"examples"` // Sample names linked from the page
}

// MessagesConfig defines the user-facing page messages.
type MessagesConfig struct {
	FetchError string `yaml:"fetch_error"` // Shown for every failed lookup
	Prompt     string `yaml:"prompt"`
	NoData     string `yaml:"no_data"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Messages.FetchError == "" {
		cfg.Messages.FetchError = DefaultFetchErrorMessage
	}
	if cfg.Messages.Prompt == "" {
		cfg.Messages.Prompt = DefaultPromptMessage
	}
	if cfg.Messages.NoData == "" {
		cfg.Messages.NoData = DefaultNoDataMessage
	}

	return &cfg, nil
}

// FetchErrorMessage returns the message shown when a lookup fails.
func (c *YAMLConfig) FetchErrorMessage() string {
	if c == nil || c.Messages.FetchError == "" {
		return DefaultFetchErrorMessage
	}
	return c.Messages.FetchError
}

// PromptMessage returns the message shown before a name is entered.
func (c *YAMLConfig) PromptMessage() string {
	if c == nil || c.Messages.Prompt == "" {
		return DefaultPromptMessage
	}
	return c.Messages.Prompt
}

// NoDataMessage returns the message shown when the service has no age for a name.
func (c *YAMLConfig) NoDataMessage() string {
	if c == nil || c.Messages.NoData == "" {
		return DefaultNoDataMessage
	}
	return c.Messages.NoData
}

// ExampleNames returns the sample names linked from the page.
func (c *YAMLConfig) ExampleNames() []string {
	if c == nil {
		return nil
	}
	return c.Examples
}

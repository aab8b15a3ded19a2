// Package config loads planner configuration from a YAML file, with
// environment variables taking precedence over file values. Provider keys are
// optional; an absent key switches the owning agent to synthesized data.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type OpenAIConfig struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

type OpenWeatherConfig struct {
	APIKey string `yaml:"api_key"`
}

type SerpAPIConfig struct {
	APIKey string `yaml:"api_key"`
}

type Config struct {
	OpenAI      OpenAIConfig      `yaml:"openai"`
	OpenWeather OpenWeatherConfig `yaml:"openweather"`
	SerpAPI     SerpAPIConfig     `yaml:"serpapi"`
}

// Load reads the YAML file at path and applies environment overrides on top.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config file")
	}
	cfg.applyEnv()
	return cfg, nil
}

// FromEnv builds a config from environment variables alone.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	setIfPresent(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	setIfPresent(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	setIfPresent(&c.OpenAI.Model, "OPENAI_MODEL")
	setIfPresent(&c.OpenWeather.APIKey, "OPENWEATHER_API_KEY")
	setIfPresent(&c.SerpAPI.APIKey, "SERPAPI_API_KEY")
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

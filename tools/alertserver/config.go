package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines alertserver configuration.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	JWTSecret  string `yaml:"jwt_secret"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoadConfig loads config from env, optionally overridden by a YAML file
// named in ALERTSERVER_CONFIG.
func LoadConfig() (Config, error) {
	cfg := Config{
		ListenAddr: getenvDefault("ALERTSERVER_LISTEN", ":8080"),
		JWTSecret:  os.Getenv("ALERTSERVER_JWT_SECRET"),
		WebhookURL: os.Getenv("ALERTSERVER_WEBHOOK_URL"),
	}

	if path := os.Getenv("ALERTSERVER_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

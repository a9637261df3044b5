package config

import (
	"strings"

	"github.com/ZacBi/ai-hedge-fund/langfuse"
	"github.com/ZacBi/ai-hedge-fund/prompts"

	"github.com/spf13/viper"
)

// Config holds process configuration for the CLI and services.
type Config struct {
	Langfuse struct {
		Host      string
		PublicKey string
		SecretKey string
	}
	Label string
	DB    struct {
		DSN string
	}
	LogLevel string
}

// Load reads config from environment (HEDGEFUND_ prefix) and optional
// hedgefund.yaml. The Langfuse keys keep their upstream variable names
// (LANGFUSE_HOST, LANGFUSE_PUBLIC_KEY, LANGFUSE_SECRET_KEY) so one .env
// works across tools.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HEDGEFUND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("hedgefund")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	_ = v.BindEnv("langfuse.host", "LANGFUSE_HOST")
	_ = v.BindEnv("langfuse.public_key", "LANGFUSE_PUBLIC_KEY")
	_ = v.BindEnv("langfuse.secret_key", "LANGFUSE_SECRET_KEY")

	v.SetDefault("langfuse.host", langfuse.DefaultHost)
	v.SetDefault("label", prompts.DefaultLabel)
	v.SetDefault("db.dsn", "hedgefund.db")
	v.SetDefault("log.level", "info")

	cfg := &Config{}
	cfg.Langfuse.Host = v.GetString("langfuse.host")
	cfg.Langfuse.PublicKey = v.GetString("langfuse.public_key")
	cfg.Langfuse.SecretKey = v.GetString("langfuse.secret_key")
	cfg.Label = v.GetString("label")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.LogLevel = v.GetString("log.level")

	return cfg, nil
}

// LangfuseConfigured reports whether remote prompt lookup is enabled.
// Absence of either key means every resolution serves the compiled-in
// default.
func (c *Config) LangfuseConfigured() bool {
	return langfuse.Configured(c.Langfuse.PublicKey, c.Langfuse.SecretKey)
}

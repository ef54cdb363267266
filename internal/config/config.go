// Package config loads FreeFlow settings from freeflow.yaml and FREEFLOW_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/freeflow/internal/llm"
	"github.com/spf13/viper"
)

type Config struct {
	DB      DBConfig
	Logger  LoggerConfig
	LLM     llm.LLMConfig
	Invoice InvoiceConfig
}

type DBConfig struct {
	Path string
}

type LoggerConfig struct {
	Level    string
	Encoding string
	// File, when set, receives log output instead of stderr.
	File string
}

type InvoiceConfig struct {
	OutputDir string
	FontPath  string
	Issuer    string
	Contact   string
}

// Load reads configuration. explicitPath, when non-empty, names the config
// file to use; otherwise freeflow.yaml is searched in the working directory
// and in ~/.freeflow. A missing file is not an error.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()
	home, _ := os.UserHomeDir()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName("freeflow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(filepath.Join(home, ".freeflow"))
		}
	}

	v.SetEnvPrefix("FREEFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, home)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// FREEFLOW_DB is a short form of FREEFLOW_DB_PATH. Under AutomaticEnv it
	// would shadow the whole db section, so it is applied as an override.
	if short, ok := os.LookupEnv("FREEFLOW_DB"); ok && short != "" {
		if _, long := os.LookupEnv("FREEFLOW_DB_PATH"); !long {
			v.Set("db.path", short)
		}
	}
	setProviderDefaults(v)

	cfg := &Config{}
	cfg.DB.Path = v.GetString("db.path")

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.File = v.GetString("logger.file")

	cfg.LLM = llm.DefaultConfig()
	cfg.LLM.Enabled = v.GetBool("llm.enabled")
	cfg.LLM.LogCalls = v.GetBool("llm.log_calls")
	cfg.LLM.Provider = llm.Provider(strings.ToLower(v.GetString("llm.provider")))
	cfg.LLM.Endpoint = v.GetString("llm.endpoint")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	cfg.LLM.TimeoutMs = v.GetInt("llm.timeout_ms")
	cfg.LLM.MaxRetries = v.GetInt("llm.max_retries")
	cfg.LLM.RatePerMinute = v.GetInt("llm.rate_per_minute")
	cfg.LLM.CacheSize = v.GetInt("llm.cache_size")
	cfg.LLM.CacheTTL = v.GetDuration("llm.cache_ttl")
	cfg.LLM.Language = v.GetString("llm.language")

	cfg.Invoice.OutputDir = v.GetString("invoice.output_dir")
	cfg.Invoice.FontPath = v.GetString("invoice.font_path")
	cfg.Invoice.Issuer = v.GetString("invoice.issuer")
	cfg.Invoice.Contact = v.GetString("invoice.contact")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	switch c.LLM.Provider {
	case llm.ProviderOllama:
	case llm.ProviderGemini:
		if c.LLM.Enabled && c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for the gemini provider")
		}
	default:
		return fmt.Errorf("unknown llm.provider %q (want ollama or gemini)", c.LLM.Provider)
	}
	if c.LLM.TimeoutMs <= 0 {
		return fmt.Errorf("llm.timeout_ms must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper, home string) {
	base := "."
	if home != "" {
		base = filepath.Join(home, ".freeflow")
	}
	d := llm.DefaultConfig()

	v.SetDefault("db.path", filepath.Join(base, "freeflow.db"))
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.file", "")

	v.SetDefault("llm.enabled", d.Enabled)
	v.SetDefault("llm.log_calls", d.LogCalls)
	v.SetDefault("llm.provider", string(d.Provider))
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.timeout_ms", d.TimeoutMs)
	v.SetDefault("llm.max_retries", d.MaxRetries)
	v.SetDefault("llm.rate_per_minute", d.RatePerMinute)
	v.SetDefault("llm.cache_size", d.CacheSize)
	v.SetDefault("llm.cache_ttl", d.CacheTTL)
	v.SetDefault("llm.language", "")

	v.SetDefault("invoice.output_dir", ".")
	v.SetDefault("invoice.font_path", "")
	v.SetDefault("invoice.issuer", "FreeFlow")
	v.SetDefault("invoice.contact", "")
}

// setProviderDefaults fills llm.endpoint and llm.model for the chosen
// provider. It runs after the config file is read because the provider
// itself may come from the file or the environment.
func setProviderDefaults(v *viper.Viper) {
	endpoint, model := llm.DefaultConfig().Endpoint, llm.DefaultConfig().Model
	if llm.Provider(strings.ToLower(v.GetString("llm.provider"))) == llm.ProviderGemini {
		endpoint, model = llm.DefaultGeminiEndpoint, llm.DefaultGeminiModel
	}
	v.SetDefault("llm.endpoint", endpoint)
	v.SetDefault("llm.model", model)
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port     string `mapstructure:"port"`
	Provider string `mapstructure:"provider"`

	AIEndpoint     string   `mapstructure:"ai_endpoint"`
	Model          string   `mapstructure:"model"`
	FallbackModels []string `mapstructure:"fallback_models"`
	MaxTokens      int      `mapstructure:"max_tokens"`
	Temperature    float32  `mapstructure:"temperature"`

	RateLimitPerMinute    int `mapstructure:"rate_limit_per_minute"`
	MaxRetries            int `mapstructure:"max_retries"`
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds"`

	MaxSummaryChars int `mapstructure:"max_summary_chars"`
	MaxQuizChars    int `mapstructure:"max_quiz_chars"`
	MaxQAChars      int `mapstructure:"max_qa_chars"`
	MaxChunks       int `mapstructure:"max_chunks"`

	// FallbackKeywords drive key-point selection in the offline summary.
	FallbackKeywords []string `mapstructure:"fallback_keywords"`

	APIKeys       []string
	GeminiAPIKeys []string `mapstructure:"gemini_api_keys"`

	SupabaseURL        string `mapstructure:"SUPABASE_URL"`
	SupabaseServiceKey string `mapstructure:"SUPABASE_SERVICE_KEY"`
	SupabaseBucket     string `mapstructure:"SUPABASE_BUCKET_NAME"`

	MongoURI string `mapstructure:"MONGODB_URI"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("provider", "perplexity")
	v.SetDefault("ai_endpoint", "https://api.perplexity.ai")
	v.SetDefault("model", "sonar")
	v.SetDefault("fallback_models", []string{"sonar", "sonar-reasoning", "sonar-deep-research"})
	v.SetDefault("max_tokens", 4000)
	v.SetDefault("temperature", 0.7)
	v.SetDefault("rate_limit_per_minute", 20)
	v.SetDefault("max_retries", 2)
	v.SetDefault("request_timeout_seconds", 30)
	v.SetDefault("max_summary_chars", 100000)
	v.SetDefault("max_quiz_chars", 50000)
	v.SetDefault("max_qa_chars", 30000)
	v.SetDefault("max_chunks", 10)
	v.SetDefault("fallback_keywords", []string{
		"definition", "diagnosis", "treatment", "symptoms", "causes", "risk", "management",
	})

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				if _, statErr := os.Stat(configPath); statErr == nil {
					return nil, fmt.Errorf("error reading config file: %w", err)
				}
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("SUPABASE_URL")
	v.BindEnv("SUPABASE_SERVICE_KEY")
	v.BindEnv("SUPABASE_BUCKET_NAME")
	v.BindEnv("MONGODB_URI")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// The two API key slots follow the original deployment layout. Either
	// may be empty; both empty is a fatal configuration error.
	for _, name := range []string{"PERPLEXITY_API_KEY_1", "PERPLEXITY_API_KEY_2"} {
		if key := os.Getenv(name); key != "" {
			config.APIKeys = append(config.APIKeys, key)
		}
	}
	if len(config.GeminiAPIKeys) == 0 {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			config.GeminiAPIKeys = append(config.GeminiAPIKeys, key)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the values every command needs. Storage and database
// settings are validated by the services that use them.
func (c *Config) Validate() error {
	switch c.Provider {
	case "perplexity":
		if len(c.APIKeys) == 0 {
			return fmt.Errorf("at least one API key must be set (PERPLEXITY_API_KEY_1 or PERPLEXITY_API_KEY_2)")
		}
	case "gemini":
		if len(c.GeminiAPIKeys) == 0 {
			return fmt.Errorf("provider gemini requires GEMINI_API_KEY or gemini_api_keys")
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be positive")
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("max_retries must be positive")
	}
	return nil
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

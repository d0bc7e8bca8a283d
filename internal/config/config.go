package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingAPIKey     = errors.New("GEMINI_API_KEY environment variable is not set")
	ErrInvalidClassifier = errors.New("invalid classifier, expected llm or rules")
)

const (
	ClassifierLLM   = "llm"
	ClassifierRules = "rules"

	DefaultEnvFile = ".env"
)

type Config struct {
	LLM        LLMConfig
	Coinlore   CoinloreConfig
	Telegram   TelegramConfig
	Log        LogConfig
	Metrics    MetricsConfig
	Classifier string
}

type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type CoinloreConfig struct {
	BaseURL string
	Timeout time.Duration
}

type TelegramConfig struct {
	Token string
}

type LogConfig struct {
	Level  string
	Format string // json | console
}

type MetricsConfig struct {
	Addr string
}

// Load читает переменные окружения и, если есть, .env из текущей директории.
// Окружение важнее файла.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		LLM: LLMConfig{
			APIKey:  strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
			Model:   v.GetString("GEMINI_MODEL"),
			BaseURL: v.GetString("GEMINI_BASE_URL"),
			Timeout: time.Duration(positiveInt(v, "LLM_TIMEOUT_SEC", 60)) * time.Second,
		},
		Coinlore: CoinloreConfig{
			BaseURL: v.GetString("COINLORE_BASE_URL"),
			Timeout: time.Duration(positiveInt(v, "COINLORE_TIMEOUT_SEC", 10)) * time.Second,
		},
		Telegram: TelegramConfig{
			Token: v.GetString("TELEGRAM_BOT_TOKEN"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Metrics: MetricsConfig{
			Addr: v.GetString("METRICS_ADDR"),
		},
		Classifier: strings.ToLower(v.GetString("CLASSIFIER")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai")
	v.SetDefault("COINLORE_BASE_URL", "https://api.coinlore.net/api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CLASSIFIER", ClassifierLLM)
}

func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return ErrMissingAPIKey
	}
	switch c.Classifier {
	case ClassifierLLM, ClassifierRules:
	default:
		return ErrInvalidClassifier
	}
	return nil
}

// positiveInt - мусор и ноль в переменной дают значение по умолчанию
func positiveInt(v *viper.Viper, key string, defaultValue int) int {
	if n := v.GetInt(key); n > 0 {
		return n
	}
	return defaultValue
}

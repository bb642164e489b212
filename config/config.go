package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"moa_diary/generator"
	"moa_diary/media"
)

const (
	DefaultServerAddr     = ":8000"
	DefaultRequestTimeout = 60 * time.Second
)

// Config is the service configuration. It can be read from JSON or YAML.
type Config struct {
	ServerAddr     string      `json:"server_addr,omitempty" yaml:"server_addr,omitempty"`
	LLM            *LLMConfig  `json:"llm,omitempty" yaml:"llm,omitempty"`
	Media          MediaConfig `json:"media" yaml:"media"`
	RequestTimeout Duration    `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty"`
	LogLevel       string      `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Development    bool        `json:"development,omitempty" yaml:"development,omitempty"`
}

// LLMConfig selects and tunes the generation backend.
type LLMConfig struct {
	Provider        string  `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model           string  `json:"model,omitempty" yaml:"model,omitempty"`
	APIKey          string  `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	BaseURL         string  `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Temperature     float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	MaxOutputTokens int     `json:"max_output_tokens,omitempty" yaml:"max_output_tokens,omitempty"`
}

type MediaConfig struct {
	MaxWidth        int      `json:"max_width,omitempty" yaml:"max_width,omitempty"`
	Quality         int      `json:"quality,omitempty" yaml:"quality,omitempty"`
	MaxPixels       int64    `json:"max_pixels,omitempty" yaml:"max_pixels,omitempty"`
	DownloadTimeout Duration `json:"download_timeout,omitempty" yaml:"download_timeout,omitempty"`
	MaxBytes        int64    `json:"max_bytes,omitempty" yaml:"max_bytes,omitempty"`
	Concurrency     int      `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
}

// Duration accepts "20s" style strings in config files.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var secs float64
		if err := json.Unmarshal(b, &secs); err != nil {
			return fmt.Errorf("duration must be a string or seconds: %s", b)
		}
		*d = Duration(secs * float64(time.Second))
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if secs, err := strconv.ParseFloat(node.Value, 64); err == nil {
		*d = Duration(secs * float64(time.Second))
		return nil
	}
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("duration must be a string or seconds: %w", err)
	}
	*d = Duration(v)
	return nil
}

// Default returns a Gemini-backed configuration. The model is left empty so
// each provider picks its own default.
func Default() Config {
	return Config{
		ServerAddr: DefaultServerAddr,
		LLM: &LLMConfig{
			Provider:        generator.ProviderGemini,
			Temperature:     generator.DefaultTemperature,
			MaxOutputTokens: generator.DefaultMaxOutputTokens,
		},
		Media: MediaConfig{
			MaxWidth:        media.DefaultMaxWidth,
			Quality:         media.DefaultQuality,
			MaxPixels:       media.DefaultMaxPixels,
			DownloadTimeout: Duration(media.DefaultDownloadTimeout),
			MaxBytes:        media.DefaultMaxBytes,
			Concurrency:     media.DefaultConcurrency,
		},
		RequestTimeout: Duration(DefaultRequestTimeout),
		LogLevel:       "info",
	}
}

// Load reads .env (if present), then the config file at path (if non-empty
// and present), then applies environment overrides.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if err := readFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if cfg.LLM == nil {
		cfg.LLM = Default().LLM
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case generator.ProviderGemini:
			cfg.LLM.APIKey = os.Getenv("GOOGLE_API_KEY")
		case generator.ProviderOpenAI:
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.ServerAddr = ":" + v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// LLMSettings converts the LLM section for generator.NewLLM.
func (c Config) LLMSettings() *generator.LLMSettings {
	if c.LLM == nil {
		return nil
	}
	return &generator.LLMSettings{
		Provider:        c.LLM.Provider,
		Model:           c.LLM.Model,
		APIKey:          c.LLM.APIKey,
		BaseURL:         c.LLM.BaseURL,
		Temperature:     c.LLM.Temperature,
		MaxOutputTokens: c.LLM.MaxOutputTokens,
	}
}

func (c Config) MediaOptions() media.Options {
	return media.Options{
		MaxWidth:    c.Media.MaxWidth,
		Quality:     c.Media.Quality,
		MaxPixels:   c.Media.MaxPixels,
		Concurrency: c.Media.Concurrency,
	}
}

func (c Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeout)
}

package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Upload struct {
		Dir      string `yaml:"dir"`
		MaxBytes int64  `yaml:"max_bytes"`
	} `yaml:"upload"`
	Providers struct {
		OpenAI struct {
			APIKey  string `yaml:"api_key"`
			BaseURL string `yaml:"base_url"`
			Model   string `yaml:"model"`
		} `yaml:"openai"`
		Claude struct {
			APIKey string `yaml:"api_key"`
			Model  string `yaml:"model"`
		} `yaml:"claude"`
		Gemini struct {
			APIKey  string `yaml:"api_key"`
			BaseURL string `yaml:"base_url"`
			Model   string `yaml:"model"`
		} `yaml:"gemini"`
		OpenRouter struct {
			APIKey  string `yaml:"api_key"`
			BaseURL string `yaml:"base_url"`
			Model   string `yaml:"model"`
		} `yaml:"openrouter"`
	} `yaml:"providers"`
	Limits struct {
		MinRemarksChars   int           `yaml:"min_remarks_chars"`
		StyleContextChars int           `yaml:"style_context_chars"`
		RequestTimeout    time.Duration `yaml:"request_timeout"`
	} `yaml:"limits"`
	Session struct {
		RedisURL string        `yaml:"redis_url"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"session"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func Default() Config {
	var cfg Config
	cfg.HTTP.Addr = ":5000"
	cfg.Upload.Dir = "uploads"
	cfg.Upload.MaxBytes = 16 * 1024 * 1024
	cfg.Providers.OpenAI.BaseURL = "https://api.openai.com/v1"
	cfg.Providers.OpenAI.Model = "gpt-4.1-mini"
	cfg.Providers.Claude.Model = "claude-3-sonnet-20240229"
	cfg.Providers.Gemini.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	cfg.Providers.Gemini.Model = "gemini-2.5-flash"
	cfg.Providers.OpenRouter.BaseURL = "https://api.openrouter.ai/v1"
	cfg.Providers.OpenRouter.Model = "deepseek/deepseek-r1:free"
	cfg.Limits.MinRemarksChars = 50
	cfg.Limits.StyleContextChars = 2000
	cfg.Limits.RequestTimeout = 60 * time.Second
	cfg.Session.TTL = 24 * time.Hour
	cfg.Log.Level = "info"
	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, err
			}
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SW_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	// Hosting platforms hand out the listen port via PORT.
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Addr = ":" + v
	}
	if v := os.Getenv("SW_UPLOAD_DIR"); v != "" {
		cfg.Upload.Dir = v
	}
	if v := os.Getenv("SW_UPLOAD_MAX_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Upload.MaxBytes = n
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Providers.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.Providers.OpenAI.BaseURL = v
	}
	if v := os.Getenv("CLAUDE_API_KEY"); v != "" {
		cfg.Providers.Claude.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Providers.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.Providers.Gemini.BaseURL = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Providers.Gemini.Model = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.Providers.OpenRouter.APIKey = v
	}
	if v := os.Getenv("OPENROUTER_BASE_URL"); v != "" {
		cfg.Providers.OpenRouter.BaseURL = v
	}
	if v := os.Getenv("SW_MIN_REMARKS_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MinRemarksChars = n
		}
	}
	if v := os.Getenv("SW_STYLE_CONTEXT_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.StyleContextChars = n
		}
	}
	if v := os.Getenv("SW_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Limits.RequestTimeout = d
		}
	}
	if v := os.Getenv("SW_REDIS_URL"); v != "" {
		cfg.Session.RedisURL = v
	}
	if v := os.Getenv("SW_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Session.TTL = d
		}
	}
	if v := os.Getenv("SW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

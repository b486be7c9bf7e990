package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	LogLevel    string `json:"log_level"`

	// CORS
	CORSOrigins []string `json:"cors_origins"`

	// Auth
	APIKeyHeader string   `json:"api_key_header"`
	APIKeys      []string `json:"api_keys"`
	EnableAuth   bool     `json:"enable_auth"`

	// Rate Limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// AI / LLM
	AnthropicAPIKey  string `json:"anthropic_api_key"`
	AnthropicBaseURL string `json:"anthropic_base_url"` // override for compatible proxies
	Model            string `json:"model"`
	AgentTimeout     int    `json:"agent_timeout"` // seconds, whole-request deadline

	// Chat input validation
	MaxQueryLength int `json:"max_query_length"`

	// Security
	EnableAuditLogging bool     `json:"enable_audit_logging"`
	PIIKeywords        []string `json:"pii_keywords"`

	// Knowledge base override. When set, replaces the built-in chunks.
	KnowledgeChunks []KnowledgeChunk `json:"knowledge_chunks,omitempty"`
}

// KnowledgeChunk mirrors knowledge.Chunk for config-file loading without an
// import cycle.
type KnowledgeChunk struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:               DefaultHost,
		Port:               DefaultPort,
		Environment:        DefaultEnvironment,
		LogLevel:           DefaultLogLevel,
		CORSOrigins:        DefaultCORSOrigins,
		APIKeyHeader:       "X-API-Key",
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		Model:              DefaultModel,
		AgentTimeout:       DefaultAgentTimeout,
		MaxQueryLength:     DefaultMaxQueryLength,
		EnableAuditLogging: true,
		PIIKeywords:        DefaultPIIKeywords,
	}

	// Load from JSON config file if specified
	if path := getEnv("CONCIERGE_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("CONCIERGE_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("CONCIERGE_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("CONCIERGE_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("CONCIERGE_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("CONCIERGE_CORS_ORIGINS", ""); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	if v := getEnv("CONCIERGE_API_KEYS", ""); v != "" {
		cfg.APIKeys = strings.Split(v, ",")
		cfg.EnableAuth = true
	}
	if v := getEnv("ANTHROPIC_API_KEY", ""); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := getEnv("ANTHROPIC_BASE_URL", ""); v != "" {
		cfg.AnthropicBaseURL = v
	}
	if v := getEnv("CONCIERGE_MODEL", ""); v != "" {
		cfg.Model = v
	}
	if v := getEnv("CONCIERGE_AGENT_TIMEOUT", ""); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			cfg.AgentTimeout = t
		}
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = r
		}
	}
	if v := getEnv("ENABLE_AUTH", ""); v != "" {
		cfg.EnableAuth = v == "true" || v == "1"
	}
	if v := getEnv("ENABLE_AUDIT_LOGGING", ""); v != "" {
		cfg.EnableAuditLogging = v == "true" || v == "1"
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

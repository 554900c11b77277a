package config

import (
	"os"
	"strconv"
	"strings"

	"doc-summarizer/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort              string
	TempDir                 string
	MaxFileSize             int64
	MaxTextBytes            int
	LogLevel                string
	SummarizerProvider      string
	OpenAIAPIKey            string
	OpenAIModel             string
	SummaryMaxTokens        int
	VertexProjectID         string
	VertexLocation          string
	SummarizeTimeoutSeconds int
	AllowedOrigins          []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		TempDir:            getEnvOrDefault("TEMP_DIR", "./tmp"),
		MaxFileSize:        getEnvInt64OrDefault("MAX_FILE_SIZE", 10*1024*1024), // 10MB default
		MaxTextBytes:       getEnvIntOrDefault("MAX_TEXT_BYTES", 100000),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		SummarizerProvider: getEnvOrDefault("SUMMARIZER_PROVIDER", "openai"),
		OpenAIAPIKey:       getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnvOrDefault("OPENAI_MODEL", "gpt-4.1-mini"),
		SummaryMaxTokens:   getEnvIntOrDefault("SUMMARY_MAX_TOKENS", 130),
		VertexProjectID:    getEnvOrDefault("VERTEX_PROJECT_ID", ""),
		VertexLocation:     getEnvOrDefault("VERTEX_LOCATION", "us-central1"),
		// Model inference can be slow; clients give up at 30s but the server
		// allows the call more room before abandoning it.
		SummarizeTimeoutSeconds: getEnvIntOrDefault("SUMMARIZE_TIMEOUT_SECONDS", 120),
		AllowedOrigins: splitAndTrim(getEnvOrDefault(
			"ALLOWED_ORIGINS",
			"http://localhost:5173,http://localhost:3000",
		)),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetTempDir returns the directory for per-request temporary files
func (c *AppConfig) GetTempDir() string {
	return c.TempDir
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetMaxTextBytes returns the byte cap on extracted text passed to the model
func (c *AppConfig) GetMaxTextBytes() int {
	return c.MaxTextBytes
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSummarizerProvider returns which summarization backend to use
func (c *AppConfig) GetSummarizerProvider() string {
	return c.SummarizerProvider
}

// GetOpenAIAPIKey returns the OpenAI API key
func (c *AppConfig) GetOpenAIAPIKey() string {
	return c.OpenAIAPIKey
}

// GetOpenAIModel returns the OpenAI model name
func (c *AppConfig) GetOpenAIModel() string {
	return c.OpenAIModel
}

// GetSummaryMaxTokens returns the completion-token budget for summaries
func (c *AppConfig) GetSummaryMaxTokens() int {
	return c.SummaryMaxTokens
}

// GetVertexProjectID returns the GCP project for the Vertex AI provider
func (c *AppConfig) GetVertexProjectID() string {
	return c.VertexProjectID
}

// GetVertexLocation returns the GCP region for the Vertex AI provider
func (c *AppConfig) GetVertexLocation() string {
	return c.VertexLocation
}

// GetSummarizeTimeoutSeconds returns the server-side summarization deadline
func (c *AppConfig) GetSummarizeTimeoutSeconds() int {
	return c.SummarizeTimeoutSeconds
}

// GetAllowedOrigins returns the CORS allowed origins
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

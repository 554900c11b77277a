package domain

import "context"

// TextExtractor turns uploaded file bytes into plain text based on the
// declared MIME type.
type TextExtractor interface {
	Extract(data []byte, declaredType string) (string, error)
}

// Summarizer produces an abstractive summary of the given text. The model
// client behind it is built once at startup and shared read-only across
// requests. An empty summary with a nil error means the model legitimately
// produced nothing; callers decide how to surface that.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SummaryService orchestrates a single summarize request: validation,
// temporary storage, extraction, and summarization.
type SummaryService interface {
	Summarize(ctx context.Context, upload *UploadedDocument) (*SummaryResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetTempDir() string
	GetMaxFileSize() int64
	GetMaxTextBytes() int
	GetLogLevel() string
	GetSummarizerProvider() string
	GetOpenAIAPIKey() string
	GetOpenAIModel() string
	GetSummaryMaxTokens() int
	GetVertexProjectID() string
	GetVertexLocation() string
	GetSummarizeTimeoutSeconds() int
	GetAllowedOrigins() []string
}

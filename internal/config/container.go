package config

import (
	"fmt"
	"io"

	"doc-summarizer/internal/domain"
	"doc-summarizer/internal/service"
	"doc-summarizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	Extractor      domain.TextExtractor
	Summarizer     domain.Summarizer
	SummaryService domain.SummaryService
}

// NewContainer creates a new dependency injection container. The summarizer
// client it builds is the process-wide model handle: created once here,
// shared read-only by every request.
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	extractor := service.NewExtractor(appLogger)

	summarizer, err := newSummarizer(config, appLogger)
	if err != nil {
		return nil, err
	}

	summaryService := service.NewSummaryService(extractor, summarizer, config, appLogger)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		Extractor:      extractor,
		Summarizer:     summarizer,
		SummaryService: summaryService,
	}, nil
}

func newSummarizer(config domain.Config, appLogger domain.Logger) (domain.Summarizer, error) {
	switch config.GetSummarizerProvider() {
	case "openai":
		return service.NewOpenAISummarizer(config, appLogger), nil
	case "vertex":
		return service.NewVertexSummarizer(config, appLogger)
	default:
		return nil, fmt.Errorf("unknown summarizer provider: %s", config.GetSummarizerProvider())
	}
}

// Close releases long-lived resources, notably the model client when its
// provider holds a connection. Called once on process shutdown, never per
// request.
func (c *Container) Close() {
	if closer, ok := c.Summarizer.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			c.Logger.Warn("Failed to close summarizer client", "error", err)
		}
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetSummaryService returns the summary service instance
func (c *Container) GetSummaryService() domain.SummaryService {
	return c.SummaryService
}

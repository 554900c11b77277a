package service

import (
	"context"
	"fmt"
	"strings"

	"doc-summarizer/internal/domain"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	summaryTemperature = 0.2

	summarySystemPrompt = `Summarize the following document in a few sentences.
	Produce an abstractive summary: convey the source's meaning in new
	sentences rather than quoting it verbatim.
	Keep critical context (dates, numbers, names).
	Stay neutral and objective, and write in the same language as the input.`
)

// OpenAISummarizer calls OpenAI's Chat Completions API to produce summaries.
// The client is built once at startup and is safe for concurrent use.
type OpenAISummarizer struct {
	client    openai.Client
	model     string
	maxTokens int
	logger    domain.Logger
}

// NewOpenAISummarizer builds a new summarizer instance.
func NewOpenAISummarizer(config domain.Config, logger domain.Logger, opts ...option.RequestOption) *OpenAISummarizer {
	clientOpts := append([]option.RequestOption{
		option.WithAPIKey(config.GetOpenAIAPIKey()),
	}, opts...)

	return &OpenAISummarizer{
		client:    openai.NewClient(clientOpts...),
		model:     config.GetOpenAIModel(),
		maxTokens: config.GetSummaryMaxTokens(),
		logger:    logger,
	}
}

// Summarize produces an abstractive summary of the given text. A transport or
// API failure is an error; a completion the model left empty is reported as
// ("", nil) so the caller can tell the two apart.
func (s *OpenAISummarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("input is required")
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summarySystemPrompt),
			openai.UserMessage(text),
		},
		Temperature:         openai.Float(summaryTemperature),
		MaxCompletionTokens: openai.Int(int64(s.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion choices are missing")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.logger.Debug("Summary generated",
		"provider", "openai",
		"model", s.model,
		"input_len", len(text),
		"output_len", len(summary),
	)

	return summary, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"doc-summarizer/internal/domain"

	"cloud.google.com/go/vertexai/genai"
)

const vertexSummaryModel = "gemini-2.0-flash-001"

// VertexSummarizer produces summaries through Vertex AI Gemini. Alternative
// to the OpenAI provider, selected with SUMMARIZER_PROVIDER=vertex.
type VertexSummarizer struct {
	client    *genai.Client
	maxTokens int
	logger    domain.Logger
}

// NewVertexSummarizer builds the Vertex AI client once; it is shared
// read-only across requests.
func NewVertexSummarizer(config domain.Config, logger domain.Logger) (*VertexSummarizer, error) {
	projectID := config.GetVertexProjectID()
	if projectID == "" {
		return nil, fmt.Errorf("VERTEX_PROJECT_ID is required for the vertex provider")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, projectID, config.GetVertexLocation())
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	return &VertexSummarizer{
		client:    client,
		maxTokens: config.GetSummaryMaxTokens(),
		logger:    logger,
	}, nil
}

// Summarize asks Gemini for an abstractive summary of the given text.
func (s *VertexSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("input is required")
	}

	model := s.client.GenerativeModel(vertexSummaryModel)
	model.SetTemperature(summaryTemperature)
	model.SetMaxOutputTokens(int32(s.maxTokens))

	prompt := summarySystemPrompt + "\n\nDocument:\n" + text
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	summary := strings.TrimSpace(sb.String())
	s.logger.Debug("Summary generated",
		"provider", "vertex",
		"model", vertexSummaryModel,
		"input_len", len(text),
		"output_len", len(summary),
	)

	return summary, nil
}

// Close releases the underlying client connection. Called on process
// shutdown, never per request.
func (s *VertexSummarizer) Close() error {
	return s.client.Close()
}

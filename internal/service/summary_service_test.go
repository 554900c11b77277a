package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"doc-summarizer/internal/domain"
	apperrors "doc-summarizer/pkg/errors"
)

// Mock implementations for service testing

type testConfig struct {
	tempDir      string
	maxTextBytes int
}

func (c *testConfig) GetServerPort() string           { return "8080" }
func (c *testConfig) GetTempDir() string              { return c.tempDir }
func (c *testConfig) GetMaxFileSize() int64           { return 10 * 1024 * 1024 }
func (c *testConfig) GetMaxTextBytes() int            { return c.maxTextBytes }
func (c *testConfig) GetLogLevel() string             { return "error" }
func (c *testConfig) GetSummarizerProvider() string   { return "openai" }
func (c *testConfig) GetOpenAIAPIKey() string         { return "test-key" }
func (c *testConfig) GetOpenAIModel() string          { return "gpt-4.1-mini" }
func (c *testConfig) GetSummaryMaxTokens() int        { return 130 }
func (c *testConfig) GetVertexProjectID() string      { return "" }
func (c *testConfig) GetVertexLocation() string       { return "us-central1" }
func (c *testConfig) GetSummarizeTimeoutSeconds() int { return 5 }
func (c *testConfig) GetAllowedOrigins() []string     { return []string{"*"} }

type nopLogger struct{}

func (l *nopLogger) Info(msg string, fields ...interface{})             {}
func (l *nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *nopLogger) Debug(msg string, fields ...interface{})            {}
func (l *nopLogger) Warn(msg string, fields ...interface{})             {}

type mockExtractor struct {
	calls int
	text  string
	err   error
}

func (m *mockExtractor) Extract(data []byte, declaredType string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if m.text != "" {
		return m.text, nil
	}
	return string(data), nil
}

type mockSummarizer struct {
	calls   int
	input   string
	summary string
	err     error
}

func (m *mockSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	m.calls++
	m.input = text
	if m.err != nil {
		return "", m.err
	}
	return m.summary, nil
}

func newTestService(t *testing.T, extractor *mockExtractor, summarizer *mockSummarizer, maxTextBytes int) (*SummaryService, string) {
	t.Helper()
	tempDir := t.TempDir()
	cfg := &testConfig{tempDir: tempDir, maxTextBytes: maxTextBytes}
	return NewSummaryService(extractor, summarizer, cfg, &nopLogger{}), tempDir
}

func assertTempDirEmpty(t *testing.T, tempDir string) {
	t.Helper()
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty temp dir after request, found %d entries", len(entries))
	}
}

func TestSummarize_Success(t *testing.T) {
	extractor := &mockExtractor{}
	summarizer := &mockSummarizer{summary: "A short summary."}
	svc, tempDir := newTestService(t, extractor, summarizer, 100000)

	upload := &domain.UploadedDocument{
		Content:      []byte("Hello world. This is a test document about testing."),
		DeclaredType: domain.MIMETypeText,
		Filename:     "notes.txt",
	}

	result, err := svc.Summarize(context.Background(), upload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary != "A short summary." {
		t.Fatalf("unexpected summary: %s", result.Summary)
	}
	if result.OriginalLength != len(upload.Content) {
		t.Fatalf("expected original length %d, got %d", len(upload.Content), result.OriginalLength)
	}
	if result.SummaryLength != len(result.Summary) {
		t.Fatalf("expected summary length %d, got %d", len(result.Summary), result.SummaryLength)
	}
	if extractor.calls != 1 || summarizer.calls != 1 {
		t.Fatalf("expected one extract and one summarize call, got %d and %d", extractor.calls, summarizer.calls)
	}
	assertTempDirEmpty(t, tempDir)
}

func TestSummarize_UnsupportedTypeSkipsExtraction(t *testing.T) {
	extractor := &mockExtractor{}
	summarizer := &mockSummarizer{summary: "unused"}
	svc, tempDir := newTestService(t, extractor, summarizer, 100000)

	upload := &domain.UploadedDocument{
		Content:      []byte{0x89, 0x50, 0x4E, 0x47},
		DeclaredType: "image/png",
		Filename:     "image.png",
	}

	_, err := svc.Summarize(context.Background(), upload)
	if err == nil {
		t.Fatal("expected error for unsupported type")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if apperrors.UserMessage(err) != "Please upload a valid PDF or TXT file." {
		t.Fatalf("unexpected message: %s", apperrors.UserMessage(err))
	}
	if extractor.calls != 0 {
		t.Fatalf("extraction must not run for unsupported types, got %d calls", extractor.calls)
	}
	if summarizer.calls != 0 {
		t.Fatalf("summarization must not run for unsupported types, got %d calls", summarizer.calls)
	}
	assertTempDirEmpty(t, tempDir)
}

func TestSummarize_NilUpload(t *testing.T) {
	svc, _ := newTestService(t, &mockExtractor{}, &mockSummarizer{}, 100000)

	_, err := svc.Summarize(context.Background(), nil)
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSummarize_EmptyFileIsExtractionError(t *testing.T) {
	// Zero-byte uploads reach the real extractor, which rejects them.
	svc, tempDir := newTestService(t, &mockExtractor{}, &mockSummarizer{}, 100000)
	svc.extractor = NewExtractor(&nopLogger{})

	upload := &domain.UploadedDocument{
		Content:      []byte{},
		DeclaredType: domain.MIMETypeText,
		Filename:     "empty.txt",
	}

	_, err := svc.Summarize(context.Background(), upload)
	if !apperrors.IsType(err, apperrors.ErrorTypeExtraction) {
		t.Fatalf("expected extraction error for zero-byte file, got %v", err)
	}
	assertTempDirEmpty(t, tempDir)
}

func TestSummarize_ExtractionErrorPropagates(t *testing.T) {
	extractionErr := apperrors.NewExtractionError("No text could be extracted from the file.", domain.ErrNoExtractedText)
	extractor := &mockExtractor{err: extractionErr}
	summarizer := &mockSummarizer{summary: "unused"}
	svc, tempDir := newTestService(t, extractor, summarizer, 100000)

	upload := &domain.UploadedDocument{
		Content:      []byte(" "),
		DeclaredType: domain.MIMETypeText,
		Filename:     "blank.txt",
	}

	_, err := svc.Summarize(context.Background(), upload)
	if !apperrors.IsType(err, apperrors.ErrorTypeExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	if summarizer.calls != 0 {
		t.Fatalf("summarizer must not be called after extraction failure, got %d calls", summarizer.calls)
	}
	assertTempDirEmpty(t, tempDir)
}

func TestSummarize_SummarizerFailure(t *testing.T) {
	extractor := &mockExtractor{}
	summarizer := &mockSummarizer{err: errors.New("model unavailable")}
	svc, tempDir := newTestService(t, extractor, summarizer, 100000)

	upload := &domain.UploadedDocument{
		Content:      []byte("some document text"),
		DeclaredType: domain.MIMETypeText,
		Filename:     "doc.txt",
	}

	_, err := svc.Summarize(context.Background(), upload)
	if !apperrors.IsType(err, apperrors.ErrorTypeSummarization) {
		t.Fatalf("expected summarization error, got %v", err)
	}
	if apperrors.UserMessage(err) != "Failed to summarize the document. Please try again." {
		t.Fatalf("unexpected message: %s", apperrors.UserMessage(err))
	}
	assertTempDirEmpty(t, tempDir)
}

func TestSummarize_EmptyModelOutputUsesFallback(t *testing.T) {
	extractor := &mockExtractor{}
	summarizer := &mockSummarizer{summary: ""}
	svc, tempDir := newTestService(t, extractor, summarizer, 100000)

	upload := &domain.UploadedDocument{
		Content:      []byte("some document text"),
		DeclaredType: domain.MIMETypeText,
		Filename:     "doc.txt",
	}

	result, err := svc.Summarize(context.Background(), upload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary != FallbackSummary {
		t.Fatalf("expected fallback summary, got %q", result.Summary)
	}
	assertTempDirEmpty(t, tempDir)
}

func TestSummarize_TruncatesLongText(t *testing.T) {
	extractor := &mockExtractor{}
	summarizer := &mockSummarizer{summary: "short"}
	svc, _ := newTestService(t, extractor, summarizer, 50)

	upload := &domain.UploadedDocument{
		Content:      []byte(strings.Repeat("a", 500)),
		DeclaredType: domain.MIMETypeText,
		Filename:     "long.txt",
	}

	result, err := svc.Summarize(context.Background(), upload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summarizer.input) != 50 {
		t.Fatalf("expected model input truncated to 50 bytes, got %d", len(summarizer.input))
	}
	if result.OriginalLength != 50 {
		t.Fatalf("expected original length to reflect truncation, got %d", result.OriginalLength)
	}
}

func TestSummarize_TruncateKeepsRuneBoundary(t *testing.T) {
	extractor := &mockExtractor{}
	summarizer := &mockSummarizer{summary: "short"}
	// "é" is two bytes, so a byte cap of 8 lands mid-rune and must back off.
	svc, _ := newTestService(t, extractor, summarizer, 8)

	upload := &domain.UploadedDocument{
		Content:      []byte("héhéhéhé"),
		DeclaredType: domain.MIMETypeText,
		Filename:     "accents.txt",
	}

	if _, err := svc.Summarize(context.Background(), upload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summarizer.input != "héhéh" {
		t.Fatalf("expected truncation on rune boundary, got %q", summarizer.input)
	}
}

func TestSummarize_ExtensionFallback(t *testing.T) {
	extractor := &mockExtractor{}
	summarizer := &mockSummarizer{summary: "ok"}
	svc, _ := newTestService(t, extractor, summarizer, 100000)

	upload := &domain.UploadedDocument{
		Content:      []byte("plain content"),
		DeclaredType: "application/octet-stream",
		Filename:     "notes.txt",
	}

	if _, err := svc.Summarize(context.Background(), upload); err != nil {
		t.Fatalf("expected extension fallback to accept .txt, got %v", err)
	}
	if extractor.calls != 1 {
		t.Fatalf("expected one extract call, got %d", extractor.calls)
	}
}

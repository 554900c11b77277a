package domain

// Accepted declared MIME types for uploads.
const (
	MIMETypePDF  = "application/pdf"
	MIMETypeText = "text/plain"
)

// UploadedDocument is the transient per-request upload. It is owned by the
// request that received it and is never persisted beyond it.
type UploadedDocument struct {
	Content      []byte
	DeclaredType string
	Filename     string
}

// SummaryResult is the successful outcome of a summarize request.
type SummaryResult struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
}

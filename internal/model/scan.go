package model

// Scan lifecycle statuses reported by the service. The set is open-ended:
// anything other than completed/failed is treated as still in progress.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// IsTerminalStatus reports whether a scan has finished, successfully or not.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusFailed
}

// ScanRequest is the body posted to initiate a scan. WebhookURL and
// IncludeOnly are omitted from the wire entirely when unset, which the
// server distinguishes from explicitly empty values.
type ScanRequest struct {
	RepoURL     string   `json:"repo_url"`
	WebhookURL  string   `json:"webhook_url,omitempty"`
	Verify      bool     `json:"verify"`
	IncludeOnly []string `json:"include_only,omitempty"`
}

// NewScanRequest returns a request for repoURL with verification enabled,
// the server's documented default.
func NewScanRequest(repoURL string) ScanRequest {
	return ScanRequest{RepoURL: repoURL, Verify: true}
}

// ScanAck acknowledges an accepted scan. ScanID is usable immediately in
// status queries.
type ScanAck struct {
	ScanID    string `json:"scan_id"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ScanResult is a point-in-time snapshot of one scan. Entries returned by
// the list endpoint carry the same shape with optional fields unset.
type ScanResult struct {
	ScanID       string          `json:"scan_id"`
	Status       string          `json:"status"`
	RepoURL      string          `json:"repo_url"`
	StartedAt    string          `json:"started_at"`
	CompletedAt  string          `json:"completed_at,omitempty"`
	TotalSecrets int             `json:"total_secrets"`
	Verified     int             `json:"verified"`
	Unverified   int             `json:"unverified"`
	Secrets      []SecretFinding `json:"secrets,omitempty"`
	Error        string          `json:"error,omitempty"`
}

type SecretFinding struct {
	DetectorType string            `json:"detector_type"`
	DetectorName string            `json:"detector_name,omitempty"`
	Verified     bool              `json:"verified"`
	Redacted     string            `json:"redacted"`
	SourceName   string            `json:"source_name"`
	SourceType   string            `json:"source_type,omitempty"`
	ExtraData    map[string]string `json:"extra_data,omitempty"`
}

// ScanList is the envelope returned by the list endpoint.
type ScanList struct {
	Scans []ScanResult `json:"scans"`
	Total int          `json:"total"`
}

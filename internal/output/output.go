package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/peter941221/scanhawk/internal/model"
)

// WriteResult renders one scan snapshot in the requested format.
func WriteResult(result model.ScanResult, format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case "human":
		writeHumanResult(result, w)
		return nil
	case "json":
		return writeJSON(result, w)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteList renders a scan listing in the requested format.
func WriteList(list model.ScanList, format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case "human":
		writeHumanList(list, w)
		return nil
	case "json":
		return writeJSON(list, w)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeHumanResult(result model.ScanResult, w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Scan:       %s\n", result.ScanID)
	fmt.Fprintf(w, "Status:     %s %s\n", statusIcon(result.Status), result.Status)
	fmt.Fprintf(w, "Repository: %s\n", result.RepoURL)
	fmt.Fprintf(w, "Started:    %s\n", result.StartedAt)
	fmt.Fprintf(w, "Completed:  %s\n", orNA(result.CompletedAt))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if result.Status == model.StatusFailed {
		fmt.Fprintf(w, "Error: %s\n", orUnknown(result.Error))
		return
	}

	fmt.Fprintf(w, "Secrets: %d total, %d verified, %d unverified\n",
		result.TotalSecrets, result.Verified, result.Unverified)

	for i, secret := range result.Secrets {
		fmt.Fprintf(w, "\n%d. %s %s\n", i+1, verifiedIcon(secret.Verified), secret.DetectorType)
		fmt.Fprintf(w, "   Redacted: %s\n", secret.Redacted)
		fmt.Fprintf(w, "   Source:   %s\n", secret.SourceName)
		if len(secret.ExtraData) > 0 {
			fmt.Fprintf(w, "   Extra:    %s\n", formatExtraData(secret.ExtraData))
		}
	}
}

func writeHumanList(list model.ScanList, w io.Writer) {
	fmt.Fprintf(w, "%d scan(s)\n", list.Total)
	for _, scan := range list.Scans {
		fmt.Fprintf(w, "\nScan ID: %s\n", scan.ScanID)
		fmt.Fprintf(w, "  Status:     %s %s\n", statusIcon(scan.Status), scan.Status)
		fmt.Fprintf(w, "  Repository: %s\n", scan.RepoURL)
		fmt.Fprintf(w, "  Secrets:    %d\n", scan.TotalSecrets)
	}
}

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FilterBySource keeps only findings whose source name matches the
// doublestar glob. An empty glob keeps everything.
func FilterBySource(findings []model.SecretFinding, glob string) ([]model.SecretFinding, error) {
	if glob == "" {
		return findings, nil
	}
	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("invalid source filter: %s", glob)
	}

	kept := make([]model.SecretFinding, 0, len(findings))
	for _, f := range findings {
		ok, err := doublestar.Match(glob, f.SourceName)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

func statusIcon(status string) string {
	switch status {
	case model.StatusCompleted:
		return "✅"
	case model.StatusFailed:
		return "❌"
	default:
		return "⏳"
	}
}

func verifiedIcon(verified bool) string {
	if verified {
		return "✅"
	}
	return "⚠️"
}

func formatExtraData(extra map[string]string) string {
	encoded, err := json.Marshal(extra)
	if err != nil {
		return fmt.Sprintf("%v", extra)
	}
	return string(encoded)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown error"
	}
	return s
}

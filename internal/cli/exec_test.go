package cli

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/peter941221/scanhawk/internal/model"
)

func TestHealthCommandHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}))
	defer server.Close()

	out, err := executeCommand(t, "health", "--server", server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "is healthy") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestHealthCommandUnhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := executeCommand(t, "health", "--server", server.URL)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exitErr.Code != 1 {
		t.Fatalf("code = %d", exitErr.Code)
	}
}

func TestStatusCommandRendersJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("scan_id") != "abc123" {
			http.Error(w, "Scan not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(model.ScanResult{ScanID: "abc123", Status: model.StatusRunning, RepoURL: "https://example.com/r.git"})
	}))
	defer server.Close()

	out, err := executeCommand(t, "status", "abc123", "--server", server.URL, "--format", "json")
	if err != nil {
		t.Fatal(err)
	}

	var result model.ScanResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatal(err)
	}
	if result.Status != model.StatusRunning {
		t.Fatalf("status = %q", result.Status)
	}
}

func TestStatusCommandFiltersFindings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.ScanResult{
			ScanID:  "abc123",
			Status:  model.StatusCompleted,
			RepoURL: "https://example.com/r.git",
			Secrets: []model.SecretFinding{
				{DetectorType: "AWS", Redacted: "AKIA...ABCD", SourceName: "src/app/main.go"},
				{DetectorType: "Stripe", Redacted: "sk_live...42", SourceName: "vendor/sdk/token.go"},
			},
		})
	}))
	defer server.Close()

	out, err := executeCommand(t, "status", "abc123", "--server", server.URL, "--findings-filter", "src/**")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "AWS") {
		t.Fatalf("expected matching finding, got: %s", out)
	}
	if strings.Contains(out, "Stripe") {
		t.Fatalf("filtered finding leaked through: %s", out)
	}
}

func TestStatusCommandNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Scan not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := executeCommand(t, "status", "missing", "--server", server.URL)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 in error, got: %v", err)
	}
}

func TestScansCommandListsAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/scans" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(model.ScanList{
			Scans: []model.ScanResult{
				{ScanID: "abc123", Status: model.StatusCompleted, RepoURL: "https://example.com/r.git", TotalSecrets: 2},
			},
			Total: 1,
		})
	}))
	defer server.Close()

	out, err := executeCommand(t, "scans", "--server", server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1 scan(s)") || !strings.Contains(out, "abc123") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestWatchCommandWaitsForTerminal(t *testing.T) {
	polls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		status := model.StatusRunning
		if polls >= 2 {
			status = model.StatusCompleted
		}
		_ = json.NewEncoder(w).Encode(model.ScanResult{ScanID: "abc123", Status: status, RepoURL: "https://example.com/r.git"})
	}))
	defer server.Close()

	out, err := executeCommand(t, "watch", "abc123", "--server", server.URL, "--poll-interval", "1ms", "--timeout", "1s")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "scan status: running") {
		t.Fatalf("expected progress line, got: %s", out)
	}
	if !strings.Contains(out, model.StatusCompleted) {
		t.Fatalf("expected final result, got: %s", out)
	}
}

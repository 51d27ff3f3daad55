package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peter941221/scanhawk/internal/model"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Point at a nonexistent config so ambient files never leak into tests.
	args = append(args, "--config", filepath.Join(t.TempDir(), "config.yaml"))

	root := NewRootCommand()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestScanFlagDefaults(t *testing.T) {
	cmd := newScanCommand(&GlobalOptions{})

	tests := []struct {
		flag string
		want string
	}{
		{"format", "human"},
		{"verify", "true"},
		{"wait", "false"},
		{"poll-interval", "5s"},
		{"timeout", "10m0s"},
	}

	for _, tc := range tests {
		got := cmd.Flag(tc.flag)
		if got == nil {
			t.Fatalf("flag %q missing", tc.flag)
		}
		if got.DefValue != tc.want {
			t.Fatalf("flag %q default = %q, want %q", tc.flag, got.DefValue, tc.want)
		}
	}
}

func TestScanSubmitsRequest(t *testing.T) {
	var body map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/scan" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(model.ScanAck{ScanID: "abc123", Status: model.StatusPending})
	}))
	defer server.Close()

	out, err := executeCommand(t,
		"scan", "https://example.com/r.git",
		"--server", server.URL,
		"--detector", "OpenAI",
		"--detector", "AWS",
		"--webhook", "https://hooks.example.com/x",
	)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "scan initiated: abc123") {
		t.Fatalf("unexpected output: %s", out)
	}

	var detectors []string
	if err := json.Unmarshal(body["include_only"], &detectors); err != nil {
		t.Fatal(err)
	}
	if len(detectors) != 2 {
		t.Fatalf("include_only = %v", detectors)
	}
	var webhook string
	if err := json.Unmarshal(body["webhook_url"], &webhook); err != nil {
		t.Fatal(err)
	}
	if webhook != "https://hooks.example.com/x" {
		t.Fatalf("webhook_url = %q", webhook)
	}
}

func TestScanWaitRendersFinalResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/scan", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(model.ScanAck{ScanID: "abc123", Status: model.StatusPending})
	})
	mux.HandleFunc("/api/v1/scan/status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.ScanResult{
			ScanID:       "abc123",
			Status:       model.StatusCompleted,
			RepoURL:      "https://example.com/r.git",
			TotalSecrets: 1,
			Verified:     1,
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	out, err := executeCommand(t,
		"scan", "https://example.com/r.git",
		"--server", server.URL,
		"--wait",
		"--poll-interval", "1ms",
		"--timeout", "1s",
	)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Secrets: 1 total, 1 verified, 0 unverified") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestScanPropagatesRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "engine unavailable", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := executeCommand(t, "scan", "https://example.com/r.git", "--server", server.URL)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status code in error, got: %v", err)
	}
}

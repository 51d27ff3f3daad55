package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminalStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusCompleted, true},
		{StatusFailed, true},
		{StatusPending, false},
		{StatusRunning, false},
		{"queued", false},
		{"", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, IsTerminalStatus(tc.status), "status %q", tc.status)
	}
}

func TestNewScanRequestDefaultsVerifyOn(t *testing.T) {
	req := NewScanRequest("https://example.com/r.git")
	assert.True(t, req.Verify)
	assert.Equal(t, "https://example.com/r.git", req.RepoURL)
}

func TestScanRequestWireShape(t *testing.T) {
	// verify must always be on the wire; the optional keys only when set.
	data, err := json.Marshal(ScanRequest{RepoURL: "https://example.com/r.git"})
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.Contains(t, keys, "repo_url")
	assert.Contains(t, keys, "verify")
	assert.NotContains(t, keys, "webhook_url")
	assert.NotContains(t, keys, "include_only")
}

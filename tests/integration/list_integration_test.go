package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestListLifecycleEndToEnd exercises the full list flow against a running
// API: create, read via the share link, unshare, and verify the link dies.
func TestListLifecycleEndToEnd(t *testing.T) {
	loadDotEnv(t)

	if os.Getenv("W2P_E2E") == "" {
		t.Skip("W2P_E2E not set; skipping end-to-end tests (requires api, postgres, redis)")
	}

	baseURL := strings.TrimRight(envOrDefault("W2P_API_BASE_URL", "http://localhost:8080"), "/")
	client := &http.Client{Timeout: 30 * time.Second}

	waitForAPIReady(t, client, baseURL)

	// Create a shared list.
	status, body := doJSON(t, client, http.MethodPost, baseURL+"/api/lists", map[string]any{
		"name":        fmt.Sprintf("e2e-%d", time.Now().UnixNano()),
		"origin":      "Paris, France",
		"destination": "Tokyo, Japan",
		"startDate":   "2026-06-01",
		"endDate":     "2026-06-08",
		"isShared":    true,
		"answers": map[string]any{
			"temperature": map[string]any{"min": 18, "max": 26},
			"swimming":    true,
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d, body=%s", status, body)
	}
	var created struct {
		ID      string `json:"id"`
		ShareID string `json:"shareId"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("create: unmarshal: %v, raw=%s", err, body)
	}
	if created.ID == "" || created.ShareID == "" {
		t.Fatalf("create: missing ids in response: %s", body)
	}
	t.Cleanup(func() {
		req, _ := http.NewRequest(http.MethodDelete, baseURL+"/api/lists/"+created.ID, nil)
		if resp, err := client.Do(req); err == nil {
			_ = resp.Body.Close()
		}
	})

	// The share link resolves while sharing is on.
	status, body = doJSON(t, client, http.MethodGet, baseURL+"/api/shared/"+created.ShareID, nil)
	if status != http.StatusOK {
		t.Fatalf("shared get: expected 200, got %d, body=%s", status, body)
	}
	var shared struct {
		ID    string `json:"id"`
		Items struct {
			Categories map[string][]struct {
				ID string `json:"id"`
			} `json:"categories"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &shared); err != nil {
		t.Fatalf("shared get: unmarshal: %v, raw=%s", err, body)
	}
	if shared.ID != created.ID {
		t.Fatalf("share link resolved to wrong list: %s", body)
	}
	if len(shared.Items.Categories) == 0 {
		t.Fatalf("shared list has no categories: %s", body)
	}

	// Turn sharing off; the link must now 404.
	status, body = doJSON(t, client, http.MethodPatch, baseURL+"/api/lists/"+created.ID, map[string]any{
		"isShared": false,
	})
	if status != http.StatusOK {
		t.Fatalf("unshare: expected 200, got %d, body=%s", status, body)
	}
	status, body = doJSON(t, client, http.MethodGet, baseURL+"/api/shared/"+created.ShareID, nil)
	if status != http.StatusNotFound {
		t.Fatalf("shared get after unshare: expected 404, got %d, body=%s", status, body)
	}
}

func doJSON(t *testing.T, client *http.Client, method, url string, payload any) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			t.Fatalf("marshal request: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, body
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
		if err == nil {
			resp, err := client.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	path := ""
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if path == "" {
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		k := strings.TrimSpace(parts[0])
		v := strings.TrimSpace(parts[1])
		if k == "" {
			continue
		}
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		_ = os.Setenv(k, v)
	}
}

//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type apiRequest struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	CreatedAt string `json:"createdAt"`
	Status    string `json:"status"`
}

// fakeAPI serves the listing and mutation endpoints from memory
type fakeAPI struct {
	mu       sync.Mutex
	requests []apiRequest
	calls    []string
	server   *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{requests: []apiRequest{
		{ID: "u-1", Email: "ann@example.com", FullName: "Ann Archer", CreatedAt: "2024-05-01T11:00:00Z", Status: "PENDING"},
		{ID: "u-2", Email: "bob@example.com", FullName: "Bob Baker", CreatedAt: "2024-05-01T10:00:00Z", Status: "ACTIVE"},
	}}
	api.server = httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(api.server.Close)
	return api
}

func (a *fakeAPI) URL() string { return a.server.URL }

func (a *fakeAPI) Calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.calls...)
}

func (a *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, r.Method+" "+r.URL.Path)

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/requests":
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(a.requests)

	case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/status"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/users/"), "/status")
		var body struct {
			Status string `json:"status"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		for i := range a.requests {
			if a.requests[i].ID == id {
				a.requests[i].Status = body.Status
			}
		}
		w.WriteHeader(http.StatusNoContent)

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/users/"):
		id := strings.TrimPrefix(r.URL.Path, "/users/")
		kept := a.requests[:0]
		for _, req := range a.requests {
			if req.ID != id {
				kept = append(kept, req)
			}
		}
		a.requests = kept
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	}
}

// appArgs returns the global flags pointing the binary at api
func appArgs(workspace string, api *fakeAPI, args ...string) []string {
	base := []string{
		"--config", filepath.Join(workspace, "config.toml"),
		"--log-file", filepath.Join(workspace, "reqadmin.log"),
		"--api-url", api.URL(),
	}
	return append(base, args...)
}

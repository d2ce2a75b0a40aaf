package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agro-exports-api/responses"
)

type fakeDiagnostics struct {
	connected   bool
	name        string
	collections []string
	listErr     error
}

func (f *fakeDiagnostics) Connected() bool      { return f.connected }
func (f *fakeDiagnostics) DatabaseName() string { return f.name }
func (f *fakeDiagnostics) ListCollectionNames(ctx context.Context) ([]string, error) {
	return f.collections, f.listErr
}

func getDiagnostics(t *testing.T, diagnostics Diagnostics) responses.DiagnosticsResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	TestDatabase(diagnostics)(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body responses.DiagnosticsResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestRoot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	Root()(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body responses.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Agro Exports Backend is running" {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestDatabaseNotInitialized(t *testing.T) {
	body := getDiagnostics(t, &fakeDiagnostics{connected: false})
	if body.Backend != "✅ Running" {
		t.Fatalf("backend = %q", body.Backend)
	}
	if body.Database != "⚠️  Available but not initialized" {
		t.Fatalf("database = %q", body.Database)
	}
	if body.ConnectionStatus != "Not Connected" {
		t.Fatalf("connection_status = %q", body.ConnectionStatus)
	}
	if body.Collections == nil || len(body.Collections) != 0 {
		t.Fatalf("collections = %v, want empty array", body.Collections)
	}
}

func TestDatabaseConnected(t *testing.T) {
	t.Setenv("MONGOURI", "mongodb://localhost:27017/agroexports")
	body := getDiagnostics(t, &fakeDiagnostics{
		connected:   true,
		name:        "agroexports",
		collections: []string{"inquiry"},
	})
	if body.Database != "✅ Connected & Working" {
		t.Fatalf("database = %q", body.Database)
	}
	if body.DatabaseURL != "✅ Configured" {
		t.Fatalf("database_url = %q", body.DatabaseURL)
	}
	if body.DatabaseName != "agroexports" {
		t.Fatalf("database_name = %q", body.DatabaseName)
	}
	if body.ConnectionStatus != "Connected" {
		t.Fatalf("connection_status = %q", body.ConnectionStatus)
	}
	if len(body.Collections) != 1 || body.Collections[0] != "inquiry" {
		t.Fatalf("collections = %v", body.Collections)
	}
}

func TestDatabaseCollectionListCapped(t *testing.T) {
	diagnostics := &fakeDiagnostics{connected: true, name: "agroexports"}
	for i := 0; i < 15; i++ {
		diagnostics.collections = append(diagnostics.collections, fmt.Sprintf("collection_%d", i))
	}
	body := getDiagnostics(t, diagnostics)
	if len(body.Collections) != 10 {
		t.Fatalf("collections = %d, want capped at 10", len(body.Collections))
	}
}

func TestDatabaseCollectionListFailureIsTruncated(t *testing.T) {
	longErr := errors.New(strings.Repeat("cursor timeout while listing collections ", 4))
	body := getDiagnostics(t, &fakeDiagnostics{connected: true, name: "agroexports", listErr: longErr})

	if !strings.HasPrefix(body.Database, "⚠️  Connected but Error: ") {
		t.Fatalf("database = %q", body.Database)
	}
	detail := strings.TrimPrefix(body.Database, "⚠️  Connected but Error: ")
	if len(detail) != 50 {
		t.Fatalf("error detail length = %d, want 50", len(detail))
	}
	// Still reports connected: the handle works even if listing failed.
	if body.ConnectionStatus != "Connected" {
		t.Fatalf("connection_status = %q", body.ConnectionStatus)
	}
}

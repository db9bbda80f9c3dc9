package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected json content type, got %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewWithBaseURL error: %v", err)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.DoJSON(context.Background(), http.MethodPost, "/pets", map[string]any{"name": "Buddy"}, &out); err != nil {
		t.Fatalf("DoJSON error: %v", err)
	}
	if out.ID != "abc" {
		t.Fatalf("expected id abc, got %q", out.ID)
	}
}

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "pet not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewWithBaseURL error: %v", err)
	}

	err = c.DoJSON(context.Background(), http.MethodGet, "/pets/nope", nil, nil)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusNotFound || httpErr.Body != "pet not found" {
		t.Fatalf("unexpected HTTPError %#v", httpErr)
	}
}

func TestDoJSON_RelativePathRequiresBaseURL(t *testing.T) {
	c := New(time.Second)
	if err := c.DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil); err == nil {
		t.Fatalf("expected error for relative path without base url")
	}
}

func TestNewWithBaseURL_RejectsGarbage(t *testing.T) {
	if _, err := NewWithBaseURL("://not-a-url", time.Second); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}

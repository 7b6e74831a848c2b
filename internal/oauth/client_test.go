package oauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExchangeSession_Success(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Session-ID"); got != "sid-123" {
			t.Errorf("expected X-Session-ID header sid-123, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"g-1","email":"alice@example.com","name":"Alice","picture":"https://img.example/a.png","session_token":"tok-abc"}`))
	}))
	defer provider.Close()

	client := NewClient(provider.URL)
	profile, err := client.ExchangeSession(context.Background(), "sid-123")
	if err != nil {
		t.Fatalf("ExchangeSession: %v", err)
	}
	if profile.Email != "alice@example.com" {
		t.Fatalf("expected email alice@example.com, got %q", profile.Email)
	}
	if profile.SessionToken != "tok-abc" {
		t.Fatalf("expected provider session token, got %q", profile.SessionToken)
	}
}

func TestExchangeSession_ProviderRejects(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer provider.Close()

	client := NewClient(provider.URL)
	if _, err := client.ExchangeSession(context.Background(), "bad-sid"); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestExchangeSession_EmptySessionID(t *testing.T) {
	client := NewClient("https://auth.example.com/session-data")
	if _, err := client.ExchangeSession(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestExchangeSession_IncompletePayload(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"email":"alice@example.com"}`))
	}))
	defer provider.Close()

	client := NewClient(provider.URL)
	if _, err := client.ExchangeSession(context.Background(), "sid-123"); err == nil {
		t.Fatalf("expected error for payload without session token")
	}
}

func TestExchangeSession_NotConfigured(t *testing.T) {
	client := NewClient("")
	if _, err := client.ExchangeSession(context.Background(), "sid-123"); err == nil {
		t.Fatalf("expected error for unconfigured client")
	}
}

// Package oauth exchanges short-lived provider session identifiers for
// user profiles and long-lived session tokens.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// sessionIDHeader carries the short-lived session identifier to the provider.
const sessionIDHeader = "X-Session-ID"

// defaultTimeout bounds the provider call; failures surface immediately
// with no retries.
const defaultTimeout = 15 * time.Second

// ErrInvalidSessionID indicates the provider rejected the session identifier.
var ErrInvalidSessionID = errors.New("oauth: invalid session id")

// Profile is the identity payload returned by the provider.
type Profile struct {
	ID           string `json:"id"`            // Provider-side account ID.
	Email        string `json:"email"`         // Verified email address.
	Name         string `json:"name"`          // Display name.
	Picture      string `json:"picture"`       // Profile picture URL.
	SessionToken string `json:"session_token"` // Provider-issued session token.
}

// Client calls the external identity provider's session-data endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient constructs a Client for the given session-data endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		http:     &http.Client{Timeout: defaultTimeout},
	}
}

// ExchangeSession trades a short-lived session identifier for the user's
// profile and provider-issued session token. A non-200 provider response
// maps to ErrInvalidSessionID.
func (c *Client) ExchangeSession(ctx context.Context, sessionID string) (*Profile, error) {
	if c == nil || c.endpoint == "" {
		return nil, fmt.Errorf("oauth: client not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSessionID
	}

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if errReq != nil {
		return nil, fmt.Errorf("oauth: build request: %w", errReq)
	}
	req.Header.Set(sessionIDHeader, sessionID)

	resp, errDo := c.http.Do(req)
	if errDo != nil {
		return nil, fmt.Errorf("oauth: call provider: %w", errDo)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidSessionID
	}

	var profile Profile
	if errDecode := json.NewDecoder(resp.Body).Decode(&profile); errDecode != nil {
		return nil, fmt.Errorf("oauth: decode profile: %w", errDecode)
	}
	if strings.TrimSpace(profile.Email) == "" || strings.TrimSpace(profile.SessionToken) == "" {
		return nil, fmt.Errorf("oauth: incomplete profile payload")
	}
	return &profile, nil
}

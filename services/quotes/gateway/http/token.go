package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Provider authentication states. A failed authentication always
// transitions back to no-token.
type authState int

const (
	stateNoToken authState = iota
	stateAuthenticating
	stateAuthenticated
)

// tokenCell is a mutex-guarded cached OAuth credential. The token is
// held for the lifetime of the client with no proactive refresh: a
// stale token is only replaced after a 401 is observed on a pricing
// call (Invalidate, then the next Token call re-authenticates). The
// guard makes concurrent callers authenticate exactly once.
type tokenCell struct {
	mu     sync.Mutex
	state  authState
	token  string
	authFn func(ctx context.Context) (string, error)
}

func newTokenCell(authFn func(ctx context.Context) (string, error)) *tokenCell {
	return &tokenCell{authFn: authFn}
}

// Token returns the cached token, authenticating first if needed
func (t *tokenCell) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == stateAuthenticated {
		return t.token, nil
	}

	t.state = stateAuthenticating
	token, err := t.authFn(ctx)
	if err != nil {
		t.state = stateNoToken
		t.token = ""
		return "", err
	}

	t.state = stateAuthenticated
	t.token = token
	return token, nil
}

// Invalidate discards the cached token so the next Token call
// re-authenticates
func (t *tokenCell) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = stateNoToken
	t.token = ""
}

// clientCredentialsAuth performs an OAuth client-credentials token
// request and returns the access token
func clientCredentialsAuth(ctx context.Context, httpClient *http.Client, authURL, clientID, clientSecret, scope string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(clientID, clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	return tokenResp.AccessToken, nil
}

// newProviderHTTPClient builds the HTTP client used for both auth and
// pricing calls of one provider
func newProviderHTTPClient(timeoutSeconds int) *http.Client {
	timeout := time.Duration(timeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

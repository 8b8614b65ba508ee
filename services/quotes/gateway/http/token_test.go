package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCell_AuthenticatesOnce(t *testing.T) {
	var calls int32
	cell := newTokenCell(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "token-1", nil
	})

	for i := 0; i < 5; i++ {
		token, err := cell.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-1", token)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTokenCell_ConcurrentCallersShareOneAuth(t *testing.T) {
	var calls int32
	cell := newTokenCell(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "token-1", nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := cell.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "token-1", token)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTokenCell_FailureResetsState(t *testing.T) {
	var calls int32
	cell := newTokenCell(func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", errors.New("auth endpoint unreachable")
		}
		return "token-2", nil
	})

	_, err := cell.Token(context.Background())
	require.Error(t, err)

	// A later call re-authenticates rather than caching the failure
	token, err := cell.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
}

func TestTokenCell_InvalidateForcesReauth(t *testing.T) {
	var calls int32
	cell := newTokenCell(func(ctx context.Context) (string, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			return "stale-token", nil
		}
		return "fresh-token", nil
	})

	token, err := cell.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stale-token", token)

	cell.Invalidate()

	token, err = cell.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClientCredentialsAuth_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "request", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc123","token_type":"Bearer","expires_in":2592000}`))
	}))
	defer server.Close()

	token, err := clientCredentialsAuth(context.Background(), server.Client(), server.URL, "client-id", "client-secret", "request")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestClientCredentialsAuth_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer server.Close()

	_, err := clientCredentialsAuth(context.Background(), server.Client(), server.URL, "bad", "creds", "request")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClientCredentialsAuth_MissingAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer server.Close()

	_, err := clientCredentialsAuth(context.Background(), server.Client(), server.URL, "client-id", "client-secret", "request")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")
}

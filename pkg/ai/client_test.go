package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionJSON(content string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-test",
		"object": "chat.completion",
		"model": "gemini-2.0-flash",
		"choices": [
			{
				"index": 0,
				"message": {"role": "assistant", "content": %q},
				"finish_reason": "stop"
			}
		]
	}`, content)
}

func testConfig(baseURL string) Config {
	return Config{
		APIKey:         "test-api-key",
		BaseURL:        baseURL,
		Model:          "gemini-2.0-flash",
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
	}
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	client, err := NewClient(Config{})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{APIKey: "key"})

	require.NoError(t, err)
	assert.Equal(t, defaultModel, client.model)
	assert.Equal(t, 3, client.maxAttempts)
	assert.Equal(t, 500*time.Millisecond, client.initialBackoff)
	assert.NotNil(t, client.limiter)
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionJSON("insight text"))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "insight text", text)
}

func TestComplete_RetriesRateLimitThenSucceeds(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error": {"message": "rate limit exceeded", "type": "rate_limit_error"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionJSON("recovered"))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, attempts)
}

func TestComplete_ExhaustsRetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": {"message": "upstream exploded", "type": "server_error"}}`)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Equal(t, 3, attempts)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.True(t, svcErr.Retryable)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
}

func TestComplete_NoRetryOnBadRequest(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "bad prompt", "type": "invalid_request_error"}}`)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.False(t, svcErr.Retryable)
}

func TestComplete_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "chatcmpl-test", "object": "chat.completion", "choices": []}`)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "system", "user")

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.False(t, svcErr.Retryable)
	assert.Contains(t, svcErr.Message, "empty response")
}

func TestBackoff_GrowsExponentially(t *testing.T) {
	initial := 500 * time.Millisecond

	for attempt := 1; attempt <= 3; attempt++ {
		base := initial << (attempt - 1)
		delay := backoff(initial, attempt)
		assert.GreaterOrEqual(t, delay, base)
		assert.Less(t, delay, base+base/2+time.Millisecond)
	}
}

func TestClassify_ContextErrors(t *testing.T) {
	canceled := classify(context.Canceled)
	assert.False(t, canceled.Retryable)

	deadline := classify(context.DeadlineExceeded)
	assert.True(t, deadline.Retryable)
}

func TestClassify_PreservesServiceError(t *testing.T) {
	original := &ServiceError{Message: "already classified", Retryable: false}

	classified := classify(fmt.Errorf("wrapped: %w", original))

	assert.Same(t, original, classified)
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &ServiceError{Message: "outer", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "outer")
	assert.Contains(t, err.Error(), "root cause")
}

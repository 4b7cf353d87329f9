package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/openai/openai-go/v2"
)

// ErrMissingAPIKey is returned by NewClient when no API key is configured.
// Construction fails; Enrich is never reachable with an unconfigured client.
var ErrMissingAPIKey = errors.New("missing API key: set GEMINI_API_KEY")

// ServiceError wraps a failed call to the generative-language service.
// Retryable errors (timeouts, rate limits, upstream 5xx) may be retried
// with backoff; everything else is a hard failure.
type ServiceError struct {
	StatusCode int
	Message    string
	Retryable  bool
	Cause      error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// classify maps a raw error from the completion call onto a ServiceError,
// deciding whether a retry is worthwhile.
func classify(err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		retryable := apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
		msg := "LLM API request failed"
		if apiErr.StatusCode == http.StatusTooManyRequests {
			msg = "LLM API rate limit exceeded"
		}
		return &ServiceError{
			StatusCode: apiErr.StatusCode,
			Message:    msg,
			Retryable:  retryable,
			Cause:      err,
		}
	}

	if errors.Is(err, context.Canceled) {
		return &ServiceError{Message: "LLM API request canceled", Retryable: false, Cause: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &ServiceError{Message: "LLM API request timed out", Retryable: true, Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ServiceError{Message: "LLM API request timed out", Retryable: true, Cause: err}
	}

	// Connection-level failures without a response are worth retrying.
	return &ServiceError{Message: "LLM API request failed", Retryable: true, Cause: err}
}

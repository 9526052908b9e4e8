package resilience

import (
	"errors"
	"net"
	"strings"
	"syscall"
)

// TransientError marks a page-fetch failure as retryable. The fetcher
// wraps exhausted-retry errors in it so the per-host circuit breaker
// only counts failures that say something about the host's health; a
// missing article never carries this type.
type TransientError struct {
	Err        error
	StatusCode int
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps err as transient. statusCode is the HTTP
// status that caused the failure, or 0 for network-level errors.
func NewTransientError(err error, statusCode int) *TransientError {
	return &TransientError{Err: err, StatusCode: statusCode}
}

// transientErrnos are connection-level failures a flaky news host
// produces under load.
var transientErrnos = []error{
	syscall.ECONNRESET,
	syscall.ECONNREFUSED,
	syscall.ECONNABORTED,
}

// transientPatterns matches network failures that only surface as
// strings once net/http has wrapped them.
var transientPatterns = []string{
	"connection reset by peer",
	"broken pipe",
	"temporary failure in name resolution",
	"no such host",
	"tls handshake timeout",
	"i/o timeout",
	"server closed idle connection",
}

// IsTransient reports whether err should count against a host's
// circuit: an explicit TransientError anywhere in the chain, a network
// timeout, or a known connection-level failure.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var te *TransientError
	if errors.As(err, &te) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}

// IsTransientHTTPStatus reports whether a response status warrants
// retrying the page rather than giving up on it. Anything else (404s,
// paywalls, redirects the client already followed) is final.
func IsTransientHTTPStatus(statusCode int) bool {
	switch statusCode {
	case 408, 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

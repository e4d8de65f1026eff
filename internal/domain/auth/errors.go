package auth

import (
	"fmt"
	"net/http"
)

// UpstreamError reports that the identity provider returned a non-success
// status or an unusable body during the token exchange or the userinfo
// fetch. It is fatal to the current login attempt and is never retried.
type UpstreamError struct {
	// Op names the failed step: "token" or "userinfo".
	Op string

	// StatusCode is the HTTP status from the provider, or 0 when the
	// request never completed.
	StatusCode int

	// Body is a snippet of the provider's response body, for diagnostics.
	Body string

	// Err is the underlying cause, if any.
	Err error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("oauth %s: %s (%d): %v", e.Op, http.StatusText(e.StatusCode), e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("oauth %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("oauth %s: %s (%d): %s", e.Op, http.StatusText(e.StatusCode), e.StatusCode, e.Body)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

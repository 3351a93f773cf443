// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"fmt"
	"time"
)

// A NetworkError reports a transport-level failure which was not a
// timeout: connection refused, DNS resolution failure, TLS negotiation
// failure, connection reset, and so on. All such failures collapse
// into the one error kind, since transports do not expose the
// underlying cause reliably; the wrapped cause is retained for
// logging and errors.Is/As inspection only.
type NetworkError struct {
	// URL is the URL the failed request was sent to.
	URL string
	// Err is the underlying transport error.
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetchx: network error requesting %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// A TimeoutError reports that the transfer exceeded its deadline
// before reaching a terminal event.
type TimeoutError struct {
	// URL is the URL the timed-out request was sent to.
	URL string
	// Duration is the timeout configured on the request, or zero if
	// the deadline came from the caller's context rather than the
	// configuration.
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Duration > 0 {
		return fmt.Sprintf("fetchx: request to %s timed out after %s", e.URL, e.Duration)
	}
	return fmt.Sprintf("fetchx: request to %s timed out", e.URL)
}

// Timeout reports true, marking the error as a timeout for callers
// probing with the conventional Timeout() interface.
func (e *TimeoutError) Timeout() bool {
	return true
}

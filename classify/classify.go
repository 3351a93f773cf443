// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package classify

import (
	"context"
	"errors"
)

// A Category is the terminal category of a particular error, as
// reported by function Categorize().
//
// Exactly one category applies to any non-nil error. The categories
// drive which terminal branch the request executor takes: Timeout and
// Network each settle the pending result with the corresponding error
// kind, while Canceled suppresses settlement entirely.
type Category int

const (
	// Network indicates any transport failure which is neither a
	// timeout nor a cancellation: connection refused, connection reset,
	// DNS resolution failure, TLS negotiation failure, and so on. All
	// such failures collapse into the one category because transports
	// do not expose the underlying cause reliably.
	Network Category = iota
	// Timeout indicates the transfer exceeded a deadline, whether the
	// per-request timeout armed by the executor or a deadline already
	// present on the caller's context.
	//
	// Function Categorize() will return Timeout if the error or any of
	// its wrapped causes is context.DeadlineExceeded, or has a
	// Timeout() function that reports true.
	Timeout
	// Canceled indicates the caller withdrew interest in the transfer
	// before it reached a terminal event. Cancellation is an internal
	// signal: it must never surface as a settled result.
	//
	// Function Categorize() will return Canceled if the error or any
	// of its wrapped causes is context.Canceled.
	Canceled
)

// Categorize returns the terminal category of the given error. A nil
// error, and any error that is neither a timeout nor a cancellation,
// both produce the return value Network.
//
// In assessing the error, Categorize looks at wrapped cause errors
// contained within err, not just err itself. Cancellation is checked
// before timeout: if a caller cancels a request that also carries a
// deadline, the cancellation wins. Categorize never checks if an error
// has a Temporary() function that returns true, as the semantics of
// Temporary() aren't entirely clear.
func Categorize(err error) Category {
	if errors.Is(err, context.Canceled) {
		return Canceled
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	return Network
}

type hasTimeout interface {
	Timeout() bool
}

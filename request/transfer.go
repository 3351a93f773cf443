// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"time"
)

// A Transfer represents the state of a single in-flight request
// execution. It is the value handed to lifecycle event handlers.
//
// A Transfer is created when execution of a Config starts and is
// updated as bytes of the response body arrive. Handlers receive the
// Transfer for observation only: they must not modify it, and must not
// retain it past the handler call, as the executing client continues
// to update it until the transfer reaches a terminal event.
type Transfer struct {
	// Config specifies the request configuration being executed. It is
	// never nil.
	Config *Config

	// URL is the string form of the URL the request was sent to.
	URL string

	// Start is the time the transfer started, immediately before the
	// request was handed to the transport.
	Start time.Time

	// Loaded is the count of response body bytes received so far. It
	// is zero at the LoadStart event and increases monotonically with
	// each Progress event.
	Loaded int64

	// Total is the expected size of the response body in bytes, taken
	// from the response Content-Length. It is -1 when the size is
	// unknown, including at the LoadStart event, which fires before
	// any response headers exist.
	Total int64
}

// Duration returns the time elapsed since the transfer started.
func (t *Transfer) Duration() time.Duration {
	return time.Since(t.Start)
}

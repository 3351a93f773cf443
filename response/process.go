// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"fmt"

	"github.com/gofetch/fetchx/decode"
)

// A BadStatusError reports a response whose status code fell outside
// the 2xx range. It is only ever produced by BadStatusToError; without
// that post-processor, a bad status is plain data on the Outcome.
type BadStatusError struct {
	// URL is the URL the response came from.
	URL string
	// StatusCode is the offending status code.
	StatusCode int
	// Body is the decoded response body, which may be absent. Error
	// responses often carry a useful payload, so it is preserved.
	Body Body
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("fetchx/response: bad status %d from %s", e.StatusCode, e.URL)
}

// An EmptyResponseError reports a response whose decoded body was
// absent. It is only ever produced by EmptyToError.
type EmptyResponseError struct {
	// URL is the URL the response came from.
	URL string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("fetchx/response: empty response from %s", e.URL)
}

// BadStatusToError passes o through unchanged if its status code is in
// the 2xx range, and produces a *BadStatusError carrying the status
// and the (possibly absent) decoded body otherwise.
//
// BadStatusToError is a pure function: it performs no I/O, has no
// side effects, and may be called any number of times. It is intended
// to be chained onto an execution's result with future.Then.
func BadStatusToError(o *Outcome) (*Outcome, error) {
	if o.OK {
		return o, nil
	}
	return nil, &BadStatusError{URL: o.URL, StatusCode: o.StatusCode, Body: o.Body}
}

// EmptyToError unwraps o's decoded body if it is present, and produces
// a *EmptyResponseError otherwise.
//
// EmptyToError is a pure function: it performs no I/O, has no side
// effects, and may be called any number of times. It is intended to
// be chained onto an execution's result with future.Then.
func EmptyToError(o *Outcome) (decode.Value, error) {
	if v, ok := o.Body.Value(); ok {
		return v, nil
	}
	return decode.Value{}, &EmptyResponseError{URL: o.URL}
}

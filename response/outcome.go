// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"net/http"

	"github.com/gofetch/fetchx/decode"
)

// A Body is the optional decoded body of a response: it either holds
// a decoded value or it is absent. Absence is a first-class state,
// distinct from any present-but-empty value, and occurs exactly when
// the transport delivered no payload or the payload could not be
// decoded in the requested mode.
type Body struct {
	value   decode.Value
	present bool
}

// BodyOf returns a present Body holding v.
func BodyOf(v decode.Value) Body {
	return Body{value: v, present: true}
}

// NoBody returns the absent Body.
func NoBody() Body {
	return Body{}
}

// Present reports whether the body holds a decoded value.
func (b Body) Present() bool {
	return b.present
}

// Value returns the decoded value and true if the body is present,
// and the zero value and false otherwise.
func (b Body) Value() (decode.Value, bool) {
	return b.value, b.present
}

// An Outcome is the structured success value of a request execution.
//
// An Outcome is created exactly once, at the moment the transport
// signals successful completion of the transfer, and is never mutated
// afterward. Transport-level success is not HTTP-level success: an
// Outcome exists for any final status code, and the OK field records
// whether the status was in the 2xx range.
type Outcome struct {
	// URL is the string form of the URL the response came from.
	URL string

	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// OK records whether StatusCode is in [200,300). It is computed
	// once, when the Outcome is created.
	OK bool

	// Body is the decoded response body, or absent if the transport
	// delivered no payload or decoding failed.
	Body Body

	// Response is the underlying transport response, retained as an
	// escape hatch for callers who need headers, trailers, or TLS
	// state. Its body has already been drained and closed.
	Response *http.Response
}

// New creates the Outcome for a completed transfer. The resp parameter
// must be the final transport response; body carries the decoded
// payload, or the absent Body if there was nothing to decode.
func New(resp *http.Response, body Body) *Outcome {
	o := &Outcome{
		StatusCode: resp.StatusCode,
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		Body:       body,
		Response:   resp,
	}
	if resp.Request != nil && resp.Request.URL != nil {
		o.URL = resp.Request.URL.String()
	}
	return o
}

// Header returns the HTTP response headers.
//
// Note that a nil return value is always safe for read-only
// operations, since http.Header is a map type. There should never be
// a reason to write to the returned value, since it represents the
// response headers.
func (o *Outcome) Header() http.Header {
	if o.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return o.Response.Header
}

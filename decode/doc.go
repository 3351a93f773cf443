// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package decode converts a fully-buffered response payload into the
// representation the caller asked for: plain text, raw bytes, a typed
// blob, a parsed HTML document, or a JSON value.
//
// The decoding mode is selected on the request configuration and
// dispatched at runtime by function Apply. Decoding never produces an
// error: a payload which is empty, or which cannot be parsed in the
// requested mode, simply yields no value, and the surrounding response
// outcome reports an absent body.
package decode

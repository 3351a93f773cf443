// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"bytes"
	"encoding/json"

	"golang.org/x/net/html"
)

// A Mode selects the representation a response body is decoded into.
//
// The zero value is Text, so a request configuration which never sets
// a mode decodes to text.
type Mode int

const (
	// Text decodes the payload into a string.
	Text Mode = iota
	// Bytes passes the raw payload through as a byte slice.
	Bytes
	// Blob decodes the payload into a Blob carrying the raw bytes
	// together with the response content type.
	Blob
	// Document parses the payload as an HTML document.
	Document
	// JSON parses the payload as a JSON value. A payload that is not
	// well-formed JSON decodes to no value; it is never an error.
	JSON
	// modeSentinel provides the total number of modes typed as a Mode.
	modeSentinel

	// numModes provides the total number of modes typed as an int.
	numModes = int(modeSentinel)
)

var modeNames = []string{
	"Text",
	"Bytes",
	"Blob",
	"Document",
	"JSON",
}

// Modes returns a slice containing all decoding modes.
func Modes() []Mode {
	return []Mode{Text, Bytes, Blob, Document, JSON}
}

// Name returns the name of the decoding mode.
func (m Mode) Name() string {
	return modeNames[int(m)]
}

// String returns the name of the decoding mode.
func (m Mode) String() string {
	return m.Name()
}

// A BlobValue pairs a raw payload with the content type the server
// declared for it. It is the closest analog to a browser Blob that a
// byte-oriented transport can offer.
type BlobValue struct {
	// ContentType is the media type declared in the response
	// Content-Type header, which may be empty.
	ContentType string
	// Data is the raw payload. It is never empty: an empty payload
	// decodes to no value rather than to an empty blob.
	Data []byte
}

// A Value is the decoded representation of a response body. It holds
// exactly one representation, selected by the mode it was decoded
// under, and exposes it through mode-checked accessors.
//
// The zero Value has mode Text and holds an empty string; decoded
// values are only ever constructed by Apply, which never produces a
// Value for an empty payload.
type Value struct {
	mode Mode
	text string
	data []byte
	blob *BlobValue
	doc  *html.Node
	json interface{}
}

// Mode returns the decoding mode the value was produced under.
func (v Value) Mode() Mode {
	return v.mode
}

// Text returns the decoded string and true if the value was decoded in
// Text mode, and the empty string and false otherwise.
func (v Value) Text() (string, bool) {
	return v.text, v.mode == Text
}

// Bytes returns the raw payload and true if the value was decoded in
// Bytes mode, and nil and false otherwise.
func (v Value) Bytes() ([]byte, bool) {
	if v.mode != Bytes {
		return nil, false
	}
	return v.data, true
}

// Blob returns the decoded blob and true if the value was decoded in
// Blob mode, and nil and false otherwise.
func (v Value) Blob() (*BlobValue, bool) {
	if v.mode != Blob {
		return nil, false
	}
	return v.blob, true
}

// Document returns the parsed document root and true if the value was
// decoded in Document mode, and nil and false otherwise.
func (v Value) Document() (*html.Node, bool) {
	if v.mode != Document {
		return nil, false
	}
	return v.doc, true
}

// JSON returns the parsed JSON value and true if the value was decoded
// in JSON mode, and nil and false otherwise.
//
// The parsed value uses the generic mapping of the standard encoding/json
// package: bool, float64, string, []interface{}, map[string]interface{},
// and nil for the JSON null literal.
func (v Value) JSON() (interface{}, bool) {
	if v.mode != JSON {
		return nil, false
	}
	return v.json, true
}

// Apply decodes a fully-buffered payload in the given mode.
//
// The second return value reports whether a decoded value was
// produced. It is false exactly when the payload is empty, or when the
// payload cannot be parsed in the requested mode (malformed JSON,
// unparseable HTML). Decoding failure is not an error: the transfer
// itself succeeded, there is just no decoded value to show for it.
//
// The contentType parameter is only consulted in Blob mode, where it
// is recorded on the resulting BlobValue.
func Apply(m Mode, contentType string, data []byte) (Value, bool) {
	if len(data) == 0 {
		return Value{}, false
	}

	switch m {
	case Text:
		return Value{mode: Text, text: string(data)}, true
	case Bytes:
		return Value{mode: Bytes, data: data}, true
	case Blob:
		return Value{mode: Blob, blob: &BlobValue{ContentType: contentType, Data: data}}, true
	case Document:
		doc, err := html.Parse(bytes.NewReader(data))
		if err != nil {
			return Value{}, false
		}
		return Value{mode: Document, doc: doc}, true
	case JSON:
		var parsed interface{}
		if err := json.Unmarshal(data, &parsed); err != nil {
			return Value{}, false
		}
		return Value{mode: JSON, json: parsed}, true
	default:
		return Value{}, false
	}
}

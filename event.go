// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to observe the lifecycle
// of in-flight transfers.
//
// Events are forwarded to handlers verbatim and are not interpreted by
// the client: terminal events (success, error, timeout) are internal
// to the execution logic and settle the returned future instead of
// running a handler chain.
type Event int

const (
	// LoadStart identifies the event that occurs once per execution,
	// immediately before the request is handed to the transport.
	//
	// When Client fires LoadStart, the transfer's Loaded counter is
	// zero and its Total is -1, as no response headers exist yet.
	LoadStart Event = iota
	// Progress identifies the event that occurs each time a chunk of
	// the response body is received.
	//
	// When Client fires Progress, the transfer's Loaded counter
	// reflects all bytes received so far, and Total holds the response
	// Content-Length, or -1 if the server did not declare one.
	//
	// Progress never fires for a response with an empty body, and may
	// fire many times for a large one. No Progress event fires after
	// the transfer reaches a terminal event.
	Progress
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"LoadStart",
	"Progress",
}

// Events returns a slice containing all events which can occur during
// a request execution by Client, in the order in which they would
// occur.
func Events() []Event {
	return []Event{
		LoadStart,
		Progress,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}

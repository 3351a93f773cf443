// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"github.com/gofetch/fetchx/request"
)

// A HandlerGroup is a group of event handler chains which can be
// installed in a Client.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("fetchx: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, t *request.Transfer) {
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, t)
	}
}

func run(chain []Handler, evt Event, t *request.Transfer) {
	for _, h := range chain {
		h.Handle(evt, t)
	}
}

// A Handler handles the occurrence of a lifecycle event during a
// request execution. Handlers observe the transfer: they must not
// modify it or retain it past the handler call.
type Handler interface {
	Handle(Event, *request.Transfer)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with appropriate
// signature, then HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *request.Transfer)

// Handle calls f(evt, t).
func (f HandlerFunc) Handle(evt Event, t *request.Transfer) {
	f(evt, t)
}

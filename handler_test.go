// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"fmt"
	"testing"

	"github.com/gofetch/fetchx/request"
	"github.com/stretchr/testify/assert"
)

func TestHandlerGroup(t *testing.T) {
	var evts []string
	var transfers []*request.Transfer
	h1 := &testHandler{seq: 1, evts: &evts, transfers: &transfers}
	h2 := &testHandler{seq: 2, evts: &evts, transfers: &transfers}
	g := &HandlerGroup{}
	t.Run("PushBack", func(t *testing.T) {
		assert.Panics(t, func() { g.PushBack(LoadStart, nil) })
		assert.Panics(t, func() { g.PushBack(Event(123), h1) })
		g.PushBack(LoadStart, h1)
		g.PushBack(LoadStart, h2)
		g.PushBack(Progress, h1)
	})
	t.Run("run", func(t *testing.T) {
		t1 := &request.Transfer{Loaded: 1}
		t2 := &request.Transfer{Loaded: 2}
		assert.Empty(t, evts)
		assert.Empty(t, transfers)
		g.run(LoadStart, t1)
		assert.Equal(t, []string{"1.LoadStart", "2.LoadStart"}, evts)
		assert.Equal(t, []*request.Transfer{t1, t1}, transfers)
		evts = evts[:0]
		transfers = transfers[:0]
		g.run(Progress, t2)
		assert.Equal(t, []string{"1.Progress"}, evts)
		assert.Equal(t, []*request.Transfer{t2}, transfers)
		evts = evts[:0]
		transfers = transfers[:0]
		g.run(LoadStart, t2)
		assert.Equal(t, []string{"1.LoadStart", "2.LoadStart"}, evts)
		assert.Equal(t, []*request.Transfer{t2, t2}, transfers)
	})
	t.Run("run on empty group", func(t *testing.T) {
		empty := &HandlerGroup{}
		assert.NotPanics(t, func() { empty.run(Progress, &request.Transfer{}) })
	})
}

type testHandler struct {
	seq       int
	evts      *[]string
	transfers *[]*request.Transfer
}

func (h *testHandler) Handle(evt Event, tr *request.Transfer) {
	*h.evts = append(*h.evts, fmt.Sprintf("%d.%s", h.seq, evt))
	*h.transfers = append(*h.transfers, tr)
}

func TestHandlerFunc(t *testing.T) {
	var _evt Event
	var _tr *request.Transfer
	var f = func(evt Event, tr *request.Transfer) {
		_evt = evt
		_tr = tr
	}
	h := HandlerFunc(f)
	tr := &request.Transfer{}
	h.Handle(Progress, tr)

	assert.Equal(t, Progress, _evt)
	assert.Same(t, tr, _tr)
}

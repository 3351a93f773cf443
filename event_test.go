// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	assert.Len(t, Events(), numEvents)
	events := Events()
	assert.Equal(t, LoadStart, events[LoadStart])
	assert.Equal(t, Progress, events[Progress])
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "LoadStart", LoadStart.Name())
	assert.Equal(t, "Progress", Progress.Name())
	assert.Equal(t, "LoadStart", LoadStart.String())
	assert.Equal(t, "Progress", Progress.String())
}

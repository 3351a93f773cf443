// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/gofetch/fetchx/future"
	"github.com/gofetch/fetchx/request"
	"github.com/gofetch/fetchx/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGet(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		expected := future.New[*response.Outcome](nil)
		m := newMockExecutor(t)
		m.On("Execute", mock.MatchedBy(func(cfg *request.Config) bool {
			return cfg.Method == "GET" && cfg.URL.String() == "foo"
		})).Return(expected).Once()
		f, err := Get(m, "foo")
		assert.Same(t, expected, f)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("error invalid URL", func(t *testing.T) {
		m := newMockExecutor(t)
		f, err := Get(m, ":::")
		assert.Nil(t, f)
		assert.Error(t, err)
		m.AssertNotCalled(t, "Execute", mock.Anything)
	})
}

func TestPost(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		expected := future.New[*response.Outcome](nil)
		m := newMockExecutor(t)
		m.On("Execute", mock.MatchedBy(func(cfg *request.Config) bool {
			return cfg.Method == "POST" && cfg.URL.String() == "baz" &&
				cfg.Header.Get("Content-Type") == "ham" &&
				bytes.Equal(cfg.Body, []byte("eggs"))
		})).Return(expected).Once()
		f, err := Post(m, "baz", "ham", "eggs")
		assert.Same(t, expected, f)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("error invalid URL", func(t *testing.T) {
		m := newMockExecutor(t)
		f, err := Post(m, ":::", "text/plain", []byte{'a', 'b', 'c'})
		assert.Nil(t, f)
		assert.Error(t, err)
		m.AssertNotCalled(t, "Execute", mock.Anything)
	})
	t.Run("error invalid body", func(t *testing.T) {
		m := newMockExecutor(t)
		f, err := Post(m, "qux", "text/plain", 1.5)
		assert.Nil(t, f)
		assert.Error(t, err)
		m.AssertNotCalled(t, "Execute", mock.Anything)
	})
}

func TestPostForm(t *testing.T) {
	expected := future.New[*response.Outcome](nil)
	m := newMockExecutor(t)
	m.On("Execute", mock.MatchedBy(func(cfg *request.Config) bool {
		return cfg.Method == "POST" && cfg.URL.String() == "form" &&
			cfg.Header.Get("Content-Type") == "application/x-www-form-urlencoded" &&
			bytes.Equal(cfg.Body, []byte("ham=eggs&ham=spam"))
	})).Return(expected).Once()
	f, err := PostForm(m, "form", url.Values{"ham": {"eggs", "spam"}})
	assert.Same(t, expected, f)
	assert.NoError(t, err)
	m.AssertExpectations(t)
}

type mockExecutor struct {
	mock.Mock
}

func newMockExecutor(t *testing.T) *mockExecutor {
	m := &mockExecutor{}
	m.Test(t)
	return m
}

func (m *mockExecutor) Execute(cfg *request.Config) *future.Future[*response.Outcome] {
	args := m.Called(cfg)
	return args.Get(0).(*future.Future[*response.Outcome])
}

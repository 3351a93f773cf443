// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"net/url"

	"github.com/gofetch/fetchx/future"
	"github.com/gofetch/fetchx/request"
	"github.com/gofetch/fetchx/response"
)

// Executor is the interface that wraps the basic Execute method.
//
// Execute starts a single HTTP request and returns a cancellable
// future for its terminal outcome. Client implements the Executor
// interface, and any other Executor implementation must behave
// substantially the same as Client.Execute.
type Executor interface {
	Execute(cfg *request.Config) *future.Future[*response.Outcome]
}

// Getter is the interface that wraps the basic Get method.
//
// Get creates a request configuration to issue a GET to the specified
// URL, starts the request, and returns a future for its outcome.
// Client implements the Getter interface, and any other Getter
// implementation must behave substantially the same as Client.Get.
//
// Any Executor can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(url string) (*future.Future[*response.Outcome], error)
}

// Poster is the interface that wraps the basic Post method.
//
// Post creates a request configuration to issue a POST to the
// specified URL, starts the request, and returns a future for its
// outcome. Client implements the Poster interface, and any other
// Poster implementation must behave substantially the same as
// Client.Post.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.NewConfig and request.BodyBytes,
// namely: string; []byte; io.Reader; and io.ReadCloser.
//
// Any Executor can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(url, contentType string, body interface{}) (*future.Future[*response.Outcome], error)
}

// FormPoster is the interface that wraps the basic PostForm method.
//
// PostForm creates a request configuration to issue a form POST to the
// specified URL, starts the request, and returns a future for its
// outcome. Client implements the FormPoster interface, and any other
// FormPoster implementation must behave substantially the same as
// Client.PostForm.
//
// The request body is set to the URL-encoded keys and values from
// data, and the content type is set to application/x-www-form-urlencoded.
//
// Any Executor can be used to emulate a FormPoster via the PostForm
// function.
type FormPoster interface {
	PostForm(url string, data url.Values) (*future.Future[*response.Outcome], error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any idle connections which were previously connected from
// previous requests but are now sitting idle in a "keep-alive" state.
// It does not interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Get uses the specified Executor to issue a GET to the specified URL.
//
// To make a request configuration with custom headers, a decoding
// mode, or a timeout, use request.NewConfig and x.Execute.
func Get(x Executor, url string) (*future.Future[*response.Outcome], error) {
	cfg, err := request.NewConfig("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return x.Execute(cfg), nil
}

// Post uses the specified Executor to issue a POST to the specified
// URL.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by Client.Post, request.NewConfig, and
// request.BodyBytes, namely: string; []byte; io.Reader; and
// io.ReadCloser.
//
// To make a request configuration with custom headers, use
// request.NewConfig and x.Execute.
func Post(x Executor, url, contentType string, body interface{}) (*future.Future[*response.Outcome], error) {
	b, err := request.BodyBytes(body)
	if err != nil {
		return nil, err
	}
	cfg, err := request.NewConfig("POST", url, b)
	if err != nil {
		return nil, err
	}
	cfg.Header.Set("Content-Type", contentType)
	return x.Execute(cfg), nil
}

// PostForm uses the specified Executor to issue a POST to the
// specified URL, with data's keys and values URL-encoded as the
// request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use request.NewConfig and x.Execute.
func PostForm(x Executor, url string, data url.Values) (*future.Future[*response.Outcome], error) {
	return Post(x, url, "application/x-www-form-urlencoded", data.Encode())
}

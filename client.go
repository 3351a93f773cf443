// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gofetch/fetchx/classify"
	"github.com/gofetch/fetchx/decode"
	"github.com/gofetch/fetchx/future"
	"github.com/gofetch/fetchx/request"
	"github.com/gofetch/fetchx/response"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// A Client executes single HTTP requests described by request.Config,
// producing for each execution a cancellable future that settles with
// either a response.Outcome or an error. Its zero value is a valid
// configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as the
// HTTPDoer and an empty handler group (no lifecycle observers).
//
// Client's HTTPDoer typically has an internal state (cached TCP
// connections) so Client instances should be reused instead of created
// as needed. Client is safe for concurrent use by multiple goroutines,
// and concurrent executions share no per-request state: each execution
// owns its own transport request exclusively.
//
// A Client is higher-level than an HTTPDoer. The HTTPDoer is responsible
// for all details of sending the HTTP request and receiving the response,
// while Client builds on top of the HTTPDoer's feature set. For example,
// the HTTPDoer is responsible for redirects, so consult the HTTPDoer's
// documentation to understand how redirects are handled.
//
// On top of the HTTP request features provided by the HTTPDoer, Client
// adds the following features:
//
// • Client returns a cancellable future instead of blocking, so the
// caller decides when (and whether) to await the terminal outcome;
//
// • Client reads and buffers the entire HTTP response body and decodes
// it into the representation selected on the configuration;
//
// • Client collapses transport failures into a closed set of error
// kinds (NetworkError, TimeoutError), and degrades decode failures to
// an absent body instead of surfacing them as errors; and
//
// • Client invokes user-provided handler functions on lifecycle events
// (LoadStart, Progress), allowing observation to be mixed in from
// outside libraries.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
	// Handlers allows custom handler chains to be invoked when
	// lifecycle events occur during execution of a request.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Execute starts a single HTTP request described by cfg and returns a
// future for its terminal outcome.
//
// The returned future settles exactly once, with either a
// *response.Outcome (the transfer completed, regardless of HTTP
// status) or an error from the closed set *NetworkError and
// *TimeoutError. Cancelling the future before it settles aborts the
// in-flight transfer and permanently suppresses settlement: the
// future never settles, and no late transport event can change that.
//
// Execute reads cfg but never modifies it; a Config may be executed
// again, and may be shared by concurrent executions. If cfg carries a
// timeout, a deadline scoped to this one execution is armed before
// the request is sent. If the decoded payload cannot be produced in
// the configured mode (empty body, malformed JSON), the outcome is
// still a success and its Body is absent; only transport failures
// settle the future with an error.
func (c *Client) Execute(cfg *request.Config) *future.Future[*response.Outcome] {
	var ctx context.Context
	var cancel context.CancelFunc
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(cfg.Context(), cfg.Timeout)
	} else {
		ctx, cancel = context.WithCancel(cfg.Context())
	}

	f := future.New[*response.Outcome](cancel)

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	go c.send(ctx, cancel, cfg, handlers, f)
	return f
}

func (c *Client) send(ctx context.Context, cancel context.CancelFunc, cfg *request.Config,
	handlers *HandlerGroup, f *future.Future[*response.Outcome]) {
	defer cancel()

	req := cfg.ToRequest(ctx)
	applyCredentials(cfg, req)

	t := &request.Transfer{
		Config: cfg,
		URL:    req.URL.String(),
		Start:  time.Now(),
		Total:  -1,
	}
	handlers.run(LoadStart, t)

	resp, err := c.doer().Do(req)
	if err != nil {
		settleError(f, cfg, t.URL, err)
		return
	}

	body, err := readBody(resp, t, handlers)
	if err != nil {
		settleError(f, cfg, t.URL, err)
		return
	}

	b := response.NoBody()
	if v, ok := decode.Apply(cfg.Mode, resp.Header.Get("Content-Type"), body); ok {
		b = response.BodyOf(v)
	}
	f.Resolve(response.New(resp, b))
}

// settleError translates a transport error into the matching terminal
// branch. A canceled transfer takes no branch at all: the caller
// withdrew interest, so the future must stay unresolved.
func settleError(f *future.Future[*response.Outcome], cfg *request.Config, url string, err error) {
	switch classify.Categorize(err) {
	case classify.Canceled:
	case classify.Timeout:
		f.Reject(&TimeoutError{URL: url, Duration: cfg.Timeout})
	default:
		f.Reject(&NetworkError{URL: url, Err: err})
	}
}

func readBody(resp *http.Response, t *request.Transfer, handlers *HandlerGroup) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	t.Total = resp.ContentLength
	return io.ReadAll(&progressReader{r: resp.Body, t: t, handlers: handlers})
}

// A progressReader counts received body bytes on the transfer and
// forwards a Progress event for every non-empty chunk.
type progressReader struct {
	r        io.Reader
	t        *request.Transfer
	handlers *HandlerGroup
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.t.Loaded += int64(n)
		p.handlers.run(Progress, p.t)
	}
	return n, err
}

func applyCredentials(cfg *request.Config, req *http.Request) {
	if cfg.Credentials == request.CredentialsOmit {
		req.Header.Del("Cookie")
		req.Header.Del("Authorization")
	}
}

// Get issues a GET to the specified URL, using the same mechanics
// followed by Execute.
//
// To make a request configuration with custom headers, a decoding
// mode, or a timeout, use request.NewConfig and Client.Execute.
func (c *Client) Get(url string) (*future.Future[*response.Outcome], error) {
	return Get(c, url)
}

// Post issues a POST to the specified URL, using the same mechanics
// followed by Execute.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.NewConfig and request.BodyBytes,
// namely: string; []byte; io.Reader; and io.ReadCloser.
//
// To make a request configuration with custom headers, use
// request.NewConfig and Client.Execute.
func (c *Client) Post(url, contentType string, body interface{}) (*future.Future[*response.Outcome], error) {
	return Post(c, url, contentType, body)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values URL-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use request.NewConfig and Client.Execute.
func (c *Client) PostForm(url string, data url.Values) (*future.Future[*response.Outcome], error) {
	return PostForm(c, url, data)
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer.
//
// If the HTTPDoer has no CloseIdleConnections method, this method does
// nothing.
//
// If the HTTPDoer does have a CloseIdleConnections method, then the
// effect of this method depends entirely on its implementation in the
// HTTPDoer. For example, the http.Client type forwards the call to its
// Transport, but only if the Transport itself has a CloseIdleConnections
// method (otherwise it does nothing).
func (c *Client) CloseIdleConnections() {
	doer := c.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}

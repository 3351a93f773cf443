// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"
	"time"

	"github.com/gofetch/fetchx/decode"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilCtxMsg = "fetchx/request: nil context"
)

// A CredentialsPolicy controls whether credential-bearing headers
// accompany the request.
type CredentialsPolicy int

const (
	// CredentialsDefault leaves the configured headers untouched.
	CredentialsDefault CredentialsPolicy = iota
	// CredentialsOmit strips the Cookie and Authorization headers from
	// the outgoing request, regardless of what the configuration
	// carries. The configuration itself is never modified.
	CredentialsOmit
	// CredentialsInclude sends credential-bearing headers as
	// configured. With the standard net/http transport there are no
	// ambient credentials beyond what the headers carry, so Include
	// behaves like CredentialsDefault; the distinct value exists for
	// transports that do hold ambient credentials.
	CredentialsInclude
)

// A Config describes a single HTTP request for execution by a client.
//
// A Config describes exactly one transfer: executing it sends one
// request and observes one terminal outcome. The executing client
// reads the configuration but never modifies it, so a Config may be
// reused to issue the same request again, and may be shared by
// concurrent executions.
//
// Like the lower-level http.Request structure, a Config has a context.
// The context bounds the lifetime of every execution of the Config and
// can be used to abandon an in-flight transfer at any time, in
// addition to the cancellation operation on the execution's own
// result.
type Config struct {
	// Method specifies the HTTP method. It must be one of GET, POST,
	// OPTIONS, PATCH, PUT, or DELETE. An empty string means GET.
	Method string

	// URL specifies the URL to access.
	//
	// The URL's Host specifies the server to connect to, while the
	// Config's Host field optionally specifies the Host header value
	// to send in the HTTP request.
	URL *urlpkg.URL

	// Header contains the request header fields to be sent. Every
	// entry is attached to the outgoing request before the body is
	// sent; entry order is irrelevant.
	//
	// For further details, see the documentation of Request.Header in
	// the net/http package.
	Header http.Header

	// Body is the pre-buffered request body to be sent. A nil or
	// empty body indicates no request body should be sent, for example
	// on a GET or DELETE request.
	Body []byte

	// Mode selects the representation the response body is decoded
	// into. The zero value is decode.Text.
	Mode decode.Mode

	// Timeout bounds the duration of the transfer. The timeout is
	// armed when execution starts and is scoped to the one transfer
	// only. A zero Timeout means no timeout.
	Timeout time.Duration

	// Credentials controls whether credential-bearing headers
	// accompany the request.
	Credentials CredentialsPolicy

	// Close stipulates whether to close the connection after sending
	// the request and reading the response, preventing re-use of the
	// TCP connection, as if Transport.DisableKeepAlives were set.
	Close bool

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host will be sent. Host may contain an international
	// domain name.
	Host string

	// ctx bounds every execution of the Config. It should only be
	// modified by copying the whole Config using WithContext.
	ctx context.Context
}

// NewConfig wraps NewConfigWithContext using the background context.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. If body is an io.Reader, it is
// read to the end and buffered into a []byte. If body is an
// io.ReadCloser, it is closed after buffering.
func NewConfig(method, url string, body interface{}) (*Config, error) {
	return NewConfigWithContext(context.Background(), method, url, body)
}

// NewConfigWithContext returns a new Config given a method, URL, and
// optional body.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. If body is an io.Reader, it is
// read to the end and buffered into a []byte. If body is an
// io.ReadCloser, it is closed after buffering.
func NewConfigWithContext(ctx context.Context, method, url string, body interface{}) (*Config, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("fetchx/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Config{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
		Host:   u.Host,
	}, nil
}

// Context returns the request configuration's context. The context
// bounds every execution of the Config. To change the context, use
// WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (c *Config) Context() context.Context {
	if c.ctx != nil {
		return c.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of c with its context changed to
// ctx, which must be non-nil.
//
// The context bounds the entire lifetime of an execution of the
// configuration: obtaining a connection, sending the request, and
// reading the response headers and body.
//
// To create a new request configuration with a context, use
// NewConfigWithContext.
func (c *Config) WithContext(ctx context.Context) *Config {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	c2 := new(Config)
	*c2 = *c
	c2.ctx = ctx
	return c2
}

// WithTimeout returns a shallow copy of c with its timeout changed to
// d, which must not be negative.
func (c *Config) WithTimeout(d time.Duration) *Config {
	if d < 0 {
		panic("fetchx/request: negative timeout")
	}
	c2 := new(Config)
	*c2 = *c
	c2.Timeout = d
	return c2
}

// WithMode returns a shallow copy of c with its decoding mode changed
// to m.
func (c *Config) WithMode(m decode.Mode) *Config {
	c2 := new(Config)
	*c2 = *c
	c2.Mode = m
	return c2
}

// AddCookie adds a cookie to the request. Per RFC 6265 section 5.4,
// AddCookie does not attach more than one Cookie header field. That
// means all cookies, if any, are written into the same line,
// separated by semicolons.
//
// AddCookie only sanitizes ck's name and value, and does not sanitize
// a Cookie header already present in the request.
func (c *Config) AddCookie(ck *http.Cookie) {
	ck2 := &http.Cookie{Name: ck.Name, Value: ck.Value}
	s := ck2.String()
	if h := c.Header.Get("Cookie"); h != "" {
		c.Header.Set("Cookie", h+"; "+s)
	} else {
		c.Header.Set("Cookie", s)
	}
}

// SetBasicAuth sets the request configuration's Authorization header
// to use HTTP Basic Authentication with the provided username and
// password.
//
// With HTTP Basic Authentication the provided username and password
// are not encrypted.
//
// Some protocols may impose additional requirements on pre-escaping the
// username and password. For instance, when used with OAuth2, both arguments
// must be URL encoded first with url.QueryEscape.
func (c *Config) SetBasicAuth(username, password string) {
	c.Header.Set("Authorization", "Basic "+basicAuth(username, password))
}

// ToRequest creates an HTTP request corresponding to the given request
// configuration. The context of the new request is set to ctx, which
// may not be nil.
//
// The header map of the new request is a clone, so the executing
// client may adjust it (for example to honor CredentialsOmit) without
// modifying the configuration.
func (c *Config) ToRequest(ctx context.Context) *http.Request {
	r := template.WithContext(ctx)
	r.Method = c.Method
	if r.Method == "" {
		r.Method = "GET"
	}
	r.URL = c.URL
	r.Header = cloneHeader(c.Header)
	if len(c.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(c.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(c.Body)), nil
		}
		r.ContentLength = int64(len(c.Body))
	}
	r.Close = c.Close
	r.Host = c.Host
	return r
}

// basicAuth is lifted verbatim from net/http/client.go.
//
// See 2 (end of page 4) https://www.ietf.org/rfc/rfc2617.txt
// "To receive authorization, the client sends the userid and password,
// separated by a single colon (":") character, within a base64
// encoded string in the credentials."
// It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

// methods is the closed set of methods a Config accepts. The empty
// string is always interpreted as GET.
var methods = map[string]bool{
	"GET":     true,
	"POST":    true,
	"OPTIONS": true,
	"PATCH":   true,
	"PUT":     true,
	"DELETE":  true,
}

func validMethod(method string) bool {
	return methods[method]
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return make(http.Header)
	}
	return h.Clone()
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}

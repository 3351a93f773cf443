// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Config (describes a single
HTTP request) and Transfer (describes an in-flight execution of a
Config). These two types are fundamental to issuing requests through
the fetchx client.

The first core type is Config, which describes one HTTP request.

A Config describes how to make exactly one HTTP request. For those
familiar with the Go standard HTTP library, net/http, a Config looks
like a stripped-down http.Request structure with all server-side
fields removed, and the body fields replaced with a simple []byte,
because Config requires a pre-buffered request body. On top of the
http.Request-shaped fields, a Config carries the response decoding
mode, the per-request timeout, and the credential-inclusion policy.
Config fields are named and typed consistently with http.Request
wherever possible.

Create a configuration to make a request:

	cfg, err := request.NewConfig("GET", "https://example.com", nil)
	...
	f := client.Execute(cfg)
	...

A configuration may be assigned a context to bound the entire transfer
independently of the cancellation operation on the execution's result:

	cfg, err := request.NewConfigWithContext(ctx, "POST", "https://example.com/upload", body)
	...

The second core type is Transfer, which represents the state of an
in-flight execution of a Config. Transfer is the input type for
lifecycle event handlers installed on the client. You will not
allocate Transfer instances yourself, but will instead observe the
ones handed out by the client's execution logic.
*/
package request

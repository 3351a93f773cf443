// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package response contains the Outcome type, the structured success
value of a request execution, and the pure post-processing functions
that re-classify particular outcome states as errors.

An Outcome is created when the transfer completes at the transport
level, regardless of HTTP status: a 404 with a body is an Outcome,
not an error. Callers who prefer to treat a bad status or an empty
body as an error opt in by chaining the corresponding post-processor
onto the execution's result:

	f := client.Execute(cfg)
	g := future.Then(f, response.BadStatusToError)
	...
	h := future.Then(g, response.EmptyToError)

Both post-processors are stateless and side-effect free; omitting
them leaves status and body as plain data inspected through the OK
field and the Body option.
*/
package response

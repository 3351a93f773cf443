// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package fetchx executes single HTTP requests as cancellable futures
with explicit, typed handling of "no value" and "error" outcomes, and
response-type-aware decoding.

Create a Client to begin making requests.

	client := &fetchx.Client{}
	f, err := client.Get("https://www.example.com")
	...
	outcome, err := f.Wait(ctx)
	...

Each execution performs exactly one request and reports exactly one
terminal outcome: a *response.Outcome on transport-level success (any
HTTP status), a *NetworkError or *TimeoutError on transport failure,
or nothing at all if the caller cancels the future first. A response
whose body is empty or cannot be decoded is still a success; its Body
is simply absent.

For control over method, headers, decoding mode, timeout, and
credential policy, build a request.Config and use Execute:

	cfg, err := request.NewConfig("GET", "https://www.example.com/user", nil)
	...
	f := client.Execute(cfg.WithMode(decode.JSON).WithTimeout(5 * time.Second))

To abandon an in-flight request, cancel the future. Cancellation
aborts the transfer and permanently suppresses settlement, so await a
cancelled future only with a context you also control:

	f.Cancel()
	_, err := f.Wait(ctx) // returns ctx.Err() once ctx ends

To treat a non-2xx status or an absent body as an error, chain the
pure post-processors from package response onto the future:

	g := future.Then(f, response.BadStatusToError)
	h := future.Then(g, response.EmptyToError)

For control over how the client sends HTTP requests and receives HTTP
responses, use a custom HTTPDoer. For example, use a GoLang standard
HTTP client:

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	client := &fetchx.Client{
		HTTPDoer: doer,
	}

To observe the lifecycle of in-flight transfers, install a handler
into the appropriate handler chain:

	log := log.New(os.Stdout, "", log.LstdFlags)
	handlers := &fetchx.HandlerGroup{}
	handlers.PushBack(fetchx.Progress, fetchx.HandlerFunc(
		func(_ fetchx.Event, t *request.Transfer) {
			log.Printf("%d of %d bytes from %s", t.Loaded, t.Total, t.URL)
		})
	)
	client := &fetchx.Client{
		HTTPDoer: doer,
		Handlers: handlers,
	}

Package fetchx provides basic interfaces for each method of the client
(Executor, Getter, Poster, FormPoster, and IdleCloser) and utility
functions for working with an Executor (Get, Post, and PostForm).
*/
package fetchx

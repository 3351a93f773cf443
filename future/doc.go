// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package future provides a cancellable single-settlement result
// container for one asynchronous operation.
//
// A Future settles at most once, with either a value or an error, and
// never settles at all if it is canceled first. Cancellation runs the
// abort action supplied at construction (typically cancelling the
// context driving an in-flight transfer) and permanently suppresses
// settlement: a resolve or reject arriving after cancellation is
// inert. This single-assignment discipline is what lets the producing
// side register racing completion paths (success, error, timeout)
// without coordinating among them.
//
// Consumers observe a future with Wait, which accepts a context so a
// caller who canceled a future, or who has its own deadline, is never
// forced to block forever on a container that will not settle.
package future

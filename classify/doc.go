// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package classify sorts terminal errors from an HTTP transfer into the
// three categories the request executor cares about: timeout,
// cancellation, and everything else (network).
//
// The classification is deliberately coarse. Transports do not reliably
// distinguish DNS failures from TLS failures from connection resets
// across environments, so no finer detail than the three categories is
// preserved.
//
// Package classify is extremely lightweight, as it depends only on the
// standard library packages "context" and "errors", so it doesn't bring
// any significant dependencies when imported as a standalone package.
package classify

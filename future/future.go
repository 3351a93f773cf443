// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package future

import (
	"context"
	"sync"
)

// A Future is a single-settlement container for the result of one
// asynchronous operation.
//
// A Future settles at most once: the first successful Resolve or
// Reject wins, and every later attempt is inert. Cancel suppresses
// settlement entirely; a canceled future never settles. A Future is
// safe for concurrent use by multiple goroutines.
type Future[T any] struct {
	mu       sync.Mutex
	done     chan struct{}
	canceled chan struct{}
	settled  bool
	value    T
	err      error
	abort    func()
}

// New returns a pending future.
//
// The abort parameter, if non-nil, is invoked exactly once, by the
// first call to Cancel that precedes settlement. It should instruct
// the producing side to stop work, for example by cancelling the
// context driving an in-flight transfer.
func New[T any](abort func()) *Future[T] {
	return &Future[T]{
		done:     make(chan struct{}),
		canceled: make(chan struct{}),
		abort:    abort,
	}
}

// Resolve settles the future with a value. It reports whether the call
// won settlement: false means the future was already settled or
// canceled and the value was discarded.
func (f *Future[T]) Resolve(value T) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.pendingLocked() {
		return false
	}
	f.value = value
	f.settled = true
	close(f.done)
	return true
}

// Reject settles the future with an error. It reports whether the call
// won settlement: false means the future was already settled or
// canceled and the error was discarded.
func (f *Future[T]) Reject(err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.pendingLocked() {
		return false
	}
	f.err = err
	f.settled = true
	close(f.done)
	return true
}

// Cancel withdraws interest in the future's result.
//
// If the future is still pending, Cancel runs the abort action and
// permanently suppresses settlement: the future will never settle, and
// any late Resolve or Reject is inert. If the future has already
// settled, or was already canceled, Cancel does nothing. It is safe to
// call Cancel any number of times.
func (f *Future[T]) Cancel() {
	f.mu.Lock()
	if !f.pendingLocked() {
		f.mu.Unlock()
		return
	}
	abort := f.abort
	f.abort = nil
	close(f.canceled)
	f.mu.Unlock()

	if abort != nil {
		abort()
	}
}

// Done returns a channel that is closed when the future settles. The
// channel is never closed for a canceled future.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Canceled reports whether the future was canceled before settlement.
func (f *Future[T]) Canceled() bool {
	select {
	case <-f.canceled:
		return true
	default:
		return false
	}
}

// Result returns the settled value or error. The third return value
// reports whether the future has settled; if it is false the other two
// are meaningless.
func (f *Future[T]) Result() (T, error, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err, f.settled
}

// Wait blocks until the future settles or ctx ends, whichever happens
// first, and returns the settled value or error.
//
// If ctx ends first, Wait returns ctx.Err(). A caller holding a
// canceled future must pass a context that it also controls, since the
// future itself will never settle.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		value, err, _ := f.Result()
		return value, err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) pendingLocked() bool {
	if f.settled {
		return false
	}
	select {
	case <-f.canceled:
		return false
	default:
		return true
	}
}

// Then derives a future that maps f's success value through fn, which
// may itself produce a success value or an error.
//
// An error settlement of f passes through to the derived future
// unchanged, without running fn. Cancelling the derived future cancels
// f. If f is canceled, the derived future never settles.
func Then[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	g := New[U](f.Cancel)
	go func() {
		select {
		case <-f.done:
			value, err, _ := f.Result()
			if err != nil {
				g.Reject(err)
				return
			}
			mapped, err := fn(value)
			if err != nil {
				g.Reject(err)
				return
			}
			g.Resolve(mapped)
		case <-f.canceled:
		}
	}()
	return g
}

/*
 * MIT License
 *
 * Copyright (c) 2025 Vesper Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package scope provides the execution context of the actor runtime: the
// bundle of identity, trace and policy data describing who is currently
// executing, and the ambient mechanism to discover it from anywhere inside
// an installed unit of work.
//
// A Scope is confined to exactly one unit of work at a time. It may be moved
// between goroutines wholesale, but must never be read or written from two
// goroutines at once. Clone is the only sanctioned way to use the same
// identity from two places concurrently: the copies share the permission
// store and the logging limiter, while the trace id evolves independently in
// each copy.
//
// Installation binds a Scope to a context.Context for exactly the lifetime
// of one unit of work; the association is released deterministically when
// the derived context goes out of use, whether the work completed, panicked
// or was cancelled. The free functions in this package read the installed
// scope back from any context derived from the installed one.
package scope

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/vesperhq/vesper/address"
	"github.com/vesperhq/vesper/permission"
	"github.com/vesperhq/vesper/trace"
)

// Scope represents "who is currently executing": the actor and group
// addresses, the shared identity metadata, the current trace id and the
// group-wide policy handles.
type Scope struct {
	actor address.Address
	group address.Address
	meta  *Meta

	// single-owner mutable cell, deep-copied on Clone
	traceID trace.ID

	// per group, shared by reference across all scopes of the group
	permissions    *permission.Store
	loggingLimiter *rate.Limiter
}

// New creates a Scope with a freshly generated trace id.
//
// The meta, permissions and limiter handles are shared by reference: every
// scope of the same group must receive the same store and limiter instances
// so that policy updates converge instantly.
func New(actor, group address.Address, meta *Meta, permissions *permission.Store, loggingLimiter *rate.Limiter) *Scope {
	return WithTraceID(trace.Generate(), actor, group, meta, permissions, loggingLimiter)
}

// WithTraceID creates a Scope continuing the given trace, e.g. one received
// from an inbound network request.
func WithTraceID(traceID trace.ID, actor, group address.Address, meta *Meta, permissions *permission.Store, loggingLimiter *rate.Limiter) *Scope {
	return &Scope{
		actor:          actor,
		group:          group,
		meta:           meta,
		traceID:        traceID,
		permissions:    permissions,
		loggingLimiter: loggingLimiter,
	}
}

// Actor returns the address of the current actor.
func (s *Scope) Actor() address.Address {
	return s.actor
}

// Group returns the address of the current actor's group.
func (s *Scope) Group() address.Address {
	return s.group
}

// Meta returns the current actor's identity metadata. The returned pointer
// is shared and immutable.
func (s *Scope) Meta() *Meta {
	return s.meta
}

// TraceID returns the current trace id.
func (s *Scope) TraceID() trace.ID {
	return s.traceID
}

// SetTraceID replaces the current trace id.
//
// Only this scope instance observes the new value: clones captured earlier
// and scopes of future units of work are unaffected.
func (s *Scope) SetTraceID(traceID trace.ID) {
	s.traceID = traceID
}

// Permissions returns a consistent point-in-time snapshot of the group's
// policy. It performs one atomic load and never blocks.
func (s *Scope) Permissions() permission.Permissions {
	return s.permissions.Load()
}

// LoggingLimiter returns the group's shared logging rate limiter for ad hoc
// throttling decisions by calling code.
func (s *Scope) LoggingLimiter() *rate.Limiter {
	return s.loggingLimiter
}

// Clone duplicates the scope for use by another unit of work.
//
// The copy starts with the trace id's current value and evolves
// independently afterwards; the permission store and logging limiter remain
// shared with the original.
func (s *Scope) Clone() *Scope {
	clone := *s
	return &clone
}

// Install returns a context carrying this scope, for callers that manage
// the unit of work themselves. Prefer Within or SyncWithin, which make the
// installation boundary explicit.
//
// Installing a second scope on a context that already carries one is not a
// supported use case: the inner value shadows the outer for contexts
// derived from the returned one.
func (s *Scope) Install(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// Within runs the given asynchronous unit of work with this scope
// installed. The scope stays available through the derived context across
// every suspension inside fn and is released exactly when fn returns,
// panics or is cancelled.
func (s *Scope) Within(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(s.Install(ctx))
}

// SyncWithin runs a plain synchronous callback with this scope installed.
// Identical contract to Within for non-suspending work, e.g. short
// callbacks invoked from within the runtime.
func (s *Scope) SyncWithin(ctx context.Context, fn func(ctx context.Context)) {
	fn(s.Install(ctx))
}

type scopeKey struct{}

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

// Package stream adapts external asynchronous sequences, modeled as
// receive-only channels, to the actor receive loop's pollable Source
// capability. A Stream holds one replaceable, closeable sequence; attach
// it to an actor with PID.Attach and the items flow in as ordinary
// messages with no sender.
package stream

import (
	"context"
	"sync"

	"github.com/vesperhq/vesper/actor"
	"github.com/vesperhq/vesper/address"
	"github.com/vesperhq/vesper/scope"
	"github.com/vesperhq/vesper/trace"
)

// Stream is a mutex-protected holder of one external sequence.
//
// It is intended to be polled by the receive loop while being mutated
// through Set, Replace and Close from other call sites, e.g. a
// reconfiguration handler swapping the subscription a consumer actor
// reads from. The lock covers state reads and swaps only; polling never
// blocks while holding it.
//
// A Stream is either active, holding a channel, or closed. It becomes
// closed when the channel is drained after being closed by the producer
// (natural exhaustion) or when Close is called. A closed Stream polls as
// pending indefinitely instead of reporting end-of-sequence again; callers
// that need the source to produce once more must Set or Replace a fresh
// sequence. See the package tests for the exact transition rules.
type Stream[T any] struct {
	mu     sync.Mutex
	ch     <-chan T
	closed bool
}

var _ actor.Source = (*Stream[any])(nil)

// New wraps the given sequence as an active Stream.
func New[T any](ch <-chan T) *Stream[T] {
	return &Stream[T]{ch: ch}
}

// Set unconditionally replaces the current state, active or closed, with a
// new active state wrapping the given sequence.
func (s *Stream[T]) Set(ch <-chan T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ch = ch
	s.closed = false
}

// Replace swaps in a new active sequence and returns the previous one. The
// boolean is false when the Stream was closed, in which case the returned
// channel is nil.
func (s *Stream[T]) Replace(ch <-chan T) (<-chan T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, wasActive := s.ch, !s.closed
	s.ch = ch
	s.closed = false
	if !wasActive {
		return nil, false
	}
	return previous, true
}

// Close forces the Stream into the closed state and reports whether a
// transition actually occurred: true when it was active, false when it was
// already closed.
func (s *Stream[T]) Close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasActive := !s.closed
	s.ch = nil
	s.closed = true
	return wasActive
}

// Poll implements actor.Source.
//
// An available item is wrapped into a regular envelope with no sender. The
// envelope carries the ambient trace id when the polling context has a
// scope installed; otherwise every externally sourced item starts its own
// freshly generated trace. Exhaustion of the underlying channel is reported
// exactly once, at the moment the Stream transitions to closed; afterwards
// Poll reports pending.
func (s *Stream[T]) Poll(ctx context.Context) (*actor.Envelope, actor.PollState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		// TODO: reconsider reporting exhaustion here instead; receive loops
		// currently rely on closed sources going quiet.
		return nil, actor.PollPending
	}

	select {
	case item, ok := <-s.ch:
		if !ok {
			s.ch = nil
			s.closed = true
			return nil, actor.PollExhausted
		}
		return actor.NewEnvelope(item, address.NoSender, itemTraceID(ctx)), actor.PollReady
	default:
		return nil, actor.PollPending
	}
}

func itemTraceID(ctx context.Context) trace.ID {
	if traceID, ok := scope.TryTraceID(ctx); ok {
		return traceID
	}
	return trace.Generate()
}

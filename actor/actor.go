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

// Package actor provides the receive-loop driver of the runtime: message
// envelopes, the pollable Source capability, mailboxes, and the PID that
// runs one actor, multiplexing its mailbox with attached external sources
// and installing the actor's execution scope around every delivered
// message.
package actor

import "context"

// Actor is the behavior contract implemented by user code.
//
// The runtime guarantees that Receive runs one message at a time on a
// single goroutine, always with the actor's scope installed into the
// message context, so scope.FromContext and friends work anywhere beneath
// it.
type Actor interface {
	// PreStart runs once before the first message is processed. Returning an
	// error aborts the spawn. The actor's scope is already installed.
	PreStart(ctx context.Context) error
	// Receive handles a single delivered message.
	Receive(ctx *MessageContext)
	// PostStop runs once after the receive loop has stopped.
	PostStop(ctx context.Context) error
}

// FuncActor adapts a plain function into an Actor with no lifecycle hooks.
type FuncActor func(ctx *MessageContext)

var _ Actor = (FuncActor)(nil)

// PreStart implements Actor. It is a no-op.
func (f FuncActor) PreStart(context.Context) error { return nil }

// Receive implements Actor by calling the function.
func (f FuncActor) Receive(ctx *MessageContext) { f(ctx) }

// PostStop implements Actor. It is a no-op.
func (f FuncActor) PostStop(context.Context) error { return nil }

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

package actor

import (
	"context"

	"github.com/vesperhq/vesper/address"
	"github.com/vesperhq/vesper/log"
	"github.com/vesperhq/vesper/trace"
)

// MessageContext carries one delivered message and the operations available
// to the actor while handling it. It is only valid within the scope of the
// current Receive call; do not retain it.
type MessageContext struct {
	ctx       context.Context
	envelope  *Envelope
	pid       *PID
	responded bool
}

func newMessageContext(ctx context.Context, envelope *Envelope, pid *PID) *MessageContext {
	return &MessageContext{
		ctx:      ctx,
		envelope: envelope,
		pid:      pid,
	}
}

// Context returns the message-scoped context. The actor's scope is
// installed into it, so ambient access through the scope package works for
// any code beneath the Receive call.
func (mctx *MessageContext) Context() context.Context {
	return mctx.ctx
}

// Message returns the payload of the delivered envelope.
func (mctx *MessageContext) Message() any {
	return mctx.envelope.Message()
}

// Kind returns the delivered envelope's kind tag.
func (mctx *MessageContext) Kind() MessageKind {
	return mctx.envelope.Kind()
}

// Sender returns the originating actor address, or address.NoSender for
// messages sourced from external sequence adapters.
func (mctx *MessageContext) Sender() address.Address {
	return mctx.envelope.Sender()
}

// Self returns the address of the actor handling the message.
func (mctx *MessageContext) Self() address.Address {
	return mctx.pid.Address()
}

// TraceID returns the trace id the message was delivered under.
func (mctx *MessageContext) TraceID() trace.ID {
	return mctx.envelope.TraceID()
}

// Logger returns the actor's logger: throttled by the group's shared rate
// limiter and annotated with the actor identity and the current trace id.
func (mctx *MessageContext) Logger() log.Logger {
	return mctx.pid.Logger().With("trace_id", mctx.envelope.TraceID().String())
}

// Respond delivers the reply for a request envelope.
//
// It returns ErrNotRequest for ordinary messages and ErrAlreadyResponded
// when called twice for the same request.
func (mctx *MessageContext) Respond(reply any) error {
	if mctx.envelope.Kind() != KindRequest {
		return ErrNotRequest
	}
	if mctx.responded {
		return ErrAlreadyResponded
	}
	mctx.responded = true
	mctx.envelope.replyTo <- reply
	return nil
}

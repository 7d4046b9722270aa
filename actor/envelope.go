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
	"github.com/vesperhq/vesper/address"
	"github.com/vesperhq/vesper/trace"
)

// MessageKind tags an envelope as an ordinary one-way message or as a
// request expecting a reply.
type MessageKind int8

const (
	// KindRegular is an ordinary message with no reply expected.
	KindRegular MessageKind = iota
	// KindRequest is a message carrying a reply token.
	KindRequest
)

// String returns "regular" or "request".
func (k MessageKind) String() string {
	if k == KindRequest {
		return "request"
	}
	return "regular"
}

// Envelope is the generic container the receive loop hands to actor logic:
// a typed payload plus its kind, originating sender and trace id.
//
// Envelopes sourced from external sequence adapters carry address.NoSender.
type Envelope struct {
	message any
	kind    MessageKind
	sender  address.Address
	traceID trace.ID
	replyTo chan any
}

// NewEnvelope wraps a payload as an ordinary message.
func NewEnvelope(message any, sender address.Address, traceID trace.ID) *Envelope {
	return &Envelope{
		message: message,
		kind:    KindRegular,
		sender:  sender,
		traceID: traceID,
	}
}

// NewRequestEnvelope wraps a payload as a request. The reply is delivered on
// replyTo, which must have capacity for at least one element so that a late
// responder never blocks.
func NewRequestEnvelope(message any, sender address.Address, traceID trace.ID, replyTo chan any) *Envelope {
	return &Envelope{
		message: message,
		kind:    KindRequest,
		sender:  sender,
		traceID: traceID,
		replyTo: replyTo,
	}
}

// Message returns the payload.
func (e *Envelope) Message() any {
	return e.message
}

// Kind returns the message kind tag.
func (e *Envelope) Kind() MessageKind {
	return e.kind
}

// Sender returns the originating actor address, or address.NoSender.
func (e *Envelope) Sender() address.Address {
	return e.sender
}

// TraceID returns the trace id the message was sent under.
func (e *Envelope) TraceID() trace.ID {
	return e.traceID
}

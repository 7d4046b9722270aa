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

import "context"

// PollState is the outcome of one non-blocking poll against a Source.
type PollState int8

const (
	// PollPending means nothing is available right now; poll again later.
	PollPending PollState = iota
	// PollReady means an envelope was produced.
	PollReady
	// PollExhausted means the source ended; it is reported exactly once,
	// at the transition moment.
	PollExhausted
)

// String returns the lower-case name of the state.
func (s PollState) String() string {
	switch s {
	case PollReady:
		return "ready"
	case PollExhausted:
		return "exhausted"
	default:
		return "pending"
	}
}

// Source is the pollable-message capability the receive loop multiplexes.
// It is implemented by the ordinary mailbox and by external sequence
// adapters such as stream.Stream.
//
// Poll must be non-blocking and safe under repeated invocation from the same
// logical poller. The envelope result is non-nil exactly when the state is
// PollReady.
type Source interface {
	Poll(ctx context.Context) (*Envelope, PollState)
}

// mailboxSource exposes a Mailbox through the Source capability. A mailbox
// never exhausts: it is either ready or pending.
type mailboxSource struct {
	mailbox Mailbox
}

var _ Source = (*mailboxSource)(nil)

func (m *mailboxSource) Poll(context.Context) (*Envelope, PollState) {
	if envelope := m.mailbox.Dequeue(); envelope != nil {
		return envelope, PollReady
	}
	return nil, PollPending
}

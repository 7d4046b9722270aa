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
	gods "github.com/Workiva/go-datastructures/queue"
)

// BoundedMailbox is a bounded, blocking MPSC mailbox backed by a ring
// buffer. Enqueue blocks when the mailbox is full until space becomes
// available or the mailbox is disposed; use it when strict backpressure on
// producers is wanted.
type BoundedMailbox struct {
	underlying *gods.RingBuffer
}

// enforce compilation error
var _ Mailbox = (*BoundedMailbox)(nil)

// NewBoundedMailbox creates a bounded, blocking mailbox with the given
// capacity. Capacity must be a positive integer.
func NewBoundedMailbox(capacity int) *BoundedMailbox {
	if capacity <= 0 {
		panic("actor: bounded mailbox capacity must be positive")
	}
	return &BoundedMailbox{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}
}

// Enqueue inserts an envelope, blocking while the mailbox is full. It
// returns an error after the mailbox has been disposed.
func (m *BoundedMailbox) Enqueue(envelope *Envelope) error {
	return m.underlying.Put(envelope)
}

// Dequeue removes and returns the next envelope, or nil when the mailbox is
// empty or disposed.
func (m *BoundedMailbox) Dequeue() *Envelope {
	if m.underlying.Len() > 0 {
		item, err := m.underlying.Get()
		if err != nil {
			return nil
		}
		if envelope, ok := item.(*Envelope); ok {
			return envelope
		}
	}
	return nil
}

// IsEmpty reports whether the mailbox currently has no envelopes.
func (m *BoundedMailbox) IsEmpty() bool {
	return m.underlying.Len() == 0
}

// Len returns the number of queued envelopes.
func (m *BoundedMailbox) Len() int64 {
	return int64(m.underlying.Len())
}

// Dispose releases the ring buffer and unblocks pending producers.
func (m *BoundedMailbox) Dispose() {
	m.underlying.Dispose()
}

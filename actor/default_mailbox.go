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

import "sync/atomic"

// mpscNode is a node of the MPSC queue specialized for *Envelope.
type mpscNode struct {
	next atomic.Pointer[mpscNode]
	data *Envelope
}

// DefaultMailbox is the default unbounded, lock-free mailbox.
//
// It is a multi-producer single-consumer FIFO queue: many goroutines may
// call Enqueue concurrently, exactly one goroutine calls Dequeue. Operations
// are non-blocking and rely on atomic pointer updates.
//
// The zero value is not usable; always construct via NewDefaultMailbox.
type DefaultMailbox struct {
	head atomic.Pointer[mpscNode] // consumer only
	_    [64]byte                 // keep producers and consumer on separate cache lines
	tail atomic.Pointer[mpscNode] // producers only
}

// enforce compilation error
var _ Mailbox = (*DefaultMailbox)(nil)

// NewDefaultMailbox creates an initialized DefaultMailbox. The queue starts
// with a stub node so producers can append by swapping the tail and linking
// through the previous node.
func NewDefaultMailbox() *DefaultMailbox {
	stub := new(mpscNode)
	mailbox := new(DefaultMailbox)
	mailbox.head.Store(stub)
	mailbox.tail.Store(stub)
	return mailbox
}

// Enqueue appends the envelope at the tail. Never blocks, always returns
// nil, safe for concurrent producers.
func (m *DefaultMailbox) Enqueue(envelope *Envelope) error {
	node := &mpscNode{data: envelope}
	prev := m.tail.Swap(node)
	prev.next.Store(node)
	return nil
}

// Dequeue removes and returns the envelope at the head, or nil when the
// mailbox is empty. Single consumer only.
func (m *DefaultMailbox) Dequeue() *Envelope {
	head := m.head.Load()
	next := head.next.Load()
	if next == nil {
		return nil
	}

	m.head.Store(next)
	envelope := next.data
	next.data = nil
	return envelope
}

// IsEmpty reports whether the mailbox has no envelopes. Under heavy
// contention it can briefly report empty between the tail swap and the
// link; no envelopes are lost.
func (m *DefaultMailbox) IsEmpty() bool {
	return m.head.Load().next.Load() == nil
}

// Len counts queued envelopes with a snapshot traversal; intended for
// diagnostics only.
func (m *DefaultMailbox) Len() int64 {
	var length int64
	for node := m.head.Load().next.Load(); node != nil; node = node.next.Load() {
		length++
	}
	return length
}

// Dispose drops all queued envelopes.
func (m *DefaultMailbox) Dispose() {
	for m.Dequeue() != nil { //nolint:revive
	}
}

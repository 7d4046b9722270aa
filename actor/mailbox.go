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

// Mailbox defines the contract for an actor's message queue.
//
// Implementations must be safe for multiple concurrent producers calling
// Enqueue; the receive loop consumes from a single goroutine, so Dequeue is
// only ever called by one consumer. Enqueue and Dequeue are non-blocking
// unless documented otherwise; Dequeue returns nil when empty. FIFO ordering
// is the default expectation.
type Mailbox interface {
	// Enqueue pushes an envelope into the mailbox. Bounded implementations
	// return an error when the mailbox cannot accept the envelope.
	Enqueue(envelope *Envelope) error
	// Dequeue fetches the next envelope, or nil when the mailbox is empty.
	Dequeue() *Envelope
	// IsEmpty reports whether the mailbox currently has no envelopes.
	// Best-effort snapshot under concurrency.
	IsEmpty() bool
	// Len returns a snapshot of the number of queued envelopes. May be
	// approximate under concurrency.
	Len() int64
	// Dispose releases resources and unblocks internal waiters. The mailbox
	// must not be used after Dispose returns.
	Dispose()
}

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

// Package trace provides 64-bit correlation identifiers propagated across a
// logical chain of actor interactions.
//
// An ID is laid out as follows, most significant bit first:
//
//	1  bit  always zero, reserved
//	25 bits truncated unix time in seconds
//	16 bits node number
//	22 bits monotonically increasing counter, never zero
//
// The layout makes IDs roughly time-sortable, attributable to the node that
// produced them, and unique within a ~1 year window per node as long as a
// single node generates fewer than 2^22 IDs per second.
package trace

import (
	"errors"
	"strconv"
	"time"

	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"
)

const (
	timestampBits = 25
	nodeBits      = 16
	counterBits   = 22

	timestampMask = (1 << timestampBits) - 1
	counterMask   = (1 << counterBits) - 1
)

// ErrInvalidID is returned by Parse when the input is not a valid trace id.
var ErrInvalidID = errors.New("trace id is invalid")

// ID is a correlation identifier for one logical unit of work.
// The zero value is invalid and means "no trace".
type ID uint64

var (
	nodeNo  = atomic.NewUint32(0)
	counter = atomic.NewUint64(0)
)

// SetNodeNo sets the node number stamped into every subsequently generated
// ID. It is normally called once at system startup, before any ID is
// generated; later calls only affect new IDs.
func SetNodeNo(node uint16) {
	nodeNo.Store(uint32(node))
}

// DeriveNodeNo derives a stable 16-bit node number from an arbitrary node
// name, e.g. a host name or a system name.
func DeriveNodeNo(name string) uint16 {
	return uint16(xxh3.HashString(name))
}

// Generate produces the next trace ID for this process.
//
// Generate is safe for concurrent use and never returns the invalid zero ID:
// the counter part skips zero on wrap-around.
func Generate() ID {
	count := counter.Inc() & counterMask
	if count == 0 {
		count = counter.Inc() & counterMask
	}

	timestamp := uint64(time.Now().Unix()) & timestampMask
	node := uint64(nodeNo.Load())

	return ID(timestamp<<(nodeBits+counterBits) | node<<counterBits | count)
}

// IsValid reports whether the ID is usable as a correlation token.
// The zero value and values with the reserved top bit set are invalid.
func (id ID) IsValid() bool {
	return id != 0 && id>>63 == 0
}

// Timestamp returns the truncated unix seconds the ID was generated at.
func (id ID) Timestamp() uint32 {
	return uint32(uint64(id) >> (nodeBits + counterBits) & timestampMask)
}

// NodeNo returns the node number embedded in the ID.
func (id ID) NodeNo() uint16 {
	return uint16(uint64(id) >> counterBits)
}

// Counter returns the counter part of the ID.
func (id ID) Counter() uint32 {
	return uint32(uint64(id) & counterMask)
}

// String renders the ID as a decimal number.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Parse parses the decimal form produced by String.
func Parse(text string) (ID, error) {
	raw, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	id := ID(raw)
	if !id.IsValid() {
		return 0, ErrInvalidID
	}
	return id, nil
}

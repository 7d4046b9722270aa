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

// Package address provides opaque identifiers for actors and actor groups.
//
// An Address packs a 16-bit node number together with a 47-bit local slot
// into a single 64-bit word, so it is cheap to copy, compare and embed in
// message envelopes. The zero value is reserved: it is the NoSender
// sentinel meaning "no originating actor".
package address

import (
	"errors"
	"strconv"
	"strings"
)

const (
	nodeBits = 16
	slotBits = 47

	maxSlot = (1 << slotBits) - 1
)

// NoSender is the reserved sentinel meaning that a message has no
// originating actor. It is the zero value of Address.
const NoSender Address = 0

// ErrInvalidAddress is returned by Parse when the input does not follow the
// "<node>v<slot>" form.
var ErrInvalidAddress = errors.New("address format is invalid")

// Address identifies a single actor or actor group within a running system.
//
// Addresses are opaque: callers must not rely on the numeric value beyond
// equality, copying and the NoSender sentinel. NodeNo and Slot are exposed
// for diagnostics only.
type Address uint64

// New creates an Address from a node number and a local slot.
//
// Slot zero on node zero would collide with NoSender, so New panics when
// both are zero, and when slot exceeds the addressable range. Address
// allocation is owned by the runtime; user code normally never calls New.
func New(node uint16, slot uint64) Address {
	switch {
	case node == 0 && slot == 0:
		panic("address: node 0 slot 0 is reserved for NoSender")
	case slot > maxSlot:
		panic("address: slot out of range")
	}
	return Address(uint64(node)<<slotBits | slot)
}

// NodeNo returns the node number part of the address.
func (a Address) NodeNo() uint16 {
	return uint16(a >> slotBits)
}

// Slot returns the node-local slot part of the address.
func (a Address) Slot() uint64 {
	return uint64(a) & maxSlot
}

// IsNoSender reports whether the address is the NoSender sentinel.
func (a Address) IsNoSender() bool {
	return a == NoSender
}

// Equals reports whether two addresses identify the same actor.
func (a Address) Equals(other Address) bool {
	return a == other
}

// String renders the address as "<node>v<slot>", or "nosender" for the
// sentinel value.
func (a Address) String() string {
	if a.IsNoSender() {
		return "nosender"
	}

	var buf [32]byte
	out := strconv.AppendUint(buf[:0], uint64(a.NodeNo()), 10)
	out = append(out, 'v')
	out = strconv.AppendUint(out, a.Slot(), 10)
	return string(out)
}

// Parse parses the canonical "<node>v<slot>" form produced by String.
// The literal "nosender" parses to NoSender.
func Parse(text string) (Address, error) {
	if text == "nosender" {
		return NoSender, nil
	}

	nodePart, slotPart, ok := strings.Cut(text, "v")
	if !ok {
		return NoSender, ErrInvalidAddress
	}

	node, err := strconv.ParseUint(nodePart, 10, 16)
	if err != nil {
		return NoSender, ErrInvalidAddress
	}

	slot, err := strconv.ParseUint(slotPart, 10, 64)
	if err != nil || slot > maxSlot {
		return NoSender, ErrInvalidAddress
	}

	if node == 0 && slot == 0 {
		return NoSender, ErrInvalidAddress
	}

	return New(uint16(node), slot), nil
}

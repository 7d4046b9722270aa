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

package trace

import (
	"encoding/binary"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// ToOTel converts the ID into a W3C/OpenTelemetry trace id.
//
// The 64-bit ID occupies the low 8 bytes of the 16-byte OTel id; the high
// 8 bytes are zero. This keeps the conversion loss-free in both directions
// for IDs minted by this package.
func (id ID) ToOTel() oteltrace.TraceID {
	var tid oteltrace.TraceID
	binary.BigEndian.PutUint64(tid[8:], uint64(id))
	return tid
}

// FromOTel extracts an ID from an OpenTelemetry trace id.
//
// Only the low 8 bytes are considered. The second return value is false when
// the resulting ID is not valid, e.g. for an all-zero OTel id or for foreign
// ids whose low word has the reserved top bit set.
func FromOTel(tid oteltrace.TraceID) (ID, bool) {
	id := ID(binary.BigEndian.Uint64(tid[8:]))
	return id, id.IsValid()
}

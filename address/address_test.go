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

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	t.Run("With happy path", func(t *testing.T) {
		addr := New(3, 42)
		assert.EqualValues(t, 3, addr.NodeNo())
		assert.EqualValues(t, 42, addr.Slot())
		assert.False(t, addr.IsNoSender())
		assert.Equal(t, "3v42", addr.String())
	})

	t.Run("With NoSender sentinel", func(t *testing.T) {
		assert.True(t, NoSender.IsNoSender())
		assert.Equal(t, "nosender", NoSender.String())
		var zero Address
		assert.True(t, zero.Equals(NoSender))
	})

	t.Run("With equality", func(t *testing.T) {
		assert.True(t, New(1, 7).Equals(New(1, 7)))
		assert.False(t, New(1, 7).Equals(New(1, 8)))
		assert.False(t, New(1, 7).Equals(New(2, 7)))
	})

	t.Run("With reserved value", func(t *testing.T) {
		assert.Panics(t, func() { New(0, 0) })
	})

	t.Run("With slot out of range", func(t *testing.T) {
		assert.Panics(t, func() { New(1, 1<<47) })
	})
}

func TestParse(t *testing.T) {
	t.Run("With round trip", func(t *testing.T) {
		addr := New(55, 4099)
		actual, err := Parse(addr.String())
		require.NoError(t, err)
		assert.True(t, actual.Equals(addr))
	})

	t.Run("With nosender literal", func(t *testing.T) {
		actual, err := Parse("nosender")
		require.NoError(t, err)
		assert.True(t, actual.IsNoSender())
	})

	t.Run("With invalid inputs", func(t *testing.T) {
		for _, input := range []string{"", "55", "v", "55v", "v4099", "av1", "1va", "0v0", "70000v1"} {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrInvalidAddress, "input=%s", input)
		}
	})
}

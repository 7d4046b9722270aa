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

package xsync

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("With set and get", func(t *testing.T) {
		m := NewMap[string, int]()
		m.Set("a", 1)
		m.Set("a", 2)

		value, ok := m.Get("a")
		require.True(t, ok)
		assert.Equal(t, 2, value)

		_, ok = m.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 1, m.Len())
	})
	t.Run("With get-or-set", func(t *testing.T) {
		m := NewMap[string, int]()

		value, loaded := m.GetOrSet("a", 1)
		assert.False(t, loaded)
		assert.Equal(t, 1, value)

		value, loaded = m.GetOrSet("a", 99)
		assert.True(t, loaded)
		assert.Equal(t, 1, value)
	})
	t.Run("With delete and reset", func(t *testing.T) {
		m := NewMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)

		m.Delete("a")
		m.Delete("absent")
		assert.Equal(t, 1, m.Len())

		m.Reset()
		assert.Zero(t, m.Len())
	})
	t.Run("With values snapshot", func(t *testing.T) {
		m := NewMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		assert.ElementsMatch(t, []int{1, 2}, m.Values())
	})
	t.Run("With concurrent writers racing get-or-set", func(t *testing.T) {
		m := NewMap[string, int]()
		const goroutines = 16

		var wg sync.WaitGroup
		wg.Add(goroutines)
		winners := make(chan int, goroutines)
		for g := 0; g < goroutines; g++ {
			go func(g int) {
				defer wg.Done()
				value, _ := m.GetOrSet("shared", g)
				winners <- value
			}(g)
		}
		wg.Wait()
		close(winners)

		first := <-winners
		for value := range winners {
			require.Equal(t, first, value, "all callers must observe the same winner")
		}
	})
	t.Run("With concurrent mixed access", func(t *testing.T) {
		m := NewMap[string, int]()
		var wg sync.WaitGroup
		wg.Add(8)
		for g := 0; g < 8; g++ {
			go func(g int) {
				defer wg.Done()
				for i := 0; i < 200; i++ {
					key := fmt.Sprintf("k%d", i%10)
					m.Set(key, g)
					m.Get(key)
					m.Len()
				}
			}(g)
		}
		wg.Wait()
		assert.Equal(t, 10, m.Len())
	})
}

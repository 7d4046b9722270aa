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

package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTicker(t *testing.T) {
	t.Run("With ticks delivered while started", func(t *testing.T) {
		ticker := New(time.Millisecond)
		ticker.Start()
		defer ticker.Stop()

		select {
		case <-ticker.Ticks:
		case <-time.After(time.Second):
			t.Fatal("no tick within a second")
		}
		assert.True(t, ticker.Ticking())
	})
	t.Run("With slow receivers missing ticks", func(t *testing.T) {
		ticker := New(time.Millisecond)
		ticker.Start()

		// nobody receives for a while; the ticker must not back up or block
		time.Sleep(20 * time.Millisecond)
		ticker.Stop()
		assert.False(t, ticker.Ticking())
	})
	t.Run("With start and stop idempotent", func(t *testing.T) {
		ticker := New(time.Millisecond)
		ticker.Start()
		ticker.Start()
		require.True(t, ticker.Ticking())
		ticker.Stop()
		ticker.Stop()
		require.False(t, ticker.Ticking())
	})
	t.Run("With restart after stop", func(t *testing.T) {
		ticker := New(time.Millisecond)
		ticker.Start()
		ticker.Stop()
		ticker.Start()
		defer ticker.Stop()

		select {
		case <-ticker.Ticks:
		case <-time.After(time.Second):
			t.Fatal("no tick after restart")
		}
	})
	t.Run("With an invalid interval", func(t *testing.T) {
		assert.Panics(t, func() { New(0) })
		assert.Panics(t, func() { New(-time.Second) })
	})
}

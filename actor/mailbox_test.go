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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperhq/vesper/address"
	"github.com/vesperhq/vesper/trace"
)

func TestDefaultMailbox(t *testing.T) {
	t.Run("With FIFO ordering", func(t *testing.T) {
		mailbox := NewDefaultMailbox()
		require.True(t, mailbox.IsEmpty())

		for i := 0; i < 10; i++ {
			require.NoError(t, mailbox.Enqueue(NewEnvelope(i, address.NoSender, trace.Generate())))
		}
		assert.EqualValues(t, 10, mailbox.Len())

		for i := 0; i < 10; i++ {
			envelope := mailbox.Dequeue()
			require.NotNil(t, envelope)
			assert.Equal(t, i, envelope.Message())
		}
		assert.Nil(t, mailbox.Dequeue())
		assert.True(t, mailbox.IsEmpty())
	})
	t.Run("With concurrent producers", func(t *testing.T) {
		mailbox := NewDefaultMailbox()
		const producers = 8
		const perProducer = 500

		var wg sync.WaitGroup
		wg.Add(producers)
		for p := 0; p < producers; p++ {
			go func(p int) {
				defer wg.Done()
				for i := 0; i < perProducer; i++ {
					_ = mailbox.Enqueue(NewEnvelope(fmt.Sprintf("%d/%d", p, i), address.NoSender, trace.Generate()))
				}
			}(p)
		}
		wg.Wait()

		seen := make(map[string]bool, producers*perProducer)
		for {
			envelope := mailbox.Dequeue()
			if envelope == nil {
				break
			}
			payload := envelope.Message().(string)
			require.False(t, seen[payload], "duplicate delivery of %s", payload)
			seen[payload] = true
		}
		assert.Len(t, seen, producers*perProducer)
	})
	t.Run("With dispose", func(t *testing.T) {
		mailbox := NewDefaultMailbox()
		for i := 0; i < 5; i++ {
			require.NoError(t, mailbox.Enqueue(NewEnvelope(i, address.NoSender, trace.Generate())))
		}
		mailbox.Dispose()
		assert.True(t, mailbox.IsEmpty())
		assert.Nil(t, mailbox.Dequeue())
	})
}

func TestBoundedMailbox(t *testing.T) {
	t.Run("With FIFO ordering", func(t *testing.T) {
		mailbox := NewBoundedMailbox(16)
		for i := 0; i < 16; i++ {
			require.NoError(t, mailbox.Enqueue(NewEnvelope(i, address.NoSender, trace.Generate())))
		}
		assert.EqualValues(t, 16, mailbox.Len())
		for i := 0; i < 16; i++ {
			envelope := mailbox.Dequeue()
			require.NotNil(t, envelope)
			assert.Equal(t, i, envelope.Message())
		}
		assert.True(t, mailbox.IsEmpty())
	})
	t.Run("With blocked producer released by consumer", func(t *testing.T) {
		mailbox := NewBoundedMailbox(1)
		require.NoError(t, mailbox.Enqueue(NewEnvelope("first", address.NoSender, trace.Generate())))

		unblocked := make(chan error, 1)
		go func() {
			unblocked <- mailbox.Enqueue(NewEnvelope("second", address.NoSender, trace.Generate()))
		}()

		first := mailbox.Dequeue()
		require.NotNil(t, first)
		assert.Equal(t, "first", first.Message())
		require.NoError(t, <-unblocked)

		second := mailbox.Dequeue()
		require.NotNil(t, second)
		assert.Equal(t, "second", second.Message())
	})
	t.Run("With dispose", func(t *testing.T) {
		mailbox := NewBoundedMailbox(4)
		require.NoError(t, mailbox.Enqueue(NewEnvelope("x", address.NoSender, trace.Generate())))
		mailbox.Dispose()
		assert.Nil(t, mailbox.Dequeue())
	})
}

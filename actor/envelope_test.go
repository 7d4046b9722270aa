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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperhq/vesper/address"
	"github.com/vesperhq/vesper/trace"
)

func TestEnvelope(t *testing.T) {
	t.Run("With regular kind", func(t *testing.T) {
		sender := address.New(1, 42)
		traceID := trace.Generate()
		envelope := NewEnvelope("payload", sender, traceID)

		assert.Equal(t, "payload", envelope.Message())
		assert.Equal(t, KindRegular, envelope.Kind())
		assert.Equal(t, sender, envelope.Sender())
		assert.Equal(t, traceID, envelope.TraceID())
	})
	t.Run("With request kind", func(t *testing.T) {
		replyTo := make(chan any, 1)
		envelope := NewRequestEnvelope("payload", address.NoSender, trace.Generate(), replyTo)
		assert.Equal(t, KindRequest, envelope.Kind())
	})
	t.Run("With kind names", func(t *testing.T) {
		assert.Equal(t, "regular", KindRegular.String())
		assert.Equal(t, "request", KindRequest.String())
	})
}

func TestPollState(t *testing.T) {
	assert.Equal(t, "pending", PollPending.String())
	assert.Equal(t, "ready", PollReady.String())
	assert.Equal(t, "exhausted", PollExhausted.String())
}

func TestMailboxSource(t *testing.T) {
	ctx := context.Background()

	t.Run("With a queued envelope", func(t *testing.T) {
		mailbox := NewDefaultMailbox()
		require.NoError(t, mailbox.Enqueue(NewEnvelope("x", address.NoSender, trace.Generate())))

		source := &mailboxSource{mailbox: mailbox}
		envelope, state := source.Poll(ctx)
		require.Equal(t, PollReady, state)
		assert.Equal(t, "x", envelope.Message())
	})
	t.Run("With an empty mailbox", func(t *testing.T) {
		source := &mailboxSource{mailbox: NewDefaultMailbox()}
		envelope, state := source.Poll(ctx)
		assert.Equal(t, PollPending, state)
		assert.Nil(t, envelope)
	})
}

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

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestLevel(t *testing.T) {
	t.Run("With string forms", func(t *testing.T) {
		assert.Equal(t, "debug", DebugLevel.String())
		assert.Equal(t, "warning", WarningLevel.String())
		assert.Equal(t, "invalid", InvalidLevel.String())
	})

	t.Run("With parse", func(t *testing.T) {
		assert.Equal(t, InfoLevel, ParseLevel("info"))
		assert.Equal(t, WarningLevel, ParseLevel("warn"))
		assert.Equal(t, ErrorLevel, ParseLevel("ERROR"))
		assert.Equal(t, InvalidLevel, ParseLevel("verbose"))
	})
}

func TestZap(t *testing.T) {
	t.Run("With level filtering", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.Debug("hidden")
		logger.Info("shown")

		output := buffer.String()
		assert.NotContains(t, output, "hidden")
		assert.Contains(t, output, "shown")
		assert.True(t, logger.Enabled(InfoLevel))
		assert.False(t, logger.Enabled(DebugLevel))
		assert.Equal(t, InfoLevel, logger.LogLevel())
	})

	t.Run("With structured fields", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer).With("actor", "1v2", "attempt", 3)
		logger.Info("hello")

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buffer.String())), &record))
		assert.Equal(t, "1v2", record["actor"])
		assert.EqualValues(t, 3, record["attempt"])
		assert.Equal(t, "hello", record["msg"])
	})
}

func TestDiscard(t *testing.T) {
	assert.False(t, DiscardLogger.Enabled(ErrorLevel))
	assert.True(t, DiscardLogger.Enabled(PanicLevel))
	assert.Same(t, DiscardLogger, DiscardLogger.With("k", "v"))
	assert.NoError(t, DiscardLogger.Flush())
	assert.Panics(t, func() { DiscardLogger.Panic("boom") })
}

func TestThrottled(t *testing.T) {
	t.Run("With drops above the budget", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		// no refill to speak of within the test, burst of 2
		limiter := rate.NewLimiter(rate.Limit(0.001), 2)
		logger := NewThrottled(NewZap(InfoLevel, buffer), limiter)

		for i := 0; i < 10; i++ {
			logger.Info("entry")
		}

		lines := strings.Count(buffer.String(), "\n")
		assert.Equal(t, 2, lines)
	})

	t.Run("With shared limiter across loggers", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		limiter := rate.NewLimiter(rate.Limit(0.001), 1)
		first := NewThrottled(NewZap(InfoLevel, buffer), limiter)
		second := NewThrottled(NewZap(InfoLevel, buffer), limiter)

		first.Info("one")
		second.Info("two")

		lines := strings.Count(buffer.String(), "\n")
		assert.Equal(t, 1, lines)
	})

	t.Run("With nil limiter", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewThrottled(NewZap(InfoLevel, buffer), nil)
		logger.Info("passes")
		assert.Contains(t, buffer.String(), "passes")
	})

	t.Run("With panic never throttled", func(t *testing.T) {
		limiter := rate.NewLimiter(rate.Limit(0.001), 0)
		logger := NewThrottled(DiscardLogger, limiter)
		assert.Panics(t, func() { logger.Panic("boom") })
	})
}

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

package scope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperhq/vesper/trace"
)

func TestAmbientFatal(t *testing.T) {
	outside := context.Background()

	t.Run("With FromContext", func(t *testing.T) {
		assert.Panics(t, func() { FromContext(outside) })
	})

	t.Run("With Expose", func(t *testing.T) {
		assert.Panics(t, func() { Expose(outside) })
	})

	t.Run("With With", func(t *testing.T) {
		assert.Panics(t, func() { With(outside, (*Scope).TraceID) })
	})

	t.Run("With TraceID", func(t *testing.T) {
		assert.Panics(t, func() { TraceID(outside) })
	})

	t.Run("With SetTraceID", func(t *testing.T) {
		assert.Panics(t, func() { SetTraceID(outside, trace.Generate()) })
	})

	t.Run("With CurrentMeta", func(t *testing.T) {
		assert.Panics(t, func() { CurrentMeta(outside) })
	})
}

func TestAmbientTolerant(t *testing.T) {
	outside := context.Background()

	t.Run("With absence markers", func(t *testing.T) {
		_, ok := TryFromContext(outside)
		assert.False(t, ok)

		_, ok = TryExpose(outside)
		assert.False(t, ok)

		_, ok = TryWith(outside, (*Scope).TraceID)
		assert.False(t, ok)

		_, ok = TryTraceID(outside)
		assert.False(t, ok)

		_, ok = TryCurrentMeta(outside)
		assert.False(t, ok)
	})

	t.Run("With closure not run on absence", func(t *testing.T) {
		ran := false
		_, ok := TryWith(outside, func(*Scope) any {
			ran = true
			return nil
		})
		assert.False(t, ok)
		assert.False(t, ran)
	})

	t.Run("With presence", func(t *testing.T) {
		current := newTestScope()
		current.SyncWithin(outside, func(ctx context.Context) {
			ambient, ok := TryFromContext(ctx)
			require.True(t, ok)
			assert.Same(t, current, ambient)

			traceID, ok := TryTraceID(ctx)
			require.True(t, ok)
			assert.Equal(t, current.TraceID(), traceID)

			meta, ok := TryCurrentMeta(ctx)
			require.True(t, ok)
			assert.Same(t, current.Meta(), meta)
		})
	})
}

func TestAmbientConveniences(t *testing.T) {
	t.Run("With trace id read and set", func(t *testing.T) {
		current := newTestScope()
		next := trace.Generate()

		current.SyncWithin(context.Background(), func(ctx context.Context) {
			assert.Equal(t, current.TraceID(), TraceID(ctx))
			SetTraceID(ctx, next)
			assert.Equal(t, next, TraceID(ctx))
		})

		// mutation through the ambient accessor hits the installed instance
		assert.Equal(t, next, current.TraceID())
	})

	t.Run("With closure reads avoiding duplication", func(t *testing.T) {
		current := newTestScope()
		current.SyncWithin(context.Background(), func(ctx context.Context) {
			group := With(ctx, func(s *Scope) string { return s.Meta().Group() })
			assert.Equal(t, "workers", group)
		})
	})

	t.Run("With expose duplicating", func(t *testing.T) {
		current := newTestScope()
		current.SyncWithin(context.Background(), func(ctx context.Context) {
			exposed := Expose(ctx)
			assert.NotSame(t, current, exposed)

			exposed.SetTraceID(trace.Generate())
			assert.NotEqual(t, exposed.TraceID(), TraceID(ctx))
		})
	})
}

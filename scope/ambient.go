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

	"github.com/vesperhq/vesper/trace"
)

const outsideRuntimeMsg = "scope: no scope installed, running outside the actor runtime"

// TryFromContext returns the installed scope, or false when the context
// carries none. Use it in code that must tolerate running outside the actor
// runtime. The returned scope is NOT a duplicate: it stays owned by the
// installing unit of work and must not be retained past the call site.
func TryFromContext(ctx context.Context) (*Scope, bool) {
	current, ok := ctx.Value(scopeKey{}).(*Scope)
	return current, ok
}

// FromContext returns the installed scope and panics when the context
// carries none. Running without an installed scope means the code escaped
// the runtime's control, which is a programming defect, not a recoverable
// condition. For a tolerant variant, see TryFromContext.
func FromContext(ctx context.Context) *Scope {
	current, ok := TryFromContext(ctx)
	if !ok {
		panic(outsideRuntimeMsg)
	}
	return current
}

// Expose duplicates the installed scope in order to send it to another
// goroutine. Panics when no scope is installed.
func Expose(ctx context.Context) *Scope {
	return FromContext(ctx).Clone()
}

// TryExpose duplicates the installed scope if inside the actor runtime.
func TryExpose(ctx context.Context) (*Scope, bool) {
	current, ok := TryFromContext(ctx)
	if !ok {
		return nil, false
	}
	return current.Clone(), true
}

// With runs the given closure with the installed scope, without duplicating
// it. Preferred over Expose when only a read is needed. Panics when no
// scope is installed.
func With[R any](ctx context.Context, fn func(*Scope) R) R {
	return fn(FromContext(ctx))
}

// TryWith runs the given closure with the installed scope, without
// duplicating it. Returns false, without running the closure, when no scope
// is installed. For a panicking variant, see With.
func TryWith[R any](ctx context.Context, fn func(*Scope) R) (R, bool) {
	current, ok := TryFromContext(ctx)
	if !ok {
		var zero R
		return zero, false
	}
	return fn(current), true
}

// TraceID returns the current trace id. Panics when no scope is installed.
func TraceID(ctx context.Context) trace.ID {
	return FromContext(ctx).TraceID()
}

// TryTraceID returns the current trace id if inside the actor runtime.
func TryTraceID(ctx context.Context) (trace.ID, bool) {
	return TryWith(ctx, (*Scope).TraceID)
}

// SetTraceID replaces the current trace id on the installed scope. Panics
// when no scope is installed.
func SetTraceID(ctx context.Context, traceID trace.ID) {
	FromContext(ctx).SetTraceID(traceID)
}

// CurrentMeta returns the current actor's identity metadata, sharing the
// reference. Panics when no scope is installed.
func CurrentMeta(ctx context.Context) *Meta {
	return FromContext(ctx).Meta()
}

// TryCurrentMeta returns the current actor's identity metadata if inside
// the actor runtime.
func TryCurrentMeta(ctx context.Context) (*Meta, bool) {
	return TryWith(ctx, (*Scope).Meta)
}

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

import "golang.org/x/time/rate"

// Throttled wraps a Logger with a shared rate limiter. Records above the
// limit are dropped silently, except Panic and Fatal which always go
// through. Several Throttled loggers may share one limiter, which is how a
// per-group logging budget is enforced across all actors of the group.
type Throttled struct {
	base    Logger
	limiter *rate.Limiter
}

// enforce compilation error
var _ Logger = (*Throttled)(nil)

// NewThrottled creates a rate-limited view over the given logger.
// The limiter is shared by reference, never copied.
func NewThrottled(base Logger, limiter *rate.Limiter) *Throttled {
	return &Throttled{
		base:    base,
		limiter: limiter,
	}
}

func (t *Throttled) allow() bool {
	return t.limiter == nil || t.limiter.Allow()
}

// Debug starts a message with debug level when within the rate budget.
func (t *Throttled) Debug(v ...any) {
	if t.allow() {
		t.base.Debug(v...)
	}
}

// Debugf starts a message with debug level when within the rate budget.
func (t *Throttled) Debugf(format string, v ...any) {
	if t.allow() {
		t.base.Debugf(format, v...)
	}
}

// Info starts a message with info level when within the rate budget.
func (t *Throttled) Info(v ...any) {
	if t.allow() {
		t.base.Info(v...)
	}
}

// Infof starts a message with info level when within the rate budget.
func (t *Throttled) Infof(format string, v ...any) {
	if t.allow() {
		t.base.Infof(format, v...)
	}
}

// Warn starts a message with warn level when within the rate budget.
func (t *Throttled) Warn(v ...any) {
	if t.allow() {
		t.base.Warn(v...)
	}
}

// Warnf starts a message with warn level when within the rate budget.
func (t *Throttled) Warnf(format string, v ...any) {
	if t.allow() {
		t.base.Warnf(format, v...)
	}
}

// Error starts a message with error level when within the rate budget.
func (t *Throttled) Error(v ...any) {
	if t.allow() {
		t.base.Error(v...)
	}
}

// Errorf starts a message with error level when within the rate budget.
func (t *Throttled) Errorf(format string, v ...any) {
	if t.allow() {
		t.base.Errorf(format, v...)
	}
}

// Panic is never throttled.
func (t *Throttled) Panic(v ...any) {
	t.base.Panic(v...)
}

// Panicf is never throttled.
func (t *Throttled) Panicf(format string, v ...any) {
	t.base.Panicf(format, v...)
}

// Fatal is never throttled.
func (t *Throttled) Fatal(v ...any) {
	t.base.Fatal(v...)
}

// Fatalf is never throttled.
func (t *Throttled) Fatalf(format string, v ...any) {
	t.base.Fatalf(format, v...)
}

// With returns a Throttled logger sharing the same limiter.
func (t *Throttled) With(keyValues ...any) Logger {
	return &Throttled{
		base:    t.base.With(keyValues...),
		limiter: t.limiter,
	}
}

// Enabled reports whether the given level is enabled on the wrapped logger.
func (t *Throttled) Enabled(level Level) bool {
	return t.base.Enabled(level)
}

// LogLevel returns the wrapped logger's level.
func (t *Throttled) LogLevel() Level {
	return t.base.LogLevel()
}

// Flush flushes the wrapped logger.
func (t *Throttled) Flush() error {
	return t.base.Flush()
}

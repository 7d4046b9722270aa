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
	"time"

	"golang.org/x/time/rate"

	"github.com/vesperhq/vesper/log"
)

const (
	// DefaultPollInterval is how often parked receive loops re-poll their
	// attached external sources.
	DefaultPollInterval = 10 * time.Millisecond

	// DefaultLoggingRate is the per-group logging budget in records per
	// second.
	DefaultLoggingRate rate.Limit = 100

	// DefaultLoggingBurst is the per-group logging burst size.
	DefaultLoggingBurst = 100
)

// Option configures a System at construction time.
type Option func(*System)

// WithLogger sets the base logger actors log through.
func WithLogger(logger log.Logger) Option {
	return func(x *System) {
		x.logger = logger
	}
}

// WithPollInterval sets how often parked receive loops re-poll their
// attached external sources.
func WithPollInterval(interval time.Duration) Option {
	return func(x *System) {
		x.pollInterval = interval
	}
}

// WithNodeNo overrides the node number derived from the system name. The
// node number is embedded in actor addresses and generated trace ids.
func WithNodeNo(node uint16) Option {
	return func(x *System) {
		x.nodeNo = node
	}
}

// WithLoggingRate sets the logging budget shared by each group's actors.
func WithLoggingRate(limit rate.Limit, burst int) Option {
	return func(x *System) {
		x.loggingRate = limit
		x.loggingBurst = burst
	}
}

type spawnConfig struct {
	mailbox Mailbox
}

// SpawnOption configures one actor at spawn time.
type SpawnOption func(*spawnConfig)

// WithMailbox replaces the default unbounded mailbox, e.g. with a
// BoundedMailbox for strict backpressure.
func WithMailbox(mailbox Mailbox) SpawnOption {
	return func(cfg *spawnConfig) {
		cfg.mailbox = mailbox
	}
}

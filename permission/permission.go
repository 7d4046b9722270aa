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

// Package permission provides the dynamically updatable policy attached to
// every actor group: which log levels may be emitted and which telemetry
// dimensions are recorded.
//
// The whole policy is packed into a single atomic word, so readers on the
// message hot path pay one atomic load and can never observe a torn update.
// All actors of a group share the same Store by reference; an update is
// visible to all of them immediately.
package permission

import (
	"go.uber.org/atomic"

	"github.com/vesperhq/vesper/log"
)

// Bit layout of the packed word, least significant bits first:
//
//	0..2  logging: 0 disabled, otherwise minimum enabled log.Level + 1
//	3     telemetry per actor group
//	4     telemetry per actor key
const (
	loggingMask          = 0b111
	telemetryPerGroupBit = 1 << 3
	telemetryPerKeyBit   = 1 << 4
)

// Permissions is a consistent point-in-time snapshot of a group's policy.
// It is a plain value: copy it freely, it never changes after Load.
type Permissions struct {
	bits uint64
}

// New builds a Permissions value. Pass log.InvalidLevel as minLevel to
// disable logging entirely.
func New(minLevel log.Level, telemetryPerGroup, telemetryPerKey bool) Permissions {
	var bits uint64
	if minLevel >= log.DebugLevel && minLevel <= log.FatalLevel {
		bits = uint64(minLevel) + 1
	}
	if telemetryPerGroup {
		bits |= telemetryPerGroupBit
	}
	if telemetryPerKey {
		bits |= telemetryPerKeyBit
	}
	return Permissions{bits: bits}
}

// IsLoggingEnabled reports whether records at the given level may be emitted.
func (p Permissions) IsLoggingEnabled(level log.Level) bool {
	stored := p.bits & loggingMask
	return stored != 0 && level >= log.Level(stored-1)
}

// LoggingMinLevel returns the minimum enabled level, or log.InvalidLevel
// when logging is disabled.
func (p Permissions) LoggingMinLevel() log.Level {
	stored := p.bits & loggingMask
	if stored == 0 {
		return log.InvalidLevel
	}
	return log.Level(stored - 1)
}

// IsTelemetryPerActorGroupEnabled reports whether per-group telemetry is on.
func (p Permissions) IsTelemetryPerActorGroupEnabled() bool {
	return p.bits&telemetryPerGroupBit != 0
}

// IsTelemetryPerActorKeyEnabled reports whether per-key telemetry is on.
func (p Permissions) IsTelemetryPerActorKeyEnabled() bool {
	return p.bits&telemetryPerKeyBit != 0
}

// Store holds the current Permissions of one actor group. It is read far
// more often than written: Load is a single atomic load, updates publish a
// whole new snapshot atomically.
//
// The zero value has everything disabled; use NewStore for the defaults.
type Store struct {
	bits atomic.Uint64
}

// NewStore creates a Store with the default policy: logging from info up,
// per-group telemetry on, per-key telemetry off.
func NewStore() *Store {
	store := new(Store)
	store.Update(New(log.InfoLevel, true, false))
	return store
}

// Load returns a consistent snapshot of the current policy. It never blocks
// and never allocates.
func (s *Store) Load() Permissions {
	return Permissions{bits: s.bits.Load()}
}

// Update atomically replaces the whole policy. Concurrent readers observe
// either the previous snapshot or this one, never a mix.
func (s *Store) Update(p Permissions) {
	s.bits.Store(p.bits)
}

// SetLoggingMinLevel atomically changes only the logging part of the policy.
// Pass log.InvalidLevel to disable logging.
func (s *Store) SetLoggingMinLevel(level log.Level) {
	var stored uint64
	if level >= log.DebugLevel && level <= log.FatalLevel {
		stored = uint64(level) + 1
	}
	for {
		old := s.bits.Load()
		next := old&^uint64(loggingMask) | stored
		if s.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

// SetTelemetryPerActorGroup atomically flips the per-group telemetry flag.
func (s *Store) SetTelemetryPerActorGroup(enabled bool) {
	s.setBit(telemetryPerGroupBit, enabled)
}

// SetTelemetryPerActorKey atomically flips the per-key telemetry flag.
func (s *Store) SetTelemetryPerActorKey(enabled bool) {
	s.setBit(telemetryPerKeyBit, enabled)
}

func (s *Store) setBit(bit uint64, enabled bool) {
	for {
		old := s.bits.Load()
		next := old &^ bit
		if enabled {
			next = old | bit
		}
		if s.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

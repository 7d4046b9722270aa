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

// Package ticker provides a time ticker with non-blocking delivery: slow
// receivers miss ticks instead of backing up the sender.
package ticker

import (
	"sync"
	"time"
)

// Ticker delivers ticks on Ticks at fixed intervals while started. Ticks
// that find no receiver are dropped.
type Ticker struct {
	Ticks chan time.Time

	interval time.Duration
	mutex    sync.Mutex
	ticking  bool
	stop     chan struct{}
}

// New creates a Ticker that ticks at the given interval once started.
// It panics when interval is not positive.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		panic("ticker: interval must be greater than zero")
	}
	return &Ticker{
		Ticks:    make(chan time.Time),
		interval: interval,
	}
}

// Start begins delivering ticks. Calling Start on a running ticker is a
// no-op.
func (t *Ticker) Start() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.ticking {
		return
	}
	t.ticking = true
	t.stop = make(chan struct{})
	go t.loop(t.stop)
}

// Stop halts tick delivery. No ticks arrive after Stop returns and before
// Start is called again.
func (t *Ticker) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if !t.ticking {
		return
	}
	t.ticking = false
	close(t.stop)
}

// Ticking reports whether the ticker is currently delivering ticks.
func (t *Ticker) Ticking() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.ticking
}

func (t *Ticker) loop(stop <-chan struct{}) {
	source := time.NewTicker(t.interval)
	defer source.Stop()
	for {
		select {
		case tick := <-source.C:
			select {
			case t.Ticks <- tick:
			default:
			}
		case <-stop:
			return
		}
	}
}

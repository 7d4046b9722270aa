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
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/vesperhq/vesper/address"
	"github.com/vesperhq/vesper/internal/ticker"
	"github.com/vesperhq/vesper/log"
	"github.com/vesperhq/vesper/scope"
	"github.com/vesperhq/vesper/trace"
)

// PID is the runtime handle of one spawned actor.
//
// It owns the single goroutine that multiplexes the actor's mailbox with
// any attached external sources and installs the actor's execution scope
// around every delivered envelope. All PID methods are safe for concurrent
// use; the scope itself stays confined to the receive goroutine.
type PID struct {
	actor     Actor
	address   address.Address
	groupAddr address.Address
	meta      *scope.Meta

	// owned by the receive goroutine; transferred back on shutdown
	scope *scope.Scope

	mailbox    Mailbox
	mailboxSrc Source

	sourcesMu sync.Mutex
	sources   []Source

	// signal has capacity one: producers ping it after every enqueue and
	// drop the ping when one is already pending
	signal     chan struct{}
	stopSignal chan struct{}
	done       chan struct{}
	stopped    *atomic.Bool

	pacer  *ticker.Ticker
	logger log.Logger
}

func newPID(actor Actor, sc *scope.Scope, mailbox Mailbox, pollInterval time.Duration, logger log.Logger) *PID {
	pid := &PID{
		actor:      actor,
		address:    sc.Actor(),
		groupAddr:  sc.Group(),
		meta:       sc.Meta(),
		scope:      sc,
		mailbox:    mailbox,
		mailboxSrc: &mailboxSource{mailbox: mailbox},
		signal:     make(chan struct{}, 1),
		stopSignal: make(chan struct{}),
		done:       make(chan struct{}),
		stopped:    atomic.NewBool(false),
		pacer:      ticker.New(pollInterval),
	}
	pid.logger = log.NewThrottled(logger, sc.LoggingLimiter()).
		With("actor", pid.address.String(), "group", sc.Meta().Group())
	return pid
}

// Address returns the actor's address.
func (p *PID) Address() address.Address {
	return p.address
}

// GroupAddress returns the address of the actor's group.
func (p *PID) GroupAddress() address.Address {
	return p.groupAddr
}

// Meta returns the actor's identity metadata.
func (p *PID) Meta() *scope.Meta {
	return p.meta
}

// Logger returns the actor's logger, throttled by the group's shared rate
// limiter.
func (p *PID) Logger() log.Logger {
	return p.logger
}

// IsRunning reports whether the actor still accepts messages.
func (p *PID) IsRunning() bool {
	return !p.stopped.Load()
}

// Attach adds an external source to the set polled by the receive loop,
// alongside the mailbox. Sources stay attached for the lifetime of the
// actor: an exhausted or closed source simply polls as pending.
func (p *PID) Attach(source Source) {
	p.sourcesMu.Lock()
	p.sources = append(p.sources, source)
	p.sourcesMu.Unlock()
	p.ping()
}

// Tell enqueues an ordinary message for the actor.
//
// When the caller runs inside the runtime, the envelope carries the
// caller's address and current trace id, continuing the trace across
// actors; otherwise the sender is address.NoSender and a fresh trace id is
// generated.
func (p *PID) Tell(ctx context.Context, message any) error {
	if p.stopped.Load() {
		return ErrDead
	}
	sender, traceID := stamp(ctx)
	return p.push(NewEnvelope(message, sender, traceID))
}

// Ask sends a request and waits for the reply, at most for the given
// timeout.
func (p *PID) Ask(ctx context.Context, message any, timeout time.Duration) (any, error) {
	if p.stopped.Load() {
		return nil, ErrDead
	}

	sender, traceID := stamp(ctx)
	replyTo := make(chan any, 1)
	if err := p.push(NewRequestEnvelope(message, sender, traceID, replyTo)); err != nil {
		return nil, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reply := <-replyTo:
		return reply, nil
	case <-timer.C:
		return nil, ErrRequestTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Shutdown stops the receive loop, delivers the envelopes already accepted
// into the mailbox, and runs the actor's PostStop hook. It is idempotent;
// concurrent calls beyond the first return immediately.
func (p *PID) Shutdown(ctx context.Context) error {
	if !p.stopped.CompareAndSwap(false, true) {
		return nil
	}

	close(p.stopSignal)
	<-p.done
	p.mailbox.Dispose()

	// the receive goroutine has exited: scope ownership is back with us
	var err error
	p.scope.SyncWithin(ctx, func(ctx context.Context) {
		err = p.actor.PostStop(ctx)
	})
	return err
}

func (p *PID) push(envelope *Envelope) error {
	if err := p.mailbox.Enqueue(envelope); err != nil {
		return err
	}
	p.ping()
	return nil
}

func (p *PID) ping() {
	select {
	case p.signal <- struct{}{}:
	default:
	}
}

// run is the receive loop. It drains the mailbox and every attached source
// until all report pending, then parks until the next enqueue ping or
// pacer tick. The pacer exists because external sources have no way to
// ping: progress on them is discovered by re-polling.
func (p *PID) run(ctx context.Context) {
	defer close(p.done)

	p.pacer.Start()
	defer p.pacer.Stop()

	for {
		p.drain(ctx)

		select {
		case <-p.stopSignal:
			p.drainMailbox(ctx)
			return
		case <-p.signal:
		case <-p.pacer.Ticks:
		}
	}
}

func (p *PID) drain(ctx context.Context) {
	for {
		progressed := false

		if envelope, state := p.mailboxSrc.Poll(ctx); state == PollReady {
			p.deliver(ctx, envelope)
			progressed = true
		}

		for _, source := range p.snapshotSources() {
			envelope, state := source.Poll(ctx)
			switch state {
			case PollReady:
				p.deliver(ctx, envelope)
				progressed = true
			case PollExhausted:
				// one-shot transition signal; the source stays attached and
				// polls as pending from now on
				p.logger.Debug("attached source exhausted")
				progressed = true
			case PollPending:
			}
		}

		if !progressed {
			return
		}
	}
}

func (p *PID) drainMailbox(ctx context.Context) {
	for {
		envelope, state := p.mailboxSrc.Poll(ctx)
		if state != PollReady {
			return
		}
		p.deliver(ctx, envelope)
	}
}

func (p *PID) deliver(ctx context.Context, envelope *Envelope) {
	p.scope.SetTraceID(envelope.TraceID())
	p.scope.SyncWithin(ctx, func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				if p.scope.Permissions().IsLoggingEnabled(log.ErrorLevel) {
					p.logger.Errorf("recovered from panic while handling %T: %v", envelope.Message(), r)
				}
			}
		}()
		p.actor.Receive(newMessageContext(ctx, envelope, p))
	})
}

func (p *PID) snapshotSources() []Source {
	p.sourcesMu.Lock()
	defer p.sourcesMu.Unlock()
	return p.sources[:len(p.sources):len(p.sources)]
}

// stamp derives the sender address and trace id for an outgoing envelope
// from the ambient scope when the caller runs inside the runtime.
func stamp(ctx context.Context) (address.Address, trace.ID) {
	if current, ok := scope.TryFromContext(ctx); ok {
		return current.Actor(), current.TraceID()
	}
	return address.NoSender, trace.Generate()
}

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
	"strings"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/vesperhq/vesper/address"
	"github.com/vesperhq/vesper/internal/xsync"
	"github.com/vesperhq/vesper/log"
	"github.com/vesperhq/vesper/permission"
	"github.com/vesperhq/vesper/scope"
	"github.com/vesperhq/vesper/trace"
)

// group holds the state shared by reference among all actors of one group:
// its address, its policy store and its logging limiter.
type group struct {
	name        string
	address     address.Address
	permissions *permission.Store
	limiter     *rate.Limiter
}

// System owns address allocation, per-group shared policy state and the
// lifecycle of spawned actors. All methods are safe for concurrent use.
type System struct {
	name         string
	nodeNo       uint16
	logger       log.Logger
	pollInterval time.Duration
	loggingRate  rate.Limit
	loggingBurst int

	slots   *atomic.Uint64
	groups  *xsync.Map[string, *group]
	byName  *xsync.Map[string, *PID]
	byAddr  *xsync.Map[address.Address, *PID]
	stopped *atomic.Bool
}

// NewSystem creates an actor system.
//
// The node number embedded in addresses and trace ids is derived from the
// system name unless overridden with WithNodeNo; it is published to the
// trace package so that every generated trace id is attributable to this
// node.
func NewSystem(name string, opts ...Option) *System {
	x := &System{
		name:         name,
		nodeNo:       trace.DeriveNodeNo(name),
		logger:       log.DefaultLogger,
		pollInterval: DefaultPollInterval,
		loggingRate:  DefaultLoggingRate,
		loggingBurst: DefaultLoggingBurst,
		slots:        atomic.NewUint64(0),
		groups:       xsync.NewMap[string, *group](),
		byName:       xsync.NewMap[string, *PID](),
		byAddr:       xsync.NewMap[address.Address, *PID](),
		stopped:      atomic.NewBool(false),
	}
	for _, opt := range opts {
		opt(x)
	}

	trace.SetNodeNo(x.nodeNo)
	return x
}

// Name returns the system name.
func (x *System) Name() string {
	return x.name
}

// NodeNo returns the node number of this system instance.
func (x *System) NodeNo() uint16 {
	return x.nodeNo
}

// Logger returns the system's base logger.
func (x *System) Logger() log.Logger {
	return x.logger
}

// Spawn starts an actor of the given group under the given key and returns
// its PID. The key must be unique within the group; pass "" for singleton
// groups. The actor's PreStart hook runs synchronously, with the actor's
// scope already installed, before the first message can be delivered.
func (x *System) Spawn(ctx context.Context, groupName, key string, actor Actor, opts ...SpawnOption) (*PID, error) {
	if x.stopped.Load() {
		return nil, ErrSystemStopped
	}

	cfg := spawnConfig{mailbox: NewDefaultMailbox()}
	for _, opt := range opts {
		opt(&cfg)
	}

	grp := x.ensureGroup(groupName)
	meta := scope.NewMeta(groupName, key)
	addr := address.New(x.nodeNo, x.slots.Inc())
	sc := scope.New(addr, grp.address, meta, grp.permissions, grp.limiter)

	pid := newPID(actor, sc, cfg.mailbox, x.pollInterval, x.logger)
	if _, taken := x.byName.GetOrSet(actorName(groupName, key), pid); taken {
		return nil, ErrActorAlreadyExists
	}

	var preStartErr error
	sc.SyncWithin(ctx, func(ctx context.Context) {
		preStartErr = actor.PreStart(ctx)
	})
	if preStartErr != nil {
		x.byName.Delete(actorName(groupName, key))
		return nil, preStartErr
	}

	x.byAddr.Set(addr, pid)
	go pid.run(context.Background())

	x.logger.Debugf("spawned actor %s in group %s", addr, groupName)
	return pid, nil
}

// Lookup finds a spawned actor by group and key.
func (x *System) Lookup(groupName, key string) (*PID, bool) {
	return x.byName.Get(actorName(groupName, key))
}

// LookupAddr finds a spawned actor by address.
func (x *System) LookupAddr(addr address.Address) (*PID, bool) {
	return x.byAddr.Get(addr)
}

// Permissions returns the policy store shared by all actors of the given
// group, creating the group when it does not exist yet. The supervision or
// configuration layer updates policy through this store; running actors
// observe the update on their next snapshot load.
func (x *System) Permissions(groupName string) *permission.Store {
	return x.ensureGroup(groupName).permissions
}

// Stop shuts down one actor and forgets it.
func (x *System) Stop(ctx context.Context, pid *PID) error {
	x.byAddr.Delete(pid.Address())
	x.byName.Delete(actorName(pid.Meta().Group(), pid.Meta().Key()))
	return pid.Shutdown(ctx)
}

// Shutdown stops every actor, in parallel, and marks the system stopped.
// Subsequent Spawn calls fail with ErrSystemStopped. It is idempotent.
func (x *System) Shutdown(ctx context.Context) error {
	if !x.stopped.CompareAndSwap(false, true) {
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, pid := range x.byAddr.Values() {
		pid := pid
		eg.Go(func() error {
			return pid.Shutdown(egCtx)
		})
	}
	err := eg.Wait()

	x.byAddr.Reset()
	x.byName.Reset()
	x.logger.Debugf("actor system %s stopped", x.name)
	return err
}

func (x *System) ensureGroup(name string) *group {
	if existing, ok := x.groups.Get(name); ok {
		return existing
	}

	created := &group{
		name:        name,
		address:     address.New(x.nodeNo, x.slots.Inc()),
		permissions: permission.NewStore(),
		limiter:     rate.NewLimiter(x.loggingRate, x.loggingBurst),
	}
	existing, _ := x.groups.GetOrSet(name, created)
	return existing
}

func actorName(groupName, key string) string {
	var builder strings.Builder
	builder.Grow(len(groupName) + 1 + len(key))
	_, _ = builder.WriteString(groupName)
	_ = builder.WriteByte('/')
	_, _ = builder.WriteString(key)
	return builder.String()
}

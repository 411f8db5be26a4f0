package churn

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/compactroute/engine/netview"
	"github.com/compactroute/engine/oracle"
	"github.com/compactroute/engine/pie"
	"github.com/compactroute/engine/tzoracle"
)

const rebuildKey = "rebuild"

// Controller tracks neighbor liveness over a base topology and rebuilds
// the routing snapshot behind an oracle.Handle whenever nodes are
// declared dead. It is the only writer of the handle it owns; callers
// read through Handle() and never mutate the snapshot directly.
type Controller struct {
	base      *netview.View
	seed      int64
	heartbeat int64

	suspectMultiplier int64
	deadMultiplier    int64

	mu     sync.RWMutex
	clocks map[string]*atomic.Int64
	dead   map[string]struct{}

	listenersMu sync.Mutex
	listeners   []func(generation uint64)

	group  singleflight.Group
	handle *oracle.Handle
	logger zerolog.Logger
}

// NewController builds a Controller over base, embeds and builds an
// initial oracle from the full topology (generation 0), and returns once
// that snapshot is installed. heartbeat is the caller's heartbeat period
// expressed in whatever monotonic unit OnLiveness's clock argument uses
// (nanoseconds if driven by time.Now().UnixNano(), simulated round
// numbers in the harness); suspect/dead thresholds are multiples of it.
func NewController(base *netview.View, seed int64, heartbeat int64, opts ...Option) (*Controller, error) {
	c := &Controller{
		base:              base,
		seed:              seed,
		heartbeat:         heartbeat,
		suspectMultiplier: defaultSuspectMultiplier,
		deadMultiplier:    defaultDeadMultiplier,
		clocks:            make(map[string]*atomic.Int64),
		dead:              make(map[string]struct{}),
		logger:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	snap, err := c.buildSnapshot(nil, 0)
	if err != nil {
		return nil, err
	}
	c.handle = oracle.NewHandle(snap)
	for _, id := range base.Nodes() {
		c.clocks[id] = &atomic.Int64{}
	}
	return c, nil
}

// Handle returns the shared, atomically-swapped routing snapshot. The
// forwarding FSM reads through it once per hop.
func (c *Controller) Handle() *oracle.Handle {
	return c.handle
}

// SuspectThreshold and DeadThreshold return the configured timeout
// windows (multiplier × heartbeat), in the same unit as the clock values
// passed to OnLiveness and Tick.
func (c *Controller) SuspectThreshold() int64 { return c.suspectMultiplier * c.heartbeat }
func (c *Controller) DeadThreshold() int64    { return c.deadMultiplier * c.heartbeat }

// OnLiveness records a monotonic heartbeat clock value for neighbor. A
// lower or equal clock than what is already stored is ignored (the
// liveness clock is monotonic per spec; out-of-order delivery must not
// roll it back). Recording a heartbeat does not itself revive a node
// already in the dead-set — declare that recovery through Tick/rebuild
// semantics of the caller's own topology edit, since this controller
// only ever shrinks the live set.
func (c *Controller) OnLiveness(neighbor string, clock int64) {
	c.mu.RLock()
	cell, ok := c.clocks[neighbor]
	c.mu.RUnlock()
	if !ok {
		c.mu.Lock()
		cell, ok = c.clocks[neighbor]
		if !ok {
			cell = &atomic.Int64{}
			c.clocks[neighbor] = cell
		}
		c.mu.Unlock()
	}
	for {
		cur := cell.Load()
		if clock <= cur {
			return
		}
		if cell.CompareAndSwap(cur, clock) {
			return
		}
	}
}

// Tick sweeps the liveness store against now and declares dead every
// tracked node whose last heartbeat is at least DeadThreshold stale.
// Newly-dead ids are returned and each triggers OnDeath. Callers own the
// clock: nothing here reads a wall-clock source, so the same sequence of
// Tick calls reproduces the same dead-set regardless of wall-clock
// scheduling jitter.
func (c *Controller) Tick(now int64) []string {
	deadline := now - c.DeadThreshold()

	c.mu.RLock()
	var newlyDead []string
	for id, cell := range c.clocks {
		if _, already := c.dead[id]; already {
			continue
		}
		if cell.Load() <= deadline {
			newlyDead = append(newlyDead, id)
		}
	}
	c.mu.RUnlock()

	for _, id := range newlyDead {
		c.OnDeath(id)
	}
	return newlyDead
}

// OnDeath marks node dead and schedules a rebuild. Idempotent: a node
// already in the dead-set triggers no additional rebuild.
func (c *Controller) OnDeath(node string) {
	c.mu.Lock()
	if _, already := c.dead[node]; already {
		c.mu.Unlock()
		return
	}
	c.dead[node] = struct{}{}
	deadCount := len(c.dead)
	c.mu.Unlock()

	c.logger.Info().Str("node", node).Int("dead_count", deadCount).Msg("node declared dead")
	c.scheduleRebuild()
}

// NotifyGeneration registers a callback invoked, in registration order,
// after every successful snapshot swap.
func (c *Controller) NotifyGeneration(cb func(generation uint64)) {
	c.listenersMu.Lock()
	c.listeners = append(c.listeners, cb)
	c.listenersMu.Unlock()
}

func (c *Controller) scheduleRebuild() {
	c.mu.RLock()
	before := len(c.dead)
	c.mu.RUnlock()

	_, _, _ = c.group.Do(rebuildKey, func() (any, error) {
		c.runRebuild()
		return nil, nil
	})

	c.mu.RLock()
	after := len(c.dead)
	c.mu.RUnlock()
	if after != before {
		// Dead-set grew while the rebuild above was in flight; the
		// singleflight call that observed the growth already
		// returned (coalesced onto the in-flight call), so schedule
		// one more rebuild against the current snapshot.
		c.scheduleRebuild()
	}
}

func (c *Controller) runRebuild() {
	start := time.Now()

	c.mu.RLock()
	exclude := make(map[string]struct{}, len(c.dead))
	for id := range c.dead {
		exclude[id] = struct{}{}
	}
	c.mu.RUnlock()

	prevGen := c.handle.Generation()
	snap, err := c.buildSnapshot(exclude, prevGen+1)
	if err != nil {
		c.logger.Error().Err(err).Msg("rebuild aborted, old snapshot retained")
		return
	}

	c.handle.Store(snap)
	elapsed := time.Since(start)
	c.logger.Info().
		Uint64("generation", snap.Generation).
		Int("dead_count", len(exclude)).
		Dur("elapsed", elapsed).
		Msg("rebuild complete")

	c.listenersMu.Lock()
	listeners := append([]func(uint64){}, c.listeners...)
	c.listenersMu.Unlock()
	for _, cb := range listeners {
		cb(snap.Generation)
	}
}

// buildSnapshot embeds and builds a TZ oracle over base minus exclude.
// pie.Embed covers only its root's component (the max-degree node's) and
// tzoracle.Build only the largest component; these need not be the same
// component. Every other component is logged and left out: it gets no
// coordinates and no TZ tables, and it is not embedded or built on its
// own, so packets to its nodes fail as Disconnected.
func (c *Controller) buildSnapshot(exclude map[string]struct{}, generation uint64) (*oracle.Snapshot, error) {
	view := c.base
	if len(exclude) > 0 {
		view = c.base.Subgraph(exclude)
	}

	reg, tree, regDisconnected, err := pie.Embed(view, c.seed)
	if err != nil {
		return nil, err
	}
	tz, tzDisconnected, err := tzoracle.Build(view, c.seed)
	if err != nil {
		return nil, err
	}
	for _, d := range regDisconnected {
		c.logger.Warn().Int("size", len(d.Nodes)).Msg("component excluded from routing coordinates")
	}
	for _, d := range tzDisconnected {
		c.logger.Warn().Int("size", len(d.Nodes)).Msg("component excluded from TZ oracle")
	}

	return &oracle.Snapshot{
		Routing:    reg,
		Tree:       tree,
		TZ:         tz,
		View:       view,
		Generation: generation,
	}, nil
}

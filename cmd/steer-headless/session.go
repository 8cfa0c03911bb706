package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/plus3/steer/config"
	"github.com/plus3/steer/ecs"
	"github.com/plus3/steer/sim"
	"github.com/plus3/steer/vmath"
	"go.uber.org/zap"
)

// Bot scripts commander input: it picks a new move target inside the world every
// retarget seconds and fires at the nearest obstacle while one exists.
type Bot struct {
	rng      *rand.Rand
	bounds   sim.Bounds
	retarget float64
	next     float64
	target   vmath.Vec2
}

func NewBot(seed uint64, session int, bounds sim.Bounds, retarget float64) *Bot {
	return &Bot{
		rng:      rand.New(rand.NewPCG(seed, uint64(session))),
		bounds:   bounds,
		retarget: retarget,
	}
}

func (b *Bot) Intent(now float64, entities []sim.EntityState) sim.Intent {
	if now >= b.next {
		b.target = vmath.V(
			b.bounds.Min.X+b.rng.Float32()*(b.bounds.Max.X-b.bounds.Min.X),
			b.bounds.Min.Y+b.rng.Float32()*(b.bounds.Max.Y-b.bounds.Min.Y),
		)
		b.next = now + b.retarget
	}
	intent := sim.Intent{Move: sim.MoveTarget, Target: b.target}

	var origin vmath.Vec2
	for _, e := range entities {
		if e.Kind == sim.KindCommander {
			origin = e.Position
			break
		}
	}

	best := float32(-1)
	for _, e := range entities {
		if e.Kind != sim.KindObstacle {
			continue
		}
		if d := origin.Distance(e.Position); best < 0 || d < best {
			best = d
			intent.Fire = sim.FireActive
			intent.FireTarget = e.Position
		}
	}
	return intent
}

// lifecycleCounter tallies observer notifications per kind.
type lifecycleCounter struct {
	spawned   map[sim.Kind]int
	despawned int
}

func newLifecycleCounter() *lifecycleCounter {
	return &lifecycleCounter{spawned: make(map[sim.Kind]int)}
}

func (c *lifecycleCounter) OnSpawn(ev sim.SpawnEvent) { c.spawned[ev.Kind]++ }

func (c *lifecycleCounter) OnDespawn(ecs.EntityId) { c.despawned++ }

// SessionResult summarises one headless session.
type SessionResult struct {
	Session     int
	Ticks       int64
	SimTime     float64
	TickTime    Stats
	Projectiles int
	Despawned   int
	Remaining   int
	Commander   sim.EntityState
	Systems     []ecs.SystemStats
	Storage     *ecs.StorageStats
	Interrupted bool
}

type sessionOptions struct {
	seed     uint64
	session  int
	dt       float32
	duration time.Duration
	retarget float64
}

func runSession(ctx context.Context, cfg config.Config, opts sessionOptions, logger *zap.Logger) (*SessionResult, error) {
	counter := newLifecycleCounter()
	world, err := sim.New(cfg, sim.WithObserver(counter), sim.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("session %d: %w", opts.session, err)
	}

	bot := NewBot(opts.seed, opts.session, world.Bounds(), opts.retarget)
	steps := int64(math.Round(opts.duration.Seconds() / float64(opts.dt)))

	result := &SessionResult{Session: opts.session}
	result.TickTime.Samples = make([]time.Duration, 0, steps)

	for i := int64(0); i < steps; i++ {
		if err := ctx.Err(); err != nil {
			result.Interrupted = true
			logger.Warn("session interrupted", zap.Int64("tick", i), zap.Error(err))
			break
		}

		intent := bot.Intent(world.Now(), world.Entities())
		start := time.Now()
		if err := world.TickWith(opts.dt, intent); err != nil {
			return nil, fmt.Errorf("session %d tick %d: %w", opts.session, i, err)
		}
		result.TickTime.Samples = append(result.TickTime.Samples, time.Since(start))
		result.Ticks++
	}

	result.TickTime.Finalize()
	result.SimTime = world.Now()
	result.Projectiles = counter.spawned[sim.KindProjectile]
	result.Despawned = counter.despawned
	result.Remaining = len(world.Entities())
	result.Commander, _ = world.Commander()
	result.Systems = world.Scheduler().GetStats().Systems
	result.Storage = world.Storage().CollectStats()

	logger.Info("session finished",
		zap.Int64("ticks", result.Ticks),
		zap.Int("projectiles", result.Projectiles),
		zap.Int("despawned", result.Despawned),
	)
	return result, nil
}

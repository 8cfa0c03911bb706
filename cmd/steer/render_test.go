package main

import (
	"strings"
	"testing"

	"github.com/plus3/steer/config"
	"github.com/plus3/steer/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindColorsAreDistinct(t *testing.T) {
	seen := make(map[[4]uint8]sim.Kind)
	for _, k := range []sim.Kind{sim.KindUnknown, sim.KindCommander, sim.KindProjectile, sim.KindObstacle} {
		c := kindColor(k)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		prev, dup := seen[key]
		assert.False(t, dup, "%v shares a colour with %v", k, prev)
		seen[key] = k
	}
}

func TestHUDText(t *testing.T) {
	cfg := config.Default()
	cfg.Obstacles = []config.Obstacle{{X: 100, Y: 0, Radius: 10}, {X: -100, Y: 0, Radius: 10}}
	world, err := sim.New(cfg)
	require.NoError(t, err)
	require.NoError(t, world.Tick(0.5))

	lines := strings.Split(hudText(world), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "t=0.5s  frame 1", lines[0])
	assert.Equal(t, "obstacles 2  projectiles 0", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "pos (0, 0)"), lines[2])
}

package sim

import (
	"testing"

	"github.com/plus3/steer/steering"
	"github.com/plus3/steer/vmath"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

const eps = 1e-4

func TestApplyForce(t *testing.T) {
	tests := []struct {
		name     string
		velocity vmath.Vec2
		force    vmath.Vec2
		maxForce float32
		want     vmath.Vec2
	}{
		{"small force passes through", vmath.V(0, 0), vmath.V(5, 0), 100, vmath.V(5, 0)},
		{"force clamped", vmath.V(0, 0), vmath.V(0, 50), 10, vmath.V(0, 10)},
		{"velocity clamped to max speed", vmath.V(90, 0), vmath.V(50, 0), 100, vmath.V(100, 0)},
		{"braking", vmath.V(40, 0), vmath.V(-2, 0), 100, vmath.V(38, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyForce(tt.velocity, tt.force, tt.maxForce)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestAdvance(t *testing.T) {
	got := Advance(vmath.V(0, 0), vmath.V(10, -20), 0.1)
	assert.InDelta(t, 1, got.X, eps)
	assert.InDelta(t, -2, got.Y, eps)
	assert.Equal(t, vmath.V(3, 4), Advance(vmath.V(3, 4), vmath.V(10, -20), 0))
}

func TestBoundsClamp(t *testing.T) {
	b := DefaultBounds
	assert.Equal(t, vmath.V(300, 200), b.Clamp(vmath.V(1000, 1000)))
	assert.Equal(t, vmath.V(-300, -200), b.Clamp(vmath.V(-1000, -1000)))
	assert.Equal(t, vmath.V(300, 10), b.Clamp(vmath.V(301, 10)), "axes are clamped independently")
	assert.Equal(t, vmath.V(5, 5), b.Clamp(vmath.V(5, 5)))
}

func TestApplyForceNeverExceedsMaxSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := vmath.V(rapid.Float32Range(-1e4, 1e4).Draw(t, "vx"), rapid.Float32Range(-1e4, 1e4).Draw(t, "vy"))
		f := vmath.V(rapid.Float32Range(-1e4, 1e4).Draw(t, "fx"), rapid.Float32Range(-1e4, 1e4).Draw(t, "fy"))
		maxForce := rapid.Float32Range(0.1, 1000).Draw(t, "maxForce")

		if speed := ApplyForce(v, f, maxForce).Length(); speed > steering.MaxSpeed+1e-3 {
			t.Fatalf("speed %v exceeds %v", speed, steering.MaxSpeed)
		}
	})
}

func TestBoundsClampIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := vmath.V(rapid.Float32Range(-1e5, 1e5).Draw(t, "x"), rapid.Float32Range(-1e5, 1e5).Draw(t, "y"))

		once := DefaultBounds.Clamp(p)
		if twice := DefaultBounds.Clamp(once); twice != once {
			t.Fatalf("clamp not idempotent: %v -> %v -> %v", p, once, twice)
		}
		if !DefaultBounds.Contains(once) {
			t.Fatalf("clamped %v to %v outside bounds", p, once)
		}
	})
}

package input

import (
	"github.com/plus3/steer/sim"
	"github.com/plus3/steer/vmath"
)

// State is one sample of the host's input devices. Pointer is in screen pixels.
type State struct {
	Up, Down, Left, Right bool

	Pointer vmath.Vec2
	// MovePressed requests seeking to the pointer.
	MovePressed bool
	Fire        bool

	// PointerCaptured is set when an overlay owns the pointer this frame.
	PointerCaptured bool
}

// Direction returns the unit direction held on the keys, or zero.
func (s State) Direction() vmath.Vec2 {
	var d vmath.Vec2
	if s.Up {
		d.Y++
	}
	if s.Down {
		d.Y--
	}
	if s.Right {
		d.X++
	}
	if s.Left {
		d.X--
	}
	return d.NormalizeOrZero()
}

// Translator remembers the last move target between samples, so the commander keeps
// seeking after the pointer is released.
type Translator struct {
	target    vmath.Vec2
	hasTarget bool
}

// Target returns the remembered move target.
func (t *Translator) Target() (vmath.Vec2, bool) {
	return t.target, t.hasTarget
}

// Intent maps s to a sim.Intent. Direction keys win over the pointer and clear the
// remembered target.
func (t *Translator) Intent(s State, cam Camera) sim.Intent {
	var intent sim.Intent

	pointer := cam.ScreenToWorld(s.Pointer.X, s.Pointer.Y)

	if dir := s.Direction(); !dir.IsZero() {
		t.hasTarget = false
		intent.Move = sim.MoveDirection
		intent.Direction = dir
	} else {
		if s.MovePressed && !s.PointerCaptured {
			t.target = pointer
			t.hasTarget = true
		}
		if t.hasTarget {
			intent.Move = sim.MoveTarget
			intent.Target = t.target
		}
	}

	if s.Fire && !s.PointerCaptured {
		intent.Fire = sim.FireActive
		intent.FireTarget = pointer
	}
	return intent
}

package sim

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/steer/ecs"
	"github.com/plus3/steer/vmath"
)

// RadiusRule selects the overlap threshold for a pair of circles.
type RadiusRule uint8

const (
	// RadiusSum overlaps when distance < r1 + r2.
	RadiusSum RadiusRule = iota
	// RadiusDoubledFirst overlaps when distance < 2*r1, ignoring the second radius.
	RadiusDoubledFirst
)

func (r RadiusRule) String() string {
	if r == RadiusDoubledFirst {
		return "doubled-first"
	}
	return "sum"
}

// Collider is one entity in the collision snapshot.
type Collider struct {
	ID       ecs.EntityId
	Position vmath.Vec2
	Radius   float32
}

// Overlaps tests a against b under rule. Touching circles do not overlap.
func (r RadiusRule) Overlaps(a, b Collider) bool {
	threshold := a.Radius + b.Radius
	if r == RadiusDoubledFirst {
		threshold = 2 * a.Radius
	}
	return a.Position.Sub(b.Position).LengthSq() < threshold*threshold
}

// CollisionSet collects the ids marked during one scan. It is reused between ticks.
type CollisionSet struct {
	marked *intmap.Map[ecs.EntityId, struct{}]
	order  []ecs.EntityId
}

func NewCollisionSet() *CollisionSet {
	return &CollisionSet{marked: intmap.New[ecs.EntityId, struct{}](64)}
}

// Scan tests every unordered pair of colliders once against the same snapshot and
// returns the marked ids in first-marked order. The returned slice is reused by the
// next Scan.
func (s *CollisionSet) Scan(colliders []Collider, rule RadiusRule) []ecs.EntityId {
	s.marked.Clear()
	s.order = s.order[:0]

	for i := 0; i < len(colliders); i++ {
		for j := i + 1; j < len(colliders); j++ {
			if !rule.Overlaps(colliders[i], colliders[j]) {
				continue
			}
			s.mark(colliders[i].ID)
			s.mark(colliders[j].ID)
		}
	}
	return s.order
}

func (s *CollisionSet) mark(id ecs.EntityId) {
	if _, ok := s.marked.Get(id); ok {
		return
	}
	s.marked.Put(id, struct{}{})
	s.order = append(s.order, id)
}

// Len returns how many ids the last Scan marked.
func (s *CollisionSet) Len() int {
	return s.marked.Len()
}

package home

import "github.com/vovakirdan/homebound/internal/core"

// ProximityTracker maintains the objects currently within interaction range
// of the player. The catchment is a square: both the horizontal and the
// vertical center distance must be below the radius.
type ProximityTracker struct {
	radius int
	near   []*WorldObject
}

// NewProximityTracker creates a tracker with the given per-axis radius.
func NewProximityTracker(radius int) *ProximityTracker {
	return &ProximityTracker{radius: radius}
}

// Update recomputes the proximity set for this frame.
//
// Objects that left the catchment are evicted first, then every interactable
// object is re-scanned: those in range are marked active and added once,
// all others are marked inactive.
func (p *ProximityTracker) Update(player core.Rect, objects []*WorldObject) {
	kept := p.near[:0]
	for _, o := range p.near {
		if p.within(player, o.Bounds()) {
			kept = append(kept, o)
		}
	}
	// Drop stale pointers past the new length
	for i := len(kept); i < len(p.near); i++ {
		p.near[i] = nil
	}
	p.near = kept

	for _, o := range objects {
		if !o.Interactable() {
			continue
		}
		if p.within(player, o.Bounds()) {
			o.SetActive(true)
			if !p.Contains(o) {
				p.near = append(p.near, o)
			}
		} else {
			o.SetActive(false)
		}
	}
}

// within applies the per-axis distance check between rect centers.
func (p *ProximityTracker) within(a, b core.Rect) bool {
	return core.Abs(a.CenterX()-b.CenterX()) < p.radius &&
		core.Abs(a.CenterY()-b.CenterY()) < p.radius
}

// Contains reports whether the object is in the proximity set.
func (p *ProximityTracker) Contains(o *WorldObject) bool {
	for _, n := range p.near {
		if n == o {
			return true
		}
	}
	return false
}

// Empty reports whether no object is in range.
func (p *ProximityTracker) Empty() bool {
	return len(p.near) == 0
}

// ActiveNear reports whether an object of the given type is in the set and active.
func (p *ProximityTracker) ActiveNear(name string) bool {
	for _, o := range p.near {
		if o.Name() == name && o.Active() {
			return true
		}
	}
	return false
}

// Find returns the first nearby object of the given type.
func (p *ProximityTracker) Find(name string) *WorldObject {
	for _, o := range p.near {
		if o.Name() == name {
			return o
		}
	}
	return nil
}

// Near returns the objects in range in insertion order.
func (p *ProximityTracker) Near() []*WorldObject {
	return append([]*WorldObject(nil), p.near...)
}

// Reset empties the set without touching object flags.
func (p *ProximityTracker) Reset() {
	p.near = nil
}

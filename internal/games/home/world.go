package home

import "github.com/vovakirdan/homebound/internal/core"

// obstacleShrink is how much taller than their hitbox placed tiles are drawn.
const obstacleShrink = 10

// WorldObject is an object placed on the map. Named objects can be interacted
// with; unnamed ones are furniture that only blocks movement.
type WorldObject struct {
	name   string
	rect   core.Rect
	sprite *Sprite
	active bool
	used   bool
	image  *Image
}

// NewWorldObject creates an object at rect. An empty name marks furniture.
func NewWorldObject(name string, rect core.Rect, sprite *Sprite) *WorldObject {
	o := &WorldObject{name: name, rect: rect, sprite: sprite}
	o.refreshImage()
	return o
}

// Name returns the object type name, e.g. "telephone".
func (o *WorldObject) Name() string { return o.name }

// Interactable reports whether the object can take part in proximity checks.
func (o *WorldObject) Interactable() bool { return o.name != "" }

// Bounds returns the object's rect in world units.
func (o *WorldObject) Bounds() core.Rect { return o.rect }

// Hitbox returns the collision box.
func (o *WorldObject) Hitbox() core.Rect { return o.rect.Inflate(0, -obstacleShrink) }

// Active reports whether the object is within interaction range of the player.
func (o *WorldObject) Active() bool { return o.active }

// Used reports whether the object has been used (e.g. the notes were read).
func (o *WorldObject) Used() bool { return o.used }

// Image returns the currently displayed variant.
func (o *WorldObject) Image() *Image { return o.image }

// SetActive updates the active flag and the visual variant with it.
func (o *WorldObject) SetActive(active bool) {
	o.active = active
	o.refreshImage()
}

// MarkUsed switches the object to its used appearance.
func (o *WorldObject) MarkUsed() {
	o.used = true
	o.refreshImage()
}

func (o *WorldObject) refreshImage() {
	if o.sprite == nil {
		return
	}
	o.image = o.sprite.Variant(o.active, o.used)
}

// wall is an invisible obstacle from the boundary layer.
type wall struct {
	rect core.Rect
}

func (w wall) Hitbox() core.Rect { return w.rect }

// Obstacle is anything the player cannot walk through.
type Obstacle interface {
	Hitbox() core.Rect
}

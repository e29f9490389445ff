package home

import (
	"math"

	"github.com/vovakirdan/homebound/internal/core"
)

// Facing is the direction the player sprite looks.
type Facing string

const (
	FacingDown  Facing = "down"
	FacingUp    Facing = "up"
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// Player is the avatar. Movement resolves collisions one axis at a time
// against the hitbox, and the sprite rect follows the hitbox center.
type Player struct {
	rect   core.Rect
	hitbox core.Rect
	posX   float64 // hitbox origin with sub-unit precision
	posY   float64
	dir    core.Vec
	facing Facing
	speed  float64

	// TaskDone is raised when the current task is completed and consumed
	// by the task sequencer on the next tick.
	TaskDone bool

	sprites map[Facing]*Image
}

// NewPlayer places the player with its sprite rect at spawn's top-left.
func NewPlayer(spawnX, spawnY, size, hitboxInset int, sprites map[Facing]*Image) *Player {
	p := &Player{
		rect:    core.NewRect(spawnX, spawnY, size, size),
		facing:  FacingDown,
		sprites: sprites,
	}
	p.hitbox = p.rect.Inflate(0, -hitboxInset)
	p.posX, p.posY = float64(p.hitbox.X), float64(p.hitbox.Y)
	return p
}

// Bounds returns the sprite rect in world units.
func (p *Player) Bounds() core.Rect { return p.rect }

// Hitbox returns the collision box.
func (p *Player) Hitbox() core.Rect { return p.hitbox }

// Facing returns the sprite direction.
func (p *Player) Facing() Facing { return p.facing }

// Speed returns world units moved per tick along the direction.
func (p *Player) Speed() float64 { return p.speed }

// SetSpeed changes the movement speed.
func (p *Player) SetSpeed(s float64) { p.speed = s }

// Image returns the sprite for the current facing.
func (p *Player) Image() *Image { return p.sprites[p.facing] }

// Steer sets the direction from the held movement keys. Up wins over down
// and right wins over left; a horizontal key decides the facing.
func (p *Player) Steer(in core.InputFrame) {
	var d core.Vec
	switch {
	case in.IsHeld(core.ActionUp):
		d.Y = -1
		p.facing = FacingUp
	case in.IsHeld(core.ActionDown):
		d.Y = 1
		p.facing = FacingDown
	}
	switch {
	case in.IsHeld(core.ActionRight):
		d.X = 1
		p.facing = FacingRight
	case in.IsHeld(core.ActionLeft):
		d.X = -1
		p.facing = FacingLeft
	}
	p.dir = d
}

// Move advances the player by one tick, stopping at obstacles.
func (p *Player) Move(obstacles []Obstacle) {
	if p.dir.IsZero() || p.speed <= 0 {
		return
	}
	step := p.dir.Normalize().Scale(p.speed)

	p.posX += step.X
	p.hitbox.X = int(math.Round(p.posX))
	p.collide(obstacles, step.X, true)

	p.posY += step.Y
	p.hitbox.Y = int(math.Round(p.posY))
	p.collide(obstacles, step.Y, false)

	p.rect = p.rect.WithCenter(p.hitbox.CenterX(), p.hitbox.CenterY())
}

func (p *Player) collide(obstacles []Obstacle, delta float64, horizontal bool) {
	for _, o := range obstacles {
		box := o.Hitbox()
		if !box.Intersects(p.hitbox) {
			continue
		}
		if horizontal {
			if delta > 0 {
				p.hitbox.X = box.X - p.hitbox.W
			} else if delta < 0 {
				p.hitbox.X = box.Right()
			}
			p.posX = float64(p.hitbox.X)
		} else {
			if delta > 0 {
				p.hitbox.Y = box.Y - p.hitbox.H
			} else if delta < 0 {
				p.hitbox.Y = box.Bottom()
			}
			p.posY = float64(p.hitbox.Y)
		}
	}
}

package home

import (
	"testing"

	"github.com/vovakirdan/homebound/internal/core"
)

func TestPlayerMovesAtHappinessSpeed(t *testing.T) {
	l, _ := newTestLevel(t)
	start := l.player.Hitbox()

	l.Step(held(core.ActionRight))

	if got := l.player.Hitbox().X - start.X; got != 8 {
		t.Errorf("moved %d units, expected 8", got)
	}
	if l.player.Facing() != FacingRight {
		t.Errorf("facing = %s, expected right", l.player.Facing())
	}
	if l.player.Bounds().CenterX() != l.player.Hitbox().CenterX() {
		t.Error("sprite rect should follow the hitbox center")
	}
}

func TestPlayerDiagonalIsNormalized(t *testing.T) {
	l, _ := newTestLevel(t)
	start := l.player.Hitbox()

	l.Step(held(core.ActionRight, core.ActionDown))

	// 8 / sqrt(2) = 5.66, rounded per axis
	dx := l.player.Hitbox().X - start.X
	dy := l.player.Hitbox().Y - start.Y
	if dx != 6 || dy != 6 {
		t.Errorf("moved (%d, %d), expected (6, 6)", dx, dy)
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	l, _ := newTestLevel(t)

	for i := 0; i < 5; i++ {
		l.Step(held(core.ActionLeft))
	}
	if x := l.player.Hitbox().X; x != 64 {
		t.Errorf("hitbox x = %d, expected to stop at the wall edge 64", x)
	}
}

func TestPlayerBlockedByObject(t *testing.T) {
	l, _ := newTestLevel(t)

	for i := 0; i < 10; i++ {
		l.Step(held(core.ActionUp))
	}
	// Telephone tile at y=64 has a hitbox shrunk by 10, so its bottom is 123
	if y := l.player.Hitbox().Y; y != 123 {
		t.Errorf("hitbox y = %d, expected to stop below the telephone at 123", y)
	}
	if l.player.Facing() != FacingUp {
		t.Errorf("facing = %s, expected up", l.player.Facing())
	}
}

func TestOppositeKeysPrecedence(t *testing.T) {
	l, _ := newTestLevel(t)
	start := l.player.Hitbox()

	l.Step(held(core.ActionLeft, core.ActionRight))

	if got := l.player.Hitbox().X - start.X; got != 8 {
		t.Errorf("moved %d units, expected right to win with 8", got)
	}
	if l.player.Facing() != FacingRight {
		t.Errorf("facing = %s, expected right", l.player.Facing())
	}

	for i := 0; i < 10; i++ {
		l.Step(held(core.ActionDown, core.ActionUp))
	}
	if y := l.player.Hitbox().Y; y >= start.Y {
		t.Errorf("hitbox y = %d, expected up to win over down", y)
	}
	if l.player.Facing() != FacingUp {
		t.Errorf("facing = %s, expected up", l.player.Facing())
	}
}

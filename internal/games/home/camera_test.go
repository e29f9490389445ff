package home

import (
	"testing"

	"github.com/vovakirdan/homebound/internal/core"
)

type stubDrawable struct {
	rect core.Rect
	img  *Image
}

func (s stubDrawable) Bounds() core.Rect { return s.rect }
func (s stubDrawable) Image() *Image     { return s.img }

func centeredAt(cy int, tag string) stubDrawable {
	return stubDrawable{
		rect: core.NewRect(0, cy-5, 10, 10),
		img:  NewImage([]string{tag}, core.ColorWhite),
	}
}

func TestCameraDrawOrder(t *testing.T) {
	floor := stubDrawable{rect: core.NewRect(0, 0, 1000, 1000), img: NewImage([]string{"f"}, core.ColorWhite)}
	a, b, c := centeredAt(50, "a"), centeredAt(10, "b"), centeredAt(30, "c")

	cam := NewCamera(200, 100)
	cmds := cam.Frame(core.NewRect(0, 0, 10, 10), floor, []Drawable{a, b, c})

	if len(cmds) != 4 {
		t.Fatalf("got %d draw commands, expected 4", len(cmds))
	}
	want := []*Image{floor.img, b.img, c.img, a.img}
	for i, img := range want {
		if cmds[i].Image != img {
			t.Errorf("draw %d is out of order", i)
		}
	}
}

func TestCameraStableTies(t *testing.T) {
	first, second := centeredAt(20, "1"), centeredAt(20, "2")
	cam := NewCamera(100, 100)

	for i := 0; i < 10; i++ {
		cmds := cam.Frame(core.NewRect(0, 0, 10, 10), nil, []Drawable{first, second})
		if cmds[0].Image != first.img || cmds[1].Image != second.img {
			t.Fatal("equal Y-centers should keep input order")
		}
	}
}

func TestCameraOffsetCentersTarget(t *testing.T) {
	cam := NewCamera(320, 160)
	target := core.NewRect(1000, 500, 64, 64) // center (1032, 532)
	obj := stubDrawable{rect: core.NewRect(1032, 532, 16, 32), img: NewImage([]string{"x"}, core.ColorWhite)}

	cmds := cam.Frame(target, nil, []Drawable{obj})
	x, y := cam.Offset()
	if x != 872 || y != 452 {
		t.Errorf("Offset() = (%d, %d), expected (872, 452)", x, y)
	}
	if cmds[0].X != 160 || cmds[0].Y != 80 {
		t.Errorf("object at (%d, %d), expected viewport center (160, 80)", cmds[0].X, cmds[0].Y)
	}
}

func TestCameraSkipsImagelessEntities(t *testing.T) {
	cam := NewCamera(100, 100)
	ghost := stubDrawable{rect: core.NewRect(0, 0, 10, 10)}
	cmds := cam.Frame(core.NewRect(0, 0, 10, 10), nil, []Drawable{ghost})
	if len(cmds) != 0 {
		t.Errorf("got %d commands, expected none", len(cmds))
	}
}

func TestImageBlitTransparency(t *testing.T) {
	dst := core.NewScreen(4, 2)
	dst.Fill('.')
	NewImage([]string{"a b", " c"}, core.ColorRed).Blit(dst, 1, 0)

	if got := dst.Row(0); got != ".a.b" {
		t.Errorf("row 0 = %q", got)
	}
	if got := dst.Row(1); got != "..c." {
		t.Errorf("row 1 = %q", got)
	}
	if dst.GetCell(1, 0).Color != core.ColorRed {
		t.Error("blitted cell should carry the image color")
	}
}

package screen

import (
	"image"
	"testing"

	"oledkb/oled/fb"
)

func catOn(f *fb.Framebuffer, x, y float64) *Cat {
	c := NewCat(f.Width(), f.Height())
	c.x, c.y = x, y
	c.look(f)
	return c
}

func TestCatFallsOntoLedge(t *testing.T) {
	f := fb.NewDisplay()
	f.FillRect(8, 60, 48, 4)
	c := catOn(f, 32, 30)

	for i := 0; i < 20; i++ {
		c.move()
	}
	if c.y != 60 || c.vy != 0 {
		t.Fatalf("cat at y=%v vy=%v, want resting on the ledge at 60", c.y, c.vy)
	}
	if c.state != catIdle {
		t.Fatalf("state = %d, want idle", c.state)
	}
	if g, ok := c.ground(); !ok || g != image.Rect(8, 60, 56, 61) {
		t.Fatalf("ground = %v %v", g, ok)
	}
}

func TestCatWalksOffLedge(t *testing.T) {
	f := fb.NewDisplay()
	f.FillRect(0, 60, 20, 4)
	c := catOn(f, 10, 60)
	c.vx = catWalkSpeed

	for i := 0; i < 40; i++ {
		c.move()
	}
	if want := float64(f.Height() - catFloorGap); c.y != want {
		t.Fatalf("cat at y=%v, want on the floor at %v", c.y, want)
	}
}

func TestCatJumpsToTarget(t *testing.T) {
	f := fb.NewDisplay()
	f.FillRect(40, 70, 20, 4)
	c := catOn(f, 10, float64(f.Height()-catFloorGap))
	target := image.Rect(40, 70, 60, 71)
	if !c.sees(target) {
		t.Fatalf("ledges %v do not include %v", c.ledges, target)
	}
	c.goal = catGoal{kind: goalTarget, target: target}

	landed := -1
	for i := 0; i < 40 && landed < 0; i++ {
		c.applyGoal()
		c.move()
		if g, ok := c.ground(); ok && g == target {
			landed = i
		}
	}
	if landed < 0 {
		t.Fatalf("cat never landed on the target, ended at (%v, %v)", c.x, c.y)
	}
	if c.y != 70 {
		t.Fatalf("cat at y=%v, want 70", c.y)
	}
	c.applyGoal()
	if c.goal.kind != goalIdle || c.vx != 0 {
		t.Fatalf("goal %d vx %v after reaching target", c.goal.kind, c.vx)
	}
}

func TestCatForgetsVanishedTarget(t *testing.T) {
	f := fb.NewDisplay()
	c := catOn(f, 10, float64(f.Height()-catFloorGap))
	c.goal = catGoal{kind: goalTarget, target: image.Rect(40, 70, 60, 71)}
	c.chooseGoal()
	if c.goal.kind != goalIdle {
		t.Fatalf("goal = %d, want idle", c.goal.kind)
	}
}

func TestCatStaysOnScreen(t *testing.T) {
	f := fb.NewDisplay()
	c := NewCat(f.Width(), f.Height())
	floor := f.Height() - catFloorGap
	for tick := uint32(0); tick < 2000; tick++ {
		f.Clear()
		f.FillRect(4, 80, 24, 2)
		f.FillRect(36, 50, 24, 2)
		c.Draw(f, tick)
		p := c.Position()
		if p.X < 0 || p.X >= f.Width() || p.Y > floor {
			t.Fatalf("tick %d: cat at %v", tick, p)
		}
	}
}

func TestCatSprites(t *testing.T) {
	sprites := map[string]fb.Bitmap{
		"awake": catAwake, "sleep1": catSleep1, "sleep2": catSleep2,
		"walk1": catWalk1, "walk2": catWalk2, "jump": catJump, "fall": catFall,
	}
	for name, b := range sprites {
		t.Run(name, func(t *testing.T) {
			if b.Width != catWidth || b.Height != catHeight {
				t.Fatalf("size %dx%d", b.Width, b.Height)
			}
			m := mirror(b)
			set := 0
			for y := 0; y < catHeight; y++ {
				for x := 0; x < catWidth; x++ {
					if b.At(x, y) != m.At(catWidth-1-x, y) {
						t.Fatalf("mirror differs at (%d, %d)", x, y)
					}
					if b.At(x, y) {
						set++
					}
				}
			}
			if set == 0 {
				t.Fatalf("empty sprite")
			}
		})
	}
}

func TestCatSpriteFollowsState(t *testing.T) {
	c := NewCat(64, 128)
	c.vx, c.vy = -catWalkSpeed, 2
	c.updateState()
	if c.state != catFalling || !c.left {
		t.Fatalf("state %d left %v", c.state, c.left)
	}
	if got := c.sprite(0); &got.Bytes[0] != &catFallLeft.Bytes[0] {
		t.Fatalf("falling left cat not using the mirrored sprite")
	}
	c.vx, c.vy = 0, 0
	c.updateState()
	c.goal = catGoal{kind: goalSleep, ticks: 100}
	if got := c.sprite(0); &got.Bytes[0] != &catSleep1.Bytes[0] {
		t.Fatalf("sleeping cat not using the sleep animation")
	}
	if got := c.sprite(10); &got.Bytes[0] != &catSleep2.Bytes[0] {
		t.Fatalf("sleep animation did not advance")
	}
}

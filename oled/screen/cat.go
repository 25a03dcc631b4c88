package screen

import (
	"image"
	"math"

	"oledkb/oled/fb"
)

const (
	catWalkSpeed = 3.5
	catGravity   = 1
	catFloorGap  = 4
	catFootHalf  = 6
	catMinLedge  = 8
	catMaxLedges = 32
)

type catState uint8

const (
	catIdle catState = iota
	catWalking
	catJumping
	catFalling
)

type catGoalKind uint8

const (
	goalIdle catGoalKind = iota
	goalTarget
	goalSleep
	goalWander
)

type catGoal struct {
	kind   catGoalKind
	target image.Rectangle
	ticks  int
}

// Cat is a sprite that wanders along the bottom of the screen, naps, and
// jumps onto the top edges of whatever has been drawn beneath it. Its
// choices come from a fixed-seed generator, so every run is the same.
type Cat struct {
	x, y   float64 // feet, bottom centre of the sprite
	vx, vy float64
	state  catState
	left   bool
	goal   catGoal
	rng    uint32

	w, h   int
	ledges []image.Rectangle
}

// NewCat returns a cat sitting at the bottom centre of a w×h screen.
func NewCat(w, h int) *Cat {
	return &Cat{
		x:   float64(w / 2),
		y:   float64(h - catFloorGap),
		rng: 0xDEADBEEF,
		w:   w,
		h:   h,
	}
}

// Position returns the cat's feet in framebuffer coordinates.
func (c *Cat) Position() image.Point { return image.Pt(int(c.x), int(c.y)) }

// Bounds returns the rectangle the sprite covers.
func (c *Cat) Bounds() image.Rectangle {
	p := c.Position()
	return image.Rect(p.X-catWidth/2, p.Y-catHeight, p.X+catWidth/2, p.Y)
}

// Draw advances the cat one tick against the current contents of f and
// draws it on top. Call it after everything else has been composited.
func (c *Cat) Draw(f *fb.Framebuffer, tick uint32) {
	c.look(f)
	c.chooseGoal()
	c.applyGoal()
	c.move()
	b := c.Bounds()
	f.DrawImage(b.Min.X, b.Min.Y, c.sprite(tick))
}

// look refreshes the screen size and the ledges the cat could stand on.
func (c *Cat) look(f *fb.Framebuffer) {
	c.w, c.h = f.Width(), f.Height()
	all := f.Ledges(c.ledges[:0], catMinLedge, catMaxLedges)
	c.ledges = all[:0]
	for _, l := range all {
		if l.Min.Y >= catHeight && l.Min.Y < c.h-catFloorGap {
			c.ledges = append(c.ledges, l)
		}
	}
}

func (c *Cat) rand() uint32 {
	c.rng = (c.rng*1103515245 + 12345) & 0x7FFFFFFF
	return c.rng
}

func (c *Cat) randBetween(lo, hi uint32) uint32 { return lo + c.rand()%(hi-lo) }

func (c *Cat) midair() bool { return c.state == catJumping || c.state == catFalling }

func (c *Cat) chooseGoal() {
	switch c.goal.kind {
	case goalTarget:
		if !c.sees(c.goal.target) {
			c.goal = catGoal{}
			return
		}
		if g, ok := c.ground(); ok && g == c.goal.target && !c.midair() {
			c.goal = catGoal{}
		}
	case goalIdle:
		switch {
		case c.rand()%100 < 10:
			c.goal = catGoal{kind: goalWander, ticks: int(c.randBetween(10, 40))}
		case c.rand()%100 < 5:
			if len(c.ledges) > 0 {
				t := c.ledges[c.rand()%uint32(len(c.ledges))]
				c.goal = catGoal{kind: goalTarget, target: t}
			}
		case c.rand()%100 < 5:
			c.goal = catGoal{kind: goalSleep, ticks: 200 + int(c.rand()%100)}
		}
	case goalSleep:
		if c.vy != 0 {
			c.goal = catGoal{}
			return
		}
		c.countDown()
	case goalWander:
		c.countDown()
	}
}

func (c *Cat) countDown() {
	if c.goal.ticks <= 0 {
		c.goal = catGoal{}
		return
	}
	c.goal.ticks--
}

func (c *Cat) applyGoal() {
	switch c.goal.kind {
	case goalIdle, goalSleep:
		c.vx = 0
	case goalTarget:
		g, ok := c.ground()
		if !ok {
			return
		}
		if g == c.goal.target {
			c.goal = catGoal{}
			c.vx, c.vy = 0, 0
			return
		}
		c.vx, c.vy = c.jumpTo(c.goal.target)
	case goalWander:
		if c.rand()%100 < 5 {
			c.vy = -float64(c.randBetween(8, 12))
		}
		c.vx = catWalkSpeed
		if c.left {
			c.vx = -catWalkSpeed
		}
	}
}

// jumpTo returns the launch velocity that brings the cat down onto the top
// edge of t. The apex clears the edge by at least one row and the horizontal
// speed spreads the distance over the whole flight.
func (c *Cat) jumpTo(t image.Rectangle) (vx, vy float64) {
	rise := c.y - float64(t.Min.Y)
	v := 3.0
	if rise > 0 {
		v = math.Max(v, math.Ceil((1+math.Sqrt(1+8*(rise+1)))/2))
	}
	b := 2*v - 1
	n := math.Ceil((b + math.Sqrt(b*b-8*rise)) / 2)
	cx := float64(t.Min.X+t.Max.X) / 2
	return (cx - c.x) / n, -v
}

func (c *Cat) move() {
	oldY := c.y
	if _, ok := c.ground(); !ok {
		c.vy += catGravity
	}
	c.x += c.vx
	c.y += c.vy
	if c.x < 0 {
		c.x, c.vx = 0, -c.vx
	}
	if maxX := float64(c.w - 1); c.x > maxX {
		c.x, c.vx = maxX, -c.vx
	}
	if c.vy >= 0 {
		if top, ok := c.landing(oldY); ok {
			c.y, c.vy = float64(top), 0
		}
	}
	if floor := float64(c.h - catFloorGap); c.y >= floor {
		c.y, c.vy = floor, 0
	}
	c.updateState()
}

// landing returns the highest ledge crossed while falling from oldY.
func (c *Cat) landing(oldY float64) (int, bool) {
	best, found := 0, false
	for _, l := range c.ledges {
		top := float64(l.Min.Y)
		if top < oldY || top > c.y || !c.over(l) {
			continue
		}
		if !found || l.Min.Y < best {
			best, found = l.Min.Y, true
		}
	}
	return best, found
}

// ground returns what the cat is standing on: a ledge or the floor.
func (c *Cat) ground() (image.Rectangle, bool) {
	if c.vy < 0 {
		return image.Rectangle{}, false
	}
	feet := int(math.Round(c.y))
	if feet >= c.h-catFloorGap {
		return image.Rect(0, c.h-catFloorGap, c.w, c.h), true
	}
	for _, l := range c.ledges {
		if l.Min.Y == feet && c.over(l) {
			return l, true
		}
	}
	return image.Rectangle{}, false
}

func (c *Cat) over(l image.Rectangle) bool {
	x := int(c.x)
	return x+catFootHalf > l.Min.X && x-catFootHalf < l.Max.X
}

func (c *Cat) sees(t image.Rectangle) bool {
	for _, l := range c.ledges {
		if l == t {
			return true
		}
	}
	return false
}

func (c *Cat) updateState() {
	switch {
	case c.vx > 0:
		c.left = false
	case c.vx < 0:
		c.left = true
	}
	switch {
	case c.vy > 0:
		c.state = catFalling
	case c.vy < 0:
		c.state = catJumping
	case c.vx != 0:
		c.state = catWalking
	default:
		c.state = catIdle
	}
}

func (c *Cat) sprite(tick uint32) fb.Bitmap {
	switch c.state {
	case catFalling:
		if c.left {
			return catFallLeft
		}
		return catFall
	case catJumping:
		if c.left {
			return catJumpLeft
		}
		return catJump
	case catWalking:
		if c.left {
			return catFrame(catWalkLeft, tick, 6)
		}
		return catFrame(catWalkRight, tick, 6)
	}
	if c.goal.kind == goalSleep && c.goal.ticks > 20 {
		return catFrame(catSleep, tick, 2)
	}
	return catAwake
}

// catFrame picks an animation frame; speed is in frames per 20 ticks.
func catFrame(frames [2]fb.Bitmap, tick uint32, speed int) fb.Bitmap {
	step := uint32(max(20/speed, 1))
	return frames[int(tick/step)%len(frames)]
}

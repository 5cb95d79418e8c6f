package anim

import "testing"

func TestNewStartsOffScreen(t *testing.T) {
	c := New(8, 50, 50)

	if x, y := c.Position(); x != -50 || y != -50 {
		t.Errorf("expected start position (-50, -50), got (%d, %d)", x, y)
	}
	if vx, vy := c.Velocity(); vx != DefaultSpeed || vy != DefaultSpeed {
		t.Errorf("expected velocity (%d, %d), got (%d, %d)", DefaultSpeed, DefaultSpeed, vx, vy)
	}
	if c.Frame() != 0 {
		t.Errorf("expected frame 0, got %d", c.Frame())
	}
	if c.FrameCount() != 8 {
		t.Errorf("expected frame count 8, got %d", c.FrameCount())
	}
}

func TestFirstTick(t *testing.T) {
	c := New(8, 50, 50)
	c.Tick(800, 600)

	want := State{Frame: 1, X: -47, Y: -47, VX: 3, VY: 3}
	if got := c.State(); got != want {
		t.Errorf("after one tick got %+v, want %+v", got, want)
	}
}

func TestOvershootIsClampedToMax(t *testing.T) {
	// 800 - 50 = 750 is the largest x that keeps the sprite on screen.
	c := New(8, 50, 50)
	c.x, c.y = 749, 100

	c.Tick(800, 600)

	if x, _ := c.Position(); x != 750 {
		t.Errorf("expected x clamped to 750, got %d", x)
	}
	if vx, _ := c.Velocity(); vx != -DefaultSpeed {
		t.Errorf("expected vx to flip to %d, got %d", -DefaultSpeed, vx)
	}

	// Sitting on the boundary: candidate 753 folds to 753, clamp gives 750.
	c.x, c.vx = 750, DefaultSpeed
	c.Tick(800, 600)
	if x, _ := c.Position(); x != 750 {
		t.Errorf("expected x clamped to 750, got %d", x)
	}
	if vx, _ := c.Velocity(); vx != -DefaultSpeed {
		t.Errorf("expected vx to flip to %d, got %d", -DefaultSpeed, vx)
	}
}

func TestBounceOffTopLeft(t *testing.T) {
	c := New(8, 50, 50)
	c.x, c.y = 1, 2
	c.vx, c.vy = -DefaultSpeed, -DefaultSpeed

	c.Tick(800, 600)

	want := State{Frame: 1, X: 2, Y: 1, VX: 3, VY: 3}
	if got := c.State(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFrameStaysInRange(t *testing.T) {
	for _, frames := range []int{1, 2, 3, 8} {
		c := New(frames, 16, 16)
		for i := 0; i < 500; i++ {
			c.Tick(320, 240)
			if f := c.Frame(); f < 0 || f >= frames {
				t.Fatalf("frameCount=%d: frame %d out of range after tick %d", frames, f, i)
			}
		}
	}
}

func TestNonPositiveFrameCount(t *testing.T) {
	c := New(0, 10, 10)
	c.Tick(100, 100)
	if c.Frame() != 0 || c.FrameCount() != 1 {
		t.Errorf("expected a single frame cycle, got frame %d of %d", c.Frame(), c.FrameCount())
	}
}

func TestFramePeriodicity(t *testing.T) {
	c := New(8, 50, 50)
	for i := 0; i < 5; i++ {
		c.Tick(800, 600)
	}
	start := c.Frame()
	for i := 0; i < c.FrameCount(); i++ {
		c.Tick(800, 600)
	}
	if c.Frame() != start {
		t.Errorf("expected frame %d after a full cycle, got %d", start, c.Frame())
	}
}

func TestPositionStaysInsideWindow(t *testing.T) {
	windows := [][2]int{{800, 600}, {50, 50}, {51, 52}, {123, 77}, {1920, 1080}}
	for _, w := range windows {
		c := New(8, 50, 50)
		maxX, maxY := w[0]-50, w[1]-50

		// Wait for the sprite to enter from off-screen.
		entered := false
		for i := 0; i < 10000; i++ {
			c.Tick(w[0], w[1])
			x, y := c.Position()
			if !entered {
				entered = x >= 0 && y >= 0
				continue
			}
			if x < 0 || x > maxX || y < 0 || y > maxY {
				t.Fatalf("window %v: position (%d, %d) outside [0,%d]x[0,%d] at tick %d",
					w, x, y, maxX, maxY, i)
			}
		}
		if !entered {
			t.Errorf("window %v: sprite never entered the window", w)
		}
	}
}

func TestVelocityFlipsOnlyAtBoundaries(t *testing.T) {
	c := New(8, 50, 50)
	const width, height = 300, 200
	maxX, maxY := width-50, height-50

	for i := 0; i < 2000; i++ {
		prev := c.State()
		c.Tick(width, height)
		got := c.State()

		wantFlipX := (prev.VX < 0 && prev.X+prev.VX < 0) || (prev.VX > 0 && prev.X+prev.VX >= maxX)
		wantFlipY := (prev.VY < 0 && prev.Y+prev.VY < 0) || (prev.VY > 0 && prev.Y+prev.VY >= maxY)

		if flipped := got.VX != prev.VX; flipped != wantFlipX {
			t.Fatalf("tick %d: x flip=%v, want %v (prev %+v)", i, flipped, wantFlipX, prev)
		}
		if flipped := got.VY != prev.VY; flipped != wantFlipY {
			t.Fatalf("tick %d: y flip=%v, want %v (prev %+v)", i, flipped, wantFlipY, prev)
		}
		if got.VX != DefaultSpeed && got.VX != -DefaultSpeed {
			t.Fatalf("tick %d: vx magnitude changed to %d", i, got.VX)
		}
		if got.VY != DefaultSpeed && got.VY != -DefaultSpeed {
			t.Fatalf("tick %d: vy magnitude changed to %d", i, got.VY)
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	c := New(8, 50, 50)
	for i := 0; i < 37; i++ {
		c.Tick(800, 600)
	}

	c.Reset()
	once := c.State()
	c.Reset()
	twice := c.State()

	if once != twice {
		t.Errorf("Reset not idempotent: %+v vs %+v", once, twice)
	}
	if want := New(8, 50, 50).State(); once != want {
		t.Errorf("Reset state %+v does not match a new controller %+v", once, want)
	}
}

func TestShrunkWindowClamp(t *testing.T) {
	c := New(8, 50, 50)
	for i := 0; i < 200; i++ {
		c.Tick(800, 600)
	}

	// Window now smaller than the sprite in both axes.
	for i := 0; i < 100; i++ {
		c.Tick(30, 20)
		x, y := c.Position()
		if x > 30-50 || y > 20-50 {
			t.Fatalf("tick %d: clamp not applied, position (%d, %d)", i, x, y)
		}
		if f := c.Frame(); f < 0 || f >= c.FrameCount() {
			t.Fatalf("tick %d: frame %d out of range", i, f)
		}
	}
}

package mathutil

import "testing"

func TestIntHelpers(t *testing.T) {
	if IntMin(3, -2) != -2 || IntMin(-2, 3) != -2 {
		t.Error("IntMin should return the smaller value")
	}
	if IntAbs(-7) != 7 || IntAbs(7) != 7 {
		t.Error("IntAbs should drop the sign")
	}
	if IntSign(-4) != -1 || IntSign(0) != 0 || IntSign(9) != 1 {
		t.Error("IntSign returned the wrong sign")
	}
}

func TestReflectAxis(t *testing.T) {
	tests := []struct {
		name             string
		pos, vel, max    int
		wantPos, wantVel int
	}{
		{"free move right", 10, 3, 750, 13, 3},
		{"free move left", 10, -3, 750, 7, -3},
		{"bounce off zero", 1, -3, 750, 2, 3},
		{"land exactly on zero", 3, -3, 750, 0, -3},
		{"reach max", 747, 3, 750, 750, -3},
		{"overshoot max", 749, 3, 750, 752, -3},
		{"entering from off-screen", -50, 3, 750, -47, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := ReflectAxis(tt.pos, tt.vel, tt.max)
			if pos != tt.wantPos || vel != tt.wantVel {
				t.Errorf("ReflectAxis(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.pos, tt.vel, tt.max, pos, vel, tt.wantPos, tt.wantVel)
			}
		})
	}
}

func TestWrapIndex(t *testing.T) {
	if WrapIndex(0, 8) != 1 || WrapIndex(7, 8) != 0 {
		t.Error("WrapIndex should cycle through [0, n)")
	}
	if WrapIndex(0, 0) != 0 || WrapIndex(5, -1) != 0 {
		t.Error("WrapIndex should yield 0 for empty ranges")
	}
}

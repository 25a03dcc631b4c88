package affine

import "testing"

func near(a, b, tol Num) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestIdentityApply(t *testing.T) {
	x, y := Identity().Apply(I(7), I(-3))
	if x != I(7) || y != I(-3) {
		t.Fatalf("identity moved point to (%v, %v)", x, y)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		a    Affine2
	}{
		{"identity", Identity()},
		{"translate", Identity().Translate(I(12), I(-40))},
		{"scale", Identity().Scale(I(2), Frac(1, 2))},
		{"rotate", Identity().Rotate(I(33))},
		{"origin", Identity().Origin(I(32), I(64), func(a Affine2) Affine2 {
			return a.Scale(Frac(3, 2), Frac(3, 2)).Rotate(I(-70))
		}).Translate(I(0), I(-17))},
	}
	points := [][2]int{{0, 0}, {5, 9}, {63, 127}, {-10, 30}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv, ok := tc.a.Inverse()
			if !ok {
				t.Fatalf("Inverse: not invertible")
			}
			for _, p := range points {
				x, y := tc.a.Apply(I(p[0]), I(p[1]))
				bx, by := inv.Apply(x, y)
				if !near(bx, I(p[0]), Frac(1, 4)) || !near(by, I(p[1]), Frac(1, 4)) {
					t.Fatalf("point %v round-tripped to (%v, %v)", p, bx, by)
				}
			}
		})
	}
}

func TestInverseSingular(t *testing.T) {
	if _, ok := Identity().Scale(0, I(1)).Inverse(); ok {
		t.Fatalf("zero scale reported invertible")
	}
	if _, ok := Identity().Scale(1, 1).Inverse(); ok {
		t.Fatalf("near-zero determinant reported invertible")
	}
}

func TestCompositionOrder(t *testing.T) {
	// Scale then translate: (1,0) -> (2,0) -> (12,0).
	a := Identity().Scale(I(2), I(2)).Translate(I(10), 0)
	x, _ := a.Apply(I(1), 0)
	if x != I(12) {
		t.Fatalf("scale-then-translate got x=%v, want 12", x)
	}
	// Translate then scale: (1,0) -> (11,0) -> (22,0).
	b := Identity().Translate(I(10), 0).Scale(I(2), I(2))
	x, _ = b.Apply(I(1), 0)
	if x != I(22) {
		t.Fatalf("translate-then-scale got x=%v, want 22", x)
	}
}

func TestOriginKeepsPivot(t *testing.T) {
	a := Identity().Origin(I(32), I(64), func(a Affine2) Affine2 {
		return a.Rotate(I(45)).Scale(I(3), I(3))
	})
	x, y := a.Apply(I(32), I(64))
	if !near(x, I(32), Frac(1, 64)) || !near(y, I(64), Frac(1, 64)) {
		t.Fatalf("pivot moved to (%v, %v)", x, y)
	}
}

func TestSinTable(t *testing.T) {
	cases := []struct {
		deg  int
		want Num
	}{
		{0, 0}, {30, Frac(1, 2)}, {90, One}, {180, 0}, {270, -One}, {-90, -One}, {450, One},
	}
	for _, tc := range cases {
		if got := Sin(I(tc.deg)); !near(got, tc.want, 2) {
			t.Errorf("Sin(%d) = %v, want %v", tc.deg, got, tc.want)
		}
	}
	if got := Cos(I(60)); !near(got, Frac(1, 2), 2) {
		t.Errorf("Cos(60) = %v", got)
	}
	if got := Sin(I(30) + Frac(1, 2)); got <= Sin(I(30)) || got >= Sin(I(31)) {
		t.Errorf("Sin(30.5) = %v not between neighbours", got)
	}
}

package geom_test

import (
	"testing"

	"github.com/monasse-reeb/reeb/geom"
)

// TestSaddleInSquare_Checkerboard covers the classic diagonal-symmetric
// dual pixel (scenario 3 of the persistence/extraction test suite):
// corners 0,9,0,9 clockwise from top-left always produce a saddle
// exactly at the center of the dual pixel.
func TestSaddleInSquare_Checkerboard(t *testing.T) {
	_, denom, sx, sy, ok := geom.SaddleInSquare(0, 9, 0, 9)
	if !ok {
		t.Fatalf("expected a saddle in the checkerboard dual pixel")
	}
	if denom == 0 {
		t.Fatalf("denom must be non-zero when a saddle is reported")
	}
	if sx != 0.5 || sy != 0.5 {
		t.Errorf("saddle location = (%v,%v); want (0.5,0.5)", sx, sy)
	}
}

func TestSaddleInSquare_NoSaddleOnMonotoneRamp(t *testing.T) {
	// A monotone corner arrangement (no crossing diagonals) has no
	// interior critical point.
	_, _, _, _, ok := geom.SaddleInSquare(0, 1, 2, 1)
	if ok {
		t.Fatalf("monotone dual pixel must not report a saddle")
	}
}

func TestSaddleInSquare_DegenerateDenom(t *testing.T) {
	// a+c == b+d makes denom zero: the level set is a line segment,
	// not a hyperbola.
	_, _, _, _, ok := geom.SaddleInSquare(1, 1, 1, 1)
	if ok {
		t.Fatalf("constant dual pixel must not report a saddle")
	}
}

func TestSaddleInSquare_AsymmetricInterior(t *testing.T) {
	num, denom, sx, sy, ok := geom.SaddleInSquare(1, 5, 2, 7)
	if !ok {
		t.Fatalf("expected a saddle")
	}
	if sx <= 0 || sx >= 1 || sy <= 0 || sy >= 1 {
		t.Errorf("saddle location (%v,%v) must lie strictly inside the unit square", sx, sy)
	}
	value := num / denom
	// The saddle value must equal the bilinear interpolant evaluated
	// at its own critical point.
	got := bilinear(1, 5, 2, 7, sx, sy)
	if !almostEqual(value, got, 1e-9) {
		t.Errorf("saddle value %v does not match bilinear evaluation %v at (sx,sy)", value, got)
	}
}

func bilinear(a, b, c, d, u, v float64) float64 {
	denom := (a + c) - (b + d)
	return a + u*(b-a) + v*(d-a) + u*v*denom
}

func almostEqual(a, b, eps float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= eps
}

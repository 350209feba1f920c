package geom

import "math"

// deltaFlatThreshold is the |δ| below which a hyperbola branch is
// treated as degenerate (near-linear through the saddle) and sampled
// with only its vertex point, per the documented open question in
// DESIGN.md: skip interior sampling rather than interpolate linearly.
const deltaFlatThreshold = 1e-2

// Hyperbola holds the parameters of the bilinear level set through one
// dual pixel at a fixed level: the saddle value (Num/Denom), whether a
// saddle exists in this dual pixel (HasSaddle), its location (Saddle),
// the point of maximal curvature on the branch passing through a given
// entry point (Vertex), and the branch's shape parameter Delta such
// that (x−Saddle.X)(y−Saddle.Y) = Delta along the branch.
//
// Num and Denom are normalized so Denom > 0, which lets callers test
// "level * Denom < Num" instead of dividing — the only place the
// tracer needs the saddle value (see the tracer package).
type Hyperbola struct {
	Num, Denom float64
	HasSaddle  bool
	Saddle     Point
	Vertex     Point
	Delta      float64
}

// HyperbolaFrom computes the Hyperbola for a dual pixel with corner
// values a,b,c,d (clockwise from top-left, as in SaddleInSquare) at
// the given level, choosing the vertex's quadrant relative to the
// saddle to match entry's quadrant relative to the saddle.
func HyperbolaFrom(a, b, c, d float64, entry Point, level float64) Hyperbola {
	num, denom, sx, sy, hasSaddle := SaddleInSquare(a, b, c, d)

	var saddle, vertex Point
	var delta float64
	if hasSaddle {
		saddle = Point{X: sx, Y: sy}
		delta = (denom*level - num) / (denom * denom)
		root := math.Sqrt(math.Abs(delta))
		vertex = Point{
			X: saddle.X + signedRoot(entry.X-saddle.X, root),
			Y: saddle.Y + signedRoot(entry.Y-saddle.Y, root),
		}
	} else {
		vertex = entry
	}

	// Normalize denom > 0 only after saddle/vertex/delta are derived
	// from the original corner-value signs; this affects only the
	// stored Num/Denom used for the tracer's ℓ·denom < num test.
	if denom < 0 {
		num, denom = -num, -denom
	}

	return Hyperbola{
		Num:       num,
		Denom:     denom,
		HasSaddle: hasSaddle,
		Saddle:    saddle,
		Vertex:    vertex,
		Delta:     delta,
	}
}

// signedRoot returns root with the sign of diff (zero diff keeps the
// positive root; the choice is immaterial exactly on the saddle axis).
func signedRoot(diff, root float64) float64 {
	if diff < 0 {
		return -root
	}
	return root
}

// SampleHyperbolaBranch uniformly samples the interior of the
// hyperbola branch between p1 and p2 (both assumed to lie on the
// branch defined by (x−saddle.X)(y−saddle.Y) = delta). It parameterizes
// by whichever axis spans the larger distance, stepping
// ⌈axis_distance·ptsPerPixel⌉ times, and excludes both endpoints — the
// caller already has p1 and p2.
//
// If ptsPerPixel <= 0 or |delta| is below deltaFlatThreshold (the
// branch is nearly linear, approaching the saddle level), it returns
// nil: no interior samples, per the documented open question in
// DESIGN.md.
func SampleHyperbolaBranch(p1, p2, saddle Point, delta float64, ptsPerPixel int) []Point {
	if ptsPerPixel <= 0 || math.Abs(delta) < deltaFlatThreshold {
		return nil
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	useX := math.Abs(dx) >= math.Abs(dy)

	var axisDist float64
	if useX {
		axisDist = math.Abs(dx)
	} else {
		axisDist = math.Abs(dy)
	}

	steps := int(math.Ceil(axisDist * float64(ptsPerPixel)))
	if steps <= 1 {
		return nil
	}

	pts := make([]Point, 0, steps-1)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		if useX {
			x := p1.X + dx*t
			y := saddle.Y + delta/(x-saddle.X)
			pts = append(pts, Point{X: x, Y: y})
		} else {
			y := p1.Y + dy*t
			x := saddle.X + delta/(y-saddle.Y)
			pts = append(pts, Point{X: x, Y: y})
		}
	}

	return pts
}

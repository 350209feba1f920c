package geom

// SaddleInSquare detects and locates the bilinear saddle of a dual
// pixel from its four corner values, given clockwise from top-left:
// a = (x,y), b = (x+1,y), c = (x+1,y+1), d = (x,y+1).
//
// The saddle value is num/denom where num = a·c − b·d (the product of
// one diagonal pair minus the other) and denom = (a+c) − (b+d). The
// saddle's position, as offsets inside the unit dual pixel, is
// sx = (a−d)/denom (x-direction) and sy = (a−b)/denom (y-direction) —
// these fall out of setting both partial derivatives of the bilinear
// interpolant to zero.
//
// A saddle exists iff denom != 0 and the critical point (sx, sy) lands
// strictly inside the open unit square (0,1)×(0,1); equivalently, the
// diagonal pair b and d sits strictly outside the value range spanned
// by the other diagonal pair a and c, both on the same side. ok is false and the other return values are zero
// when no saddle exists in this dual pixel — that is the normal case
// for most dual pixels, not an error.
func SaddleInSquare(a, b, c, d float64) (num, denom, sx, sy float64, ok bool) {
	denom = (a + c) - (b + d)
	if denom == 0 {
		return 0, 0, 0, 0, false
	}

	sx = (a - d) / denom
	sy = (a - b) / denom
	if sx <= 0 || sx >= 1 || sy <= 0 || sy >= 1 {
		return 0, 0, 0, 0, false
	}

	num = a*c - b*d

	return num, denom, sx, sy, true
}

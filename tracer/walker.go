package tracer

import (
	"fmt"

	"github.com/monasse-reeb/reeb/geom"
)

// Direction names one of the four edgels of a dual pixel by the
// cardinal side it lies on, in clockwise order starting from the top:
// S is the top edgel (entered moving downward), E the right edgel,
// N the bottom edgel (entered moving upward), W the left edgel
// (entered moving rightward).
type Direction int

const (
	S Direction = iota
	E
	N
	W
)

func (d Direction) String() string {
	switch d {
	case S:
		return "S"
	case E:
		return "E"
	case N:
		return "N"
	case W:
		return "W"
	default:
		return "?"
	}
}

// movement is the offset applied to the dual pixel's top-left corner
// when the walker's NEW entry direction is d — e.g. a new entry of S
// means the walker has moved into the pixel directly below the one it
// came from, since the shared edgel is that pixel's top edge.
var movement = [4]struct{ dx, dy int }{
	S: {0, 1},
	E: {-1, 0},
	N: {0, -1},
	W: {1, 0},
}

// Walker follows a single level line through a grid of bilinearly
// interpolated dual pixels, one Advance call at a time, per spec.md
// §4.2. It owns no polyline of its own — Trace accumulates that.
type Walker struct {
	image  []float64
	w, h   int
	cx, cy int
	dir    Direction
	// corner values, indexed a=0 (top-left), b=1 (top-right),
	// c=2 (bottom-right), d=3 (bottom-left), clockwise from the
	// dual pixel's own top-left corner (cx, cy).
	val [4]float64
}

// NewWalker constructs a Walker over a row-major w×h grid of sample
// values (already converted to float64 by the caller — spec.md's
// image input is integer pixel intensities, but the bilinear kernel
// operates on floats throughout).
func NewWalker(image []float64, w, h int) *Walker {
	return &Walker{image: image, w: w, h: h}
}

func (k *Walker) loadCorners() {
	k.val[0] = k.image[k.cy*k.w+k.cx]
	k.val[1] = k.image[k.cy*k.w+k.cx+1]
	k.val[2] = k.image[(k.cy+1)*k.w+k.cx+1]
	k.val[3] = k.image[(k.cy+1)*k.w+k.cx]
}

func (k *Walker) corner(idx int) geom.Point {
	switch idx & 3 {
	case 0:
		return geom.Point{X: float64(k.cx), Y: float64(k.cy)}
	case 1:
		return geom.Point{X: float64(k.cx + 1), Y: float64(k.cy)}
	case 2:
		return geom.Point{X: float64(k.cx + 1), Y: float64(k.cy + 1)}
	default:
		return geom.Point{X: float64(k.cx), Y: float64(k.cy + 1)}
	}
}

// edgePoint linearly interpolates the position along edgel dir at
// which the grid reaches level.
func (k *Walker) edgePoint(dir Direction, level float64) geom.Point {
	i1 := int(dir)
	i2 := (i1 + 1) & 3
	v1, v2 := k.val[i1], k.val[i2&3]
	t := (level - v1) / (v2 - v1)
	return geom.Lerp(k.corner(i1), k.corner(i2), t)
}

// Init places the walker at the dual pixel with top-left corner
// (cx, cy), assuming entry from the south, and verifies that level
// actually crosses that edgel. If it does not — the caller's crossing
// point belongs to the diagonally adjacent dual pixel's north edgel
// instead — it flips the assumption: shift one row up, one column
// right, and re-enter from the north. It returns the entry point.
func (k *Walker) Init(cx, cy int, level float64) (geom.Point, error) {
	k.cx, k.cy, k.dir = cx, cy, S
	k.loadCorners()
	if !between(level, k.val[0], k.val[1]) {
		k.cx, k.cy, k.dir = cx+1, cy-1, N
		if err := k.checkBounds(); err != nil {
			return geom.Point{}, err
		}
		k.loadCorners()
		if !between(level, k.val[2], k.val[3]) {
			return geom.Point{}, fmt.Errorf("%w: at (%d,%d)", ErrInconsistentEntry, cx, cy)
		}
	}
	return k.edgePoint(k.dir, level), nil
}

// InitDirect places the walker at the dual pixel with top-left corner
// (cx, cy), entered directly from dir (S or N), with no flip
// heuristic: the caller asserts that level does in fact cross that
// edgel. It returns an error if it does not.
func (k *Walker) InitDirect(cx, cy int, dir Direction, level float64) (geom.Point, error) {
	k.cx, k.cy, k.dir = cx, cy, dir
	if err := k.checkBounds(); err != nil {
		return geom.Point{}, err
	}
	k.loadCorners()
	i1, i2 := int(dir), (int(dir)+1)&3
	if !between(level, k.val[i1], k.val[i2]) {
		return geom.Point{}, fmt.Errorf("%w: at (%d,%d) dir %s", ErrInconsistentEntry, cx, cy, dir)
	}
	return k.edgePoint(dir, level), nil
}

func between(level, a, b float64) bool {
	if a <= b {
		return level > a && level < b
	}
	return level > b && level < a
}

func (k *Walker) checkBounds() error {
	if k.cx < 0 || k.cy < 0 || k.cx > k.w-2 || k.cy > k.h-2 {
		return fmt.Errorf("%w: dual pixel (%d,%d) out of [0,%d]x[0,%d]",
			ErrInconsistentEntry, k.cx, k.cy, k.w-2, k.h-2)
	}
	return nil
}

// Pos returns the current entry point (undefined before Init).
func (k *Walker) Pos(level float64) geom.Point { return k.edgePoint(k.dir, level) }

// Dir returns the walker's current entry direction.
func (k *Walker) Dir() Direction { return k.dir }

// EdgelKey returns the oriented-horizontal-edgel coordinates of the
// walker's current entry, valid only when Dir() is S or N.
func (k *Walker) EdgelKey() (row, col int, isS bool) {
	if k.dir == S {
		return k.cy, k.cx, true
	}
	return k.cy + 1, k.cx, false
}

// Advance resolves the level line's exit from the current dual pixel,
// samples any hyperbola branch it traces through on the way, and
// moves the walker into the adjacent dual pixel across that exit. It
// returns the interior samples (not including the entry or exit
// point) in traversal order and the exit point, which becomes the
// entry point of the next Advance.
func (k *Walker) Advance(level float64, ptsPerPixel int) ([]geom.Point, geom.Point, error) {
	entry := k.edgePoint(k.dir, level)
	// A far corner's edge is crossed iff it sits on the opposite side
	// of level from the entry corner it shares that edge's pixel
	// boundary with; both crossed at once is the saddle ambiguity, and
	// neither crossed means the line leaves through the opposite edgel.
	entryFirst := k.val[int(k.dir)]
	entrySecond := k.val[(int(k.dir)+1)&3]
	leftFar := k.val[(int(k.dir)+3)&3]
	rightFar := k.val[(int(k.dir)+2)&3]
	canLeft := (leftFar > level) != (entryFirst > level)
	canRight := (rightFar > level) != (entrySecond > level)

	localEntry := entry.Sub(geom.Point{X: float64(k.cx), Y: float64(k.cy)})
	hyp := geom.HyperbolaFrom(k.val[0], k.val[1], k.val[2], k.val[3], localEntry, level)

	var goLeft, goStraight bool
	switch {
	case canLeft && canRight:
		// Above the saddle value the line cuts off the corners above
		// level, below it the corners below level: turn toward
		// whichever entry corner is on the side being cut off.
		goLeft = (entryFirst > level) == !(level*hyp.Denom < hyp.Num)
	case canLeft:
		goLeft = true
	case canRight:
		goLeft = false
	case (leftFar > level) != (rightFar > level):
		goStraight = true
	default:
		return nil, geom.Point{}, fmt.Errorf("%w: no exit from dual pixel (%d,%d) at level %g",
			ErrInconsistentEntry, k.cx, k.cy, level)
	}

	var exitDir, newDir Direction
	switch {
	case goStraight:
		exitDir = Direction((int(k.dir) + 2) & 3)
		newDir = k.dir
	case goLeft:
		exitDir = Direction((int(k.dir) + 3) & 3)
		newDir = Direction((int(k.dir) + 1) & 3)
	default:
		exitDir = Direction((int(k.dir) + 1) & 3)
		newDir = Direction((int(k.dir) + 3) & 3)
	}
	exit := k.edgePoint(exitDir, level)

	var samples []geom.Point
	if hyp.HasSaddle {
		vertexLocal := hyp.Vertex
		inside := vertexLocal.X > 0 && vertexLocal.X < 1 && vertexLocal.Y > 0 && vertexLocal.Y < 1
		saddleWorld := hyp.Saddle.Add(geom.Point{X: float64(k.cx), Y: float64(k.cy)})
		if inside {
			vertexWorld := vertexLocal.Add(geom.Point{X: float64(k.cx), Y: float64(k.cy)})
			samples = append(samples, geom.SampleHyperbolaBranch(entry, vertexWorld, saddleWorld, hyp.Delta, ptsPerPixel)...)
			samples = append(samples, vertexWorld)
			samples = append(samples, geom.SampleHyperbolaBranch(vertexWorld, exit, saddleWorld, hyp.Delta, ptsPerPixel)...)
		} else {
			samples = geom.SampleHyperbolaBranch(entry, exit, saddleWorld, hyp.Delta, ptsPerPixel)
		}
	}

	m := movement[newDir]
	k.cx += m.dx
	k.cy += m.dy
	k.dir = newDir
	if err := k.checkBounds(); err != nil {
		return nil, geom.Point{}, err
	}
	k.loadCorners()

	return samples, exit, nil
}

package levelline

import "github.com/monasse-reeb/reeb/geom"

// LineType classifies a LevelLine by how it arose during extraction.
type LineType int

const (
	// Regular is an ordinary level line, neither an extremum nor a
	// saddle crossing.
	Regular LineType = iota
	// Min is the boundary of a regional minimum plateau.
	Min
	// Saddle is a branch of a level line passing through a bilinear saddle.
	Saddle
	// Max is the boundary of a regional maximum plateau.
	Max
)

// String renders a LineType the way the teacher's enums stringify
// (core.Graph's Directed()/Weighted() booleans aside, this follows the
// dfs package's White/Gray/Black naming discipline: short, exported
// constants with a plain String method for diagnostics).
func (t LineType) String() string {
	switch t {
	case Regular:
		return "Regular"
	case Min:
		return "Min"
	case Saddle:
		return "Saddle"
	case Max:
		return "Max"
	default:
		return "Unknown"
	}
}

// LevelLine is one connected component of a level set of the bilinear
// interpolant: a fixed Level, a Type describing how it was found, and
// an ordered Polyline that is topologically a closed loop (the last
// point coincides with the first, within floating tolerance).
type LevelLine struct {
	Level    float64
	Type     LineType
	Polyline []geom.Point
}

// RowIntersection records one crossing of a level line through a pixel
// row: the crossing's x-coordinate and the index of the owning line in
// the lines slice returned by ExtractLevelLines and passed to BuildTree.
type RowIntersection struct {
	X         float64
	LineIndex int
}

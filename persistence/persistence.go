package persistence

const maxImageWidth = 1024

// engine runs all seven Stage 1–7 passes over a min-orientation image
// and returns the per-pixel contrast map. zparent is dropped as soon
// as canonicalization no longer needs it, before the node tree (which
// can be as large as the sample grid itself) is built.
func engine(image []float64, w, h int) []float64 {
	g := buildSampleGrid(image, w, h)

	parent, zparent := mergeForest(g)
	canonicalize(g, parent)
	zparent = nil
	_ = zparent

	nodes, nodeIndexOf := buildNodeTree(g, parent)
	propagateContrast(nodes)

	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := realIndex(w, x, y)
			rep := representative(g, parent, idx)
			out[idx] = nodes[nodeIndexOf[rep]].contrast
		}
	}
	return out
}

func validate(image []float32, w, h int) error {
	if w < 2 || h < 2 || len(image) != w*h {
		return ErrInvalidInput
	}
	if w > maxImageWidth {
		return ErrTooLarge
	}
	return nil
}

func toFloat64(image []float32) []float64 {
	out := make([]float64, len(image))
	for i, v := range image {
		out[i] = float64(v)
	}
	return out
}

func toFloat32(image []float64) []float32 {
	out := make([]float32, len(image))
	for i, v := range image {
		out[i] = float32(v)
	}
	return out
}

// Persistence computes the min-orientation persistence map (spec.md
// §6's single persistence operation): the maximum level drop along
// any descending path from each pixel's canonical component.
func Persistence(image []float32, w, h int) ([]float32, error) {
	return PersistenceMin(image, w, h)
}

// PersistenceMin computes persistence with components merging upward
// in value, the orientation that credits regional minima.
func PersistenceMin(image []float32, w, h int) ([]float32, error) {
	if err := validate(image, w, h); err != nil {
		return nil, err
	}
	return toFloat32(engine(toFloat64(image), w, h)), nil
}

// PersistenceMax computes persistence with the opposite orientation,
// crediting regional maxima, by running the same engine on
// (255 − image) per spec.md §4.4 Stage 7.
func PersistenceMax(image []float32, w, h int) ([]float32, error) {
	if err := validate(image, w, h); err != nil {
		return nil, err
	}
	inverted := make([]float64, len(image))
	for i, v := range image {
		inverted[i] = 255 - float64(v)
	}
	return toFloat32(engine(inverted, w, h)), nil
}

// Result bundles both orientations, for callers that want the whole
// picture in one call instead of running the engine twice themselves.
type Result struct {
	Min []float32
	Max []float32
}

// Both computes PersistenceMin and PersistenceMax in one call.
func Both(image []float32, w, h int) (Result, error) {
	min, err := PersistenceMin(image, w, h)
	if err != nil {
		return Result{}, err
	}
	max, err := PersistenceMax(image, w, h)
	if err != nil {
		return Result{}, err
	}
	return Result{Min: min, Max: max}, nil
}

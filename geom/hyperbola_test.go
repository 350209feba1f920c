package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monasse-reeb/reeb/geom"
)

func TestHyperbolaFrom_Checkerboard(t *testing.T) {
	entry := geom.Point{X: 0.5, Y: 0}
	h := geom.HyperbolaFrom(0, 9, 0, 9, entry, 4.5)
	require.True(t, h.HasSaddle, "checkerboard dual pixel must carry a saddle")
	assert.True(t, h.Denom > 0, "Denom must be normalized positive")
	assert.InDelta(t, 0.5, h.Saddle.X, 1e-9)
	assert.InDelta(t, 0.5, h.Saddle.Y, 1e-9)
}

func TestHyperbolaFrom_NoSaddleKeepsEntryAsVertex(t *testing.T) {
	entry := geom.Point{X: 0, Y: 0.3}
	h := geom.HyperbolaFrom(0, 1, 2, 1, entry, 0.5)
	assert.False(t, h.HasSaddle)
	assert.Equal(t, entry, h.Vertex)
	assert.Zero(t, h.Delta)
}

func TestSampleHyperbolaBranch_ExcludesEndpointsAndFlatCase(t *testing.T) {
	saddle := geom.Point{X: 0.5, Y: 0.5}

	// Flat branch near the saddle level: no interior samples.
	flat := geom.SampleHyperbolaBranch(geom.Point{X: 0, Y: 0.5}, geom.Point{X: 1, Y: 0.5}, saddle, 0.001, 4)
	assert.Nil(t, flat)

	// Non-flat branch: interior samples only, none equal to the endpoints.
	pts := geom.SampleHyperbolaBranch(geom.Point{X: 0, Y: 0.25}, geom.Point{X: 1, Y: 0.75}, saddle, -0.25, 4)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		assert.NotEqual(t, geom.Point{X: 0, Y: 0.25}, p)
		assert.NotEqual(t, geom.Point{X: 1, Y: 0.75}, p)
	}
}

func TestSampleHyperbolaBranch_ZeroPtsPerPixel(t *testing.T) {
	saddle := geom.Point{X: 0.5, Y: 0.5}
	pts := geom.SampleHyperbolaBranch(geom.Point{X: 0, Y: 0.25}, geom.Point{X: 1, Y: 0.75}, saddle, -0.25, 0)
	assert.Nil(t, pts)
}

package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monasse-reeb/reeb/extract"
	"github.com/monasse-reeb/reeb/levelline"
)

func TestExtractLevelLines_ConstantImage(t *testing.T) {
	image := []uint8{5, 5, 5, 5, 5, 5, 5, 5, 5}
	lines, rows, err := extract.ExtractLevelLines(image, 3, 3, 4)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Len(t, rows, 3)
}

func TestExtractLevelLines_SingleInteriorMax(t *testing.T) {
	image := []uint8{
		0, 0, 0,
		0, 9, 0,
		0, 0, 0,
	}
	lines, _, err := extract.ExtractLevelLines(image, 3, 3, 4)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, levelline.Max, lines[0].Type)
	assert.InDelta(t, 9-extract.QuantDelta, lines[0].Level, 1e-9)
	require.NotEmpty(t, lines[0].Polyline)
	first, last := lines[0].Polyline[0], lines[0].Polyline[len(lines[0].Polyline)-1]
	assert.InDelta(t, first.X, last.X, 1e-6)
	assert.InDelta(t, first.Y, last.Y, 1e-6)
}

func TestExtractLevelLines_RejectsInvalidInput(t *testing.T) {
	_, _, err := extract.ExtractLevelLines([]uint8{1, 2, 3, 4}, 1, 4, 4)
	assert.ErrorIs(t, err, extract.ErrInvalidInput)

	_, _, err = extract.ExtractLevelLines([]uint8{1, 2, 3, 4}, 2, 2, -1)
	assert.ErrorIs(t, err, extract.ErrInvalidInput)
}

func TestExtractLevelLines_RejectsTooWide(t *testing.T) {
	_, _, err := extract.ExtractLevelLines(make([]uint8, 1025*2), 1025, 2, 1)
	assert.ErrorIs(t, err, extract.ErrTooLarge)
}

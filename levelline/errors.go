package levelline

import "errors"

// Sentinel errors for levelline operations.
var (
	// ErrNilLine indicates a nil *LevelLine was supplied where one is required.
	ErrNilLine = errors.New("levelline: nil level line")

	// ErrLineIndexOutOfRange indicates a RowIntersection.LineIndex fell
	// outside the bounds of the lines slice passed to BuildTree.
	ErrLineIndexOutOfRange = errors.New("levelline: line index out of range")
)

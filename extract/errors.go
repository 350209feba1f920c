package extract

import "errors"

// Sentinel errors for ExtractLevelLines, matching spec.md §7's error
// kinds surfaced by the core.
var (
	// ErrInvalidInput indicates width or height below 2, or a
	// negative ptsPerPixel.
	ErrInvalidInput = errors.New("extract: invalid input dimensions or pts-per-pixel")

	// ErrTooLarge indicates the image width exceeds the quantization
	// safety margin of 1024 pixels; extracting would silently
	// misquantize saddle levels rather than group them correctly.
	ErrTooLarge = errors.New("extract: image width exceeds quantization safety margin")
)

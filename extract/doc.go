// Package extract implements the extraction driver (spec.md §4.3):
// quantization of saddle levels, regional-extremum discovery, saddle
// line grouping, and the ExtractLevelLines orchestration that ties
// them to the tracer package to produce a complete set of level
// lines plus the row-intersection log that levelline.BuildTree needs.
//
// ExtractLevelLines returns two error kinds: ErrInvalidInput and
// ErrTooLarge, per spec.md §7. Internal tracer assertion failures
// (ErrInconsistentEntry) propagate unwrapped — they indicate a
// corrupted image grid, not a usage error of this package.
package extract

// Package placement writes the two output artifacts for each processed
// photo: a byte-identical archive copy of the original and the normalized
// JPEG in the renamed directory.
//
// Both placements resolve name collisions by appending _1, _2, ... to the
// derived title. The source file is removed only after the normalized output
// is durably written, so partial failures never lose an input.
package placement

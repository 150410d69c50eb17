// Package pipeline orchestrates one processing run over the inbox.
//
// Each photo flows through normalize -> identify -> derive title -> archive
// -> finalize, strictly one file at a time. A failure at any step records
// the error for that photo and moves on; the input file stays in the inbox
// untouched. Only startup conditions (missing inbox directory, another run
// holding the lock) abort the whole run.
package pipeline

// Package anthropic wraps the Anthropic Messages API for movie
// identification from disc photos.
//
// A single synchronous request carries the normalized JPEG (base64) plus the
// fixed identification prompt; the raw text response is the movie title. The
// client performs no retries: a failure aborts that one file and the
// original stays in the inbox for a later run.
package anthropic

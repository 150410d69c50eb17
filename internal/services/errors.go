package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingCredential marks a missing API credential. Fatal at startup.
	ErrMissingCredential = errors.New("missing credential")
	// ErrDirectoryNotFound marks an inbox directory that does not exist. Fatal at startup.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrUnsupportedImage marks bytes that cannot be decoded as an image.
	ErrUnsupportedImage = errors.New("unsupported image")
	// ErrRecognitionFailed marks a failed or unusable recognition response.
	ErrRecognitionFailed = errors.New("recognition failed")
	// ErrPlacementFailed marks a failed archive copy or finalize move.
	ErrPlacementFailed = errors.New("placement failed")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrPlacementFailed
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether an error should abort the whole run instead of
// skipping a single file. Only startup conditions qualify.
func IsFatal(err error) bool {
	return errors.Is(err, ErrMissingCredential) || errors.Is(err, ErrDirectoryNotFound)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

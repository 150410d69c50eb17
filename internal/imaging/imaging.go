// Package imaging normalizes inbox photos for the recognition request:
// RGB, longer edge capped at 2048px, JPEG quality 80.
package imaging

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"reelname/internal/services"
)

const (
	// MaxEdge caps the longer dimension of a normalized image.
	MaxEdge = 2048
	// JPEGQuality is the encode quality for normalized output.
	JPEGQuality = 80
)

// Normalized holds the in-memory JPEG payload sent to the recognition
// service. It is transient; nothing persists it.
type Normalized struct {
	Data   []byte
	Width  int
	Height int
}

// Normalize decodes raw image bytes, flattens any transparency onto a white
// background, scales down so the longer edge is at most MaxEdge (never
// upscaling), and re-encodes as JPEG. Animated inputs collapse to their
// first frame. The input slice is never modified.
func Normalize(data []byte) (Normalized, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Normalized{}, services.Wrap(services.ErrUnsupportedImage, "normalize", "decode image", "", err)
	}

	flattened := flatten(src)
	if longerEdge(flattened.Bounds()) > MaxEdge {
		flattened = imaging.Fit(flattened, MaxEdge, MaxEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flattened, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return Normalized{}, services.Wrap(services.ErrUnsupportedImage, "normalize", "encode jpeg", "", err)
	}

	bounds := flattened.Bounds()
	return Normalized{Data: buf.Bytes(), Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// flatten composites src over white so alpha never reaches the JPEG encoder
// as black.
func flatten(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(background, src, image.Pt(0, 0), 1.0)
}

func longerEdge(bounds image.Rectangle) int {
	if bounds.Dx() > bounds.Dy() {
		return bounds.Dx()
	}
	return bounds.Dy()
}

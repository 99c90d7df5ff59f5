// Package images normalizes uploaded pictures and stores them in S3
// compatible object storage.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Size is the edge of the square every stored picture is cropped to.
	Size    = 600
	Quality = 90
)

var ErrInvalidImage = errors.New("invalid image")

// Process decodes r, center-crops it to Size x Size and re-encodes it as JPEG.
func Process(r io.Reader) ([]byte, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	dst := imaging.Fill(src, Size, Size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// NewKey returns a fresh object key under prefix, e.g. "products/<uuid>.jpg".
func NewKey(prefix string) string {
	return fmt.Sprintf("%s/%s.jpg", prefix, uuid.New())
}

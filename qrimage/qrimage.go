// Package qrimage encodes text into QR code PNG images and writes them to disk.
package qrimage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/skip2/go-qrcode"
)

var (
	// ErrEncoding is returned when a payload cannot be turned into a QR code.
	ErrEncoding = errors.New("cannot encode QR code")

	// ErrWrite is returned when the image file cannot be persisted.
	ErrWrite = errors.New("cannot write QR code image")
)

// RecoveryLevel is the fixed error-correction level for every image.
const RecoveryLevel = qrcode.Low

// Encode returns a PNG image of a QR code for payload, drawn with
// moduleSize pixels per module plus the standard quiet zone.
func Encode(payload string, moduleSize int) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrEncoding)
	}
	if moduleSize <= 0 {
		return nil, fmt.Errorf("%w: module size must be positive, got %d", ErrEncoding, moduleSize)
	}

	q, err := qrcode.New(payload, RecoveryLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	// A negative size asks go-qrcode for a fixed number of pixels per module.
	png, err := q.PNG(-moduleSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return png, nil
}

// Writer persists QR code images.
type Writer struct {
	ModuleSize int
}

// Write encodes payload and stores the PNG at path, replacing any existing
// file. The image is fully encoded before the filesystem is touched, then
// synced to a temporary file beside path and renamed into place, so path
// never holds a partial image.
func (w Writer) Write(payload, path string) error {
	png, err := Encode(payload, w.ModuleSize)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(path, png, 0o644, renameio.WithTempDir(filepath.Dir(path))); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

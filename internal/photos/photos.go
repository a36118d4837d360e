// Package photos handles place images: loading PNGs from disk, the fixed
// placeholder for places without a photo, exporting to a local directory,
// and off-site backup to an S3-compatible bucket.
package photos

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/placekeeper/internal/filex"
	"github.com/dmitrijs2005/placekeeper/internal/models"
)

//go:embed placeholder.png
var placeholder []byte

// Placeholder returns the fixed placeholder image bytes.
func Placeholder() []byte {
	return placeholder
}

// Render returns the image to display for a place: its own photo, or the
// fixed placeholder when it has none. The result is never empty.
func Render(p *models.Place) []byte {
	if len(p.Image) == 0 {
		return placeholder
	}
	return p.Image
}

// Load reads a PNG file from disk and validates it, returning its bytes.
// This is the CLI's stand-in for the photo picker.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("not a valid PNG: %w", err)
	}
	return data, nil
}

// Export writes the place's rendered image (photo or placeholder) into the
// given subdirectory of the working directory and returns the file path.
func Export(p *models.Place, dirName string) (string, error) {
	dir, err := filex.EnsureSubdDir(dirName)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, p.Id+".png")
	if err := os.WriteFile(path, Render(p), 0o660); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

// Package assets holds the bitmaps bundled into the binaries.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"io/fs"

	"fyne.io/fyne/v2"
)

//go:embed *.png
var files embed.FS

// MoleName is the logical name of the mole bitmap.
const MoleName = "mole.png"

// Load decodes the bundled bitmap called name.
func Load(name string) (image.Image, error) {
	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, fmt.Errorf("asset %q: %w", name, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode asset %q: %w", name, err)
	}
	return img, nil
}

// Mole returns the mole bitmap.
func Mole() (image.Image, error) {
	return Load(MoleName)
}

// Resource exposes a bundled file as a fyne resource, e.g. for the window
// icon.
func Resource(name string) (fyne.Resource, error) {
	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, fmt.Errorf("asset %q: %w", name, err)
	}
	return fyne.NewStaticResource(name, data), nil
}

// Package export writes a drawing to disk.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"

	"TapAndPaint/internal/render"
	"TapAndPaint/internal/state"
)

// ErrEmptyCanvas is returned when the canvas has no pixels to export.
var ErrEmptyCanvas = errors.New("canvas has no area")

// Options describes where and at what size a snapshot is written.
type Options struct {
	Dir    string
	Size   state.Size
	Scale  float32
	Radius float32
	Clock  *state.TokenClock
}

// Snapshot renders the points onto an opaque white image the size of the
// canvas.
func Snapshot(opts Options, points []state.StrokePoint) (*image.RGBA, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(opts.Size.Width * scale)
	h := int(opts.Size.Height * scale)
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyCanvas
	}
	return render.Image(w, h, points, render.Options{
		Background: color.White,
		Radius:     opts.Radius,
		Scale:      scale,
	}), nil
}

// create writes a new drawing_<token>.<ext> file under dir. The file is
// removed again if encode fails.
func create(ctx context.Context, opts Options, ext string, encode func(io.Writer) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if opts.Dir == "" {
		return "", fmt.Errorf("export: no target directory")
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	clock := opts.Clock
	if clock == nil {
		clock = state.NewTokenClock(nil)
	}

	path := filepath.Join(opts.Dir, fmt.Sprintf("drawing_%d.%s", clock.Next(), ext))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}

	log.Printf("[EXPORT] Wrote %s", path)
	return path, nil
}

package export

import (
	"context"
	"image/png"
	"io"

	"TapAndPaint/internal/state"
)

// PNG writes the drawing as a lossless PNG and returns its path.
func PNG(ctx context.Context, opts Options, points []state.StrokePoint) (string, error) {
	img, err := Snapshot(opts, points)
	if err != nil {
		return "", err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return create(ctx, opts, "png", func(w io.Writer) error {
		return enc.Encode(w, img)
	})
}

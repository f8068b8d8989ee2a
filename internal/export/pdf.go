package export

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"

	"TapAndPaint/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PDF writes the drawing as a single page PDF sized to the canvas, one point
// per canvas unit.
func PDF(ctx context.Context, opts Options, points []state.StrokePoint) (string, error) {
	img, err := Snapshot(opts, points)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode page image: %w", err)
	}

	w, h := float64(opts.Size.Width), float64(opts.Size.Height)
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("drawing", imgOpts, &buf)
	p.ImageOptions("drawing", 0, 0, w, h, false, imgOpts, 0, "")
	if err := p.Error(); err != nil {
		return "", fmt.Errorf("build pdf: %w", err)
	}

	return create(ctx, opts, "pdf", func(out io.Writer) error {
		return p.Output(out)
	})
}

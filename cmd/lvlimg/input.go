// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvlimg/builder"
	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
)

// factory returns the working-image factory selected by --layout.
func (a *app) factory() (core.Factory[float32], error) {
	switch layout := a.v.GetString("layout"); layout {
	case "array":
		return img.ArrayFactory[float32]{}, nil
	case "planar":
		return img.PlanarFactory[float32]{}, nil
	case "cell":
		size := a.v.GetInt("cell-size")
		if size < 1 {
			return nil, fmt.Errorf("cell-size %d: must be >= 1", size)
		}
		return img.NewCellFactory[float32](size), nil
	default:
		return nil, fmt.Errorf("unknown layout %q", layout)
	}
}

// load returns the working image: the --input PNG when it can be adopted,
// otherwise a synthetic image.
func (a *app) load() (core.Img[float32], error) {
	f, err := a.factory()
	if err != nil {
		return nil, err
	}

	if path := a.v.GetString("input"); path != "" {
		im, err := a.loadPNG(path, f)
		if err == nil {
			return im, nil
		}
		if !errors.Is(err, img.ErrCannotWrap) && !errors.Is(err, core.ErrBadShape) {
			return nil, err
		}
		a.logger.Warn("input cannot be adopted, using synthetic image", "path", path, "err", err)
	}

	return a.synthetic(f)
}

func (a *app) loadPNG(path string, f core.Factory[float32]) (core.Img[float32], error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	decoded, err := png.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	gray, ok := decoded.(*image.Gray)
	if !ok {
		gray = image.NewGray(decoded.Bounds())
		draw.Draw(gray, gray.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	}

	src, err := img.WrapGray(gray)
	if err != nil {
		return nil, err
	}
	dst, err := core.CreateLike[float32](f, src, 0)
	if err != nil {
		return nil, err
	}
	convert(src, dst)
	a.logger.Info("loaded input",
		"path", path, "dims", src.Bounds().Dims(), "layout", f.Name(), "size", humanize.Bytes(uint64(len(gray.Pix))))

	return dst, nil
}

func (a *app) synthetic(f core.Factory[float32]) (core.Img[float32], error) {
	w, h := a.v.GetInt("width"), a.v.GetInt("height")
	im, err := builder.BuildImage[float32](f, []int{w, h},
		[]builder.BuilderOption{
			builder.WithSeed(a.v.GetInt64("seed")),
			builder.WithAmplitude(200),
			builder.WithClamp(0, 255),
		},
		builder.Constant[float32](20),
		builder.GaussianBlobs[float32](a.v.GetInt("blobs"), a.v.GetFloat64("sigma")),
	)
	if err != nil {
		return nil, err
	}
	a.logger.Info("synthetic input", "dims", []int{w, h}, "layout", f.Name(), "size", humanize.Bytes(uint64(4*w*h)))

	return im, nil
}

// convert copies src into dst sample by sample at equal coordinates.
func convert[S, D core.Real](src core.IterableInterval[S], dst core.RandomAccessible[D]) {
	ra := dst.RandomAccess()
	c := src.LocalizingCursor()
	for c.HasNext() {
		v := c.Next()
		core.SetPositionFrom(ra, c)
		ra.Set(core.FromReal[D](core.ToReal(v)))
	}
}

// writePNG renders ii to --output, if set.
func writePNG[T core.Real](a *app, ii core.IterableInterval[T]) error {
	path := a.v.GetString("output")
	if path == "" {
		return nil
	}
	g, err := img.ToGray(ii)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(fh, g); err != nil {
		fh.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err = fh.Close(); err != nil {
		return err
	}
	if fi, err := os.Stat(path); err == nil {
		a.logger.Info("wrote output", "path", path, "size", humanize.Bytes(uint64(fi.Size())))
	}

	return nil
}

// Package svgsimplify provides the functionality for the
// svgsimplify binary as a library.
package svgsimplify

import (
	"fmt"
	"math"
	"os"

	"github.com/paulhankin/inkpath/paths"
	"github.com/rustyoz/svg"
)

type Config struct {
	In  string
	Out string

	Delta     paths.Vec2
	Size      paths.Vec2
	PaperSize paths.Vec2
	Center    bool
	Clip      bool

	Tolerance float64
}

// docBounds reads the document's declared viewBox, for files whose
// size attributes the path parser couldn't use.
func docBounds(name string) (paths.Bounds, error) {
	f, err := os.Open(name)
	if err != nil {
		return paths.Bounds{}, err
	}
	defer f.Close()
	doc, err := svg.ParseSvgFromReader(f, "", 1.0)
	if err != nil {
		return paths.Bounds{}, err
	}
	var x, y, w, h float64
	if _, err := fmt.Sscanf(doc.ViewBox, "%f %f %f %f", &x, &y, &w, &h); err != nil {
		return paths.Bounds{}, fmt.Errorf("svg file %s has no usable viewBox: %w", name, err)
	}
	return paths.Bounds{
		Min: paths.Vec2{x, y},
		Max: paths.Vec2{x + w, y + h},
	}, nil
}

func adjustSize(sz, ps, delta paths.Vec2, center bool, b paths.Bounds) (paths.Bounds, error) {
	ow := b.Max[0] - b.Min[0]
	oh := b.Max[1] - b.Min[1]
	if sz[0] == 0 && sz[1] == 0 {
		sz[0] = ow
		sz[1] = oh
	} else if sz[1] == 0 {
		sz[1] = sz[0] * oh / ow
	} else if sz[0] == 0 {
		sz[0] = sz[1] * ow / oh
	}

	if !(math.Abs(sz[0]/sz[1]-ow/oh) < 1e-3) {
		return paths.Bounds{}, fmt.Errorf("target image size %g,%g not compatible with image size %g,%g", sz[0], sz[1], ow, oh)
	}

	if ps[0] != 0 || ps[1] != 0 {
		if ps[0] == 0 || ps[1] == 0 {
			return paths.Bounds{}, fmt.Errorf("paper size %g,%g doesn't make sense", ps[0], ps[1])
		}

		if sz[0] > ps[0] || sz[1] > ps[1] {
			return paths.Bounds{}, fmt.Errorf("paper size %g,%g is smaller than image %g,%g", ps[0], ps[1], sz[0], sz[1])
		}
	}

	if center {
		if ps[0] == 0 {
			return paths.Bounds{}, fmt.Errorf("must set -paper to use -center")
		}
		delta[0] += (ps[0] - sz[0]) / 2
		delta[1] += (ps[1] - sz[1]) / 2
	}

	return paths.Bounds{
		Min: paths.Vec2{delta[0], delta[1]},
		Max: paths.Vec2{sz[0] + delta[0], sz[1] + delta[1]},
	}, nil
}

// Convert reads the input SVG, rescales it to the configured size,
// simplifies its paths within the tolerance, and writes the result as
// a new SVG.
func Convert(cfg *Config) error {
	if cfg.In == "" {
		return fmt.Errorf("input file must be specified")
	}

	ps, err := func() (*paths.Paths, error) {
		f, err := os.Open(cfg.In)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return paths.FromSVG(f)
	}()
	if err != nil {
		return err
	}

	if ps.Bounds.Empty() {
		b, err := docBounds(cfg.In)
		if err != nil {
			return err
		}
		ps.Bounds = b
	}

	bounds, err := adjustSize(cfg.Size, cfg.PaperSize, cfg.Delta, cfg.Center, ps.Bounds)
	if err != nil {
		return err
	}

	ps.Transform(bounds)
	if cfg.Clip {
		ps.Clip(ps.Bounds)
	}
	if cfg.Tolerance > 0 {
		ps.Simplify(cfg.Tolerance)
	}

	out, err := os.Create(cfg.Out)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	if err := ps.SVG(out); err != nil {
		out.Close()
		return fmt.Errorf("failed to write svg file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write svg file: %w", err)
	}
	return nil
}

// Command strokeplot reads a polyline, simplifies it incrementally,
// and renders the original and simplified strokes to a PNG for
// eyeballing the result. It can also overlay the stroke's convex hull
// and the per-segment error boxes, and dump the admissibility trace of
// every append.
//
// The input is either an SVG file or a text file with one "x y" (or
// "x,y") point per line; "-" reads points from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/paulhankin/inkpath/paths"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	flagIn        string
	flagOut       string
	flagTolerance float64
	flagHull      bool
	flagBoxes     bool
	flagTrace     bool
)

func init() {
	flag.StringVar(&flagIn, "in", "-", "input file (svg or x,y per line); - for stdin")
	flag.StringVar(&flagOut, "out", "stroke.png", "output png file")
	flag.Float64Var(&flagTolerance, "tolerance", 0.5, "maximum deviation of the simplified stroke")
	flag.BoolVar(&flagHull, "hull", false, "overlay the convex hull of the stroke")
	flag.BoolVar(&flagBoxes, "boxes", false, "overlay the error box of each simplified segment")
	flag.BoolVar(&flagTrace, "trace", false, "print the scan verdicts of every append")
}

func fail(s string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
	os.Exit(2)
}

func readPoints(name string) ([][]paths.Vec2, error) {
	if filepath.Ext(name) == ".svg" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		ps, err := paths.FromSVG(f)
		if err != nil {
			return nil, err
		}
		var strokes [][]paths.Vec2
		for _, p := range ps.P {
			strokes = append(strokes, p.V)
		}
		return strokes, nil
	}

	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var pts []paths.Vec2
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ' ' || c == ',' || c == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("can't parse point %q", line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, err
		}
		pts = append(pts, paths.Vec2{x, y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return [][]paths.Vec2{pts}, nil
}

func xys(pts []paths.Vec2) plotter.XYs {
	r := make(plotter.XYs, len(pts))
	for i, p := range pts {
		r[i] = plotter.XY{X: p[0], Y: p[1]}
	}
	return r
}

// closedXYs repeats the first point so the polygon outline closes.
func closedXYs(pts []paths.Vec2) plotter.XYs {
	r := xys(pts)
	if len(pts) > 0 {
		r = append(r, r[0])
	}
	return r
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.RGBA, w float64, dashed bool) (*plotter.Line, error) {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.Color = c
	l.Width = vg.Points(w)
	if dashed {
		l.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	}
	p.Add(l)
	return l, nil
}

// segmentBoxes reconstructs, for each edge of the route, the error box
// of the points the edge replaces.
func segmentBoxes(seq *paths.Sequence, sim *paths.Simplifier) [][4]paths.Vec2 {
	chain := sim.Route()
	var r [][4]paths.Vec2
	for k := 1; k < len(chain); k++ {
		i, j := chain[k-1], chain[k]
		line := sim.Fitter().FitLine(i, j)
		box := paths.NewErrorBox(line, seq.At(i))
		for m := i + 1; m <= j; m++ {
			box.Extend(line, seq.At(m))
		}
		r = append(r, box.Corners())
	}
	return r
}

func main() {
	flag.Parse()
	strokes, err := readPoints(flagIn)
	if err != nil {
		fail("failed to read input: %v", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("stroke simplification, tolerance %g", flagTolerance)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	var (
		rawColor  = color.RGBA{R: 160, G: 160, B: 160, A: 255}
		simColor  = color.RGBA{R: 200, A: 255}
		hullColor = color.RGBA{B: 200, A: 255}
		boxColor  = color.RGBA{G: 140, A: 255}
	)

	var nin, nout int
	for si, pts := range strokes {
		if len(pts) == 0 {
			continue
		}
		seq := &paths.Sequence{}
		sim, err := paths.NewSimplifier(seq, flagTolerance)
		if err != nil {
			fail("%v", err)
		}
		for _, pt := range pts {
			seq.Append(pt)
			if flagTrace {
				for _, e := range sim.Trace() {
					fmt.Printf("stroke %d point %d: %d %s\n", si, seq.Len()-1, e.Index, e.Verdict)
				}
			}
		}
		simplified := sim.Simplified()
		nin += len(pts)
		nout += len(simplified.V)

		rawLine, err := addLine(p, xys(pts), rawColor, 1, false)
		if err != nil {
			fail("%v", err)
		}
		simLine, err := addLine(p, xys(simplified.V), simColor, 1.5, false)
		if err != nil {
			fail("%v", err)
		}
		if si == 0 {
			p.Legend.Add("original", rawLine)
			p.Legend.Add("simplified", simLine)
		}

		if flagHull {
			h := &paths.Hull{}
			for _, pt := range pts {
				h.Offer(pt)
			}
			hl, err := addLine(p, closedXYs(h.Points()), hullColor, 1, true)
			if err != nil {
				fail("%v", err)
			}
			if si == 0 {
				p.Legend.Add("hull", hl)
			}
		}

		if flagBoxes {
			for _, corners := range segmentBoxes(seq, sim) {
				if _, err := addLine(p, closedXYs(corners[:]), boxColor, 0.5, true); err != nil {
					fail("%v", err)
				}
			}
		}
	}

	p.Legend.Top = true
	if err := p.Save(8*vg.Inch, 8*vg.Inch, flagOut); err != nil {
		fail("failed to save plot: %v", err)
	}
	fmt.Printf("%s: %d points in, %d points out\n", flagOut, nin, nout)
}

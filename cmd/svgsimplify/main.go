package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulhankin/inkpath/cmd/svgsimplify/svgsimplify"
	"github.com/paulhankin/inkpath/paths"
)

type flagSizeValue struct {
	X, Y float64
}

func (fs *flagSizeValue) String() string {
	return fmt.Sprintf("%.2f,%.2f", fs.X, fs.Y)
}

func parseSizePart(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func (fs *flagSizeValue) Set(s string) error {
	var err error
	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		fs.X, err = parseSizePart(parts[0])
		return err
	}
	if len(parts) > 2 {
		return fmt.Errorf("can't parse %q as size", s)
	}
	if fs.X, err = parseSizePart(parts[0]); err != nil {
		return err
	}
	if fs.Y, err = parseSizePart(parts[1]); err != nil {
		return err
	}
	return nil
}

// flags
var (
	flagIn  string
	flagOut string

	flagDelta     flagSizeValue
	flagSize      flagSizeValue
	flagPaperSize flagSizeValue
	flagCenter    bool
	flagClip      bool
	flagTolerance float64
)

func init() {
	flag.StringVar(&flagIn, "in", "", "svg input file")
	flag.StringVar(&flagOut, "out", "out.svg", "svg output file")
	flag.Var(&flagDelta, "offset", "displacement of 0,0 from the output origin")
	flag.Var(&flagSize, "size", "target size of image (mm)")
	flag.Var(&flagPaperSize, "paper", "target size of paper (mm)")
	flag.BoolVar(&flagCenter, "center", false, "if set, center image on paper")
	flag.BoolVar(&flagClip, "clip", false, "if set, clip paths to the image bounds")
	flag.Float64Var(&flagTolerance, "tolerance", 0.1, "maximum distance (mm) simplified paths may deviate")
}

func main() {
	flag.Parse()
	err := svgsimplify.Convert(&svgsimplify.Config{
		In:        flagIn,
		Out:       flagOut,
		Delta:     paths.Vec2{flagDelta.X, flagDelta.Y},
		Size:      paths.Vec2{flagSize.X, flagSize.Y},
		PaperSize: paths.Vec2{flagPaperSize.X, flagPaperSize.Y},
		Center:    flagCenter,
		Clip:      flagClip,
		Tolerance: flagTolerance,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}

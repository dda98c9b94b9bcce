// Command glyphrender rasterizes TrueType glyphs into grayscale images.
//
// Usage:
//
//	glyphrender [flags] font.ttf
//
// Examples:
//
//	glyphrender -text Hello -size 96 -o hello.png DejaVuSans.ttf
//	glyphrender -glyph 36 -size 200 -o glyph.pgm font.ttf
//	glyphrender -info font.ttf
//	glyphrender -shape -size 400 -o shape.pgm
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/cwbudde/algo-raster/font/truetype"
	"github.com/cwbudde/algo-raster/geom"
	"github.com/cwbudde/algo-raster/internal/cpu"
	"github.com/cwbudde/algo-raster/raster/analytic"
	"github.com/cwbudde/algo-raster/raster/coverage"
)

func main() {
	text := flag.String("text", "A", "text to render")
	glyphID := flag.Int("glyph", -1, "render one glyph by index instead of -text")
	size := flag.Int("size", 64, "pixel size per em")
	out := flag.String("o", "out.pgm", "output image path (.pgm or .png)")
	info := flag.Bool("info", false, "print font and kernel info instead of rendering")
	shape := flag.Bool("shape", false, "render the built-in demo shape (no font needed)")
	bench := flag.Int("bench", 0, "repeat rendering N extra times and report throughput")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: glyphrender [flags] font.ttf\n\n")
		fmt.Fprintf(os.Stderr, "Rasterizes TrueType glyphs into grayscale images.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  glyphrender -text Hello -size 96 -o hello.png DejaVuSans.ttf\n")
		fmt.Fprintf(os.Stderr, "  glyphrender -glyph 36 -size 200 -o glyph.pgm font.ttf\n")
		fmt.Fprintf(os.Stderr, "  glyphrender -info font.ttf\n")
		fmt.Fprintf(os.Stderr, "  glyphrender -shape -size 400 -o shape.pgm\n")
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	truetype.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *size < 1 {
		fatalf("size must be positive, got %d", *size)
	}

	if *shape {
		img := demoShape(*size)
		if *bench > 0 {
			runBench(func() (*image.Gray, error) { return demoShape(*size), nil }, *bench, img)
		}
		if err := writeImage(*out, img); err != nil {
			fatalf("%v", err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatalf("%v", err)
	}
	fnt, err := truetype.Parse(data)
	if err != nil {
		fatalf("parsing %s: %v", flag.Arg(0), err)
	}

	if *info {
		printInfo(fnt, *size)
		return
	}

	render := func() (*image.Gray, error) {
		if *glyphID >= 0 {
			return renderGlyph(fnt, uint16(*glyphID), *size)
		}
		return renderText(fnt, *text, *size)
	}
	img, err := render()
	if err != nil {
		fatalf("%v", err)
	}
	if *bench > 0 {
		runBench(render, *bench, img)
	}
	if err := writeImage(*out, img); err != nil {
		fatalf("%v", err)
	}
}

// runBench repeats render and prints per-op timing plus a hex line of the
// first output bytes as a quick regression check.
func runBench(render func() (*image.Gray, error), iters int, img *image.Gray) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		if _, err := render(); err != nil {
			fatalf("%v", err)
		}
	}
	elapsed := time.Since(start)
	mbps := float64(len(img.Pix)) * float64(iters) / elapsed.Seconds() / 1e6
	n := min(16, len(img.Pix))
	fmt.Printf("%d iterations, %v/op, %.1f MB/s\n", iters, elapsed/time.Duration(iters), mbps)
	fmt.Printf("first bytes: % x\n", img.Pix[:n])
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// demoShape renders the classic two-lines-and-a-quad test outline,
// scaled so the drawing always fills three quarters of the image.
func demoShape(size int) *image.Gray {
	s := float32(size) / 200
	r := analytic.NewRasterizer(size, size)
	p := func(x, y float32) geom.Point { return geom.Pt(x*s, y*s) }
	r.DrawLine(p(10, 10.5), p(20, 150))
	r.DrawLine(p(20, 150), p(50, 139))
	r.DrawQuad(p(50, 139), p(100, 60), p(10, 10.5))
	return &image.Gray{
		Pix:    r.Bitmap(),
		Stride: size,
		Rect:   image.Rect(0, 0, size, size),
	}
}

func renderGlyph(fnt *truetype.Font, glyphID uint16, size int) (*image.Gray, error) {
	bm, err := fnt.RenderGlyph(glyphID, size)
	if err != nil {
		return nil, err
	}
	if bm.Width == 0 || bm.Height == 0 {
		return image.NewGray(image.Rect(0, 0, 1, 1)), nil
	}
	return &image.Gray{
		Pix:    bm.Data,
		Stride: bm.Width,
		Rect:   image.Rect(0, 0, bm.Width, bm.Height),
	}, nil
}

// renderText draws the string on a baseline sized from the font's
// vertical metrics, with a one pixel margin all around.
func renderText(fnt *truetype.Font, text string, size int) (*image.Gray, error) {
	face := truetype.NewFace(fnt, &truetype.FaceOptions{Size: float64(size)})
	defer face.Close()

	m := face.Metrics()
	d := font.Drawer{Face: face}
	width := d.MeasureString(text).Ceil()
	if width < 1 {
		width = 1
	}
	height := (m.Ascent + m.Descent).Ceil()
	if height < 1 {
		height = 1
	}

	img := image.NewGray(image.Rect(0, 0, width+2, height+2))
	d.Dst = img
	d.Src = image.NewUniform(color.Gray{Y: 255})
	d.Dot = fixed.P(1, 1+m.Ascent.Ceil())
	d.DrawString(text)
	return img, nil
}

func printInfo(fnt *truetype.Font, size int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\t%s\n", coverage.KernelName())
	fmt.Fprintf(tw, "Arch\t%s\n", cpu.DetectFeatures().Architecture)
	fmt.Fprintf(tw, "Glyphs\t%d\n", fnt.NumGlyphs())
	fmt.Fprintf(tw, "Units/em\t%d\n", fnt.UnitsPerEm())
	if name, ok := fnt.Name(truetype.NameFamily); ok {
		fmt.Fprintf(tw, "Family\t%s\n", name)
	}
	if name, ok := fnt.Name(truetype.NameSubfamily); ok {
		fmt.Fprintf(tw, "Style\t%s\n", name)
	}
	if name, ok := fnt.Name(truetype.NameVersion); ok {
		fmt.Fprintf(tw, "Version\t%s\n", name)
	}
	if vm, ok := fnt.VMetrics(size); ok {
		fmt.Fprintf(tw, "Ascent@%dpx\t%.1f\n", size, vm.Ascent)
		fmt.Fprintf(tw, "Descent@%dpx\t%.1f\n", size, vm.Descent)
		fmt.Fprintf(tw, "Line gap@%dpx\t%.1f\n", size, vm.LineGap)
	}
	for _, tag := range []string{"glyf", "loca", "cmap", "hhea", "hmtx", "name", "kern"} {
		fmt.Fprintf(tw, "Table %s\t%t\n", tag, fnt.HasTable(truetype.MakeTag(tag)))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func writeImage(path string, img *image.Gray) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := png.Encode(&buf, img); err != nil {
			return err
		}
	case ".pgm":
		writePGM(&buf, img)
	default:
		return fmt.Errorf("unsupported output format %q (use .pgm or .png)", filepath.Ext(path))
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// writePGM emits binary PGM, the format the original showttf tool used.
func writePGM(buf *bytes.Buffer, img *image.Gray) {
	b := img.Rect
	fmt.Fprintf(buf, "P5\n%d %d\n255\n", b.Dx(), b.Dy())
	buf.Write(img.Pix)
}

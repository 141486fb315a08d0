// Command hersheyview renders Hershey fonts to PNG.
//
// Without -text it renders a viewer frame: the selected glyph enlarged,
// a caption and a specimen paragraph. -events replays viewer input first:
//
//	hersheyview -fonts ./fonts -events down,right,type:abc -output frame.png
//
// With -text it renders just that text:
//
//	hersheyview -fonts ./fonts -font futural -text "Hello" -scale 3 -output - > hello.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/term"

	"github.com/gogpu/hershey"
	"github.com/gogpu/hershey/raster"
	"github.com/gogpu/hershey/text"
	"github.com/gogpu/hershey/viewer"
)

type config struct {
	fontsDir string
	font     string
	text     string
	events   string
	output   string
	width    int
	height   int
	scale    float64
	zoom     int
	margin   int
	fg, bg   string
	tolerant bool
	grammar  string
	verbose  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.fontsDir, "fonts", "fonts", "directory of .jhf font files")
	flag.StringVar(&cfg.font, "font", "", "font to select, by file base name")
	flag.StringVar(&cfg.text, "text", "", "render this text instead of a viewer frame")
	flag.StringVar(&cfg.events, "events", "", "viewer events to replay, e.g. down,right,type:abc")
	flag.StringVar(&cfg.output, "output", "hershey.png", "output file, - for stdout")
	flag.IntVar(&cfg.width, "width", 1024, "viewer frame width")
	flag.IntVar(&cfg.height, "height", 512, "viewer frame height")
	flag.Float64Var(&cfg.scale, "scale", 2, "text scale")
	flag.IntVar(&cfg.zoom, "zoom", 1, "integer upscale of the final image")
	flag.IntVar(&cfg.margin, "margin", 16, "text margin in pixels")
	flag.StringVar(&cfg.fg, "color", "white", "text color, name or hex")
	flag.StringVar(&cfg.bg, "bg", "#201d1a", "text background, name or hex")
	flag.BoolVar(&cfg.tolerant, "tolerant", false, "skip malformed records instead of failing")
	flag.StringVar(&cfg.grammar, "grammar", "scan", "record grammar: scan or fixed-width")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	hershey.SetLogger(logger)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "hersheyview: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	opts, err := loadOptions(cfg)
	if err != nil {
		return err
	}
	lib, err := hershey.OpenLibrary(cfg.fontsDir, opts...)
	if err != nil {
		return err
	}
	fonts, err := lib.All()
	if err != nil {
		return err
	}
	if len(fonts) == 0 {
		return fmt.Errorf("no %s files in %s", hershey.FileExt, cfg.fontsDir)
	}

	selected := 0
	if cfg.font != "" {
		selected = slices.Index(lib.Names(), cfg.font)
		if selected < 0 {
			return fmt.Errorf("%w: %q", hershey.ErrUnknownFont, cfg.font)
		}
	}

	var pm *raster.Pixmap
	if cfg.text != "" {
		pm, err = renderText(cfg, fonts[selected])
	} else {
		pm, err = renderFrame(cfg, fonts, selected)
	}
	if err != nil {
		return err
	}
	return write(cfg, zoom(pm, cfg.zoom))
}

func loadOptions(cfg config) ([]hershey.LoadOption, error) {
	var opts []hershey.LoadOption
	switch cfg.grammar {
	case "scan":
		opts = append(opts, hershey.WithGrammar(hershey.GrammarScan))
	case "fixed-width":
		opts = append(opts, hershey.WithGrammar(hershey.GrammarFixedWidth))
	default:
		return nil, fmt.Errorf("unknown grammar %q", cfg.grammar)
	}
	if cfg.tolerant {
		opts = append(opts,
			hershey.WithMode(hershey.Tolerant),
			hershey.WithSkipHandler(func(err *hershey.LineError) {
				fmt.Fprintf(os.Stderr, "skipped %v\n", err)
			}),
		)
	}
	return opts, nil
}

func renderFrame(cfg config, fonts []*hershey.Font, selected int) (*raster.Pixmap, error) {
	evs, err := viewer.ParseEvents(cfg.events)
	if err != nil {
		return nil, err
	}
	s := viewer.New(fonts)
	for range selected {
		s = viewer.Update(s, viewer.NextFont{})
	}
	for _, ev := range evs {
		s = viewer.Update(s, ev)
	}

	pm := raster.NewPixmap(cfg.width, cfg.height)
	viewer.Render(s, pm)
	slog.Debug("rendered viewer frame", "font", s.CurrentFont().Name, "glyph", s.Glyph, "events", len(evs))
	return pm, nil
}

func renderText(cfg config, f *hershey.Font) (*raster.Pixmap, error) {
	fg, err := raster.ParseColor(cfg.fg)
	if err != nil {
		return nil, err
	}
	bg, err := raster.ParseColor(cfg.bg)
	if err != nil {
		return nil, err
	}
	if cfg.scale <= 0 {
		return nil, errors.New("scale must be positive")
	}

	// Glyphs extend about a line height around the baseline.
	end := text.Measure(f, cfg.text)
	w := int(float64(text.Width(f, cfg.text))*cfg.scale) + 2*cfg.margin
	h := int(float64(end.Y+text.DefaultLineHeight)*cfg.scale) + 2*cfg.margin
	origin := raster.Pt(cfg.margin, cfg.margin).Add(raster.Pt(0, text.DefaultLineHeight/2).Scale(cfg.scale))

	pm := raster.NewPixmap(w, h)
	pm.Clear(bg)
	text.DrawText(pm, f, cfg.text, origin, cfg.scale, fg)
	return pm, nil
}

func zoom(pm *raster.Pixmap, n int) image.Image {
	if n <= 1 {
		return pm
	}
	dst := image.NewNRGBA(image.Rect(0, 0, pm.Width()*n, pm.Height()*n))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), pm, pm.Bounds(), draw.Src, nil)
	return dst
}

func write(cfg config, img image.Image) error {
	if cfg.output != "-" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		if err := encode(f, img); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		slog.Info("saved", "path", cfg.output, "size", img.Bounds().Size())
		return nil
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PNG to a terminal")
	}
	return encode(os.Stdout, img)
}

func encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

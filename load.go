package hershey

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/hershey/internal/parallel"
)

// Mode decides what ParseFont does with a record that fails to decode.
type Mode int

const (
	// Strict fails the whole font on the first bad record.
	Strict Mode = iota

	// Tolerant logs and reports the bad record, keeps its slot as an empty
	// glyph so later glyphs keep their index, and continues.
	Tolerant
)

// LoadOption configures font loading.
type LoadOption func(*loadConfig)

type loadConfig struct {
	mode       Mode
	grammar    Grammar
	onSkip     func(*LineError)
	cacheLimit int
	workers    int
}

func defaultLoadConfig() loadConfig {
	return loadConfig{
		mode:       Strict,
		grammar:    GrammarScan,
		cacheLimit: 16,
	}
}

func newLoadConfig(opts []LoadOption) loadConfig {
	c := defaultLoadConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMode sets the error policy. The default is Strict.
func WithMode(m Mode) LoadOption {
	return func(c *loadConfig) {
		c.mode = m
	}
}

// WithWorkers sets how many files LoadDir decodes at once. Zero or
// negative means GOMAXPROCS.
func WithWorkers(n int) LoadOption {
	return func(c *loadConfig) {
		c.workers = n
	}
}

// WithGrammar selects the record grammar. The default is GrammarScan.
// Records on which the other grammar gives a different reading are logged
// at warn level either way.
func WithGrammar(g Grammar) LoadOption {
	return func(c *loadConfig) {
		c.grammar = g
	}
}

// WithSkipHandler registers fn to receive every record skipped in Tolerant
// mode. LoadDir may call fn from several goroutines at once.
func WithSkipHandler(fn func(*LineError)) LoadOption {
	return func(c *loadConfig) {
		c.onSkip = fn
	}
}

// WithCacheLimit sets how many decoded fonts a Library keeps. Values below
// one keep a single font.
func WithCacheLimit(n int) LoadOption {
	return func(c *loadConfig) {
		c.cacheLimit = n
	}
}

// Record is the outcome of decoding one line of a font file.
type Record struct {
	Line  int // 1-based
	Text  string
	Glyph Glyph
	Err   error
}

// Records decodes every line of data independently and returns one Record
// per line. It applies no error policy; ParseFont builds on it.
func Records(data []byte, opts ...LoadOption) ([]Record, error) {
	cfg := newLoadConfig(opts)
	return decodeRecords("", data, &cfg)
}

// ParseFont decodes a whole font file. data is read as ISO-8859-1 text,
// trailing blank lines are ignored, and each remaining line becomes one
// glyph in order.
//
// In Strict mode the first bad record is returned as a *LineError.
func ParseFont(name string, data []byte, opts ...LoadOption) (*Font, error) {
	cfg := newLoadConfig(opts)
	recs, err := decodeRecords(name, data, &cfg)
	if err != nil {
		return nil, err
	}

	font := &Font{Name: name, Glyphs: make([]Glyph, 0, len(recs))}
	for _, r := range recs {
		if r.Err == nil {
			font.Glyphs = append(font.Glyphs, r.Glyph)
			continue
		}
		le := &LineError{Font: name, Line: r.Line, Text: r.Text, Err: r.Err}
		if cfg.mode == Strict {
			return nil, le
		}
		Logger().Warn("hershey: skipping record", "font", name, "line", r.Line, "err", r.Err)
		if cfg.onSkip != nil {
			cfg.onSkip(le)
		}
		font.Glyphs = append(font.Glyphs, Glyph{})
	}

	Logger().Debug("hershey: parsed font", "font", name, "glyphs", len(font.Glyphs))
	return font, nil
}

// LoadFile reads and parses one font file. The font is named after the
// file's base name without extension.
func LoadFile(path string, opts ...LoadOption) (*Font, error) {
	// #nosec G304 -- font path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hershey: failed to read font file: %w", err)
	}
	return ParseFont(fontName(path), data, opts...)
}

// LoadDir loads every regular file with extension FileExt in dir, in name
// order. Other entries are skipped. Files are decoded in parallel (see
// WithWorkers); on failure the error of the first failing file in name
// order is returned.
func LoadDir(dir string, opts ...LoadOption) ([]*Font, error) {
	paths, err := fontPaths(dir)
	if err != nil {
		return nil, err
	}
	cfg := newLoadConfig(opts)

	fonts := make([]*Font, len(paths))
	errs := make([]error, len(paths))
	work := make([]func(), len(paths))
	for i, p := range paths {
		work[i] = func() {
			fonts[i], errs[i] = LoadFile(p, opts...)
		}
	}
	n := cfg.workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	pool := parallel.NewWorkerPool(min(n, max(len(paths), 1)))
	defer pool.Close()
	pool.ExecuteAll(work)

	for i, p := range paths {
		if errs[i] != nil {
			return nil, errs[i]
		}
		Logger().Info("hershey: loaded font", "path", p, "glyphs", fonts[i].Len())
	}
	return fonts, nil
}

// fontPaths lists the font files in dir.
func fontPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("hershey: failed to list fonts: %w", err)
	}
	var paths []string
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(e.Name()), FileExt) {
			Logger().Debug("hershey: skipped file", "path", p)
			continue
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func fontName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func decodeRecords(name string, data []byte, cfg *loadConfig) ([]Record, error) {
	lines, err := splitLines(data)
	if err != nil {
		return nil, fmt.Errorf("hershey: %s: %w", name, err)
	}
	recs := make([]Record, len(lines))
	for i, line := range lines {
		g, err := cfg.grammar.Decode(line)
		recs[i] = Record{Line: i + 1, Text: line, Glyph: g, Err: err}
		compareGrammars(name, &recs[i], cfg.grammar)
	}
	return recs, nil
}

// splitLines decodes Latin-1 data and splits it into lines, dropping
// trailing blank lines and carriage returns.
func splitLines(data []byte) ([]string, error) {
	utf8, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	utf8 = bytes.TrimRight(utf8, " \t\r\n")
	if len(utf8) == 0 {
		return nil, nil
	}
	lines := strings.Split(string(utf8), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

// compareGrammars decodes r.Text with the grammar not in use and logs a
// warning when the readings differ. Neither reading replaces the other.
func compareGrammars(name string, r *Record, used Grammar) {
	log := Logger()
	if !log.Enabled(context.Background(), slog.LevelWarn) {
		return
	}
	alt := used.other()
	g, err := alt.Decode(r.Text)
	if sameReading(r.Glyph, r.Err, g, err) {
		return
	}
	log.Warn("hershey: grammars disagree",
		"font", name,
		"line", r.Line,
		used.String(), describe(r.Glyph, r.Err),
		alt.String(), describe(g, err),
	)
}

func sameReading(a Glyph, aErr error, b Glyph, bErr error) bool {
	if aErr != nil || bErr != nil {
		return aErr != nil && bErr != nil
	}
	return a.ID == b.ID &&
		a.DeclaredCount == b.DeclaredCount &&
		a.Left == b.Left && a.Right == b.Right &&
		len(a.Vertices) == len(b.Vertices)
}

func describe(g Glyph, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return fmt.Sprintf("id=%d count=%d bearings=(%d,%d) vertices=%d",
		g.ID, g.DeclaredCount, g.Left, g.Right, len(g.Vertices))
}

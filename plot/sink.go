package plot

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

const (
	KindPNG  = "png"
	KindSVG  = "svg"
	KindHTML = "html"
	KindNone = "none"

	htmlPageName = "charts.html"
)

var (
	ErrUnknownSink = errors.New("unknown chart sink")

	nonWordRe = regexp.MustCompile("[^a-z0-9]+")
)

// NewSink builds the sink for kind writing under dir. The directory is
// created when the first chart is written.
func NewSink(kind, dir string) (Sink, error) {
	switch kind {
	case KindNone:
		return &NopSink{}, nil
	case KindHTML:
		return &HTMLSink{dir: dir}, nil
	case KindPNG, KindSVG:
		return &FileSink{dir: dir, format: kind}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, kind)
	}
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}
	return nil
}

// FileSink writes every chart to its own PNG or SVG file.
type FileSink struct {
	dir    string
	format string
	paths  []string
}

func (s *FileSink) Render(data BarData) error {
	var (
		b   []byte
		err error
	)
	if s.format == KindSVG {
		b, err = DrawPlotBarSVG(data)
	} else {
		b, err = DrawPlotBar(data)
	}
	if err != nil {
		return err
	}
	if err := ensureDir(s.dir); err != nil {
		return err
	}

	path := filepath.Join(s.dir, fileName(data.GetNameGraph())+"."+s.format)
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write chart %s: %w", path, err)
	}
	slog.Info("Chart written",
		slog.String("title", data.GetNameGraph()),
		slog.String("path", path),
		slog.Int("bytes", len(b)))
	s.paths = append(s.paths, path)
	return nil
}

func (s *FileSink) Close() error { return nil }

// Paths lists the files written so far.
func (s *FileSink) Paths() []string { return s.paths }

// HTMLSink collects charts and writes them as one interactive page on Close.
type HTMLSink struct {
	dir    string
	charts []BarData
}

func (s *HTMLSink) Render(data BarData) error {
	if data.lenXValues() == 0 {
		return fmt.Errorf("%s: %w", data.GetNameGraph(), ErrNoBars)
	}
	s.charts = append(s.charts, data)
	return nil
}

func (s *HTMLSink) Close() error {
	if len(s.charts) == 0 {
		return nil
	}
	if err := ensureDir(s.dir); err != nil {
		return err
	}
	path := filepath.Join(s.dir, htmlPageName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := DrawEChartsPage(f, s.charts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	slog.Info("Chart page written", slog.String("path", path), slog.Int("charts", len(s.charts)))
	return nil
}

// NopSink keeps the charts in memory; used headless and in tests.
type NopSink struct {
	Rendered []BarData
}

func (s *NopSink) Render(data BarData) error {
	s.Rendered = append(s.Rendered, data)
	return nil
}

func (s *NopSink) Close() error { return nil }

func fileName(title string) string {
	name := strings.Trim(nonWordRe.ReplaceAllString(strings.ToLower(unidecode.Unidecode(title)), "_"), "_")
	if name == "" {
		return "chart"
	}
	return name
}

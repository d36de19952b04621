package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/phanxgames/gauge"
	"github.com/phanxgames/gauge/internal/config"
	"github.com/phanxgames/gauge/raster"
	"golang.org/x/sync/errgroup"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// selectGauges returns the configured gauges named in only, or all of them
// when only is empty.
func selectGauges(cfg *config.Config, only []string) ([]config.GaugeSpec, error) {
	if len(only) == 0 {
		return cfg.Gauges, nil
	}
	specs := make([]config.GaugeSpec, 0, len(only))
	for _, name := range only {
		spec, ok := cfg.Gauge(name)
		if !ok {
			return nil, fmt.Errorf("no gauge named %q", name)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// renderAll writes every spec in the configured formats, running at most
// out.Concurrency renders at once. Each render builds its own page, so no
// DOM is shared between goroutines.
func renderAll(ctx context.Context, out config.OutputConfig, specs []config.GaugeSpec) (int, error) {
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, out.Concurrency))
	for _, spec := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return renderOne(out, spec)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(specs), nil
}

func renderOne(out config.OutputConfig, spec config.GaugeSpec) error {
	start := time.Now()
	page := gauge.NewPage(spec.Name)
	if out.Stylesheet != "" {
		page.AddStylesheet(out.Stylesheet)
	}
	g, err := spec.Build(page.Body())
	if err != nil {
		return err
	}

	for _, format := range out.Formats {
		var buf bytes.Buffer
		switch format {
		case config.FormatSVG:
			svg := gauge.SVG(g)
			svg.SetAttr("xmlns", svgNamespace)
			err = gauge.RenderNode(&buf, svg)
		case config.FormatHTML:
			err = page.Render(&buf)
		case config.FormatPNG:
			err = raster.EncodePNG(&buf, g, raster.WithScale(out.Scale))
		default:
			err = fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			return fmt.Errorf("gauge %s: %s: %w", spec.Name, format, err)
		}
		path := filepath.Join(out.Dir, spec.Name+"."+format)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("gauge %s: %w", spec.Name, err)
		}
	}

	gauge.Logger().Info("rendered gauge",
		slog.String("name", spec.Name),
		slog.String("kind", spec.Kind),
		slog.Any("formats", out.Formats),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

package backend

import (
	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/render"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

type config struct {
	width, height int
	style         mathcanvas.Style
}

// Option configures CreateRenderer.
type Option func(*config)

// WithSize sets the surface pixel size of the created backend.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithStyle sets the style table of the created renderer.
func WithStyle(st mathcanvas.Style) Option {
	return func(c *config) { c.style = st }
}

// CreateRenderer builds a renderer over the first backend in the
// preference chain that constructs successfully. The chain starts with
// preferred when it names a registered backend (unknown names are
// skipped, not errors), followed by the default order canvas, svg,
// wgpu with duplicates removed. A backend whose Init or surface
// construction fails is logged and skipped. ErrNoBackend is returned
// only when every candidate fails.
func CreateRenderer(preferred string, opts ...Option) (*render.Renderer, error) {
	cfg := config{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, name := range preferenceChain(preferred) {
		b := Get(name)
		if b == nil {
			continue
		}
		if err := b.Init(); err != nil {
			mathcanvas.Logger().Warn("backend init failed, falling back",
				"backend", name, "error", err)
			continue
		}
		prim, err := b.NewPrimitives(cfg.width, cfg.height)
		if err != nil {
			mathcanvas.Logger().Warn("backend surface construction failed, falling back",
				"backend", name, "error", err)
			b.Close()
			continue
		}

		var ropts []render.Option
		if cfg.style != nil {
			ropts = append(ropts, render.WithStyle(cfg.style))
		}
		if tm, ok := b.(TextMeasuring); ok {
			if measurer := tm.TextMeasurer(); measurer != nil {
				ropts = append(ropts, render.WithTextMeasurer(measurer))
			}
		}
		mathcanvas.Logger().Info("backend selected", "backend", name)
		return render.New(prim, ropts...), nil
	}
	return nil, ErrNoBackend
}

// preferenceChain builds the candidate order: preferred first, then
// the default order, duplicates removed.
func preferenceChain(preferred string) []string {
	chain := make([]string, 0, len(defaultOrder)+1)
	seen := make(map[string]bool, len(defaultOrder)+1)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		chain = append(chain, name)
	}
	add(preferred)
	for _, name := range defaultOrder {
		add(name)
	}
	return chain
}

// Package wgpu is the GPU backend. It acquires an adapter, device,
// and queue through wgpu/hal, compiles its fill shader with naga, and
// tessellates every primitive into flat-colored triangles that a
// compute pipeline rasterizes into the surface's pixel buffer on
// EndFrame. Hosts that already own a GPU device inject it through a
// gpucontext.DeviceProvider instead of letting the backend create one.
//
// Construction fails cleanly with ErrNoGPU on machines without a
// usable adapter, which the renderer factory treats as a signal to
// fall back to another backend.
package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/mathud/mathcanvas/backend"
	"github.com/mathud/mathcanvas/render"
	"github.com/mathud/mathcanvas/textmeasure"
)

func init() {
	backend.Register(backend.BackendWGPU, func() backend.RenderBackend {
		return &Backend{}
	})
}

// Backend is the GPU rendering backend.
type Backend struct {
	provider gpucontext.DeviceProvider
	gpu      *gpuResources
	raster   *rasterizer
	measurer *textmeasure.Measurer
}

// Option configures a Backend before Init.
type Option func(*Backend)

// WithDeviceProvider makes the backend render through a host-owned
// device instead of acquiring its own. The host keeps ownership: Close
// releases nothing it did not create.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(b *Backend) { b.provider = p }
}

// New creates an uninitialized GPU backend. Most callers go through
// the backend registry instead; New exists for hosts that need
// options.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name implements backend.RenderBackend.
func (*Backend) Name() string { return backend.BackendWGPU }

// Init compiles the fill shader, acquires the GPU resource chain or
// adopts the injected host device, and builds the compute pipeline.
func (b *Backend) Init() error {
	spirv, err := compileFillShader()
	if err != nil {
		return err
	}

	if b.provider != nil {
		gpu, err := externalGPU(b.provider)
		if err != nil {
			return err
		}
		b.gpu = gpu
	} else {
		gpu, err := acquireGPU()
		if err != nil {
			return err
		}
		b.gpu = gpu
	}

	raster, err := newRasterizer(b.gpu, spirv)
	if err != nil {
		b.releaseGPU()
		return err
	}
	b.raster = raster

	measurer, err := textmeasure.NewDefault()
	if err != nil {
		b.releaseGPU()
		return fmt.Errorf("wgpu: init measurer: %w", err)
	}
	b.measurer = measurer
	return nil
}

// Close releases the backend's own GPU resources. An injected host
// device is left untouched.
func (b *Backend) Close() {
	b.releaseGPU()
	b.measurer = nil
}

func (b *Backend) releaseGPU() {
	if b.raster != nil {
		b.raster.destroy()
		b.raster = nil
	}
	if b.gpu != nil {
		b.gpu.release()
		b.gpu = nil
	}
}

// TextMeasurer implements backend.TextMeasuring.
func (b *Backend) TextMeasurer() render.TextMeasurer { return b.measurer }

// NewPrimitives creates a GPU tessellation surface bound to the
// backend's compute pipeline.
func (b *Backend) NewPrimitives(width, height int) (render.Primitives, error) {
	if b.raster == nil {
		return nil, fmt.Errorf("wgpu: backend not initialized")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("wgpu: invalid surface size %dx%d", width, height)
	}
	return newSurface(width, height, b.measurer, b.raster), nil
}

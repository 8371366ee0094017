package wgpu

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/render"
)

// createNoopGPU opens a device on the noop hal backend. Returns the
// resources and a cleanup function.
func createNoopGPU(t *testing.T) (*gpuResources, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		t.Fatal("no noop adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	gpu := &gpuResources{instance: instance, device: openDev.Device, queue: openDev.Queue}
	return gpu, func() { gpu.release() }
}

func createTestRasterizer(t *testing.T) (*rasterizer, func()) {
	t.Helper()
	gpu, cleanup := createNoopGPU(t)
	spirv, err := compileFillShader()
	if err != nil {
		cleanup()
		t.Fatalf("shader compilation failed: %v", err)
	}
	r, err := newRasterizer(gpu, spirv)
	if err != nil {
		cleanup()
		t.Fatalf("rasterizer creation failed: %v", err)
	}
	return r, func() {
		r.destroy()
		cleanup()
	}
}

func TestRasterizerPipelineCreation(t *testing.T) {
	r, cleanup := createTestRasterizer(t)
	defer cleanup()

	if r.shader == nil {
		t.Error("expected non-nil shader module")
	}
	if r.bindLayout == nil {
		t.Error("expected non-nil bind group layout")
	}
	if r.pipeLayout == nil {
		t.Error("expected non-nil pipeline layout")
	}
	if r.pipeline == nil {
		t.Error("expected non-nil compute pipeline")
	}
}

func TestRasterizerFillDispatches(t *testing.T) {
	r, cleanup := createTestRasterizer(t)
	defer cleanup()

	s := newSurface(64, 64, nil, r)
	s.FillPolygon([]mathcanvas.Point{{X: 8, Y: 8}, {X: 56, Y: 8}, {X: 32, Y: 56}},
		render.FillStyle{Color: mathcanvas.Red, Opacity: 1}, nil)

	// Full dispatch path: buffer upload, per-triangle passes, submit,
	// fence wait, readback.
	if err := r.Fill(s.width, s.height, s.VertexData(), s.Pixels()); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
}

func TestRasterizerFillEmptyFrame(t *testing.T) {
	r, cleanup := createTestRasterizer(t)
	defer cleanup()

	pix := make([]uint8, 16*16*4)
	if err := r.Fill(16, 16, nil, pix); err != nil {
		t.Fatalf("empty frame should be a no-op, got %v", err)
	}
}

func TestSurfaceEndFrameWithoutGPU(t *testing.T) {
	s := newSurface(32, 32, nil, nil)
	s.StrokeLine(mathcanvas.Pt(0, 0), mathcanvas.Pt(31, 31),
		render.StrokeStyle{Color: mathcanvas.Black, Width: 1})
	// No pipeline bound; EndFrame must not panic.
	s.EndFrame()

	pix := s.Pixels()
	if len(pix) != 32*32*4 {
		t.Fatalf("pixel buffer length %d", len(pix))
	}
	for i, v := range pix {
		if v != 0xFF {
			t.Fatalf("pixel byte %d = %#x, want white background", i, v)
		}
	}
}

type fakeHalProvider struct {
	device hal.Device
	queue  hal.Queue
}

func (p *fakeHalProvider) HalDevice() any { return p.device }
func (p *fakeHalProvider) HalQueue() any  { return p.queue }

func TestExternalGPUAdoptsProviderDevice(t *testing.T) {
	gpu, cleanup := createNoopGPU(t)
	defer cleanup()

	adopted, err := externalGPU(&fakeHalProvider{device: gpu.device, queue: gpu.queue})
	if err != nil {
		t.Fatal(err)
	}
	if adopted.device != gpu.device || adopted.queue != gpu.queue {
		t.Error("adopted resources differ from the provider's")
	}
	if !adopted.external {
		t.Error("adopted resources must be marked external")
	}
	// Releasing adopted resources must not destroy the host's device.
	adopted.release()
	spirv, err := compileFillShader()
	if err != nil {
		t.Fatal(err)
	}
	r, err := newRasterizer(gpu, spirv)
	if err != nil {
		t.Fatalf("host device unusable after external release: %v", err)
	}
	r.destroy()
}

func TestExternalGPURejectsBareProvider(t *testing.T) {
	if _, err := externalGPU(struct{}{}); err == nil {
		t.Error("provider without HAL accessors accepted")
	}
}

func TestPackPixelsRoundTrip(t *testing.T) {
	src := []uint8{
		0x11, 0x22, 0x33, 0x44,
		0xAA, 0xBB, 0xCC, 0xDD,
	}
	packed := packPixels(src, 2)
	dst := make([]uint8, len(src))
	unpackPixels(packed, dst, 2)
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, dst[i], src[i])
		}
	}
}

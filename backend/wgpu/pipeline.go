package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

const gpuWaitTimeout = 5 * time.Second

// fillParams is the per-pass uniform block: viewport size plus the
// index of the triangle this pass rasterizes. The trailing pad keeps
// the block at 16 bytes, matching the shader's FillParams.
type fillParams struct {
	Width    uint32
	Height   uint32
	TriIndex uint32
	Pad      uint32
}

// rasterizer owns the compute pipeline that turns a surface's
// tessellated triangle stream into packed RGBA pixels.
type rasterizer struct {
	gpu        *gpuResources
	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline
}

// newRasterizer builds the shader module, bind group layout, and
// compute pipeline on the given device. Partially created resources
// are destroyed on failure.
func newRasterizer(gpu *gpuResources, spirv []uint32) (*rasterizer, error) {
	r := &rasterizer{gpu: gpu}
	device := gpu.device

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "triangle_fill",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create shader module: %w", err)
	}
	r.shader = shader

	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "triangle_fill_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		r.destroy()
		return nil, fmt.Errorf("wgpu: create bind group layout: %w", err)
	}
	r.bindLayout = bindLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "triangle_fill_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{bindLayout},
	})
	if err != nil {
		r.destroy()
		return nil, fmt.Errorf("wgpu: create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	pipeline, err := device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:   "triangle_fill_pipeline",
		Layout:  pipeLayout,
		Compute: hal.ComputeState{Module: shader, EntryPoint: "main"},
	})
	if err != nil {
		r.destroy()
		return nil, fmt.Errorf("wgpu: create compute pipeline: %w", err)
	}
	r.pipeline = pipeline

	return r, nil
}

// destroy releases the pipeline resources in reverse creation order.
// The device itself belongs to gpuResources.
func (r *rasterizer) destroy() {
	if r.gpu == nil || r.gpu.device == nil {
		return
	}
	device := r.gpu.device
	if r.pipeline != nil {
		device.DestroyComputePipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.bindLayout != nil {
		device.DestroyBindGroupLayout(r.bindLayout)
		r.bindLayout = nil
	}
	if r.shader != nil {
		device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}

// Fill rasterizes the vertex stream over dst, which holds width*height
// RGBA pixels in row-major order and is composited in place. Each
// triangle gets its own compute pass with a one-triangle uniform; the
// implicit storage buffer barrier between passes keeps the compositing
// order of the stream.
func (r *rasterizer) Fill(width, height int, verts []float32, dst []uint8) error {
	triangles := len(verts) / (3 * floatsPerVertex)
	if triangles == 0 {
		return nil
	}
	w, h := uint32(width), uint32(height)
	pixelBufSize := uint64(w) * uint64(h) * 4
	vertBytes := floatsToBytes(verts)
	device, queue := r.gpu.device, r.gpu.queue

	vertBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "fill_vertices", Size: uint64(len(vertBytes)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create vertex buffer: %w", err)
	}
	defer device.DestroyBuffer(vertBuf)

	pixelBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "fill_pixels", Size: pixelBufSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create pixel buffer: %w", err)
	}
	defer device.DestroyBuffer(pixelBuf)

	stagingBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "fill_staging", Size: pixelBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create staging buffer: %w", err)
	}
	defer device.DestroyBuffer(stagingBuf)

	queue.WriteBuffer(vertBuf, 0, vertBytes)
	queue.WriteBuffer(pixelBuf, 0, packPixels(dst, int(w*h)))

	uniformBufs, bindGroups, err := r.perTriangleBindings(triangles, w, h, vertBuf, uint64(len(vertBytes)), pixelBuf, pixelBufSize)
	defer r.cleanupBindings(uniformBufs, bindGroups)
	if err != nil {
		return err
	}

	if err := r.encodeAndSubmit(bindGroups, pixelBuf, stagingBuf, w, h, pixelBufSize); err != nil {
		return err
	}

	readback := make([]byte, pixelBufSize)
	if err := queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("wgpu: readback: %w", err)
	}
	unpackPixels(readback, dst, int(w*h))
	return nil
}

// perTriangleBindings creates one uniform buffer and bind group per
// triangle. All bind groups share the vertex and pixel buffers.
func (r *rasterizer) perTriangleBindings(
	triangles int, w, h uint32,
	vertBuf hal.Buffer, vertSize uint64,
	pixelBuf hal.Buffer, pixelBufSize uint64,
) ([]hal.Buffer, []hal.BindGroup, error) {
	device, queue := r.gpu.device, r.gpu.queue
	paramSize := uint64(unsafe.Sizeof(fillParams{}))
	uniformBufs := make([]hal.Buffer, 0, triangles)
	bindGroups := make([]hal.BindGroup, 0, triangles)

	for i := 0; i < triangles; i++ {
		params := fillParams{Width: w, Height: h, TriIndex: uint32(i)}
		ub, err := device.CreateBuffer(&hal.BufferDescriptor{
			Label: "fill_params", Size: paramSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return uniformBufs, bindGroups, fmt.Errorf("wgpu: create uniform buffer %d: %w", i, err)
		}
		uniformBufs = append(uniformBufs, ub)
		queue.WriteBuffer(ub, 0, structToBytes(unsafe.Pointer(&params), unsafe.Sizeof(params)))

		bg, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label: "fill_bind", Layout: r.bindLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: paramSize}},
				{Binding: 1, Resource: gputypes.BufferBinding{Buffer: vertBuf.NativeHandle(), Offset: 0, Size: vertSize}},
				{Binding: 2, Resource: gputypes.BufferBinding{Buffer: pixelBuf.NativeHandle(), Offset: 0, Size: pixelBufSize}},
			},
		})
		if err != nil {
			return uniformBufs, bindGroups, fmt.Errorf("wgpu: create bind group %d: %w", i, err)
		}
		bindGroups = append(bindGroups, bg)
	}
	return uniformBufs, bindGroups, nil
}

func (r *rasterizer) cleanupBindings(uniformBufs []hal.Buffer, bindGroups []hal.BindGroup) {
	device := r.gpu.device
	for _, bg := range bindGroups {
		if bg != nil {
			device.DestroyBindGroup(bg)
		}
	}
	for _, ub := range uniformBufs {
		if ub != nil {
			device.DestroyBuffer(ub)
		}
	}
}

// encodeAndSubmit records one compute pass per bind group plus the
// staging copy, then submits and waits on a fence.
func (r *rasterizer) encodeAndSubmit(
	bindGroups []hal.BindGroup, pixelBuf, stagingBuf hal.Buffer,
	w, h uint32, pixelBufSize uint64,
) error {
	device, queue := r.gpu.device, r.gpu.queue
	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "fill_encoder"})
	if err != nil {
		return fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("triangle_fill"); err != nil {
		return fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	for _, bg := range bindGroups {
		pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "fill_pass"})
		pass.SetPipeline(r.pipeline)
		pass.SetBindGroup(0, bg, nil)
		pass.Dispatch((w+7)/8, (h+7)/8, 1)
		pass.End()
	}

	encoder.CopyBufferToBuffer(pixelBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: pixelBufSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	fence, err := device.CreateFence()
	if err != nil {
		return fmt.Errorf("wgpu: create fence: %w", err)
	}
	defer device.DestroyFence(fence)

	if err := queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	fenceOK, err := device.Wait(fence, 1, gpuWaitTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wgpu: wait for gpu: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

func structToBytes(ptr unsafe.Pointer, size uintptr) []byte {
	return unsafe.Slice((*byte)(ptr), size)
}

func floatsToBytes(floats []float32) []byte {
	out := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

// packPixels packs RGBA bytes into little-endian uint32 words for the
// shader's pixel buffer.
func packPixels(data []uint8, pixelCount int) []byte {
	out := make([]byte, pixelCount*4)
	for i := 0; i < pixelCount; i++ {
		src := i * 4
		packed := uint32(data[src]) |
			uint32(data[src+1])<<8 |
			uint32(data[src+2])<<16 |
			uint32(data[src+3])<<24
		binary.LittleEndian.PutUint32(out[i*4:], packed)
	}
	return out
}

func unpackPixels(packed []byte, dst []uint8, pixelCount int) {
	for i := 0; i < pixelCount; i++ {
		val := binary.LittleEndian.Uint32(packed[i*4:])
		d := i * 4
		dst[d] = uint8(val & 0xFF)
		dst[d+1] = uint8((val >> 8) & 0xFF)
		dst[d+2] = uint8((val >> 16) & 0xFF)
		dst[d+3] = uint8((val >> 24) & 0xFF)
	}
}

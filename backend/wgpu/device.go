package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Vulkan backend registers itself via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/mathud/mathcanvas"
)

// ErrNoGPU is returned when no usable GPU adapter exists in this
// environment. The factory chain treats it as "try the next backend".
var ErrNoGPU = errors.New("wgpu: no gpu adapter available")

// gpuResources bundles the handles Init acquires. external marks a
// host-owned device and queue that release must leave untouched.
type gpuResources struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	external bool
}

// acquireGPU walks backend, instance, adapter, device. On any failure
// the already-acquired handles are released before the error returns.
func acquireGPU() (*gpuResources, error) {
	halBackend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not registered", ErrNoGPU)
	}
	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", ErrNoGPU, err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: no adapters enumerated", ErrNoGPU)
	}
	selected := pickAdapter(adapters)
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}
	mathcanvas.Logger().Info("gpu adapter selected",
		"name", selected.Info.Name,
		"type", fmt.Sprint(selected.Info.DeviceType))
	return &gpuResources{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
	}, nil
}

// pickAdapter prefers a discrete or integrated GPU over software
// adapters.
func pickAdapter(adapters []hal.ExposedAdapter) *hal.ExposedAdapter {
	for i := range adapters {
		t := adapters[i].Info.DeviceType
		if t == gputypes.DeviceTypeDiscreteGPU || t == gputypes.DeviceTypeIntegratedGPU {
			return &adapters[i]
		}
	}
	return &adapters[0]
}

// externalGPU wraps a host-provided device and queue. The provider must
// expose HalDevice() any and HalQueue() any returning hal.Device and
// hal.Queue. The host keeps ownership of both.
func externalGPU(provider any) (*gpuResources, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	return &gpuResources{device: device, queue: queue, external: true}, nil
}

// release destroys the owned handles. Shared resources from an external
// provider are only dereferenced.
func (r *gpuResources) release() {
	if !r.external {
		if r.device != nil {
			r.device.Destroy()
		}
		if r.instance != nil {
			r.instance.Destroy()
		}
	}
	r.device = nil
	r.queue = nil
	r.instance = nil
}

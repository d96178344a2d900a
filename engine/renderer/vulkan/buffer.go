// Package vulkan provides Vulkan buffers usable as mesh slot resources.
//
// A Buffer satisfies metadata.GPUResource, so it goes straight into a slot:
//
//	render, err := vulkan.NewBuffer(device, gpu, nil, size,
//		vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit|vk.BufferUsageTransferDstBit),
//		vk.MemoryPropertyFlags(vk.MemoryPropertyDeviceLocalBit))
//	...
//	_ = meshBuffer.SetSlot(i, render, upload)
//
// MeshBuffer.Clear then destroys the buffer and frees its memory.
package vulkan

import (
	"errors"
	"fmt"

	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/renderer/metadata"
)

var ErrNoMemoryType = errors.New("no suitable memory type")

// Buffer is a Vulkan buffer and the device memory bound to it. It is used as
// the render or upload resource of a mesh buffer slot.
type Buffer struct {
	Device    vk.Device
	Allocator *vk.AllocationCallbacks
	Handle    vk.Buffer
	Memory    vk.DeviceMemory
	Size      vk.DeviceSize
}

var _ metadata.GPUResource = (*Buffer)(nil)

// NewBuffer creates a buffer of size bytes and binds freshly allocated memory
// with the requested properties to it.
func NewBuffer(device vk.Device, physicalDevice vk.PhysicalDevice, allocator *vk.AllocationCallbacks, size vk.DeviceSize, usage vk.BufferUsageFlags, properties vk.MemoryPropertyFlags) (*Buffer, error) {
	buffer := &Buffer{
		Device:    device,
		Allocator: allocator,
		Size:      size,
	}

	bufferInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        size,
		Usage:       usage,
		SharingMode: vk.SharingModeExclusive,
	}
	var handle vk.Buffer
	if res := vk.CreateBuffer(device, &bufferInfo, allocator, &handle); res != vk.Success {
		err := fmt.Errorf("failed to create buffer: %w", vk.Error(res))
		core.LogError(err.Error())
		return nil, err
	}
	buffer.Handle = handle

	var requirements vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(device, handle, &requirements)
	requirements.Deref()

	index := findMemoryIndex(physicalDevice, requirements.MemoryTypeBits, properties)
	if index < 0 {
		_ = buffer.Release()
		core.LogError("failed to create buffer: %s", ErrNoMemoryType)
		return nil, ErrNoMemoryType
	}

	allocateInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  requirements.Size,
		MemoryTypeIndex: uint32(index),
	}
	var memory vk.DeviceMemory
	if res := vk.AllocateMemory(device, &allocateInfo, allocator, &memory); res != vk.Success {
		_ = buffer.Release()
		err := fmt.Errorf("failed to allocate buffer memory: %w", vk.Error(res))
		core.LogError(err.Error())
		return nil, err
	}
	buffer.Memory = memory

	if res := vk.BindBufferMemory(device, handle, memory, 0); res != vk.Success {
		_ = buffer.Release()
		err := fmt.Errorf("failed to bind buffer memory: %w", vk.Error(res))
		core.LogError(err.Error())
		return nil, err
	}
	return buffer, nil
}

// Release destroys the buffer and frees its memory. Releasing twice does
// nothing.
func (b *Buffer) Release() error {
	if b.Handle != nil {
		vk.DestroyBuffer(b.Device, b.Handle, b.Allocator)
		b.Handle = nil
	}
	if b.Memory != nil {
		vk.FreeMemory(b.Device, b.Memory, b.Allocator)
		b.Memory = nil
	}
	b.Size = 0
	return nil
}

func findMemoryIndex(physicalDevice vk.PhysicalDevice, typeFilter uint32, properties vk.MemoryPropertyFlags) int32 {
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(physicalDevice, &memoryProperties)
	memoryProperties.Deref()

	types := memoryProperties.MemoryTypes[:memoryProperties.MemoryTypeCount]
	for i := range types {
		types[i].Deref()
	}
	return selectMemoryType(types, typeFilter, properties)
}

// selectMemoryType returns the first memory type allowed by typeFilter that
// has every requested property, or -1.
func selectMemoryType(types []vk.MemoryType, typeFilter uint32, properties vk.MemoryPropertyFlags) int32 {
	for i, t := range types {
		// Check each memory type to see if its bit is set to 1.
		if typeFilter&(1<<uint(i)) != 0 && t.PropertyFlags&properties == properties {
			return int32(i)
		}
	}
	core.LogWarn("Unable to find suitable memory type!")
	return -1
}

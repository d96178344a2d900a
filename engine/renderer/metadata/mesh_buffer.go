package metadata

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/lumen/engine/containers"
)

const InvalidIDUint64 uint64 = ^uint64(0)

var (
	ErrInvalidNumSlots = errors.New("invalid number of mesh buffer slots")
	ErrSlotOutOfRange  = errors.New("mesh buffer slot out of range")
)

// GPUResource is a backend buffer handle owned by a mesh buffer slot.
type GPUResource interface {
	Release() error
}

// BufferSlot is one copy of a mesh buffer. The render buffer lives in device
// memory, the upload buffer is the host visible staging copy.
type BufferSlot struct {
	Render           GPUResource
	Upload           GPUResource
	UpdateFrameIndex uint64
}

// MeshBuffer keeps one slot per frame in flight so a buffer can be rewritten
// while the GPU still reads an older copy. Only the first NumSlots slots are
// used; static buffers keep a single slot.
type MeshBuffer struct {
	slots            *containers.Ring[BufferSlot]
	updateFrameIndex uint64
}

func NewMeshBuffer(numFrames int) *MeshBuffer {
	mb := &MeshBuffer{
		slots: containers.NewRing[BufferSlot](numFrames),
	}
	mb.reset()
	return mb
}

func (mb *MeshBuffer) reset() {
	mb.slots.Reset()
	mb.slots.Each(func(_ int, slot *BufferSlot) {
		slot.UpdateFrameIndex = InvalidIDUint64
	})
	mb.updateFrameIndex = InvalidIDUint64
}

// NumFrames returns the slot capacity.
func (mb *MeshBuffer) NumFrames() int {
	return mb.slots.Cap()
}

func (mb *MeshBuffer) NumSlots() int {
	return mb.slots.InUse()
}

func (mb *MeshBuffer) ActiveSlot() int {
	return mb.slots.Cursor()
}

// UpdateFrameIndex returns the last frame the buffer was written in, or
// InvalidIDUint64 if it never was.
func (mb *MeshBuffer) UpdateFrameIndex() uint64 {
	return mb.updateFrameIndex
}

// SetNumSlots sets how many slots the buffer rotates through and makes slot
// 0 active.
func (mb *MeshBuffer) SetNumSlots(n int) error {
	if !mb.slots.SetInUse(n) {
		return fmt.Errorf("%w: %d (capacity %d)", ErrInvalidNumSlots, n, mb.slots.Cap())
	}
	return nil
}

// SetSlot installs the handles of slot i. Handles already in the slot are
// not released.
func (mb *MeshBuffer) SetSlot(i int, render, upload GPUResource) error {
	slot := mb.slots.At(i)
	if slot == nil {
		return fmt.Errorf("%w: %d (capacity %d)", ErrSlotOutOfRange, i, mb.slots.Cap())
	}
	slot.Render = render
	slot.Upload = upload
	return nil
}

// Slot returns slot i, or nil if i is out of range.
func (mb *MeshBuffer) Slot(i int) *BufferSlot {
	return mb.slots.At(i)
}

// Active returns the slot the GPU should read from.
func (mb *MeshBuffer) Active() *BufferSlot {
	return mb.slots.Current()
}

// Advance selects the slot to write for frameIndex. The slot rotates only
// once per frame; a second update within the same frame reuses it.
func (mb *MeshBuffer) Advance(frameIndex uint64) *BufferSlot {
	if frameIndex != mb.updateFrameIndex {
		if mb.updateFrameIndex != InvalidIDUint64 {
			mb.slots.Advance()
		}
		mb.updateFrameIndex = frameIndex
	}
	slot := mb.slots.Current()
	slot.UpdateFrameIndex = frameIndex
	return slot
}

// Clear releases every handle and returns the buffer to its initial state.
// All slots are visited even if a release fails; the errors are joined.
// Clearing an already cleared buffer does nothing.
func (mb *MeshBuffer) Clear() error {
	var errs []error
	mb.slots.Each(func(i int, slot *BufferSlot) {
		if slot.Render != nil {
			if err := slot.Render.Release(); err != nil {
				errs = append(errs, fmt.Errorf("releasing render buffer %d: %w", i, err))
			}
			slot.Render = nil
		}
		if slot.Upload != nil {
			if err := slot.Upload.Release(); err != nil {
				errs = append(errs, fmt.Errorf("releasing upload buffer %d: %w", i, err))
			}
			slot.Upload = nil
		}
	})
	mb.reset()
	return errors.Join(errs...)
}

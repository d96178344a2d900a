//go:build windows

package d3d12

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/spaghettifunk/lumen/engine/renderer/metadata"
)

type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type iUnknown struct {
	vtbl *iUnknownVtbl
}

// Resource owns one reference to an ID3D12Resource.
type Resource struct {
	ptr *iUnknown
}

var _ metadata.GPUResource = (*Resource)(nil)

// NewResource takes ownership of the reference held by ptr.
func NewResource(ptr unsafe.Pointer) *Resource {
	return &Resource{ptr: (*iUnknown)(ptr)}
}

// Pointer returns the ID3D12Resource pointer, nil once released.
func (r *Resource) Pointer() unsafe.Pointer {
	return unsafe.Pointer(r.ptr)
}

// Release drops the reference. Releasing twice does nothing.
func (r *Resource) Release() error {
	if r.ptr == nil {
		return nil
	}
	purego.SyscallN(r.ptr.vtbl.Release, uintptr(unsafe.Pointer(r.ptr)))
	r.ptr = nil
	return nil
}

// Package d3d12 holds the Direct3D 12 side of GPU mesh resources.
//
// A backend that created an ID3D12Resource wraps it with NewResource (windows
// only) and installs it in a mesh slot:
//
//	mesh := d3d12.NewMeshFromConfig(cfg.Renderer)
//	_ = mesh.VertexBuffer().SetSlot(0, d3d12.NewResource(render), d3d12.NewResource(upload))
//	...
//	err := mesh.Clear() // releases both COM references
package d3d12

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/renderer/metadata"
)

const (
	VertexBuffer = 0
	IndexBuffer  = 1
	numBuffers   = 2
)

// Mesh is the D3D12 record of a mesh: a vertex and an index buffer, each
// with one slot per frame in flight.
type Mesh struct {
	Buffers [numBuffers]*metadata.MeshBuffer
}

// NewMesh creates a mesh with numFrames slots per buffer. Values outside
// [1, core.MaxNumFrames] fall back to core.DefaultNumFrames.
func NewMesh(numFrames int) *Mesh {
	if numFrames < 1 || numFrames > core.MaxNumFrames {
		numFrames = core.DefaultNumFrames
	}
	m := &Mesh{}
	for i := range m.Buffers {
		m.Buffers[i] = metadata.NewMeshBuffer(numFrames)
	}
	return m
}

// NewMeshFromConfig sizes the buffers from the renderer configuration.
func NewMeshFromConfig(cfg core.RendererConfig) *Mesh {
	return NewMesh(cfg.NumFrames)
}

// NumSlots returns how many slots each buffer holds.
func (m *Mesh) NumSlots() int {
	return m.Buffers[VertexBuffer].NumFrames()
}

func (m *Mesh) VertexBuffer() *metadata.MeshBuffer {
	return m.Buffers[VertexBuffer]
}

func (m *Mesh) IndexBuffer() *metadata.MeshBuffer {
	return m.Buffers[IndexBuffer]
}

// Clear releases the resources of both buffers. It is called when the mesh
// is destroyed and may be called again on a cleared mesh.
func (m *Mesh) Clear() error {
	var errs []error
	for i, buf := range m.Buffers {
		if buf == nil {
			continue
		}
		if err := buf.Clear(); err != nil {
			errs = append(errs, fmt.Errorf("d3d12: clearing mesh buffer %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

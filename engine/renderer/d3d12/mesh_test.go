package d3d12

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/spaghettifunk/lumen/engine/core"
)

type countingResource struct {
	releases int
	err      error
}

func (r *countingResource) Release() error {
	r.releases++
	return r.err
}

func TestNewMesh(t *testing.T) {
	tests := []struct {
		frames int
		want   int
	}{
		{3, 3},
		{2, 2},
		{0, core.DefaultNumFrames},
		{core.MaxNumFrames + 1, core.DefaultNumFrames},
	}
	for _, tt := range tests {
		m := NewMesh(tt.frames)
		if m.NumSlots() != tt.want || m.IndexBuffer().NumFrames() != tt.want {
			t.Errorf("NewMesh(%d) has %d slots, want %d", tt.frames, m.NumSlots(), tt.want)
		}
	}
	cfg := core.DefaultConfig()
	if m := NewMeshFromConfig(cfg.Renderer); m.NumSlots() != cfg.Renderer.NumFrames {
		t.Errorf("config mesh has %d slots", m.NumSlots())
	}
}

func TestMeshClearIsIdempotent(t *testing.T) {
	m := NewMesh(3)
	vb := &countingResource{}
	vbUpload := &countingResource{}
	ib := &countingResource{}
	if err := m.VertexBuffer().SetNumSlots(3); err != nil {
		t.Fatal(err)
	}
	_ = m.VertexBuffer().SetSlot(2, vb, vbUpload)
	_ = m.IndexBuffer().SetSlot(0, ib, nil)

	for i := 0; i < 2; i++ {
		if err := m.Clear(); err != nil {
			t.Fatalf("Clear #%d = %v", i+1, err)
		}
	}
	if vb.releases != 1 || vbUpload.releases != 1 || ib.releases != 1 {
		t.Errorf("releases vb=%d upload=%d ib=%d", vb.releases, vbUpload.releases, ib.releases)
	}
	if m.VertexBuffer().NumSlots() != 1 {
		t.Error("vertex buffer not reset")
	}
}

func TestMeshClearReportsErrors(t *testing.T) {
	var logged bytes.Buffer
	core.SetLogOutput(&logged)
	defer core.SetLogOutput(io.Discard)
	errRelease := errors.New("device removed")
	m := NewMesh(2)
	ib := &countingResource{}
	_ = m.VertexBuffer().SetSlot(0, &countingResource{err: errRelease}, nil)
	_ = m.IndexBuffer().SetSlot(0, ib, nil)

	if err := m.Clear(); !errors.Is(err, errRelease) {
		t.Fatalf("Clear = %v", err)
	}
	if ib.releases != 1 {
		t.Error("index buffer not released after vertex buffer failure")
	}
	if logged.Len() != 0 {
		t.Errorf("Clear logged the error it returns: %q", logged.String())
	}
	if err := m.Clear(); err != nil {
		t.Errorf("second Clear = %v", err)
	}
}

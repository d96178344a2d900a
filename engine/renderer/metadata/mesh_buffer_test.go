package metadata

import (
	"errors"
	"testing"
)

type fakeResource struct {
	releases int
	err      error
}

func (r *fakeResource) Release() error {
	r.releases++
	return r.err
}

func TestNewMeshBuffer(t *testing.T) {
	mb := NewMeshBuffer(3)
	if mb.NumFrames() != 3 || mb.NumSlots() != 1 || mb.ActiveSlot() != 0 {
		t.Errorf("frames %d slots %d active %d", mb.NumFrames(), mb.NumSlots(), mb.ActiveSlot())
	}
	if mb.UpdateFrameIndex() != InvalidIDUint64 {
		t.Error("new buffer should never have been updated")
	}
	for i := 0; i < 3; i++ {
		if s := mb.Slot(i); s.Render != nil || s.Upload != nil || s.UpdateFrameIndex != InvalidIDUint64 {
			t.Errorf("slot %d not empty: %+v", i, s)
		}
	}
	if mb.Slot(3) != nil || mb.Slot(-1) != nil {
		t.Error("out of range slot returned")
	}
}

func TestSetNumSlots(t *testing.T) {
	mb := NewMeshBuffer(3)
	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{3, false},
		{4, true},
	}
	for _, tt := range tests {
		err := mb.SetNumSlots(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("SetNumSlots(%d) = %v", tt.n, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidNumSlots) {
			t.Errorf("SetNumSlots(%d) error not wrapped: %v", tt.n, err)
		}
	}
	if err := mb.SetSlot(5, &fakeResource{}, nil); !errors.Is(err, ErrSlotOutOfRange) {
		t.Errorf("SetSlot(5) = %v", err)
	}
	if err := mb.SetSlot(-1, nil, nil); !errors.Is(err, ErrSlotOutOfRange) {
		t.Errorf("SetSlot(-1) = %v", err)
	}
}

func TestAdvanceRotatesOncePerFrame(t *testing.T) {
	mb := NewMeshBuffer(3)
	if err := mb.SetNumSlots(3); err != nil {
		t.Fatal(err)
	}
	steps := []struct {
		frame  uint64
		active int
	}{
		{10, 0},
		{10, 0},
		{11, 1},
		{12, 2},
		{12, 2},
		{13, 0},
	}
	for _, st := range steps {
		slot := mb.Advance(st.frame)
		if mb.ActiveSlot() != st.active {
			t.Fatalf("frame %d: active %d, want %d", st.frame, mb.ActiveSlot(), st.active)
		}
		if slot != mb.Active() || slot.UpdateFrameIndex != st.frame || mb.UpdateFrameIndex() != st.frame {
			t.Fatalf("frame %d: slot not stamped", st.frame)
		}
	}
}

func TestAdvanceSingleSlot(t *testing.T) {
	mb := NewMeshBuffer(3)
	for f := uint64(0); f < 4; f++ {
		mb.Advance(f)
		if mb.ActiveSlot() != 0 {
			t.Fatalf("static buffer moved to slot %d", mb.ActiveSlot())
		}
	}
}

func TestClear(t *testing.T) {
	mb := NewMeshBuffer(3)
	_ = mb.SetNumSlots(2)
	render := []*fakeResource{{}, {}}
	upload := &fakeResource{}
	_ = mb.SetSlot(0, render[0], upload)
	_ = mb.SetSlot(1, render[1], nil)
	mb.Advance(1)
	mb.Advance(2)

	if err := mb.Clear(); err != nil {
		t.Fatal(err)
	}
	if render[0].releases != 1 || render[1].releases != 1 || upload.releases != 1 {
		t.Errorf("releases: %d %d %d", render[0].releases, render[1].releases, upload.releases)
	}
	if mb.NumSlots() != 1 || mb.ActiveSlot() != 0 || mb.UpdateFrameIndex() != InvalidIDUint64 {
		t.Error("Clear did not reset the ring")
	}

	// Clearing twice is the same as clearing once.
	if err := mb.Clear(); err != nil {
		t.Fatal(err)
	}
	if render[0].releases != 1 || upload.releases != 1 {
		t.Error("handles released twice")
	}
}

func TestClearJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	mb := NewMeshBuffer(2)
	ok := &fakeResource{}
	_ = mb.SetSlot(0, &fakeResource{err: errA}, ok)
	_ = mb.SetSlot(1, nil, &fakeResource{err: errB})

	err := mb.Clear()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("Clear = %v", err)
	}
	if ok.releases != 1 {
		t.Error("failed release stopped the clear")
	}
	if mb.Slot(0).Render != nil || mb.Slot(1).Upload != nil {
		t.Error("failed handles not dropped")
	}
}

package core

import (
	"testing"
	"time"
)

func TestFrameMetrics(t *testing.T) {
	fm := NewFrameMetrics()
	for i := 0; i < 59; i++ {
		fm.Update(16 * time.Millisecond)
	}
	if fm.FPS() != 0 {
		t.Errorf("FPS published early: %v", fm.FPS())
	}
	if fm.FrameTime() != 16 {
		t.Errorf("FrameTime = %v, want 16", fm.FrameTime())
	}
	fm.Update(56 * time.Millisecond)
	if fm.FPS() != 60 {
		t.Errorf("FPS = %v, want 60", fm.FPS())
	}
}

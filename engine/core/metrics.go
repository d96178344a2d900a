package core

import "time"

const AVG_COUNT uint8 = 30

// FrameMetrics keeps a rolling frame time average and the frames counted in
// the last full second.
type FrameMetrics struct {
	frameAVGCounter    uint8
	msTimes            [AVG_COUNT]float64
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{}
}

func (fm *FrameMetrics) Update(frameElapsed time.Duration) {
	// Calculate frame ms average
	frameMS := float64(frameElapsed) / float64(time.Millisecond)
	fm.msTimes[fm.frameAVGCounter] = frameMS
	if fm.frameAVGCounter == AVG_COUNT-1 {
		fm.msAvg = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			fm.msAvg += fm.msTimes[i]
		}
		fm.msAvg /= float64(AVG_COUNT)
	}
	fm.frameAVGCounter++
	fm.frameAVGCounter %= AVG_COUNT

	// Count this frame, then publish once a second has accumulated.
	fm.frames++
	fm.accumulatedFrameMS += frameMS
	if fm.accumulatedFrameMS >= 1000 {
		fm.fps = float64(fm.frames)
		fm.accumulatedFrameMS -= 1000
		fm.frames = 0
	}
}

func (fm *FrameMetrics) FPS() float64 {
	return fm.fps
}

// FrameTime returns the average frame time in milliseconds over the last
// AVG_COUNT frames.
func (fm *FrameMetrics) FrameTime() float64 {
	return fm.msAvg
}

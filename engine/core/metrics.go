package core

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average of frame times.
type Metrics struct {
	frameAVGCounter uint8
	msTimes         [AVG_COUNT]float64
	msAVG           float64
	filled          bool
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Update(frameElapsedTime float64) {
	m.msTimes[m.frameAVGCounter] = frameElapsedTime * 1000.0
	if m.frameAVGCounter == AVG_COUNT-1 {
		m.filled = true
	}
	m.frameAVGCounter = (m.frameAVGCounter + 1) % AVG_COUNT

	count := AVG_COUNT
	if !m.filled {
		count = m.frameAVGCounter
	}
	var sum float64
	for i := uint8(0); i < count; i++ {
		sum += m.msTimes[i]
	}
	m.msAVG = sum / float64(count)
}

func (m *Metrics) FrameTime() float64 {
	return m.msAVG
}

package core

// frameWindow is how many frames the average frame time spans.
const frameWindow = 30

// FrameMetrics tracks frames per second and a rolling frame time average.
// It is updated once per frame by the run loop.
type FrameMetrics struct {
	times       [frameWindow]float64
	next        int
	filled      bool
	frames      int
	accumulated float64
	fps         float64
}

// Update records one frame that took elapsed seconds. It reports true when
// a new FPS sample became available.
func (m *FrameMetrics) Update(elapsed float64) bool {
	ms := elapsed * 1000.0
	m.times[m.next] = ms
	m.next++
	if m.next == frameWindow {
		m.next = 0
		m.filled = true
	}

	m.frames++
	m.accumulated += ms
	if m.accumulated < 1000 {
		return false
	}
	m.fps = float64(m.frames) * 1000 / m.accumulated
	m.frames = 0
	m.accumulated = 0
	return true
}

func (m *FrameMetrics) FPS() float64 {
	return m.fps
}

// FrameTime is the average frame time in milliseconds over the last frames.
func (m *FrameMetrics) FrameTime() float64 {
	n := m.next
	if m.filled {
		n = frameWindow
	}
	if n == 0 {
		return 0
	}
	var sum float64
	for _, t := range m.times[:n] {
		sum += t
	}
	return sum / float64(n)
}

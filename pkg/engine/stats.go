package engine

import "fmt"

// reportInterval is how often the rolling averages are recomputed, in
// seconds of clock time.
const reportInterval = 1.0

// FrameStats keeps per-frame timing and a rolling one-second window of
// frame-rate figures. It is fed plain clock samples, so it carries no
// window-system dependency of its own.
type FrameStats struct {
	start       float64 // clock at construction
	current     float64 // clock at the latest Tick
	delta       float64 // seconds between the two latest Ticks
	windowStart float64 // clock at the latest report
	frames      int     // frames rendered since the latest report
	totalFrames int     // frames rendered before the current window

	avgFrameTime float64 // milliseconds, from the latest report
	avgFPS       float64 // from the latest report
}

// NewFrameStats starts the clock at now
func NewFrameStats(now float64) *FrameStats {
	return &FrameStats{
		start:        now,
		current:      now,
		windowStart:  now,
		avgFrameTime: -1,
		avgFPS:       -1,
	}
}

// Tick records one rendered frame at clock time now. It returns true when a
// reporting window just closed and the rolling averages were recomputed.
func (s *FrameStats) Tick(now float64) bool {
	s.delta = now - s.current
	s.current = now

	report := false
	elapsed := now - s.windowStart
	if elapsed >= reportInterval && s.frames > 0 {
		s.avgFrameTime = 1000.0 * elapsed / float64(s.frames)
		s.avgFPS = float64(s.frames) / elapsed
		s.windowStart = now
		s.totalFrames += s.frames
		s.frames = 0
		report = true
	}

	s.frames++
	return report
}

// Delta returns the seconds between the two latest frames
func (s *FrameStats) Delta() float64 {
	return s.delta
}

// Current returns the clock value of the latest frame
func (s *FrameStats) Current() float64 {
	return s.current
}

// AvgFrameTime returns the latest rolling average frame time in
// milliseconds, -1 before the first report
func (s *FrameStats) AvgFrameTime() float64 {
	return s.avgFrameTime
}

// AvgFPS returns the latest rolling average frame rate, -1 before the first
// report
func (s *FrameStats) AvgFPS() float64 {
	return s.avgFPS
}

// Summary returns the whole-run frame count and average frame rate
func (s *FrameStats) Summary() (frames int, elapsed, avgFPS float64) {
	frames = s.totalFrames + s.frames
	elapsed = s.current - s.start
	if elapsed > 0 {
		avgFPS = float64(frames) / elapsed
	}
	return frames, elapsed, avgFPS
}

// TitleLine formats the window title carrying the rolling averages
func (s *FrameStats) TitleLine(title string) string {
	return fmt.Sprintf("%s   /// AVG: %4.2fms/frame (%.1ffps)", title, s.avgFrameTime, s.avgFPS)
}

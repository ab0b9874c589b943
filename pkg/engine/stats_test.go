package engine

import (
	"math"
	"testing"
)

func TestFrameStatsDelta(t *testing.T) {
	s := NewFrameStats(0)

	s.Tick(0.016)
	if math.Abs(s.Delta()-0.016) > 1e-9 {
		t.Errorf("Delta() = %v, want 0.016", s.Delta())
	}

	s.Tick(0.048)
	if math.Abs(s.Delta()-0.032) > 1e-9 {
		t.Errorf("Delta() = %v, want 0.032", s.Delta())
	}
}

func TestFrameStatsNoReportBeforeInterval(t *testing.T) {
	s := NewFrameStats(0)
	for i := 1; i <= 50; i++ {
		if s.Tick(float64(i) / 60.0) {
			t.Fatalf("report fired at %v, before the interval elapsed", float64(i)/60.0)
		}
	}
	if s.AvgFPS() != -1 || s.AvgFrameTime() != -1 {
		t.Errorf("averages changed before the first report: %v fps, %v ms", s.AvgFPS(), s.AvgFrameTime())
	}
}

// Simulates 1.2 seconds of frame ticks at 60 per second: exactly one report
// must fire, with figures near 60fps and 16.7ms.
func TestFrameStatsSimulatedSecond(t *testing.T) {
	s := NewFrameStats(0)

	reports := 0
	var fps, frameTime float64
	for i := 1; i <= 72; i++ {
		if s.Tick(float64(i) / 60.0) {
			reports++
			fps = s.AvgFPS()
			frameTime = s.AvgFrameTime()
		}
	}

	if reports != 1 {
		t.Fatalf("got %d reports over 1.2s, want exactly 1", reports)
	}
	if math.Abs(fps-60.0) > 2.0 {
		t.Errorf("AvgFPS() = %v, want near 60.0", fps)
	}
	if math.Abs(frameTime-16.7) > 0.6 {
		t.Errorf("AvgFrameTime() = %v, want near 16.7", frameTime)
	}
}

func TestFrameStatsSkipsEmptyWindow(t *testing.T) {
	s := NewFrameStats(0)

	// First tick arrives well past the interval with zero frames rendered
	// in the window; the report must wait rather than divide by zero.
	if s.Tick(2.0) {
		t.Error("report fired for a window with no frames")
	}
	if !s.Tick(3.0) {
		t.Error("report did not fire once a frame was in the window")
	}
}

func TestFrameStatsSummary(t *testing.T) {
	s := NewFrameStats(0)
	for i := 1; i <= 90; i++ {
		s.Tick(float64(i) / 30.0)
	}

	frames, elapsed, avgFPS := s.Summary()
	if frames != 90 {
		t.Errorf("frames = %d, want 90", frames)
	}
	if math.Abs(elapsed-3.0) > 1e-9 {
		t.Errorf("elapsed = %v, want 3.0", elapsed)
	}
	if math.Abs(avgFPS-30.0) > 1e-6 {
		t.Errorf("avgFPS = %v, want 30.0", avgFPS)
	}
}

func TestFrameStatsTitleLine(t *testing.T) {
	s := NewFrameStats(0)
	s.Tick(0.5)
	if !s.Tick(1.0) {
		t.Fatal("expected a report at 1.0s")
	}

	got := s.TitleLine("T")
	want := "T   /// AVG: 1000.00ms/frame (1.0fps)"
	if got != want {
		t.Errorf("TitleLine() = %q, want %q", got, want)
	}
}

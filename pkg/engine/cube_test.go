package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCubeVertexData(t *testing.T) {
	data := cubeVertexData()
	if want := 24 * vertexStride; len(data) != want {
		t.Fatalf("len(cubeVertexData()) = %d, want %d", len(data), want)
	}
}

func TestCubeIndices(t *testing.T) {
	if len(cubeIndices) != 36 {
		t.Fatalf("len(cubeIndices) = %d, want 36", len(cubeIndices))
	}
	for i, idx := range cubeIndices {
		if idx >= 24 {
			t.Errorf("cubeIndices[%d] = %d, out of vertex range", i, idx)
		}
	}
}

func TestCubeAxisNormalized(t *testing.T) {
	if math.Abs(float64(cubeAxis.Len())-1.0) > 1e-6 {
		t.Errorf("cubeAxis length = %v, want 1", cubeAxis.Len())
	}
}

// Rotating in fixed steps must accumulate to the rotation of the summed
// angle: the animation is frame-rate independent.
func TestCubeAdvanceAccumulates(t *testing.T) {
	c := &Cube{model: mgl32.Ident4()}

	const delta = 0.016
	const steps = 10
	for i := 0; i < steps; i++ {
		c.Advance(delta)
	}

	want := mgl32.HomogRotate3D(float32(math.Pi/2*delta*steps), cubeAxis)
	got := c.Model()
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Fatalf("model[%d] = %v, want %v (within 1e-4)", i, got[i], want[i])
		}
	}
}

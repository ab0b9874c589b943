package engine

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"hellocube/internal/logger"
)

// vertexStride is 3 float32 coordinates plus 4 color bytes.
const vertexStride = 3*4 + 4

// cubeVertex is one corner of the cube: position plus an RGBA color with
// 8 bits per channel.
type cubeVertex struct {
	pos [3]float32
	clr [4]uint8
}

// Each face gets its own four vertices so it can carry a flat color.
var cubeGeometry = [24]cubeVertex{
	/* front face */
	{[3]float32{-1, -1, 1}, [4]uint8{255, 0, 0, 255}},
	{[3]float32{1, -1, 1}, [4]uint8{192, 0, 0, 255}},
	{[3]float32{-1, 1, 1}, [4]uint8{192, 0, 0, 255}},
	{[3]float32{1, 1, 1}, [4]uint8{128, 0, 0, 255}},
	/* back face */
	{[3]float32{1, -1, -1}, [4]uint8{0, 255, 255, 255}},
	{[3]float32{-1, -1, -1}, [4]uint8{0, 192, 192, 255}},
	{[3]float32{1, 1, -1}, [4]uint8{0, 192, 192, 255}},
	{[3]float32{-1, 1, -1}, [4]uint8{0, 128, 128, 255}},
	/* left face */
	{[3]float32{-1, -1, -1}, [4]uint8{0, 255, 0, 255}},
	{[3]float32{-1, -1, 1}, [4]uint8{0, 192, 0, 255}},
	{[3]float32{-1, 1, -1}, [4]uint8{0, 192, 0, 255}},
	{[3]float32{-1, 1, 1}, [4]uint8{0, 128, 0, 255}},
	/* right face */
	{[3]float32{1, -1, 1}, [4]uint8{255, 0, 255, 255}},
	{[3]float32{1, -1, -1}, [4]uint8{192, 0, 192, 255}},
	{[3]float32{1, 1, 1}, [4]uint8{192, 0, 192, 255}},
	{[3]float32{1, 1, -1}, [4]uint8{128, 0, 128, 255}},
	/* top face */
	{[3]float32{-1, 1, 1}, [4]uint8{0, 0, 255, 255}},
	{[3]float32{1, 1, 1}, [4]uint8{0, 0, 192, 255}},
	{[3]float32{-1, 1, -1}, [4]uint8{0, 0, 192, 255}},
	{[3]float32{1, 1, -1}, [4]uint8{0, 0, 128, 255}},
	/* bottom face */
	{[3]float32{1, -1, 1}, [4]uint8{255, 255, 0, 255}},
	{[3]float32{-1, -1, 1}, [4]uint8{192, 192, 0, 255}},
	{[3]float32{1, -1, -1}, [4]uint8{192, 192, 0, 255}},
	{[3]float32{-1, -1, -1}, [4]uint8{128, 128, 0, 255}},
}

// Two triangles sharing an edge for each face.
var cubeIndices = [36]uint16{
	0, 1, 2, 2, 1, 3, /* front */
	4, 5, 6, 6, 5, 7, /* back */
	8, 9, 10, 10, 9, 11, /* left */
	12, 13, 14, 14, 13, 15, /* right */
	16, 17, 18, 18, 17, 19, /* top */
	20, 21, 22, 22, 21, 23, /* bottom */
}

// Rotation axis for the animation, normalized once.
var cubeAxis = mgl32.Vec3{0.8, 0.6, 0.1}.Normalize()

// cubeVertexData interleaves the geometry into the byte layout the vertex
// buffer expects: 12 bytes of position followed by 4 color bytes.
func cubeVertexData() []byte {
	data := make([]byte, 0, len(cubeGeometry)*vertexStride)
	var scratch [4]byte
	for _, v := range cubeGeometry {
		for _, c := range v.pos {
			binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(c))
			data = append(data, scratch[:]...)
		}
		data = append(data, v.clr[:]...)
	}
	return data
}

// Cube owns the GPU-side geometry of the one mesh the demo renders, plus its
// local model transformation.
type Cube struct {
	vao uint32
	vbo uint32
	ebo uint32

	model mgl32.Mat4
}

// NewCube uploads the cube geometry. Buffer creation under a valid context
// is assumed to succeed, so there is no failure path.
func NewCube(log *logger.Logger) *Cube {
	c := &Cube{model: mgl32.Ident4()}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	log.Debugf("cube: created VAO %d", c.vao)

	vertices := cubeVertexData()
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)
	log.Debugf("cube: created VBO %d for %d bytes of vertex data", c.vbo, len(vertices))

	gl.GenBuffers(1, &c.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*2, gl.Ptr(cubeIndices[:]), gl.STATIC_DRAW)
	log.Debugf("cube: created VBO %d for %d bytes of element data", c.ebo, len(cubeIndices)*2)

	// Position in slot 0, color in slot 2, matching the attribute contract
	// of the shader programs.
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.VertexAttribPointer(2, 4, gl.UNSIGNED_BYTE, true, vertexStride, gl.PtrOffset(12))
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return c
}

// Advance rotates the cube by an angle proportional to the frame's time
// delta, keeping the animation speed independent of the frame rate.
func (c *Cube) Advance(delta float64) {
	angle := float32(math.Pi / 2 * delta)
	c.model = c.model.Mul4(mgl32.HomogRotate3D(angle, cubeAxis))
}

// Model returns the current local transformation
func (c *Cube) Model() mgl32.Mat4 {
	return c.model
}

// Draw issues one indexed draw over the cube's vertex array
func (c *Cube) Draw() {
	gl.BindVertexArray(c.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(cubeIndices)), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Destroy releases the GPU objects. Handles are zeroed so repeated calls are
// no-ops.
func (c *Cube) Destroy() {
	gl.BindVertexArray(0)
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
		c.vbo = 0
	}
	if c.ebo != 0 {
		gl.DeleteBuffers(1, &c.ebo)
		c.ebo = 0
	}
}

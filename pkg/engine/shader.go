package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// maxInfoLogSize bounds compiler/linker diagnostic logs.
const maxInfoLogSize = 16384

// Every program must honor a fixed attribute contract: the vertex inputs
// "pos", "nrm", "clr" and "tex" are bound to slots 0-3 before linking, and
// the fragment output "color" to draw buffer 0.

// Program is a linked shader program together with the resolved locations of
// the uniforms the render loop feeds. A location of -1 means the shader does
// not declare that uniform; uploads to it are skipped.
type Program struct {
	handle uint32

	locProjection int32
	locModelView  int32
	locTime       int32
	locCameraPos  int32
}

// readShaderPair reads both source files up front, before any GL object is
// created. A missing or unreadable file therefore fails the load without
// disturbing whatever program is currently active.
func readShaderPair(vsPath, fsPath string) (string, string, error) {
	vs, err := os.ReadFile(vsPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read vertex shader %q: %v", vsPath, err)
	}
	fs, err := os.ReadFile(fsPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read fragment shader %q: %v", fsPath, err)
	}
	return string(vs), string(fs), nil
}

// LoadProgramFiles creates a program from a vertex and fragment source file.
func LoadProgramFiles(vsPath, fsPath string) (*Program, error) {
	vsrc, fsrc, err := readShaderPair(vsPath, fsPath)
	if err != nil {
		return nil, err
	}
	return NewProgram(vsrc, fsrc)
}

// NewProgram compiles and links a program from vertex and fragment source
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %v", err)
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, fmt.Errorf("fragment shader: %v", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)

	// The attribute contract is fixed, so the slots are bound by name
	// before linking rather than queried afterwards.
	gl.BindAttribLocation(program, 0, gl.Str("pos\x00"))
	gl.BindAttribLocation(program, 1, gl.Str("nrm\x00"))
	gl.BindAttribLocation(program, 2, gl.Str("clr\x00"))
	gl.BindAttribLocation(program, 3, gl.Str("tex\x00"))
	gl.BindFragDataLocation(program, 0, gl.Str("color\x00"))

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(program)
		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		return nil, fmt.Errorf("failed to link program: %v", infoLog)
	}

	// The program retains the compiled stages it needs; the shader objects
	// themselves are no longer interesting.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	p := &Program{handle: program}
	p.locProjection = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	p.locModelView = gl.GetUniformLocation(program, gl.Str("modelView\x00"))
	p.locTime = gl.GetUniformLocation(program, gl.Str("time\x00"))
	p.locCameraPos = gl.GetUniformLocation(program, gl.Str("cameraPosition\x00"))

	return p, nil
}

// compileShader compiles a single stage from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compilation failed: %v", infoLog)
	}

	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength > maxInfoLogSize {
		logLength = maxInfoLogSize
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength > maxInfoLogSize {
		logLength = maxInfoLogSize
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

// Use makes the program current
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// SetUniforms uploads the per-frame uniform values. cameraPosition is
// resolved at link time but intentionally left unwritten.
func (p *Program) SetUniforms(projection, modelView mgl32.Mat4, elapsed float32) {
	if p.locProjection != -1 {
		gl.UniformMatrix4fv(p.locProjection, 1, false, &projection[0])
	}
	if p.locModelView != -1 {
		gl.UniformMatrix4fv(p.locModelView, 1, false, &modelView[0])
	}
	if p.locTime != -1 {
		gl.Uniform1f(p.locTime, elapsed)
	}
}

// Handle returns the GL program name, 0 after Delete
func (p *Program) Handle() uint32 {
	return p.handle
}

// Delete destroys the GL program object. Safe to call more than once.
func (p *Program) Delete() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"hellocube/internal/logger"
)

// GLDiag drains the GL error queue after state-changing call groups. It is
// enabled by the diagnostics config flag; disabled it costs a single branch
// per check.
type GLDiag struct {
	enabled bool
	log     *logger.Logger
}

// NewGLDiag creates a diagnostic hook
func NewGLDiag(enabled bool, log *logger.Logger) *GLDiag {
	return &GLDiag{enabled: enabled, log: log}
}

// Check reports every pending GL error, labeled with the action that
// preceded it, and returns the first error seen (gl.NO_ERROR if none).
func (d *GLDiag) Check(action string) uint32 {
	if !d.enabled {
		return gl.NO_ERROR
	}

	first := uint32(gl.NO_ERROR)
	for {
		e := gl.GetError()
		if e == gl.NO_ERROR {
			return first
		}
		if first == gl.NO_ERROR {
			first = e
		}
		d.log.Warnf("GL error 0x%x at %s", e, action)
	}
}

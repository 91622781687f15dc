package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// maxErrorsPerCheck bounds the drain loop. A lost context can report
// errors forever.
const maxErrorsPerCheck = 16

// CheckErrors drains the GL error queue and logs each entry.
func (r *Renderer) CheckErrors(stage string) {
	for _, code := range drainErrors(gl.GetError) {
		r.log.Error("OpenGL error",
			zap.String("stage", stage),
			zap.String("error", errorName(code)),
			zap.Uint32("code", code),
		)
	}
}

// drainErrors pulls codes from next until it reports NO_ERROR, stopping
// after maxErrorsPerCheck codes.
func drainErrors(next func() uint32) []uint32 {
	var codes []uint32
	for len(codes) < maxErrorsPerCheck {
		code := next()
		if code == gl.NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	return codes
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return fmt.Sprintf("unknown 0x%04X", code)
	}
}

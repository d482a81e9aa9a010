package gfx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spaghettifunk/anima-gl/engine/core"
	"golang.org/x/exp/constraints"
)

var (
	ErrTooManyAttributes  = errors.New("layout declares more attributes than the device supports")
	ErrCountOverflow      = errors.New("element count does not fit the device count type")
	ErrInvalidHandle      = errors.New("device returned an invalid handle")
	ErrUnsupportedUniform = errors.New("unsupported uniform value type")
)

// DeviceError is the unrecoverable failure tier. It is raised with panic
// when a must-succeed device call reports an error, or when a call is
// about to be issued with arguments the device cannot accept.
type DeviceError struct {
	Op    string
	Codes []ErrorCode
	Err   error
}

func (e *DeviceError) Error() string {
	var b strings.Builder
	b.WriteString("gfx: device call ")
	b.WriteString(e.Op)
	b.WriteString(" failed")
	if len(e.Codes) > 0 {
		names := make([]string, len(e.Codes))
		for i, c := range e.Codes {
			names[i] = c.String()
		}
		b.WriteString(": ")
		b.WriteString(strings.Join(names, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// maxErrorDrain bounds the error-queue drain. A lost context keeps
// reporting GL_CONTEXT_LOST forever.
const maxErrorDrain = 16

// pendingErrors drains the device error queue.
func pendingErrors(dev Device) []ErrorCode {
	var codes []ErrorCode
	for i := 0; i < maxErrorDrain; i++ {
		code := ErrorCode(dev.GetError())
		if code == NoError {
			break
		}
		codes = append(codes, code)
	}
	return codes
}

// check aborts if the device reported any error since the last check.
func (c *Context) check(op string) {
	if codes := pendingErrors(c.dev); len(codes) > 0 {
		fail(&DeviceError{Op: op, Codes: codes})
	}
}

func fail(err *DeviceError) {
	core.LogError(err.Error())
	panic(err)
}

// narrow converts v to int32, aborting when it does not fit.
func narrow[T constraints.Integer](op string, v T) int32 {
	if v < 0 || uint64(v) > 1<<31-1 {
		fail(&DeviceError{Op: op, Err: fmt.Errorf("%w: %d", ErrCountOverflow, v)})
	}
	return int32(v)
}

package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform is implemented by custom uniform value types.
type Uniform interface {
	SetUniform(dev Device, location int32)
}

// uniformWriter returns the device call matching the dynamic type of value,
// or ErrUnsupportedUniform before anything reaches the device. Accepted:
// float32, int32, int, uint32, bool, [2]/[3]/[4]float32, mgl32.Vec2/3/4,
// mgl32.Mat3/4 and Uniform.
func uniformWriter(value any) (func(dev Device, loc int32), error) {
	switch v := value.(type) {
	case Uniform:
		return v.SetUniform, nil
	case float32:
		return func(dev Device, loc int32) { dev.Uniform1f(loc, v) }, nil
	case int32:
		return func(dev Device, loc int32) { dev.Uniform1i(loc, v) }, nil
	case int:
		n := narrow("Uniform1i", v)
		return func(dev Device, loc int32) { dev.Uniform1i(loc, n) }, nil
	case uint32:
		return func(dev Device, loc int32) { dev.Uniform1ui(loc, v) }, nil
	case bool:
		var b int32
		if v {
			b = 1
		}
		return func(dev Device, loc int32) { dev.Uniform1i(loc, b) }, nil
	case [2]float32:
		return func(dev Device, loc int32) { dev.Uniform2f(loc, v[0], v[1]) }, nil
	case mgl32.Vec2:
		return func(dev Device, loc int32) { dev.Uniform2f(loc, v[0], v[1]) }, nil
	case [3]float32:
		return func(dev Device, loc int32) { dev.Uniform3f(loc, v[0], v[1], v[2]) }, nil
	case mgl32.Vec3:
		return func(dev Device, loc int32) { dev.Uniform3f(loc, v[0], v[1], v[2]) }, nil
	case [4]float32:
		return func(dev Device, loc int32) { dev.Uniform4f(loc, v[0], v[1], v[2], v[3]) }, nil
	case mgl32.Vec4:
		return func(dev Device, loc int32) { dev.Uniform4f(loc, v[0], v[1], v[2], v[3]) }, nil
	case mgl32.Mat3:
		return func(dev Device, loc int32) { dev.UniformMatrix3fv(loc, false, v[:]) }, nil
	case mgl32.Mat4:
		return func(dev Device, loc int32) { dev.UniformMatrix4fv(loc, false, v[:]) }, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedUniform, value)
}

// Package gfxtest provides a recording fake of the gfx device call surface.
package gfxtest

import (
	"fmt"
	"unsafe"
)

// Query names and statuses understood by the fake. Values follow OpenGL.
const (
	viewport                = 0x0BA2
	maxTextureSize          = 0x0D33
	maxVertexAttribs        = 0x8869
	maxTextureImageUnits    = 0x8872
	maxCombinedTextureUnits = 0x8B4D
	maxVertexAttribBindings = 0x82DA
	maxUniformLocations     = 0x826E
	maxArrayTextureLayers   = 0x88FF
	compileStatus           = 0x8B81
	linkStatus              = 0x8B82
	validateStatus          = 0x8B83

	MaxVertexAttribs = maxVertexAttribs
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Device records every call except GetError. Handles start at 1 and are
// shared across object kinds, so any two objects have distinct handles.
type Device struct {
	Calls []Call

	// Integers answers GetIntegerv by parameter name.
	Integers map[uint32][]int32
	// Errors is the queue returned by GetError, front first.
	Errors []uint32
	// RejectSource returns a non-empty info log for sources that must fail
	// to compile.
	RejectSource func(source string) string
	// LinkLog, when set, makes every link fail with that info log.
	LinkLog string
	// ValidateLog, when set, makes every validation fail with that info log.
	ValidateLog string
	// Locations pins uniform locations by name. Other names get increasing
	// locations, and names listed in Missing resolve to -1.
	Locations map[string]int32
	Missing   map[string]bool

	next         uint32
	nextLocation int32
	sources      map[uint32]string
	compiled     map[uint32]bool
	linked       map[uint32]bool
	validated    map[uint32]bool
	failOn       map[string]uint32
}

// NewDevice returns a fake with an 800x600 viewport and typical GL 4.5
// limits.
func NewDevice() *Device {
	return &Device{
		Integers: map[uint32][]int32{
			viewport:                {0, 0, 800, 600},
			maxVertexAttribs:        {16},
			maxVertexAttribBindings: {16},
			maxTextureImageUnits:    {16},
			maxCombinedTextureUnits: {80},
			maxTextureSize:          {16384},
			maxArrayTextureLayers:   {2048},
			maxUniformLocations:     {1024},
		},
		Locations: make(map[string]int32),
		Missing:   make(map[string]bool),
		sources:   make(map[uint32]string),
		compiled:  make(map[uint32]bool),
		linked:    make(map[uint32]bool),
		validated: make(map[uint32]bool),
		failOn:    make(map[string]uint32),
	}
}

// FailOn queues code on the error queue every time a call named name is
// recorded.
func (d *Device) FailOn(name string, code uint32) {
	d.failOn[name] = code
}

// Reset forgets recorded calls but keeps device state.
func (d *Device) Reset() {
	d.Calls = nil
}

// Count is the number of recorded calls named name.
func (d *Device) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Named returns the recorded calls named name, in order.
func (d *Device) Named(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Names lists the names of all recorded calls, in order.
func (d *Device) Names() []string {
	out := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		out[i] = c.Name
	}
	return out
}

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
	if code, ok := d.failOn[name]; ok {
		d.Errors = append(d.Errors, code)
	}
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

func (d *Device) GetError() uint32 {
	if len(d.Errors) == 0 {
		return 0
	}
	code := d.Errors[0]
	d.Errors = d.Errors[1:]
	return code
}

func (d *Device) GetIntegerv(pname uint32, data []int32) {
	d.record("GetIntegerv", pname)
	copy(data, d.Integers[pname])
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
	d.Integers[viewport] = []int32{x, y, width, height}
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
}

func (d *Device) Clear(mask uint32) {
	d.record("Clear", mask)
}

func (d *Device) CreateVertexArray() uint32 {
	h := d.handle()
	d.record("CreateVertexArray", h)
	return h
}

func (d *Device) VertexArrayAttribFormat(vao, attrib uint32, size int32, xtype uint32, normalized bool, offset uint32) {
	d.record("VertexArrayAttribFormat", vao, attrib, size, xtype, normalized, offset)
}

func (d *Device) VertexArrayAttribIFormat(vao, attrib uint32, size int32, xtype uint32, offset uint32) {
	d.record("VertexArrayAttribIFormat", vao, attrib, size, xtype, offset)
}

func (d *Device) VertexArrayAttribLFormat(vao, attrib uint32, size int32, xtype uint32, offset uint32) {
	d.record("VertexArrayAttribLFormat", vao, attrib, size, xtype, offset)
}

func (d *Device) VertexArrayAttribBinding(vao, attrib, binding uint32) {
	d.record("VertexArrayAttribBinding", vao, attrib, binding)
}

func (d *Device) EnableVertexArrayAttrib(vao, attrib uint32) {
	d.record("EnableVertexArrayAttrib", vao, attrib)
}

func (d *Device) VertexArrayVertexBuffer(vao, binding, buffer uint32, offset int, stride int32) {
	d.record("VertexArrayVertexBuffer", vao, binding, buffer, offset, stride)
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray", vao)
}

func (d *Device) CreateBuffer() uint32 {
	h := d.handle()
	d.record("CreateBuffer", h)
	return h
}

func (d *Device) NamedBufferData(buffer uint32, size int, _ unsafe.Pointer, usage uint32) {
	d.record("NamedBufferData", buffer, size, usage)
}

func (d *Device) BindBuffer(target, buffer uint32) {
	d.record("BindBuffer", target, buffer)
}

func (d *Device) CreateShader(xtype uint32) uint32 {
	h := d.handle()
	d.record("CreateShader", xtype, h)
	return h
}

func (d *Device) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource", shader)
	d.sources[shader] = source
}

func (d *Device) CompileShader(shader uint32) {
	d.record("CompileShader", shader)
	d.compiled[shader] = d.RejectSource == nil || d.RejectSource(d.sources[shader]) == ""
}

func (d *Device) GetShaderiv(shader, pname uint32) int32 {
	d.record("GetShaderiv", shader, pname)
	if pname == compileStatus && d.compiled[shader] {
		return 1
	}
	return 0
}

func (d *Device) GetShaderInfoLog(shader uint32) string {
	d.record("GetShaderInfoLog", shader)
	if d.RejectSource == nil {
		return ""
	}
	return d.RejectSource(d.sources[shader])
}

func (d *Device) DeleteShader(shader uint32) {
	d.record("DeleteShader", shader)
}

func (d *Device) CreateProgram() uint32 {
	h := d.handle()
	d.record("CreateProgram", h)
	return h
}

func (d *Device) AttachShader(program, shader uint32) {
	d.record("AttachShader", program, shader)
}

func (d *Device) DetachShader(program, shader uint32) {
	d.record("DetachShader", program, shader)
}

func (d *Device) LinkProgram(program uint32) {
	d.record("LinkProgram", program)
	d.linked[program] = d.LinkLog == ""
}

func (d *Device) ValidateProgram(program uint32) {
	d.record("ValidateProgram", program)
	d.validated[program] = d.ValidateLog == ""
}

func (d *Device) GetProgramiv(program, pname uint32) int32 {
	d.record("GetProgramiv", program, pname)
	ok := false
	switch pname {
	case linkStatus:
		ok = d.linked[program]
	case validateStatus:
		ok = d.validated[program]
	}
	if ok {
		return 1
	}
	return 0
}

func (d *Device) GetProgramInfoLog(program uint32) string {
	d.record("GetProgramInfoLog", program)
	if !d.linked[program] {
		return d.LinkLog
	}
	return d.ValidateLog
}

func (d *Device) UseProgram(program uint32) {
	d.record("UseProgram", program)
}

func (d *Device) DeleteProgram(program uint32) {
	d.record("DeleteProgram", program)
}

func (d *Device) GetUniformLocation(program uint32, name string) int32 {
	d.record("GetUniformLocation", program, name)
	if d.Missing[name] {
		return -1
	}
	if loc, ok := d.Locations[name]; ok {
		return loc
	}
	loc := d.nextLocation
	d.nextLocation++
	d.Locations[name] = loc
	return loc
}

func (d *Device) Uniform1f(location int32, v0 float32) {
	d.record("Uniform1f", location, v0)
}

func (d *Device) Uniform2f(location int32, v0, v1 float32) {
	d.record("Uniform2f", location, v0, v1)
}

func (d *Device) Uniform3f(location int32, v0, v1, v2 float32) {
	d.record("Uniform3f", location, v0, v1, v2)
}

func (d *Device) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	d.record("Uniform4f", location, v0, v1, v2, v3)
}

func (d *Device) Uniform1i(location int32, v0 int32) {
	d.record("Uniform1i", location, v0)
}

func (d *Device) Uniform1ui(location int32, v0 uint32) {
	d.record("Uniform1ui", location, v0)
}

func (d *Device) UniformMatrix3fv(location int32, transpose bool, value []float32) {
	d.record("UniformMatrix3fv", location, transpose, append([]float32(nil), value...))
}

func (d *Device) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	d.record("UniformMatrix4fv", location, transpose, append([]float32(nil), value...))
}

func (d *Device) DrawArrays(mode uint32, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}

func (d *Device) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	d.record("DrawElements", mode, count, xtype, offset)
}

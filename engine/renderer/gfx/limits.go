package gfx

// Limits is a snapshot of device capability constants taken when the
// context is loaded.
type Limits struct {
	MaxVertexAttribs             uint32
	MaxVertexAttribBindings      uint32
	MaxTextureImageUnits         uint32
	MaxCombinedTextureImageUnits uint32
	MaxTextureSize               uint32
	MaxArrayTextureLayers        uint32
	MaxUniformLocations          uint32
}

func loadLimits(c *Context) Limits {
	get := func(name string, pname uint32) uint32 {
		var v [1]int32
		c.dev.GetIntegerv(pname, v[:])
		c.check("GetIntegerv(" + name + ")")
		if v[0] < 0 {
			return 0
		}
		return uint32(v[0])
	}
	return Limits{
		MaxVertexAttribs:             get("GL_MAX_VERTEX_ATTRIBS", glMaxVertexAttribs),
		MaxVertexAttribBindings:      get("GL_MAX_VERTEX_ATTRIB_BINDINGS", glMaxVertexAttribBindings),
		MaxTextureImageUnits:         get("GL_MAX_TEXTURE_IMAGE_UNITS", glMaxTextureImageUnits),
		MaxCombinedTextureImageUnits: get("GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS", glMaxCombinedTextureUnits),
		MaxTextureSize:               get("GL_MAX_TEXTURE_SIZE", glMaxTextureSize),
		MaxArrayTextureLayers:        get("GL_MAX_ARRAY_TEXTURE_LAYERS", glMaxArrayTextureLayers),
		MaxUniformLocations:          get("GL_MAX_UNIFORM_LOCATIONS", glMaxUniformLocations),
	}
}

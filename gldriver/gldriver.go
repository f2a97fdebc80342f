// Package gldriver implements graphics.Driver over go-gl's 4.3 core
// bindings. A context must be current on the calling thread before New and
// for every call after it.
package gldriver

import (
	"strings"

	gl "github.com/go-gl/gl/v4.3-core/gl"

	"github.com/richinsley/glreflect/glenum"
	"github.com/richinsley/glreflect/graphics"
	"github.com/richinsley/glreflect/logging"
)

var _ graphics.Driver = (*Driver)(nil)

const includeExtension = "GL_ARB_shading_language_include"

type Driver struct {
	major, minor int
	extensions   map[string]bool
}

// New loads the GL entry points for the current context and records its
// version and extensions.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	d := &Driver{extensions: make(map[string]bool)}
	d.major = int(d.GetIntegerv(glenum.MajorVersion))
	d.minor = int(d.GetIntegerv(glenum.MinorVersion))
	n := d.GetIntegerv(glenum.NumExtensions)
	for i := int32(0); i < n; i++ {
		d.extensions[gl.GoStr(gl.GetStringi(glenum.Extensions, uint32(i)))] = true
	}
	logging.LogInfo("OpenGL %d.%d, %s, %d extensions", d.major, d.minor, gl.GoStr(gl.GetString(gl.RENDERER)), n)
	return d, nil
}

func (d *Driver) Version() (int, int) { return d.major, d.minor }

func (d *Driver) HasExtension(name string) bool { return d.extensions[name] }

func (d *Driver) CreateShader(shaderType uint32) uint32 { return gl.CreateShader(shaderType) }

func (d *Driver) ShaderSource(shader uint32, sources []string) {
	if len(sources) == 0 {
		return
	}
	terminated := make([]string, len(sources))
	for i, s := range sources {
		terminated[i] = s + "\x00"
	}
	csources, free := gl.Strs(terminated...)
	gl.ShaderSource(shader, int32(len(sources)), csources, nil)
	free()
}

func (d *Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

// CompileShaderInclude falls back to a plain compile when the driver lacks
// ARB_shading_language_include.
func (d *Driver) CompileShaderInclude(shader uint32, paths []string) {
	if len(paths) == 0 || !d.HasExtension(includeExtension) {
		if len(paths) > 0 {
			logging.LogWarn("%s not supported, ignoring %d include paths", includeExtension, len(paths))
		}
		gl.CompileShader(shader)
		return
	}
	terminated := make([]string, len(paths))
	for i, p := range paths {
		terminated[i] = p + "\x00"
	}
	cpaths, free := gl.Strs(terminated...)
	gl.CompileShaderIncludeARB(shader, int32(len(paths)), cpaths, nil)
	free()
}

func (d *Driver) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	logLength := d.GetShaderiv(shader, glenum.InfoLogLength)
	if logLength <= 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (d *Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (d *Driver) ProgramParameteri(program, pname uint32, value int32) {
	gl.ProgramParameteri(program, pname, value)
}

func (d *Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (d *Driver) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (d *Driver) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	logLength := d.GetProgramiv(program, glenum.InfoLogLength)
	if logLength <= 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (d *Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (d *Driver) GetProgramInterfaceiv(program, iface, pname uint32) int32 {
	var v int32
	gl.GetProgramInterfaceiv(program, iface, pname, &v)
	return v
}

func (d *Driver) GetProgramResourceiv(program, iface, index uint32, props []uint32) []int32 {
	out := make([]int32, len(props))
	if len(props) == 0 {
		return out
	}
	gl.GetProgramResourceiv(program, iface, index, int32(len(props)), &props[0], int32(len(out)), nil, &out[0])
	return out
}

func (d *Driver) GetProgramResourceName(program, iface, index uint32) string {
	prop := []uint32{glenum.NameLength}
	nameLength := d.GetProgramResourceiv(program, iface, index, prop)[0]
	if nameLength <= 0 {
		return ""
	}
	buf := make([]uint8, nameLength+1)
	var length int32
	gl.GetProgramResourceName(program, iface, index, int32(len(buf)), &length, &buf[0])
	return string(buf[:length])
}

func (d *Driver) GetProgramResourceIndex(program, iface uint32, name string) uint32 {
	return gl.GetProgramResourceIndex(program, iface, gl.Str(name+"\x00"))
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) GetUniformiv(program uint32, location int32) int32 {
	var v int32
	gl.GetUniformiv(program, location, &v)
	return v
}

func (d *Driver) GetUniformBlockIndex(program uint32, name string) uint32 {
	return gl.GetUniformBlockIndex(program, gl.Str(name+"\x00"))
}

func (d *Driver) GetActiveUniformBlockiv(program, index, pname uint32) int32 {
	var v int32
	gl.GetActiveUniformBlockiv(program, index, pname, &v)
	return v
}

func (d *Driver) GetActiveAtomicCounterBufferiv(program, index, pname uint32) int32 {
	var v int32
	gl.GetActiveAtomicCounterBufferiv(program, index, pname, &v)
	return v
}

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) GetIntegerv(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

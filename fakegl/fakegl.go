// Package fakegl is an in-memory graphics.Driver. Programs are described as
// lists of introspection records so the reflection pipeline can be exercised
// without a GL context.
package fakegl

import (
	"strconv"
	"strings"

	"github.com/richinsley/glreflect/glenum"
	"github.com/richinsley/glreflect/graphics"
)

var _ graphics.Driver = (*Driver)(nil)

// Resource is one entry of a program interface. Props not listed fall back
// to the driver defaults in propDefaults.
type Resource struct {
	Name  string
	Props map[uint32]int32
}

// Program is the introspection state of a linked program.
type Program struct {
	Interfaces map[uint32][]Resource
	// Uniforms holds the value read back by GetUniformiv, keyed by location.
	Uniforms map[int32]int32
	// AtomicBuffers holds the active atomic counter buffer properties.
	AtomicBuffers []map[uint32]int32
	// Attribs maps vertex input names to their attribute locations.
	Attribs map[string]int32

	linked    bool
	separable bool
	log       string
	shaders   []uint32
}

type shaderObj struct {
	shaderType   uint32
	sources      []string
	includePaths []string
	compiled     bool
}

// LinkFunc builds the introspection state for a program from the stage and
// the sources of its attached shader. A non-empty log means the link failed.
type LinkFunc func(shaderType uint32, sources []string) (*Program, string)

// CompileFunc decides whether a shader compiles.
type CompileFunc func(shaderType uint32, sources []string) bool

// Driver implements graphics.Driver.
type Driver struct {
	Major, Minor     int
	Extensions       []string
	MaxVertexAttribs int32

	Linker   LinkFunc
	Compiler CompileFunc

	// IncludeCompiles counts shaders compiled with include paths.
	IncludeCompiles int
	// LinkAttempts counts LinkProgram calls.
	LinkAttempts int

	next     uint32
	shaders  map[uint32]*shaderObj
	programs map[uint32]*Program
}

// New returns a GL 4.3 driver with no extensions and 16 vertex attributes.
func New() *Driver {
	return &Driver{
		Major:            4,
		Minor:            3,
		MaxVertexAttribs: 16,
		shaders:          make(map[uint32]*shaderObj),
		programs:         make(map[uint32]*Program),
	}
}

// AddProgram registers an already-linked program and returns its name.
func (d *Driver) AddProgram(p *Program) uint32 {
	d.next++
	p.linked = true
	d.programs[d.next] = p
	return d.next
}

// Program returns the live program object, or nil once it was deleted.
func (d *Driver) Program(name uint32) *Program { return d.programs[name] }

// LivePrograms is the number of programs not yet deleted.
func (d *Driver) LivePrograms() int { return len(d.programs) }

// LiveShaders is the number of shaders not yet deleted.
func (d *Driver) LiveShaders() int { return len(d.shaders) }

// Separable reports whether PROGRAM_SEPARABLE was set on the program.
func (p *Program) Separable() bool { return p.separable }

// AttachedShaders lists the shader objects still attached.
func (p *Program) AttachedShaders() []uint32 { return p.shaders }

func (d *Driver) CreateShader(shaderType uint32) uint32 {
	d.next++
	d.shaders[d.next] = &shaderObj{shaderType: shaderType}
	return d.next
}

func (d *Driver) ShaderSource(shader uint32, sources []string) {
	if s, ok := d.shaders[shader]; ok {
		s.sources = append([]string(nil), sources...)
	}
}

func (d *Driver) CompileShader(shader uint32) {
	s, ok := d.shaders[shader]
	if !ok {
		return
	}
	s.compiled = d.Compiler == nil || d.Compiler(s.shaderType, s.sources)
}

func (d *Driver) CompileShaderInclude(shader uint32, paths []string) {
	d.IncludeCompiles++
	if s, ok := d.shaders[shader]; ok {
		s.includePaths = append([]string(nil), paths...)
	}
	d.CompileShader(shader)
}

func (d *Driver) GetShaderiv(shader, pname uint32) int32 {
	s, ok := d.shaders[shader]
	if !ok {
		return 0
	}
	switch pname {
	case glenum.CompileStatus:
		if s.compiled {
			return glenum.True
		}
		return glenum.False
	}
	return 0
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	if s, ok := d.shaders[shader]; ok && !s.compiled {
		return "error: shader failed to compile\n"
	}
	return ""
}

// DeleteShader drops the shader object. Programs keep the attachment.
func (d *Driver) DeleteShader(shader uint32) {
	delete(d.shaders, shader)
}

func (d *Driver) CreateProgram() uint32 {
	d.next++
	d.programs[d.next] = &Program{}
	return d.next
}

func (d *Driver) ProgramParameteri(program, pname uint32, value int32) {
	p, ok := d.programs[program]
	if !ok {
		return
	}
	if pname == glenum.ProgramSeparable {
		p.separable = value != glenum.False
	}
}

func (d *Driver) AttachShader(program, shader uint32) {
	if p, ok := d.programs[program]; ok {
		p.shaders = append(p.shaders, shader)
	}
}

func (d *Driver) LinkProgram(program uint32) {
	d.LinkAttempts++
	p, ok := d.programs[program]
	if !ok {
		return
	}
	p.linked = false
	p.log = ""

	var shaderType uint32
	var sources []string
	for _, name := range p.shaders {
		s, ok := d.shaders[name]
		if !ok || !s.compiled {
			p.log = "error: attached shader is not compiled\n"
			return
		}
		shaderType = s.shaderType
		sources = append(sources, s.sources...)
	}
	if len(p.shaders) == 0 {
		p.log = "error: no shaders attached\n"
		return
	}

	if d.Linker == nil {
		p.linked = true
		return
	}
	built, log := d.Linker(shaderType, sources)
	if log != "" || built == nil {
		p.log = log
		return
	}
	p.Interfaces = built.Interfaces
	p.Uniforms = built.Uniforms
	p.AtomicBuffers = built.AtomicBuffers
	p.Attribs = built.Attribs
	p.linked = true
}

func (d *Driver) GetProgramiv(program, pname uint32) int32 {
	p, ok := d.programs[program]
	if !ok {
		return 0
	}
	switch pname {
	case glenum.LinkStatus:
		if p.linked {
			return glenum.True
		}
		return glenum.False
	case glenum.InfoLogLength:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	case glenum.ProgramSeparable:
		if p.separable {
			return glenum.True
		}
		return glenum.False
	}
	return 0
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	if p, ok := d.programs[program]; ok {
		return p.log
	}
	return ""
}

func (d *Driver) DeleteProgram(program uint32) {
	delete(d.programs, program)
}

func (d *Driver) resources(program, iface uint32) []Resource {
	p, ok := d.programs[program]
	if !ok || p.Interfaces == nil {
		return nil
	}
	return p.Interfaces[iface]
}

func (d *Driver) GetProgramInterfaceiv(program, iface, pname uint32) int32 {
	if pname == glenum.ActiveResources {
		return int32(len(d.resources(program, iface)))
	}
	return 0
}

var propDefaults = map[uint32]int32{
	glenum.ArraySize:                1,
	glenum.IsRowMajor:               0,
	glenum.BlockIndex:               -1,
	glenum.Offset:                   -1,
	glenum.Location:                 -1,
	glenum.LocationComponent:        0,
	glenum.NumActiveVariables:       0,
	glenum.BufferBinding:            0,
	glenum.AtomicCounterBufferIndex: -1,
	glenum.ReferencedByVertexShader: 0,
	glenum.ReferencedByTessControl:  0,
	glenum.ReferencedByTessEval:     0,
	glenum.ReferencedByGeometry:     0,
	glenum.ReferencedByFragment:     0,
	glenum.ReferencedByCompute:      0,
}

func (r *Resource) prop(p uint32) int32 {
	if v, ok := r.Props[p]; ok {
		return v
	}
	if p == glenum.NameLength {
		return int32(len(r.Name) + 1)
	}
	if v, ok := propDefaults[p]; ok {
		return v
	}
	return -1
}

func (d *Driver) GetProgramResourceiv(program, iface, index uint32, props []uint32) []int32 {
	out := make([]int32, len(props))
	res := d.resources(program, iface)
	if int(index) >= len(res) {
		for i := range out {
			out[i] = -1
		}
		return out
	}
	for i, p := range props {
		out[i] = res[index].prop(p)
	}
	return out
}

func (d *Driver) GetProgramResourceName(program, iface, index uint32) string {
	res := d.resources(program, iface)
	if int(index) >= len(res) {
		return ""
	}
	return res[index].Name
}

// GetProgramResourceIndex matches names the way GL does for arrays: "foo"
// finds a resource reported as "foo[0]".
func (d *Driver) GetProgramResourceIndex(program, iface uint32, name string) uint32 {
	for i, r := range d.resources(program, iface) {
		if r.Name == name || r.Name == name+"[0]" {
			return uint32(i)
		}
		if strings.HasSuffix(name, "[0]") && r.Name == strings.TrimSuffix(name, "[0]") {
			return uint32(i)
		}
	}
	return glenum.InvalidIndex
}

// GetUniformLocation resolves "tex[2]" to the location of "tex[0]" plus two,
// as GL assigns consecutive locations to array elements.
func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	res := d.resources(program, glenum.Uniform)
	if idx := d.GetProgramResourceIndex(program, glenum.Uniform, name); idx != glenum.InvalidIndex {
		return res[idx].prop(glenum.Location)
	}

	open := strings.LastIndexByte(name, '[')
	if open <= 0 || !strings.HasSuffix(name, "]") {
		return -1
	}
	elem, err := strconv.Atoi(name[open+1 : len(name)-1])
	if err != nil || elem < 0 {
		return -1
	}
	idx := d.GetProgramResourceIndex(program, glenum.Uniform, name[:open])
	if idx == glenum.InvalidIndex {
		return -1
	}
	base := res[idx].prop(glenum.Location)
	if base < 0 || int32(elem) >= res[idx].prop(glenum.ArraySize) {
		return -1
	}
	return base + int32(elem)
}

func (d *Driver) GetUniformiv(program uint32, location int32) int32 {
	if p, ok := d.programs[program]; ok && p.Uniforms != nil {
		return p.Uniforms[location]
	}
	return 0
}

func (d *Driver) GetUniformBlockIndex(program uint32, name string) uint32 {
	return d.GetProgramResourceIndex(program, glenum.UniformBlock, name)
}

func (d *Driver) GetActiveUniformBlockiv(program, index, pname uint32) int32 {
	res := d.resources(program, glenum.UniformBlock)
	if int(index) >= len(res) {
		return 0
	}
	return res[index].Props[pname]
}

func (d *Driver) GetActiveAtomicCounterBufferiv(program, index, pname uint32) int32 {
	p, ok := d.programs[program]
	if !ok || int(index) >= len(p.AtomicBuffers) {
		return 0
	}
	return p.AtomicBuffers[index][pname]
}

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	p, ok := d.programs[program]
	if !ok || p.Attribs == nil {
		return -1
	}
	if loc, ok := p.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) GetIntegerv(pname uint32) int32 {
	switch pname {
	case glenum.MaxVertexAttribs:
		return d.MaxVertexAttribs
	case glenum.MajorVersion:
		return int32(d.Major)
	case glenum.MinorVersion:
		return int32(d.Minor)
	case glenum.NumExtensions:
		return int32(len(d.Extensions))
	}
	return 0
}

func (d *Driver) Version() (int, int) { return d.Major, d.Minor }

func (d *Driver) HasExtension(name string) bool {
	for _, e := range d.Extensions {
		if e == name {
			return true
		}
	}
	return false
}

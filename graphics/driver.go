package graphics

// Driver is the set of GL entry points the reflection pipeline uses. It
// mirrors the GL program/shader object API with Go types in place of raw
// pointers. Query results that the driver cannot answer are reported the
// way GL does: -1 for locations and properties, InvalidIndex for indices.
type Driver interface {
	CreateShader(shaderType uint32) uint32
	ShaderSource(shader uint32, sources []string)
	CompileShader(shader uint32)
	// CompileShaderInclude compiles with ARB_shading_language_include
	// search paths.
	CompileShaderInclude(shader uint32, paths []string)
	GetShaderiv(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	ProgramParameteri(program, pname uint32, value int32)
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)

	GetProgramInterfaceiv(program, iface, pname uint32) int32
	// GetProgramResourceiv returns one value per requested property.
	GetProgramResourceiv(program, iface, index uint32, props []uint32) []int32
	GetProgramResourceName(program, iface, index uint32) string
	GetProgramResourceIndex(program, iface uint32, name string) uint32

	GetUniformLocation(program uint32, name string) int32
	GetUniformiv(program uint32, location int32) int32
	GetUniformBlockIndex(program uint32, name string) uint32
	GetActiveUniformBlockiv(program, index, pname uint32) int32
	GetActiveAtomicCounterBufferiv(program, index, pname uint32) int32
	GetAttribLocation(program uint32, name string) int32
	GetIntegerv(pname uint32) int32

	// Version reports the context's GL version.
	Version() (major, minor int)
	HasExtension(name string) bool
}

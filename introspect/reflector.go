package introspect

import (
	"github.com/richinsley/glreflect/compiler"
	"github.com/richinsley/glreflect/disasm"
	"github.com/richinsley/glreflect/graphics"
	"github.com/richinsley/glreflect/logging"
	"github.com/richinsley/glreflect/reflection"
	"github.com/richinsley/glreflect/shader"
)

// Reflector reflects single shader stages against one driver. It is not
// safe for concurrent use; GL calls must stay on the context's thread.
type Reflector struct {
	drv          graphics.Driver
	compiler     compiler.Compiler
	includePaths []string
}

// Option configures a Reflector.
type Option func(*Reflector)

// WithCompiler attaches a SPIR-V listing of every reflected stage. The
// compiler receives the same sources that were reflected; the only
// implementation, compiler.WGSL, reads WGSL, so GLSL reflection pairs it
// with a WGSL port via compiler.WithSources.
func WithCompiler(c compiler.Compiler) Option {
	return func(r *Reflector) { r.compiler = c }
}

// WithIncludePaths compiles sources with GL_ARB_shading_language_include
// search paths.
func WithIncludePaths(paths ...string) Option {
	return func(r *Reflector) { r.includePaths = append(r.includePaths, paths...) }
}

func NewReflector(drv graphics.Driver, opts ...Option) *Reflector {
	r := &Reflector{drv: drv}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Reflect builds the reflection of one stage from its sources.
func (r *Reflector) Reflect(stage reflection.ShaderStage, sources []string) (*reflection.ShaderReflection, error) {
	refl, _, err := r.reflect(stage, sources, false)
	return refl, err
}

// ReflectBindings is Reflect plus the bindpoint mapping of the same
// separable program.
func (r *Reflector) ReflectBindings(stage reflection.ShaderStage, sources []string) (*reflection.ShaderReflection, *reflection.BindpointMapping, error) {
	return r.reflect(stage, sources, true)
}

func (r *Reflector) reflect(stage reflection.ShaderStage, sources []string, bindings bool) (*reflection.ShaderReflection, *reflection.BindpointMapping, error) {
	program, err := MakeSeparableProgram(r.drv, stage, sources, r.includePaths)
	if err != nil {
		return nil, nil, err
	}
	defer r.drv.DeleteProgram(program)

	pointSizeUsed, clipDistanceUsed := shader.CheckVertexOutputUses(sources)
	refl := MakeShaderReflection(r.drv, stage, program, pointSizeUsed, clipDistanceUsed)

	var mapping *reflection.BindpointMapping
	if bindings {
		mapping = GetBindpointMapping(r.drv, program, refl)
	}

	if r.compiler != nil {
		words, err := r.compiler.Compile(stage, sources)
		if err != nil {
			logging.LogWarn("no disassembly for %s shader: %v", stage, err)
		} else {
			refl.Disassembly = disasm.Disassemble(stage, words)
		}
	}
	return refl, mapping, nil
}

package introspect

import (
	"github.com/richinsley/glreflect/glenum"
	"github.com/richinsley/glreflect/graphics"
	"github.com/richinsley/glreflect/logging"
	"github.com/richinsley/glreflect/reflection"
	"github.com/richinsley/glreflect/shader"
)

// createSeparableProgram behaves like glCreateShaderProgramv, optionally
// compiling with include paths. The shader stays attached so the program
// can be re-linked; deleting the program releases it. A compile failure
// leaves the program unlinked and returns the shader's info log.
func createSeparableProgram(drv graphics.Driver, shaderType uint32, sources, includePaths []string) (uint32, string) {
	sh := drv.CreateShader(shaderType)
	if sh == 0 {
		return 0, ""
	}
	drv.ShaderSource(sh, sources)
	if len(includePaths) > 0 {
		drv.CompileShaderInclude(sh, includePaths)
	} else {
		drv.CompileShader(sh)
	}

	var compileLog string
	program := drv.CreateProgram()
	if program != 0 {
		compiled := drv.GetShaderiv(sh, glenum.CompileStatus)
		drv.ProgramParameteri(program, glenum.ProgramSeparable, glenum.True)
		if compiled != glenum.False {
			drv.AttachShader(program, sh)
			drv.LinkProgram(program)
		} else {
			compileLog = drv.GetShaderInfoLog(sh)
		}
	}
	drv.DeleteShader(sh)
	return program, compileLog
}

func linked(drv graphics.Driver, program uint32) bool {
	return program != 0 && drv.GetProgramiv(program, glenum.LinkStatus) != glenum.False
}

// MakeSeparableProgram returns a linked separable program holding only
// stage. If the sources do not link as they are, pre-fragment stages are
// retried with gl_PerVertex redeclared. The returned program belongs to the
// caller.
func MakeSeparableProgram(drv graphics.Driver, stage reflection.ShaderStage, sources, includePaths []string) (uint32, error) {
	shaderType := glenum.ShaderType(stage)

	program, compileLog := createSeparableProgram(drv, shaderType, sources, includePaths)
	if linked(drv, program) {
		return program, nil
	}

	if stage != reflection.StageFragment && stage != reflection.StageCompute {
		logging.LogDebug("%s program did not link, retrying with gl_PerVertex redeclared", stage)
		if program != 0 {
			drv.DeleteProgram(program)
		}
		program, compileLog = createSeparableProgram(drv, shaderType, shader.PatchPerVertex(stage, sources), includePaths)
		if linked(drv, program) {
			return program, nil
		}
	}

	log := compileLog
	if program != 0 {
		if l := drv.GetProgramInfoLog(program); l != "" {
			log = l
		}
		drv.DeleteProgram(program)
	}
	logging.LogError("couldn't make separable %s program: %s", stage, log)
	return 0, &LinkError{Stage: stage, Log: log}
}

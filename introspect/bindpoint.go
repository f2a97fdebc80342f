package introspect

import (
	"strconv"
	"strings"

	"github.com/richinsley/glreflect/glenum"
	"github.com/richinsley/glreflect/graphics"
	"github.com/richinsley/glreflect/reflection"
)

const defaultVertexAttribs = 16

// GetBindpointMapping resolves refl's resources and blocks against a linked
// program. Anything the program does not contain, typically because it was
// optimised out of this linkage, is reported unbound and unused.
func GetBindpointMapping(drv graphics.Driver, program uint32, refl *reflection.ShaderReflection) *reflection.BindpointMapping {
	stage := refl.Stage
	refEnum := []uint32{glenum.ReferencedBy(stage)}

	m := &reflection.BindpointMapping{
		Resources:      make([]reflection.Bindpoint, len(refl.Resources)),
		ConstantBlocks: make([]reflection.Bindpoint, len(refl.ConstantBlocks)),
	}

	for i := range refl.Resources {
		res := &refl.Resources[i]
		bp := reflection.Unbound

		switch res.Kind {
		case reflection.KindSampler, reflection.KindImage:
			if loc := drv.GetUniformLocation(program, res.Name); loc >= 0 {
				bp.Bind = drv.GetUniformiv(program, loc)
			}
			idx := drv.GetProgramResourceIndex(program, glenum.Uniform, arrayBase(res.Name))
			if idx != glenum.InvalidIndex {
				bp.Used = drv.GetProgramResourceiv(program, glenum.Uniform, idx, refEnum)[0] != 0
			}

		case reflection.KindAtomicCounter:
			idx := drv.GetProgramResourceIndex(program, glenum.Uniform, res.Name)
			if idx == glenum.InvalidIndex {
				break
			}
			buf := drv.GetProgramResourceiv(program, glenum.Uniform, idx, []uint32{glenum.AtomicCounterBufferIndex})[0]
			if buf < 0 || uint32(buf) == glenum.InvalidIndex {
				break
			}
			bp.Bind = drv.GetActiveAtomicCounterBufferiv(program, uint32(buf), glenum.AtomicCounterBufferBinding)
			bp.Used = drv.GetActiveAtomicCounterBufferiv(program, uint32(buf), glenum.AtomicReferencedBy(stage)) != 0

		case reflection.KindStorageBlock:
			idx := drv.GetProgramResourceIndex(program, glenum.ShaderStorageBlock, res.Name)
			if idx == glenum.InvalidIndex {
				break
			}
			v := drv.GetProgramResourceiv(program, glenum.ShaderStorageBlock, idx, []uint32{glenum.BufferBinding, refEnum[0]})
			bp.Bind = v[0]
			bp.Used = v[1] != 0
		}
		m.Resources[i] = bp
	}

	for i := range refl.ConstantBlocks {
		cb := &refl.ConstantBlocks[i]
		if !cb.BufferBacked {
			m.ConstantBlocks[i] = reflection.Bindpoint{Bind: -1, Used: true}
			continue
		}
		bp := reflection.Unbound
		idx := drv.GetUniformBlockIndex(program, cb.Name)
		if idx != glenum.InvalidIndex {
			bp.Bind = drv.GetActiveUniformBlockiv(program, idx, glenum.UniformBlockBinding)
		}
		if idx = drv.GetProgramResourceIndex(program, glenum.UniformBlock, cb.Name); idx != glenum.InvalidIndex {
			bp.Used = drv.GetProgramResourceiv(program, glenum.UniformBlock, idx, refEnum)[0] != 0
		}
		m.ConstantBlocks[i] = bp
	}

	numAttribs := drv.GetIntegerv(glenum.MaxVertexAttribs)
	if numAttribs <= 0 {
		numAttribs = defaultVertexAttribs
	}
	m.InputAttributes = make([]int32, numAttribs)
	for i := range m.InputAttributes {
		m.InputAttributes[i] = -1
	}
	if stage == reflection.StageVertex {
		for i, sig := range refl.InputSig {
			loc := attribLocation(drv, program, sig.VarName)
			if loc >= 0 && loc < numAttribs {
				m.InputAttributes[loc] = int32(i)
			}
		}
	}

	return m
}

// attribLocation resolves a signature name. Matrix rows ("m:row2") sit
// at consecutive locations after the matrix's own.
func attribLocation(drv graphics.Driver, program uint32, name string) int32 {
	base, row, ok := strings.Cut(name, ":row")
	if !ok {
		return drv.GetAttribLocation(program, name)
	}
	r, err := strconv.Atoi(row)
	if err != nil || r < 0 {
		return -1
	}
	loc := drv.GetAttribLocation(program, base)
	if loc < 0 {
		return -1
	}
	return loc + int32(r)
}

// arrayBase strips a trailing array index: "tex[3]" becomes "tex".
func arrayBase(name string) string {
	if !strings.HasSuffix(name, "]") {
		return name
	}
	if open := strings.LastIndexByte(name, '['); open > 0 {
		return name[:open]
	}
	return name
}

package introspect

import (
	"fmt"
	"strings"

	"github.com/richinsley/glreflect/glenum"
	"github.com/richinsley/glreflect/graphics"
	"github.com/richinsley/glreflect/reflection"
)

// MakeShaderReflection builds the reflection for a linked separable program
// of the given stage. pointSizeUsed and clipDistanceUsed come from
// shader.CheckVertexOutputUses and control whether those builtins stay in
// the signatures.
func MakeShaderReflection(drv graphics.Driver, stage reflection.ShaderStage, program uint32, pointSizeUsed, clipDistanceUsed bool) *reflection.ShaderReflection {
	refl := &reflection.ShaderReflection{
		Stage: stage,
		DebugInfo: reflection.DebugInfo{
			EntryFunc:    "main",
			CompileFlags: 0,
		},
	}

	refl.Resources = opaqueResources(drv, program)
	refl.Resources = append(refl.Resources, storageBlocks(drv, program, len(refl.Resources))...)
	refl.ConstantBlocks = constantBlocks(drv, program)
	refl.InputSig = buildSignature(drv, stage, program, glenum.ProgramInput, pointSizeUsed, clipDistanceUsed)
	refl.OutputSig = buildSignature(drv, stage, program, glenum.ProgramOutput, pointSizeUsed, clipDistanceUsed)

	return refl
}

var uniformProps = []uint32{glenum.Type, glenum.ArraySize}

// opaqueResources lists samplers, images and atomic counters in uniform
// order. Arrays become one resource per element.
func opaqueResources(drv graphics.Driver, program uint32) []reflection.ShaderResource {
	var resources []reflection.ShaderResource

	numUniforms := drv.GetProgramInterfaceiv(program, glenum.Uniform, glenum.ActiveResources)
	for u := int32(0); u < numUniforms; u++ {
		v := drv.GetProgramResourceiv(program, glenum.Uniform, uint32(u), uniformProps)
		ot, ok := glenum.LookupOpaque(uint32(v[0]))
		if !ok {
			continue
		}

		res := reflection.ShaderResource{
			Name:        drv.GetProgramResourceName(program, glenum.Uniform, uint32(u)),
			BindPoint:   int32(len(resources)),
			ResType:     ot.ResType,
			Kind:        ot.Kind,
			IsReadWrite: ot.Kind != reflection.KindSampler,
			VariableType: reflection.TypeDescriptor{
				Type: ot.Elem,
				Rows: 1,
				Cols: 4,
				Name: ot.Name,
			},
		}
		if ot.Kind == reflection.KindAtomicCounter {
			res.VariableType.Cols = 1
		}
		resources = append(resources, res)

		if arraySize := v[1]; arraySize > 1 {
			base := strings.TrimSuffix(res.Name, "[0]")
			for i := int32(1); i < arraySize; i++ {
				elem := res
				elem.Name = fmt.Sprintf("%s[%d]", base, i)
				elem.BindPoint = int32(len(resources))
				elem.ArrayIndex = uint32(i)
				resources = append(resources, elem)
			}
		}
	}
	return resources
}

// storageBlocks lists shader storage blocks with their member trees. first
// is the bind point of the first block.
func storageBlocks(drv graphics.Driver, program uint32, first int) []reflection.ShaderResource {
	numSSBOs := drv.GetProgramInterfaceiv(program, glenum.ShaderStorageBlock, glenum.ActiveResources)
	if numSSBOs <= 0 {
		return nil
	}

	t := newVarTree()
	lists := make([]int, numSSBOs)
	blocks := make([]reflection.ShaderResource, numSSBOs)
	for u := range blocks {
		lists[u] = t.newList()
		v := drv.GetProgramResourceiv(program, glenum.ShaderStorageBlock, uint32(u), []uint32{glenum.NumActiveVariables})
		blocks[u] = reflection.ShaderResource{
			Name:        drv.GetProgramResourceName(program, glenum.ShaderStorageBlock, uint32(u)),
			BindPoint:   int32(first + u),
			ResType:     reflection.ResBuffer,
			Kind:        reflection.KindStorageBlock,
			IsReadWrite: true,
			VariableType: reflection.TypeDescriptor{
				Type:     reflection.VarUInt,
				Elements: uint32(max(v[0], 0)),
				Name:     "buffer",
			},
		}
	}

	numVars := drv.GetProgramInterfaceiv(program, glenum.BufferVariable, glenum.ActiveResources)
	for i := int32(0); i < numVars; i++ {
		reconstructVar(drv, program, glenum.BufferVariable, uint32(i), t, lists, noList)
	}

	for u := range blocks {
		blocks[u].Variables = t.build(lists[u])
	}
	return blocks
}

// constantBlocks reconstructs every non-opaque uniform into its uniform
// block, or into $Globals when it has none. Empty blocks are left out and
// bind points are assigned in order, $Globals last.
func constantBlocks(drv graphics.Driver, program uint32) []reflection.ConstantBlock {
	t := newVarTree()

	numUBOs := drv.GetProgramInterfaceiv(program, glenum.UniformBlock, glenum.ActiveResources)
	if numUBOs < 0 {
		numUBOs = 0
	}
	names := make([]string, numUBOs)
	lists := make([]int, numUBOs)
	for u := range names {
		names[u] = drv.GetProgramResourceName(program, glenum.UniformBlock, uint32(u))
		lists[u] = t.newList()
	}
	globals := t.newList()

	numUniforms := drv.GetProgramInterfaceiv(program, glenum.Uniform, glenum.ActiveResources)
	for u := int32(0); u < numUniforms; u++ {
		reconstructVar(drv, program, glenum.Uniform, uint32(u), t, lists, globals)
	}

	var cbuffers []reflection.ConstantBlock
	for u, name := range names {
		if t.empty(lists[u]) {
			continue
		}
		cbuffers = append(cbuffers, reflection.ConstantBlock{
			Name:         name,
			BindPoint:    int32(len(cbuffers)),
			BufferBacked: true,
			Variables:    t.build(lists[u]),
		})
	}
	if !t.empty(globals) {
		cbuffers = append(cbuffers, reflection.ConstantBlock{
			Name:         reflection.GlobalsBlockName,
			BindPoint:    int32(len(cbuffers)),
			BufferBacked: false,
			Variables:    t.build(globals),
		})
	}
	return cbuffers
}

package introspect

import (
	"github.com/richinsley/glreflect/fakegl"
	"github.com/richinsley/glreflect/glenum"
)

type props = map[uint32]int32

// fragmentProgram mirrors a fragment shader with a sampler array, an image,
// an atomic counter, a uniform block, loose uniforms and a storage block.
func fragmentProgram() *fakegl.Program {
	return &fakegl.Program{
		Interfaces: map[uint32][]fakegl.Resource{
			glenum.Uniform: {
				{Name: "tex[0]", Props: props{glenum.Type: glenum.Sampler2D, glenum.ArraySize: 2, glenum.Location: 0, glenum.ReferencedByFragment: 1}},
				{Name: "img", Props: props{glenum.Type: glenum.Image2D, glenum.Location: 2, glenum.ReferencedByFragment: 1}},
				{Name: "counter", Props: props{glenum.Type: glenum.UnsignedIntAtomicCounter, glenum.Offset: 0, glenum.AtomicCounterBufferIndex: 0, glenum.ReferencedByFragment: 1}},
				{Name: "time", Props: props{glenum.Type: glenum.Float, glenum.Location: 3, glenum.ReferencedByFragment: 1}},
				{Name: "diffuse", Props: props{glenum.Type: glenum.FloatVec4, glenum.BlockIndex: 0, glenum.Offset: 0}},
				{Name: "shininess", Props: props{glenum.Type: glenum.Float, glenum.BlockIndex: 0, glenum.Offset: 16}},
				{Name: "envMap", Props: props{glenum.Type: glenum.SamplerCube, glenum.Location: 4, glenum.ReferencedByFragment: 1}},
			},
			glenum.UniformBlock: {
				{Name: "Material", Props: props{glenum.UniformBlockBinding: 3, glenum.NumActiveVariables: 2, glenum.ReferencedByFragment: 1}},
				{Name: "Empty", Props: props{glenum.UniformBlockBinding: 6}},
			},
			glenum.ShaderStorageBlock: {
				{Name: "Particles", Props: props{glenum.NumActiveVariables: 1, glenum.BufferBinding: 2, glenum.ReferencedByFragment: 1}},
			},
			glenum.BufferVariable: {
				{Name: "data[0]", Props: props{glenum.Type: glenum.FloatVec4, glenum.BlockIndex: 0, glenum.Offset: 0, glenum.ArraySize: 0}},
			},
			glenum.ProgramInput: {
				{Name: "uv", Props: props{glenum.Type: glenum.FloatVec2, glenum.Location: 0}},
				{Name: "gl_FragCoord", Props: props{glenum.Type: glenum.FloatVec4}},
			},
			glenum.ProgramOutput: {
				{Name: "colour", Props: props{glenum.Type: glenum.FloatVec4, glenum.Location: 0}},
				{Name: "gl_FragDepth", Props: props{glenum.Type: glenum.Float}},
			},
		},
		Uniforms: map[int32]int32{0: 5, 1: 6, 2: 1, 4: 7},
		AtomicBuffers: []map[uint32]int32{
			{glenum.AtomicCounterBufferBinding: 4, glenum.AtomicCounterBufferRefFragment: 1},
		},
	}
}

// vertexProgram mirrors a vertex shader with a matrix attribute and the
// gl_PerVertex outputs a separable program reports.
func vertexProgram() *fakegl.Program {
	return &fakegl.Program{
		Interfaces: map[uint32][]fakegl.Resource{
			glenum.ProgramInput: {
				{Name: "position", Props: props{glenum.Type: glenum.FloatVec3, glenum.Location: 0}},
				{Name: "model", Props: props{glenum.Type: glenum.FloatMat3x4, glenum.Location: 1}},
				{Name: "gl_VertexID", Props: props{glenum.Type: glenum.Int}},
				{Name: "tint", Props: props{glenum.Type: glenum.FloatVec4, glenum.Location: 5}},
			},
			glenum.ProgramOutput: {
				{Name: "gl_Position", Props: props{glenum.Type: glenum.FloatVec4}},
				{Name: "gl_PointSize", Props: props{glenum.Type: glenum.Float}},
				{Name: "gl_ClipDistance[0]", Props: props{glenum.Type: glenum.Float, glenum.ArraySize: 2}},
				{Name: "vTint", Props: props{glenum.Type: glenum.FloatVec4, glenum.Location: 0}},
			},
		},
		Attribs: map[string]int32{"position": 0, "model": 1, "tint": 5},
	}
}

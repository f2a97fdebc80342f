package glenum

import (
	"fmt"

	"github.com/richinsley/glreflect/reflection"
)

// NumericType describes a scalar, vector or matrix type code. Matrix names
// follow GLSL's matCxR convention: Cols columns of Rows components.
type NumericType struct {
	Kind reflection.VarType
	Rows uint32
	Cols uint32
	Name string
}

var numericTypes = map[uint32]NumericType{
	Float:     {reflection.VarFloat, 1, 1, "float"},
	FloatVec2: {reflection.VarFloat, 1, 2, "vec2"},
	FloatVec3: {reflection.VarFloat, 1, 3, "vec3"},
	FloatVec4: {reflection.VarFloat, 1, 4, "vec4"},

	Double:     {reflection.VarDouble, 1, 1, "double"},
	DoubleVec2: {reflection.VarDouble, 1, 2, "dvec2"},
	DoubleVec3: {reflection.VarDouble, 1, 3, "dvec3"},
	DoubleVec4: {reflection.VarDouble, 1, 4, "dvec4"},

	Int:     {reflection.VarInt, 1, 1, "int"},
	IntVec2: {reflection.VarInt, 1, 2, "ivec2"},
	IntVec3: {reflection.VarInt, 1, 3, "ivec3"},
	IntVec4: {reflection.VarInt, 1, 4, "ivec4"},

	UnsignedInt:     {reflection.VarUInt, 1, 1, "uint"},
	UnsignedIntVec2: {reflection.VarUInt, 1, 2, "uvec2"},
	UnsignedIntVec3: {reflection.VarUInt, 1, 3, "uvec3"},
	UnsignedIntVec4: {reflection.VarUInt, 1, 4, "uvec4"},

	Bool:     {reflection.VarUInt, 1, 1, "bool"},
	BoolVec2: {reflection.VarUInt, 1, 2, "bvec2"},
	BoolVec3: {reflection.VarUInt, 1, 3, "bvec3"},
	BoolVec4: {reflection.VarUInt, 1, 4, "bvec4"},

	FloatMat2:   {reflection.VarFloat, 2, 2, "mat2"},
	FloatMat3:   {reflection.VarFloat, 3, 3, "mat3"},
	FloatMat4:   {reflection.VarFloat, 4, 4, "mat4"},
	FloatMat2x3: {reflection.VarFloat, 3, 2, "mat2x3"},
	FloatMat2x4: {reflection.VarFloat, 4, 2, "mat2x4"},
	FloatMat3x2: {reflection.VarFloat, 2, 3, "mat3x2"},
	FloatMat3x4: {reflection.VarFloat, 4, 3, "mat3x4"},
	FloatMat4x2: {reflection.VarFloat, 2, 4, "mat4x2"},
	FloatMat4x3: {reflection.VarFloat, 3, 4, "mat4x3"},

	DoubleMat2:   {reflection.VarDouble, 2, 2, "dmat2"},
	DoubleMat3:   {reflection.VarDouble, 3, 3, "dmat3"},
	DoubleMat4:   {reflection.VarDouble, 4, 4, "dmat4"},
	DoubleMat2x3: {reflection.VarDouble, 3, 2, "dmat2x3"},
	DoubleMat2x4: {reflection.VarDouble, 4, 2, "dmat2x4"},
	DoubleMat3x2: {reflection.VarDouble, 2, 3, "dmat3x2"},
	DoubleMat3x4: {reflection.VarDouble, 4, 3, "dmat3x4"},
	DoubleMat4x2: {reflection.VarDouble, 2, 4, "dmat4x2"},
	DoubleMat4x3: {reflection.VarDouble, 3, 4, "dmat4x3"},
}

// LookupNumeric returns the descriptor for a numeric type code. Opaque
// codes (samplers, images, atomic counters) are not found.
func LookupNumeric(code uint32) (NumericType, bool) {
	t, ok := numericTypes[code]
	return t, ok
}

// IsMatrix reports whether t has more than one row.
func (t NumericType) IsMatrix() bool { return t.Rows > 1 }

// OpaqueType describes a sampler, image or atomic counter type code.
type OpaqueType struct {
	Kind    reflection.ResourceKind
	ResType reflection.ResourceType
	Elem    reflection.VarType
	Name    string
}

var opaqueTypes = map[uint32]OpaqueType{
	SamplerBuffer:           {reflection.KindSampler, reflection.ResBuffer, reflection.VarFloat, "samplerBuffer"},
	Sampler1D:               {reflection.KindSampler, reflection.ResTexture1D, reflection.VarFloat, "sampler1D"},
	Sampler1DArray:          {reflection.KindSampler, reflection.ResTexture1DArray, reflection.VarFloat, "sampler1DArray"},
	Sampler1DShadow:         {reflection.KindSampler, reflection.ResTexture1D, reflection.VarFloat, "sampler1DShadow"},
	Sampler1DArrayShadow:    {reflection.KindSampler, reflection.ResTexture1DArray, reflection.VarFloat, "sampler1DArrayShadow"},
	Sampler2D:               {reflection.KindSampler, reflection.ResTexture2D, reflection.VarFloat, "sampler2D"},
	Sampler2DArray:          {reflection.KindSampler, reflection.ResTexture2DArray, reflection.VarFloat, "sampler2DArray"},
	Sampler2DShadow:         {reflection.KindSampler, reflection.ResTexture2D, reflection.VarFloat, "sampler2DShadow"},
	Sampler2DArrayShadow:    {reflection.KindSampler, reflection.ResTexture2DArray, reflection.VarFloat, "sampler2DArrayShadow"},
	Sampler2DRect:           {reflection.KindSampler, reflection.ResTextureRect, reflection.VarFloat, "sampler2DRect"},
	Sampler2DRectShadow:     {reflection.KindSampler, reflection.ResTextureRect, reflection.VarFloat, "sampler2DRectShadow"},
	Sampler3D:               {reflection.KindSampler, reflection.ResTexture3D, reflection.VarFloat, "sampler3D"},
	SamplerCube:             {reflection.KindSampler, reflection.ResTextureCube, reflection.VarFloat, "samplerCube"},
	SamplerCubeShadow:       {reflection.KindSampler, reflection.ResTextureCube, reflection.VarFloat, "samplerCubeShadow"},
	SamplerCubeMapArray:     {reflection.KindSampler, reflection.ResTextureCubeArray, reflection.VarFloat, "samplerCubeArray"},
	Sampler2DMultisample:    {reflection.KindSampler, reflection.ResTexture2DMS, reflection.VarFloat, "sampler2DMS"},
	Sampler2DMultisampleArr: {reflection.KindSampler, reflection.ResTexture2DMSArray, reflection.VarFloat, "sampler2DMSArray"},

	IntSamplerBuffer:        {reflection.KindSampler, reflection.ResBuffer, reflection.VarInt, "isamplerBuffer"},
	IntSampler1D:            {reflection.KindSampler, reflection.ResTexture1D, reflection.VarInt, "isampler1D"},
	IntSampler1DArray:       {reflection.KindSampler, reflection.ResTexture1DArray, reflection.VarInt, "isampler1DArray"},
	IntSampler2D:            {reflection.KindSampler, reflection.ResTexture2D, reflection.VarInt, "isampler2D"},
	IntSampler2DArray:       {reflection.KindSampler, reflection.ResTexture2DArray, reflection.VarInt, "isampler2DArray"},
	IntSampler2DRect:        {reflection.KindSampler, reflection.ResTextureRect, reflection.VarInt, "isampler2DRect"},
	IntSampler3D:            {reflection.KindSampler, reflection.ResTexture3D, reflection.VarInt, "isampler3D"},
	IntSamplerCube:          {reflection.KindSampler, reflection.ResTextureCube, reflection.VarInt, "isamplerCube"},
	IntSamplerCubeMapArray:  {reflection.KindSampler, reflection.ResTextureCubeArray, reflection.VarInt, "isamplerCubeArray"},
	IntSampler2DMultisample: {reflection.KindSampler, reflection.ResTexture2DMS, reflection.VarInt, "isampler2DMS"},
	IntSampler2DMSArray:     {reflection.KindSampler, reflection.ResTexture2DMSArray, reflection.VarInt, "isampler2DMSArray"},

	UIntSamplerBuffer:        {reflection.KindSampler, reflection.ResBuffer, reflection.VarUInt, "usamplerBuffer"},
	UIntSampler1D:            {reflection.KindSampler, reflection.ResTexture1D, reflection.VarUInt, "usampler1D"},
	UIntSampler1DArray:       {reflection.KindSampler, reflection.ResTexture1DArray, reflection.VarUInt, "usampler1DArray"},
	UIntSampler2D:            {reflection.KindSampler, reflection.ResTexture2D, reflection.VarUInt, "usampler2D"},
	UIntSampler2DArray:       {reflection.KindSampler, reflection.ResTexture2DArray, reflection.VarUInt, "usampler2DArray"},
	UIntSampler2DRect:        {reflection.KindSampler, reflection.ResTextureRect, reflection.VarUInt, "usampler2DRect"},
	UIntSampler3D:            {reflection.KindSampler, reflection.ResTexture3D, reflection.VarUInt, "usampler3D"},
	UIntSamplerCube:          {reflection.KindSampler, reflection.ResTextureCube, reflection.VarUInt, "usamplerCube"},
	UIntSamplerCubeMapArray:  {reflection.KindSampler, reflection.ResTextureCubeArray, reflection.VarUInt, "usamplerCubeArray"},
	UIntSampler2DMultisample: {reflection.KindSampler, reflection.ResTexture2DMS, reflection.VarUInt, "usampler2DMS"},
	UIntSampler2DMSArray:     {reflection.KindSampler, reflection.ResTexture2DMSArray, reflection.VarUInt, "usampler2DMSArray"},

	ImageBuffer:        {reflection.KindImage, reflection.ResBuffer, reflection.VarFloat, "imageBuffer"},
	Image1D:            {reflection.KindImage, reflection.ResTexture1D, reflection.VarFloat, "image1D"},
	Image1DArray:       {reflection.KindImage, reflection.ResTexture1DArray, reflection.VarFloat, "image1DArray"},
	Image2D:            {reflection.KindImage, reflection.ResTexture2D, reflection.VarFloat, "image2D"},
	Image2DArray:       {reflection.KindImage, reflection.ResTexture2DArray, reflection.VarFloat, "image2DArray"},
	Image2DRect:        {reflection.KindImage, reflection.ResTextureRect, reflection.VarFloat, "image2DRect"},
	Image3D:            {reflection.KindImage, reflection.ResTexture3D, reflection.VarFloat, "image3D"},
	ImageCube:          {reflection.KindImage, reflection.ResTextureCube, reflection.VarFloat, "imageCube"},
	ImageCubeMapArray:  {reflection.KindImage, reflection.ResTextureCubeArray, reflection.VarFloat, "imageCubeArray"},
	Image2DMultisample: {reflection.KindImage, reflection.ResTexture2DMS, reflection.VarFloat, "image2DMS"},
	Image2DMSArray:     {reflection.KindImage, reflection.ResTexture2DMSArray, reflection.VarFloat, "image2DMSArray"},

	IntImageBuffer:       {reflection.KindImage, reflection.ResBuffer, reflection.VarInt, "iimageBuffer"},
	IntImage1D:           {reflection.KindImage, reflection.ResTexture1D, reflection.VarInt, "iimage1D"},
	IntImage1DArray:      {reflection.KindImage, reflection.ResTexture1DArray, reflection.VarInt, "iimage1DArray"},
	IntImage2D:           {reflection.KindImage, reflection.ResTexture2D, reflection.VarInt, "iimage2D"},
	IntImage2DArray:      {reflection.KindImage, reflection.ResTexture2DArray, reflection.VarInt, "iimage2DArray"},
	IntImage2DRect:       {reflection.KindImage, reflection.ResTextureRect, reflection.VarInt, "iimage2DRect"},
	IntImage3D:           {reflection.KindImage, reflection.ResTexture3D, reflection.VarInt, "iimage3D"},
	IntImageCube:         {reflection.KindImage, reflection.ResTextureCube, reflection.VarInt, "iimageCube"},
	IntImageCubeMapArray: {reflection.KindImage, reflection.ResTextureCubeArray, reflection.VarInt, "iimageCubeArray"},
	IntImage2DMS:         {reflection.KindImage, reflection.ResTexture2DMS, reflection.VarInt, "iimage2DMS"},
	IntImage2DMSArray:    {reflection.KindImage, reflection.ResTexture2DMSArray, reflection.VarInt, "iimage2DMSArray"},

	UIntImageBuffer:     {reflection.KindImage, reflection.ResBuffer, reflection.VarUInt, "uimageBuffer"},
	UIntImage1D:         {reflection.KindImage, reflection.ResTexture1D, reflection.VarUInt, "uimage1D"},
	UIntImage1DArray:    {reflection.KindImage, reflection.ResTexture1DArray, reflection.VarUInt, "uimage1DArray"},
	UIntImage2D:         {reflection.KindImage, reflection.ResTexture2D, reflection.VarUInt, "uimage2D"},
	UIntImage2DArray:    {reflection.KindImage, reflection.ResTexture2DArray, reflection.VarUInt, "uimage2DArray"},
	UIntImage2DRect:     {reflection.KindImage, reflection.ResTextureRect, reflection.VarUInt, "uimage2DRect"},
	UIntImage3D:         {reflection.KindImage, reflection.ResTexture3D, reflection.VarUInt, "uimage3D"},
	UIntImageCube:       {reflection.KindImage, reflection.ResTextureCube, reflection.VarUInt, "uimageCube"},
	UIntImageCubeMapArr: {reflection.KindImage, reflection.ResTextureCubeArray, reflection.VarUInt, "uimageCubeArray"},
	UIntImage2DMS:       {reflection.KindImage, reflection.ResTexture2DMS, reflection.VarUInt, "uimage2DMS"},
	UIntImage2DMSArray:  {reflection.KindImage, reflection.ResTexture2DMSArray, reflection.VarUInt, "uimage2DMSArray"},

	UnsignedIntAtomicCounter: {reflection.KindAtomicCounter, reflection.ResBuffer, reflection.VarUInt, "atomic_uint"},
}

// LookupOpaque returns the resource descriptor for a sampler, image or
// atomic counter type code.
func LookupOpaque(code uint32) (OpaqueType, bool) {
	t, ok := opaqueTypes[code]
	return t, ok
}

var stageEnums = [reflection.StageCount]uint32{
	VertexShader,
	TessControlShader,
	TessEvaluationShader,
	GeometryShader,
	FragmentShader,
	ComputeShader,
}

var referencedBy = [reflection.StageCount]uint32{
	ReferencedByVertexShader,
	ReferencedByTessControl,
	ReferencedByTessEval,
	ReferencedByGeometry,
	ReferencedByFragment,
	ReferencedByCompute,
}

var atomicReferencedBy = [reflection.StageCount]uint32{
	AtomicCounterBufferRefVertex,
	AtomicCounterBufferRefTessControl,
	AtomicCounterBufferRefTessEvaluation,
	AtomicCounterBufferRefGeometry,
	AtomicCounterBufferRefFragment,
	AtomicCounterBufferRefCompute,
}

// ShaderType returns the shader object type for a stage.
func ShaderType(s reflection.ShaderStage) uint32 { return stageEnums[s] }

// ReferencedBy returns the REFERENCED_BY_*_SHADER property for a stage.
func ReferencedBy(s reflection.ShaderStage) uint32 { return referencedBy[s] }

// AtomicReferencedBy returns the atomic counter buffer REFERENCED_BY query
// for a stage.
func AtomicReferencedBy(s reflection.ShaderStage) uint32 { return atomicReferencedBy[s] }

// Name returns a readable name for the enums that show up in diagnostics.
func Name(code uint32) string {
	if t, ok := numericTypes[code]; ok {
		return t.Name
	}
	if t, ok := opaqueTypes[code]; ok {
		return t.Name
	}
	switch code {
	case Uniform:
		return "GL_UNIFORM"
	case UniformBlock:
		return "GL_UNIFORM_BLOCK"
	case ProgramInput:
		return "GL_PROGRAM_INPUT"
	case ProgramOutput:
		return "GL_PROGRAM_OUTPUT"
	case BufferVariable:
		return "GL_BUFFER_VARIABLE"
	case ShaderStorageBlock:
		return "GL_SHADER_STORAGE_BLOCK"
	case VertexShader:
		return "GL_VERTEX_SHADER"
	case TessControlShader:
		return "GL_TESS_CONTROL_SHADER"
	case TessEvaluationShader:
		return "GL_TESS_EVALUATION_SHADER"
	case GeometryShader:
		return "GL_GEOMETRY_SHADER"
	case FragmentShader:
		return "GL_FRAGMENT_SHADER"
	case ComputeShader:
		return "GL_COMPUTE_SHADER"
	}
	return fmt.Sprintf("0x%04X", code)
}

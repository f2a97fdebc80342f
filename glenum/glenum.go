// Package glenum holds the OpenGL numeric tags used by the reflection
// pipeline. It carries no cgo so that everything above the driver boundary
// can be built and tested without a GL implementation.
package glenum

const (
	False = 0
	True  = 1

	InvalidIndex = 0xFFFFFFFF

	// shader stages
	FragmentShader       = 0x8B30
	VertexShader         = 0x8B31
	GeometryShader       = 0x8DD9
	TessEvaluationShader = 0x8E87
	TessControlShader    = 0x8E88
	ComputeShader        = 0x91B9

	// shader/program state
	CompileStatus    = 0x8B81
	LinkStatus       = 0x8B82
	InfoLogLength    = 0x8B84
	ProgramSeparable = 0x8258

	// program interfaces
	Uniform            = 0x92E1
	UniformBlock       = 0x92E2
	ProgramInput       = 0x92E3
	ProgramOutput      = 0x92E4
	BufferVariable     = 0x92E5
	ShaderStorageBlock = 0x92E6

	// interface and resource properties
	ActiveResources          = 0x92F5
	NameLength               = 0x92F9
	Type                     = 0x92FA
	ArraySize                = 0x92FB
	Offset                   = 0x92FC
	BlockIndex               = 0x92FD
	IsRowMajor               = 0x9300
	AtomicCounterBufferIndex = 0x9301
	BufferBinding            = 0x9302
	NumActiveVariables       = 0x9304
	ReferencedByVertexShader = 0x9306
	ReferencedByTessControl  = 0x9307
	ReferencedByTessEval     = 0x9308
	ReferencedByGeometry     = 0x9309
	ReferencedByFragment     = 0x930A
	ReferencedByCompute      = 0x930B
	Location                 = 0x930E
	LocationComponent        = 0x934A

	// block and atomic buffer queries
	UniformBlockBinding                  = 0x8A3F
	AtomicCounterBufferBinding           = 0x92C1
	AtomicCounterBufferRefVertex         = 0x92C7
	AtomicCounterBufferRefTessControl    = 0x92C8
	AtomicCounterBufferRefTessEvaluation = 0x92C9
	AtomicCounterBufferRefGeometry       = 0x92CA
	AtomicCounterBufferRefFragment       = 0x92CB
	AtomicCounterBufferRefCompute        = 0x90ED

	// limits and versions
	MaxVertexAttribs = 0x8869
	MajorVersion     = 0x821B
	MinorVersion     = 0x821C
	NumExtensions    = 0x821D
	Extensions       = 0x1F03
)

// numeric type codes
const (
	Float     = 0x1406
	FloatVec2 = 0x8B50
	FloatVec3 = 0x8B51
	FloatVec4 = 0x8B52

	Double     = 0x140A
	DoubleVec2 = 0x8FFC
	DoubleVec3 = 0x8FFD
	DoubleVec4 = 0x8FFE

	Int     = 0x1404
	IntVec2 = 0x8B53
	IntVec3 = 0x8B54
	IntVec4 = 0x8B55

	UnsignedInt     = 0x1405
	UnsignedIntVec2 = 0x8DC6
	UnsignedIntVec3 = 0x8DC7
	UnsignedIntVec4 = 0x8DC8

	Bool     = 0x8B56
	BoolVec2 = 0x8B57
	BoolVec3 = 0x8B58
	BoolVec4 = 0x8B59

	FloatMat2   = 0x8B5A
	FloatMat3   = 0x8B5B
	FloatMat4   = 0x8B5C
	FloatMat2x3 = 0x8B65
	FloatMat2x4 = 0x8B66
	FloatMat3x2 = 0x8B67
	FloatMat3x4 = 0x8B68
	FloatMat4x2 = 0x8B69
	FloatMat4x3 = 0x8B6A

	DoubleMat2   = 0x8F46
	DoubleMat3   = 0x8F47
	DoubleMat4   = 0x8F48
	DoubleMat2x3 = 0x8F49
	DoubleMat2x4 = 0x8F4A
	DoubleMat3x2 = 0x8F4B
	DoubleMat3x4 = 0x8F4C
	DoubleMat4x2 = 0x8F4D
	DoubleMat4x3 = 0x8F4E
)

// opaque type codes
const (
	Sampler1D                = 0x8B5D
	Sampler2D                = 0x8B5E
	Sampler3D                = 0x8B5F
	SamplerCube              = 0x8B60
	Sampler1DShadow          = 0x8B61
	Sampler2DShadow          = 0x8B62
	Sampler2DRect            = 0x8B63
	Sampler2DRectShadow      = 0x8B64
	Sampler1DArray           = 0x8DC0
	Sampler2DArray           = 0x8DC1
	SamplerBuffer            = 0x8DC2
	Sampler1DArrayShadow     = 0x8DC3
	Sampler2DArrayShadow     = 0x8DC4
	SamplerCubeShadow        = 0x8DC5
	SamplerCubeMapArray      = 0x900C
	Sampler2DMultisample     = 0x9108
	Sampler2DMultisampleArr  = 0x910B
	IntSampler1D             = 0x8DC9
	IntSampler2D             = 0x8DCA
	IntSampler3D             = 0x8DCB
	IntSamplerCube           = 0x8DCC
	IntSampler2DRect         = 0x8DCD
	IntSampler1DArray        = 0x8DCE
	IntSampler2DArray        = 0x8DCF
	IntSamplerBuffer         = 0x8DD0
	IntSamplerCubeMapArray   = 0x900E
	IntSampler2DMultisample  = 0x9109
	IntSampler2DMSArray      = 0x910C
	UIntSampler1D            = 0x8DD1
	UIntSampler2D            = 0x8DD2
	UIntSampler3D            = 0x8DD3
	UIntSamplerCube          = 0x8DD4
	UIntSampler2DRect        = 0x8DD5
	UIntSampler1DArray       = 0x8DD6
	UIntSampler2DArray       = 0x8DD7
	UIntSamplerBuffer        = 0x8DD8
	UIntSamplerCubeMapArray  = 0x900F
	UIntSampler2DMultisample = 0x910A
	UIntSampler2DMSArray     = 0x910D

	Image1D              = 0x904C
	Image2D              = 0x904D
	Image3D              = 0x904E
	Image2DRect          = 0x904F
	ImageCube            = 0x9050
	ImageBuffer          = 0x9051
	Image1DArray         = 0x9052
	Image2DArray         = 0x9053
	ImageCubeMapArray    = 0x9054
	Image2DMultisample   = 0x9055
	Image2DMSArray       = 0x9056
	IntImage1D           = 0x9057
	IntImage2D           = 0x9058
	IntImage3D           = 0x9059
	IntImage2DRect       = 0x905A
	IntImageCube         = 0x905B
	IntImageBuffer       = 0x905C
	IntImage1DArray      = 0x905D
	IntImage2DArray      = 0x905E
	IntImageCubeMapArray = 0x905F
	IntImage2DMS         = 0x9060
	IntImage2DMSArray    = 0x9061
	UIntImage1D          = 0x9062
	UIntImage2D          = 0x9063
	UIntImage3D          = 0x9064
	UIntImage2DRect      = 0x9065
	UIntImageCube        = 0x9066
	UIntImageBuffer      = 0x9067
	UIntImage1DArray     = 0x9068
	UIntImage2DArray     = 0x9069
	UIntImageCubeMapArr  = 0x906A
	UIntImage2DMS        = 0x906B
	UIntImage2DMSArray   = 0x906C

	UnsignedIntAtomicCounter = 0x92DB
)

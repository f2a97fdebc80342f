package reflection

import "fmt"

// ShaderStage identifies a single programmable pipeline stage. The numeric
// value doubles as the index into per-stage query tables.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageTessControl
	StageTessEval
	StageGeometry
	StageFragment
	StageCompute
)

// StageCount is the number of programmable stages.
const StageCount = 6

var stageNames = [StageCount]string{
	"Vertex",
	"Tessellation Control",
	"Tessellation Evaluation",
	"Geometry",
	"Fragment",
	"Compute",
}

func (s ShaderStage) String() string {
	if s < 0 || s >= StageCount {
		return fmt.Sprintf("ShaderStage(%d)", int(s))
	}
	return stageNames[s]
}

// ParseStage accepts the short names used on the command line and in
// config files ("vert", "tesc", "tese", "geom", "frag", "comp") as well as
// the long lower-case forms ("vertex", "fragment", ...).
func ParseStage(name string) (ShaderStage, error) {
	switch name {
	case "vert", "vertex":
		return StageVertex, nil
	case "tesc", "tesscontrol", "tess_control":
		return StageTessControl, nil
	case "tese", "tesseval", "tess_evaluation":
		return StageTessEval, nil
	case "geom", "geometry":
		return StageGeometry, nil
	case "frag", "fragment":
		return StageFragment, nil
	case "comp", "compute":
		return StageCompute, nil
	}
	return 0, fmt.Errorf("unknown shader stage %q", name)
}

// VarType is the scalar kind of a numeric variable.
type VarType int

const (
	VarFloat VarType = iota
	VarDouble
	VarInt
	VarUInt
)

func (v VarType) String() string {
	switch v {
	case VarFloat:
		return "float"
	case VarDouble:
		return "double"
	case VarInt:
		return "int"
	case VarUInt:
		return "uint"
	}
	return fmt.Sprintf("VarType(%d)", int(v))
}

// ResourceType is the dimensionality of a texture or buffer resource.
type ResourceType int

const (
	ResBuffer ResourceType = iota
	ResTexture1D
	ResTexture1DArray
	ResTexture2D
	ResTextureRect
	ResTexture2DArray
	ResTexture2DMS
	ResTexture2DMSArray
	ResTexture3D
	ResTextureCube
	ResTextureCubeArray
)

var resourceTypeNames = [...]string{
	"Buffer",
	"Texture1D",
	"Texture1DArray",
	"Texture2D",
	"TextureRect",
	"Texture2DArray",
	"Texture2DMS",
	"Texture2DMSArray",
	"Texture3D",
	"TextureCube",
	"TextureCubeArray",
}

func (r ResourceType) String() string {
	if r < 0 || int(r) >= len(resourceTypeNames) {
		return fmt.Sprintf("ResourceType(%d)", int(r))
	}
	return resourceTypeNames[r]
}

// ResourceKind distinguishes how a resource is accessed from the shader.
type ResourceKind int

const (
	KindSampler ResourceKind = iota
	KindImage
	KindAtomicCounter
	KindStorageBlock
)

func (k ResourceKind) String() string {
	switch k {
	case KindSampler:
		return "sampler"
	case KindImage:
		return "image"
	case KindAtomicCounter:
		return "atomic counter"
	case KindStorageBlock:
		return "storage block"
	}
	return fmt.Sprintf("ResourceKind(%d)", int(k))
}

// CompType is the component type of a signature element.
type CompType int

const (
	CompFloat CompType = iota
	CompSInt
	CompUInt
)

func (c CompType) String() string {
	switch c {
	case CompFloat:
		return "float"
	case CompSInt:
		return "sint"
	case CompUInt:
		return "uint"
	}
	return fmt.Sprintf("CompType(%d)", int(c))
}

// SystemValue classifies a signature element bound to a fixed pipeline role.
// SystemNone marks a plain user variable.
type SystemValue int

const (
	SystemNone SystemValue = iota
	SystemVertexIndex
	SystemInstanceIndex
	SystemPosition
	SystemPointSize
	SystemClipDistance
	SystemPatchNumVertices
	SystemPrimitiveIndex
	SystemInvocationIndex
	SystemOuterTessFactor
	SystemInsideTessFactor
	SystemDomainLocation
	SystemRTIndex
	SystemViewportIndex
	SystemIsFrontFace
	SystemMSAASampleIndex
	SystemMSAASamplePosition
	SystemMSAACoverage
	SystemColourOutput
	SystemDepthOutput
	SystemDispatchSize
	SystemGroupIndex
	SystemGroupThreadIndex
	SystemDispatchThreadIndex
	SystemGroupFlatIndex

	systemValueCount
)

var systemValueNames = [systemValueCount]string{
	"None",
	"VertexIndex",
	"InstanceIndex",
	"Position",
	"PointSize",
	"ClipDistance",
	"PatchNumVertices",
	"PrimitiveIndex",
	"InvocationIndex",
	"OuterTessFactor",
	"InsideTessFactor",
	"DomainLocation",
	"RTIndex",
	"ViewportIndex",
	"IsFrontFace",
	"MSAASampleIndex",
	"MSAASamplePosition",
	"MSAACoverage",
	"ColourOutput",
	"DepthOutput",
	"DispatchSize",
	"GroupIndex",
	"GroupThreadIndex",
	"DispatchThreadIndex",
	"GroupFlatIndex",
}

func (s SystemValue) String() string {
	if s < 0 || s >= systemValueCount {
		return fmt.Sprintf("SystemValue(%d)", int(s))
	}
	return systemValueNames[s]
}

// SortRank orders system values for signature sorting. Concrete system
// values keep their declaration order and SystemNone ranks after all of them.
func (s SystemValue) SortRank() int {
	if s == SystemNone {
		return int(systemValueCount)
	}
	return int(s)
}

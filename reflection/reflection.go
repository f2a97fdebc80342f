// Package reflection holds the canonical, driver-independent description of
// a shader's resources, constant data layout and input/output signatures.
//
// Values in this package are plain data. A ShaderReflection is produced once
// per shader and never mutated afterwards; a BindpointMapping is produced per
// linked program and is never cached across linkages.
package reflection

// TypeDescriptor describes the type of a variable or of a resource element.
type TypeDescriptor struct {
	Type VarType
	// Rows is 1 for scalars and vectors, the row count for matrices and 0 for structs.
	Rows uint32
	// Cols is the vector width (1 for scalars) or matrix column count.
	Cols uint32
	// Elements is 0 for non-arrays and N for an array of N.
	Elements        uint32
	RowMajorStorage bool
	Name            string
}

// Register is a location in 16-byte vector registers.
type Register struct {
	Vec  uint32
	Comp uint32
}

// UnassignedRegister marks a variable with neither an offset nor a location.
var UnassignedRegister = Register{Vec: ^uint32(0), Comp: ^uint32(0)}

// Less orders registers by vector index, then component.
func (r Register) Less(o Register) bool {
	if r.Vec == o.Vec {
		return r.Comp < o.Comp
	}
	return r.Vec < o.Vec
}

// ShaderConstant is one node of a reconstructed variable tree. Members is
// only populated for struct types and is kept sorted by register.
type ShaderConstant struct {
	Name    string
	Reg     Register
	Type    TypeDescriptor
	Members []ShaderConstant
}

// ConstantBlock is a uniform block, or the synthetic "$Globals" block that
// collects uniforms declared outside any block.
type ConstantBlock struct {
	Name         string
	BindPoint    int32
	BufferBacked bool
	Variables    []ShaderConstant
}

// GlobalsBlockName is the name given to the non-buffer-backed block.
const GlobalsBlockName = "$Globals"

// ShaderResource is a sampler, image, atomic counter or storage block.
type ShaderResource struct {
	Name         string
	BindPoint    int32
	ResType      ResourceType
	Kind         ResourceKind
	IsReadWrite  bool
	VariableType TypeDescriptor
	// ArrayIndex is the element index for entries replicated from a
	// resource array. The first element (and non-arrays) use 0.
	ArrayIndex uint32
	// Variables holds the member tree of a storage block.
	Variables []ShaderConstant
}

// IsTexture reports whether the resource is bound through a texture or
// image unit.
func (r *ShaderResource) IsTexture() bool {
	return r.Kind == KindSampler || r.Kind == KindImage
}

// SignatureParameter is one register-sized element of an input or output
// signature. Matrices are split into one parameter per row.
type SignatureParameter struct {
	VarName         string
	CompType        CompType
	CompCount       uint32
	RegIndex        uint32
	RegChannelMask  uint8
	ChannelUsedMask uint8
	SystemValue     SystemValue
}

type DebugInfo struct {
	EntryFunc    string
	CompileFlags uint32
}

// ShaderReflection is the linkage-independent description of one shader stage.
type ShaderReflection struct {
	Stage          ShaderStage
	DebugInfo      DebugInfo
	Disassembly    string
	Resources      []ShaderResource
	ConstantBlocks []ConstantBlock
	InputSig       []SignatureParameter
	OutputSig      []SignatureParameter
}

// Bindpoint is the slot a resource is bound to in one linked program, and
// whether the owning stage references it. Bind is -1 when unbound.
type Bindpoint struct {
	Bind int32
	Used bool
}

// Unbound is the default for every lookup that fails.
var Unbound = Bindpoint{Bind: -1, Used: false}

// BindpointMapping resolves a ShaderReflection against a specific linked
// program. Resources and ConstantBlocks are parallel to the reflection's
// slices. InputAttributes maps a vertex attribute slot to an index in the
// input signature, or -1.
type BindpointMapping struct {
	Resources       []Bindpoint
	ConstantBlocks  []Bindpoint
	InputAttributes []int32
}

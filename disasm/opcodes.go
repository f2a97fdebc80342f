package disasm

var opcodeNames = map[uint16]string{
	0: "Nop", 1: "Undef", 2: "SourceContinued", 3: "Source",
	4: "SourceExtension", 5: "Name", 6: "MemberName", 7: "String",
	8: "Line", 10: "Extension", 11: "ExtInstImport", 12: "ExtInst",
	14: "MemoryModel", 15: "EntryPoint", 16: "ExecutionMode",
	17: "Capability", 19: "TypeVoid", 20: "TypeBool",
	21: "TypeInt", 22: "TypeFloat", 23: "TypeVector",
	24: "TypeMatrix", 25: "TypeImage", 26: "TypeSampler",
	27: "TypeSampledImage", 28: "TypeArray", 29: "TypeRuntimeArray",
	30: "TypeStruct", 31: "TypeOpaque", 32: "TypePointer",
	33: "TypeFunction", 41: "ConstantTrue", 42: "ConstantFalse",
	43: "Constant", 44: "ConstantComposite", 45: "ConstantSampler",
	46: "ConstantNull", 48: "SpecConstantTrue", 49: "SpecConstantFalse",
	50: "SpecConstant", 51: "SpecConstantComposite", 52: "SpecConstantOp",
	54: "Function", 55: "FunctionParameter", 56: "FunctionEnd",
	57: "FunctionCall", 59: "Variable", 60: "ImageTexelPointer",
	61: "Load", 62: "Store", 63: "CopyMemory", 64: "CopyMemorySized",
	65: "AccessChain", 66: "InBoundsAccessChain", 67: "PtrAccessChain",
	68: "ArrayLength", 71: "Decorate", 72: "MemberDecorate",
	73: "DecorationGroup", 74: "GroupDecorate", 75: "GroupMemberDecorate",
	77: "VectorExtractDynamic", 78: "VectorInsertDynamic",
	79: "VectorShuffle", 80: "CompositeConstruct", 81: "CompositeExtract",
	82: "CompositeInsert", 83: "CopyObject", 84: "Transpose",
	86: "SampledImage", 87: "ImageSampleImplicitLod",
	88: "ImageSampleExplicitLod", 89: "ImageSampleDrefImplicitLod",
	90: "ImageSampleDrefExplicitLod", 95: "ImageFetch",
	96: "ImageGather", 97: "ImageDrefGather", 98: "ImageRead",
	99: "ImageWrite", 100: "Image", 103: "ImageQuerySizeLod", 104: "ImageQuerySize",
	109: "ConvertFToU", 110: "ConvertFToS", 111: "ConvertSToF",
	112: "ConvertUToF", 113: "UConvert", 114: "SConvert",
	115: "FConvert", 124: "Bitcast",
	126: "SNegate", 127: "FNegate", 128: "IAdd", 129: "FAdd",
	130: "ISub", 131: "FSub", 132: "IMul", 133: "FMul",
	134: "UDiv", 135: "SDiv", 136: "FDiv", 137: "UMod",
	138: "SRem", 139: "SMod", 140: "FRem", 141: "FMod",
	142: "VectorTimesScalar", 143: "MatrixTimesScalar",
	144: "VectorTimesMatrix", 145: "MatrixTimesVector",
	146: "MatrixTimesMatrix", 147: "OuterProduct", 148: "Dot",
	164: "Any", 165: "All", 166: "IsNan", 167: "IsInf",
	174: "LogicalEqual", 175: "LogicalNotEqual",
	176: "LogicalOr", 177: "LogicalAnd", 178: "LogicalNot",
	179: "Select", 180: "IEqual", 181: "INotEqual",
	182: "UGreaterThan", 183: "SGreaterThan", 184: "UGreaterThanEqual",
	185: "SGreaterThanEqual", 186: "ULessThan", 187: "SLessThan",
	188: "ULessThanEqual", 189: "SLessThanEqual",
	190: "FOrdEqual", 191: "FUnordEqual", 192: "FOrdNotEqual",
	193: "FUnordNotEqual", 194: "ShiftRightLogical", 195: "ShiftRightArithmetic",
	196: "ShiftLeftLogical", 197: "BitwiseOr", 198: "BitwiseXor",
	199: "BitwiseAnd", 200: "Not",
	224: "ControlBarrier", 225: "MemoryBarrier", 227: "AtomicLoad",
	228: "AtomicStore", 229: "AtomicExchange", 232: "AtomicIIncrement",
	233: "AtomicIDecrement", 234: "AtomicIAdd",
	245: "Phi", 246: "LoopMerge", 247: "SelectionMerge",
	248: "Label", 249: "Branch", 250: "BranchConditional",
	251: "Switch", 252: "Kill", 253: "Return", 254: "ReturnValue",
	255: "Unreachable",
}

var sourceLanguages = map[uint32]string{
	0: "Unknown", 1: "ESSL", 2: "GLSL", 3: "OpenCL_C", 4: "OpenCL_CPP", 5: "HLSL", 6: "CPP_for_OpenCL",
}

var addressingModels = map[uint32]string{
	0: "Logical", 1: "Physical32", 2: "Physical64", 5348: "PhysicalStorageBuffer64",
}

var memoryModels = map[uint32]string{
	0: "Simple", 1: "GLSL450", 2: "OpenCL", 3: "Vulkan",
}

var executionModels = map[uint32]string{
	0: "Vertex", 1: "TessellationControl", 2: "TessellationEvaluation",
	3: "Geometry", 4: "Fragment", 5: "GLCompute", 6: "Kernel",
}

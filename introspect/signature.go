package introspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/richinsley/glreflect/glenum"
	"github.com/richinsley/glreflect/graphics"
	"github.com/richinsley/glreflect/logging"
	"github.com/richinsley/glreflect/reflection"
)

type builtin struct {
	prefix string
	sv     reflection.SystemValue
}

var perVertexBuiltins = []builtin{
	{"gl_Position", reflection.SystemPosition},
	{"gl_PointSize", reflection.SystemPointSize},
	{"gl_ClipDistance", reflection.SystemClipDistance},
}

// builtins lists, per stage, the input (0) and output (1) builtins by name
// prefix. Longer prefixes come first where one extends another.
var builtins = [reflection.StageCount][2][]builtin{
	reflection.StageVertex: {
		{
			{"gl_VertexID", reflection.SystemVertexIndex},
			{"gl_InstanceID", reflection.SystemInstanceIndex},
		},
		perVertexBuiltins,
	},
	reflection.StageTessControl: {
		append([]builtin{
			{"gl_PatchVerticesIn", reflection.SystemPatchNumVertices},
			{"gl_PrimitiveID", reflection.SystemPrimitiveIndex},
			{"gl_InvocationID", reflection.SystemInvocationIndex},
		}, perVertexBuiltins...),
		append([]builtin{
			{"gl_TessLevelOuter", reflection.SystemOuterTessFactor},
			{"gl_TessLevelInner", reflection.SystemInsideTessFactor},
		}, perVertexBuiltins...),
	},
	reflection.StageTessEval: {
		append([]builtin{
			{"gl_TessCoord", reflection.SystemDomainLocation},
			{"gl_PatchVerticesIn", reflection.SystemPatchNumVertices},
			{"gl_PrimitiveID", reflection.SystemPrimitiveIndex},
			{"gl_TessLevelOuter", reflection.SystemOuterTessFactor},
			{"gl_TessLevelInner", reflection.SystemInsideTessFactor},
		}, perVertexBuiltins...),
		perVertexBuiltins,
	},
	reflection.StageGeometry: {
		append([]builtin{
			{"gl_PrimitiveIDIn", reflection.SystemPrimitiveIndex},
			{"gl_InvocationID", reflection.SystemInvocationIndex},
			{"gl_Layer", reflection.SystemRTIndex},
			{"gl_ViewportIndex", reflection.SystemViewportIndex},
		}, perVertexBuiltins...),
		append([]builtin{
			{"gl_PrimitiveID", reflection.SystemPrimitiveIndex},
			{"gl_Layer", reflection.SystemRTIndex},
			{"gl_ViewportIndex", reflection.SystemViewportIndex},
		}, perVertexBuiltins...),
	},
	reflection.StageFragment: {
		{
			{"gl_FragCoord", reflection.SystemPosition},
			{"gl_FrontFacing", reflection.SystemIsFrontFace},
			{"gl_SampleID", reflection.SystemMSAASampleIndex},
			{"gl_SamplePosition", reflection.SystemMSAASamplePosition},
			{"gl_SampleMaskIn", reflection.SystemMSAACoverage},
			{"gl_PrimitiveID", reflection.SystemPrimitiveIndex},
			{"gl_Layer", reflection.SystemRTIndex},
			{"gl_ViewportIndex", reflection.SystemViewportIndex},
			{"gl_ClipDistance", reflection.SystemClipDistance},
		},
		{
			{"gl_FragDepth", reflection.SystemDepthOutput},
			{"gl_SampleMask", reflection.SystemMSAACoverage},
		},
	},
	reflection.StageCompute: {
		{
			{"gl_NumWorkGroups", reflection.SystemDispatchSize},
			{"gl_WorkGroupID", reflection.SystemGroupIndex},
			{"gl_LocalInvocationIndex", reflection.SystemGroupFlatIndex},
			{"gl_LocalInvocationID", reflection.SystemGroupThreadIndex},
			{"gl_GlobalInvocationID", reflection.SystemDispatchThreadIndex},
		},
		nil,
	},
}

func systemValue(stage reflection.ShaderStage, output bool, name string) reflection.SystemValue {
	dir := 0
	if output {
		dir = 1
	}
	for _, b := range builtins[stage][dir] {
		if strings.HasPrefix(name, b.prefix) {
			return b.sv
		}
	}
	return reflection.SystemNone
}

// hasLocationComponent reports whether LOCATION_COMPONENT can be queried.
func hasLocationComponent(drv graphics.Driver) bool {
	major, minor := drv.Version()
	if major > 4 || (major == 4 && minor >= 4) {
		return true
	}
	return drv.HasExtension("GL_ARB_enhanced_layouts")
}

func buildSignature(drv graphics.Driver, stage reflection.ShaderStage, program, iface uint32, pointSizeUsed, clipDistanceUsed bool) []reflection.SignatureParameter {
	count := drv.GetProgramInterfaceiv(program, iface, glenum.ActiveResources)
	if count <= 0 {
		return nil
	}
	output := iface == glenum.ProgramOutput

	props := []uint32{glenum.Type, glenum.Location}
	if hasLocationComponent(drv) {
		props = append(props, glenum.LocationComponent)
	}

	sigs := make([]reflection.SignatureParameter, 0, count)
	for i := int32(0); i < count; i++ {
		v := drv.GetProgramResourceiv(program, iface, uint32(i), props)
		name := drv.GetProgramResourceName(program, iface, uint32(i))
		location := v[1]
		var component int32
		if len(v) > 2 && v[2] > 0 {
			component = v[2]
		}

		// added only to make the program separable unless actually written
		if strings.HasPrefix(name, "gl_PointSize") && !pointSizeUsed {
			continue
		}
		if strings.HasPrefix(name, "gl_ClipDistance") && !clipDistanceUsed {
			continue
		}

		sig := reflection.SignatureParameter{VarName: name}
		rows := uint32(1)
		if nt, ok := glenum.LookupNumeric(uint32(v[0])); ok {
			switch nt.Kind {
			case reflection.VarInt:
				sig.CompType = reflection.CompSInt
			case reflection.VarUInt:
				sig.CompType = reflection.CompUInt
			default:
				sig.CompType = reflection.CompFloat
			}
			sig.CompCount = nt.Cols
			rows = nt.Rows
		} else {
			logging.LogWarn("unhandled signature element type %s for %q", glenum.Name(uint32(v[0])), name)
			sig.CompType = reflection.CompFloat
			sig.CompCount = 4
		}
		sig.RegChannelMask = uint8((1<<sig.CompCount)-1) << uint(component)
		sig.ChannelUsedMask = sig.RegChannelMask

		sig.SystemValue = systemValue(stage, output, name)
		if stage == reflection.StageFragment && output && sig.SystemValue == reflection.SystemNone {
			sig.SystemValue = reflection.SystemColourOutput
		}

		switch {
		case location >= 0:
			sig.RegIndex = uint32(location)
		case sig.SystemValue == reflection.SystemNone:
			sig.RegIndex = uint32(i)
		default:
			sig.RegIndex = 0
		}

		if rows <= 1 {
			sigs = append(sigs, sig)
			continue
		}
		for r := uint32(0); r < rows; r++ {
			row := sig
			row.VarName = fmt.Sprintf("%s:row%d", name, r)
			row.RegIndex += r
			sigs = append(sigs, row)
		}
	}

	sort.SliceStable(sigs, func(a, b int) bool {
		ra, rb := sigs[a].SystemValue.SortRank(), sigs[b].SystemValue.SortRank()
		if ra == rb {
			return sigs[a].RegIndex < sigs[b].RegIndex
		}
		return ra < rb
	})
	return sigs
}

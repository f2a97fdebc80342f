package glenum

import (
	"testing"

	"github.com/richinsley/glreflect/reflection"
)

func TestLookupNumeric(t *testing.T) {
	tests := []struct {
		code uint32
		want NumericType
	}{
		{Float, NumericType{reflection.VarFloat, 1, 1, "float"}},
		{IntVec3, NumericType{reflection.VarInt, 1, 3, "ivec3"}},
		{BoolVec2, NumericType{reflection.VarUInt, 1, 2, "bvec2"}},
		{FloatMat2x4, NumericType{reflection.VarFloat, 4, 2, "mat2x4"}},
		{FloatMat3x4, NumericType{reflection.VarFloat, 4, 3, "mat3x4"}},
		{DoubleMat4x3, NumericType{reflection.VarDouble, 3, 4, "dmat4x3"}},
	}
	for _, tt := range tests {
		t.Run(tt.want.Name, func(t *testing.T) {
			got, ok := LookupNumeric(tt.code)
			if !ok {
				t.Fatalf("LookupNumeric(0x%X) not found", tt.code)
			}
			if got != tt.want {
				t.Errorf("LookupNumeric(0x%X) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestOpaqueAndNumericDisjoint(t *testing.T) {
	for code := range opaqueTypes {
		if _, ok := numericTypes[code]; ok {
			t.Errorf("code 0x%X classified as both numeric and opaque", code)
		}
	}
	if _, ok := LookupNumeric(Sampler2D); ok {
		t.Errorf("sampler2D should not be numeric")
	}
}

func TestLookupOpaque(t *testing.T) {
	tests := []struct {
		code    uint32
		kind    reflection.ResourceKind
		resType reflection.ResourceType
		name    string
	}{
		{Sampler2DShadow, reflection.KindSampler, reflection.ResTexture2D, "sampler2DShadow"},
		{UIntSamplerBuffer, reflection.KindSampler, reflection.ResBuffer, "usamplerBuffer"},
		{IntImage2DMSArray, reflection.KindImage, reflection.ResTexture2DMSArray, "iimage2DMSArray"},
		{UnsignedIntAtomicCounter, reflection.KindAtomicCounter, reflection.ResBuffer, "atomic_uint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupOpaque(tt.code)
			if !ok {
				t.Fatalf("LookupOpaque(0x%X) not found", tt.code)
			}
			if got.Kind != tt.kind || got.ResType != tt.resType || got.Name != tt.name {
				t.Errorf("LookupOpaque(0x%X) = %+v", tt.code, got)
			}
		})
	}
}

func TestName(t *testing.T) {
	if got := Name(FloatVec4); got != "vec4" {
		t.Errorf("Name(FloatVec4) = %q", got)
	}
	if got := Name(ProgramOutput); got != "GL_PROGRAM_OUTPUT" {
		t.Errorf("Name(ProgramOutput) = %q", got)
	}
	if got := Name(0x1234); got != "0x1234" {
		t.Errorf("Name(0x1234) = %q", got)
	}
}

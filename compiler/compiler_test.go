package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/naga/spirv"

	"github.com/richinsley/glreflect/disasm"
	"github.com/richinsley/glreflect/reflection"
)

const computeWGSL = `
@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
}
`

const fragmentWGSL = `
@fragment
fn main(@location(0) color: vec4<f32>) -> @location(0) vec4<f32> {
    return color;
}
`

func TestWGSLCompile(t *testing.T) {
	tests := []struct {
		name  string
		stage reflection.ShaderStage
		src   []string
		model string
	}{
		{"compute", reflection.StageCompute, []string{computeWGSL}, "GLCompute"},
		{"fragment", reflection.StageFragment, []string{fragmentWGSL}, "Fragment"},
		{"split sources", reflection.StageFragment, []string{"@fragment", strings.TrimPrefix(strings.TrimSpace(fragmentWGSL), "@fragment")}, "Fragment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := NewWGSL(WithoutValidation()).Compile(tt.stage, tt.src)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if len(words) < 5 {
				t.Fatalf("module too short: %d words", len(words))
			}
			if words[0] != spirv.MagicNumber {
				t.Errorf("magic = 0x%08x, want 0x%08x", words[0], uint32(spirv.MagicNumber))
			}
			out := disasm.Disassemble(tt.stage, words)
			if !strings.Contains(out, "("+tt.model+")") {
				t.Errorf("entry point model %s missing:\n%s", tt.model, out)
			}
		})
	}
}

func TestWGSLCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  []string
	}{
		{"empty", nil},
		{"blank", []string{"  \n"}},
		{"syntax", []string{"@fragment fn main( -> {"}},
		{"wrong arity", []string{`
@vertex
fn main() -> vec4<f32> {
    return vec4<f32>(0.0, 0.0);
}
`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWGSL().Compile(reflection.StageVertex, tt.src)
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if cerr.Stage != reflection.StageVertex || cerr.Log == "" {
				t.Errorf("unexpected error %+v", cerr)
			}
			if !strings.HasPrefix(err.Error(), "failed to compile Vertex shader: ") {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}

type recorder struct{ got []string }

func (r *recorder) Compile(_ reflection.ShaderStage, sources []string) ([]uint32, error) {
	r.got = sources
	return nil, nil
}

func TestWithSources(t *testing.T) {
	r := &recorder{}
	c := WithSources(r, []string{"port"})
	if _, err := c.Compile(reflection.StageFragment, []string{"original"}); err != nil {
		t.Fatal(err)
	}
	if len(r.got) != 1 || r.got[0] != "port" {
		t.Errorf("compiled %q, want [port]", r.got)
	}
}

func TestWords(t *testing.T) {
	got := Words([]byte{0x03, 0x02, 0x23, 0x07, 0x01, 0x00, 0x00, 0x00, 0xff})
	want := []uint32{0x07230203, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = 0x%08x, want 0x%08x", i, got[i], want[i])
		}
	}
}

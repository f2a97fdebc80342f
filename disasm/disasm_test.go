package disasm

import (
	"strings"
	"testing"

	"github.com/gogpu/naga/spirv"

	"github.com/richinsley/glreflect/reflection"
)

func inst(op uint16, operands ...uint32) []uint32 {
	return append([]uint32{uint32(len(operands)+1)<<16 | uint32(op)}, operands...)
}

func str(s string) []uint32 {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
	}
	return words
}

func module(generator uint32, body ...[]uint32) []uint32 {
	words := []uint32{0x07230203, 0x00010300, generator, 10, 0}
	for _, b := range body {
		words = append(words, b...)
	}
	return words
}

func fragmentModule() []uint32 {
	return module(0x00080001,
		inst(17, 1),
		inst(11, append([]uint32{1}, str("GLSL.std.450")...)...),
		inst(14, 0, 1),
		inst(15, append([]uint32{4, 4}, str("main")...)...),
		inst(5, append([]uint32{4}, str("main")...)...),
		inst(19, 2),
		inst(54, 2, 4, 0, 3),
		inst(248, 5),
		inst(253),
		inst(56),
	)
}

func TestDisassemble(t *testing.T) {
	out := Disassemble(reflection.StageFragment, fragmentModule())

	want := []string{
		"Fragment Shader SPIR-V:\n\n",
		"Version 1.3, Generator 00080001 (glslang)\n",
		"IDs up to <10>\n",
		"      Capability\n",
		"      ExtInstImport GLSL.std.450\n",
		"      MemoryModel Logical Addressing, GLSL450 Memory model\n",
		"      EntryPoint main (Fragment)\n",
		"      TypeVoid\n",
		"   0: Function main\n",
		"   1: Label\n",
		"   2: Return\n",
		"   3: FunctionEnd\n",
	}
	last := -1
	for _, w := range want {
		idx := strings.Index(out, w)
		if idx < 0 {
			t.Fatalf("missing %q in:\n%s", w, out)
		}
		if idx < last {
			t.Errorf("%q out of order in:\n%s", w, out)
		}
		last = idx
	}
	if strings.Contains(out, "Name main") {
		t.Errorf("OpName should not be listed:\n%s", out)
	}
	if strings.Contains(out, "Reserved") {
		t.Errorf("unexpected reserved word warning:\n%s", out)
	}
}

func TestDisassembleHeader(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		want  string
	}{
		{
			name:  "truncated module",
			words: []uint32{0x07230203, 0x00010000},
			want:  "Truncated module: 2 words\n",
		},
		{
			name:  "bad magic",
			words: []uint32{0xdeadbeef, 0, 0, 0, 0},
			want:  "Unrecognised magic number deadbeef\n",
		},
		{
			name:  "naga generator",
			words: module(0),
			want:  "Generator 00000000 (naga)",
		},
		{
			name:  "unknown generator",
			words: module(0x00220001),
			want:  "(Unrecognised)",
		},
		{
			name:  "reserved word",
			words: []uint32{0x07230203, 0x00010000, 0, 1, 7},
			want:  "Reserved word 4 is non-zero\n",
		},
		{
			name:  "truncated instruction",
			words: module(0, []uint32{5<<16 | 17, 1}),
			want:  "Truncated instruction at word 5\n",
		},
		{
			name:  "zero word count",
			words: module(0, []uint32{17}),
			want:  "Truncated instruction at word 5\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Disassemble(reflection.StageCompute, tt.words)
			if !strings.HasPrefix(out, "Compute Shader SPIR-V:\n\n") {
				t.Errorf("missing stage header:\n%s", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("want %q in:\n%s", tt.want, out)
			}
		})
	}
}

func TestForwardReferencedNames(t *testing.T) {
	// the entry point precedes the OpName that names it
	words := module(0,
		inst(15, append([]uint32{5, 3}, str("cs_main")...)...),
		inst(5, append([]uint32{3}, str("cs_main")...)...),
	)
	out := Disassemble(reflection.StageCompute, words)
	if !strings.Contains(out, "EntryPoint cs_main (GLCompute)") {
		t.Errorf("entry point not named:\n%s", out)
	}
}

func TestUnnamedIDs(t *testing.T) {
	words := module(0,
		inst(54, 2, 7, 0, 3),
		inst(56),
	)
	out := Disassemble(reflection.StageVertex, words)
	if !strings.Contains(out, "   0: Function <7>\n") {
		t.Errorf("unnamed function id not printed:\n%s", out)
	}
}

func TestLiteralString(t *testing.T) {
	tests := []string{"", "a", "main", "GLSL.std.450", "abcdefgh"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			if got := literalString(str(s)); got != s {
				t.Errorf("literalString = %q, want %q", got, s)
			}
		})
	}
}

func TestDebugNamesNotListed(t *testing.T) {
	words := module(0,
		inst(uint16(spirv.OpName), append([]uint32{7}, str("vs_main")...)...),
		inst(uint16(spirv.OpMemberName), append([]uint32{8, 0}, str("position")...)...),
		inst(uint16(spirv.OpFunction), 2, 7, 0, 3),
		inst(uint16(spirv.OpReturn)),
		inst(uint16(spirv.OpFunctionEnd)),
	)
	out := Disassemble(reflection.StageVertex, words)
	for _, unwanted := range []string{"Name", "MemberName", "position"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("listing contains %q:\n%s", unwanted, out)
		}
	}
	for _, want := range []string{"   0: Function vs_main\n", "   1: Return\n", "   2: FunctionEnd\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

// Package disasm turns a SPIR-V word stream into a readable listing.
//
// The listing is informational only: names from OpName, a handful of
// module-level instructions with decoded operands, and every instruction
// inside a function numbered in order.
package disasm

import (
	"fmt"
	"strings"

	"github.com/gogpu/naga/spirv"

	"github.com/richinsley/glreflect/reflection"
)

const headerWords = 5

var generators = map[uint32]string{
	0x051a00bb:               "glslang",
	uint32(spirv.GeneratorID): "naga",
}

// generator tool ids registered with Khronos, from the high half-word
const toolGlslang = 8

func generatorName(gen uint32) string {
	if name, ok := generators[gen]; ok {
		return name
	}
	if gen>>16 == toolGlslang {
		return "glslang"
	}
	return "Unrecognised"
}

func lookup(m map[uint32]string, v uint32) string {
	if s, ok := m[v]; ok {
		return s
	}
	return fmt.Sprintf("%d", v)
}

func opName(op uint16) string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Op%d", op)
}

func instruction(op uint16, body string) string {
	if body == "" {
		return opName(op)
	}
	return opName(op) + " " + body
}

// literalString decodes a nul-terminated UTF-8 literal packed
// little-endian into words.
func literalString(words []uint32) string {
	var sb strings.Builder
	for _, w := range words {
		for i := 0; i < 4; i++ {
			b := byte(w >> (8 * i))
			if b == 0 {
				return sb.String()
			}
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// Disassemble lists words, a SPIR-V module compiled for stage.
func Disassemble(stage reflection.ShaderStage, words []uint32) string {
	var sb strings.Builder
	sb.WriteString(stage.String())
	sb.WriteString(" Shader SPIR-V:\n\n")

	if len(words) < headerWords {
		fmt.Fprintf(&sb, "Truncated module: %d words\n", len(words))
		return sb.String()
	}
	if words[0] != spirv.MagicNumber {
		fmt.Fprintf(&sb, "Unrecognised magic number %08x\n", words[0])
		return sb.String()
	}

	version := words[1]
	fmt.Fprintf(&sb, "Version %d.%d, Generator %08x (%s)\n", (version>>16)&0xff, (version>>8)&0xff, words[2], generatorName(words[2]))
	fmt.Fprintf(&sb, "IDs up to <%d>\n", words[3])
	if words[4] != 0 {
		sb.WriteString("Reserved word 4 is non-zero\n")
	}
	sb.WriteString("\n")

	names := resultNames(words)

	opidx := 0
	infunc := false
	for it := headerWords; it < len(words); {
		wordCount := int(words[it] >> 16)
		op := uint16(words[it] & 0xffff)
		if wordCount == 0 || it+wordCount > len(words) {
			fmt.Fprintf(&sb, "Truncated instruction at word %d\n", it)
			break
		}
		operands := words[it+1 : it+wordCount]

		body := ""
		silent := false
		switch spirv.OpCode(op) {
		case spirv.OpSource:
			if len(operands) >= 2 {
				body = fmt.Sprintf("%s %d", lookup(sourceLanguages, operands[0]), operands[1])
			}
		case spirv.OpExtInstImport:
			if len(operands) >= 2 {
				body = literalString(operands[1:])
				names.set(operands[0], body)
			}
		case spirv.OpMemoryModel:
			if len(operands) >= 2 {
				body = fmt.Sprintf("%s Addressing, %s Memory model", lookup(addressingModels, operands[0]), lookup(memoryModels, operands[1]))
			}
		case spirv.OpEntryPoint:
			if len(operands) >= 2 {
				body = fmt.Sprintf("%s (%s)", names.get(operands[1]), lookup(executionModels, operands[0]))
			}
		case spirv.OpFunction:
			infunc = true
			if len(operands) >= 2 {
				body = names.get(operands[1])
			}
		case spirv.OpFunctionEnd:
			infunc = false
			// numbered as the last instruction of the function
			fmt.Fprintf(&sb, "%4d: %s\n", opidx, opName(op))
			opidx++
			it += wordCount
			continue
		case spirv.OpName, spirv.OpMemberName:
			silent = true
		}

		switch {
		case infunc:
			fmt.Fprintf(&sb, "%4d: %s\n", opidx, instruction(op, body))
			opidx++
		case !silent:
			fmt.Fprintf(&sb, "      %s\n", instruction(op, body))
		}
		it += wordCount
	}
	return sb.String()
}

type nameTable struct {
	names map[uint32]string
	bound uint32
}

func (n nameTable) get(id uint32) string {
	if s, ok := n.names[id]; ok && s != "" {
		return s
	}
	return fmt.Sprintf("<%d>", id)
}

func (n nameTable) set(id uint32, name string) {
	if id < n.bound {
		n.names[id] = name
	}
}

// resultNames collects OpName strings ahead of the listing so forward
// references print by name.
func resultNames(words []uint32) nameTable {
	n := nameTable{names: make(map[uint32]string), bound: words[3]}
	for it := headerWords; it < len(words); {
		wordCount := int(words[it] >> 16)
		if wordCount == 0 || it+wordCount > len(words) {
			break
		}
		if spirv.OpCode(words[it]&0xffff) == spirv.OpName && wordCount >= 3 {
			n.set(words[it+1], literalString(words[it+2:it+wordCount]))
		}
		it += wordCount
	}
	return n
}

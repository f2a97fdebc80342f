package shader

import (
	"strings"

	"github.com/richinsley/glreflect/reflection"
)

// ───────────────────────────── Builtin usage ─────────────────────────────

// CheckVertexOutputUses reports whether gl_PointSize and gl_ClipDistance are
// written anywhere in sources. An occurrence counts as a write when an '='
// follows it before the next ';' or the end of the text. This is lexical
// only, so comments, string text and disabled #if blocks all count.
func CheckVertexOutputUses(sources []string) (pointSizeUsed, clipDistanceUsed bool) {
	for _, s := range sources {
		if !pointSizeUsed {
			pointSizeUsed = assigned(s, "gl_PointSize")
		}
		if !clipDistanceUsed {
			clipDistanceUsed = assigned(s, "gl_ClipDistance")
		}
	}
	return pointSizeUsed, clipDistanceUsed
}

func assigned(s, ident string) bool {
	offs := 0
	for {
		i := strings.Index(s[offs:], ident)
		if i < 0 {
			return false
		}
		offs += i
		for ; offs < len(s); offs++ {
			if s[offs] == '=' {
				return true
			}
			if s[offs] == ';' {
				break
			}
		}
		if offs >= len(s) {
			return false
		}
	}
}

// ─────────────────────────── gl_PerVertex patching ──────────────────────────

const perVertexMembers = "{ vec4 gl_Position; float gl_PointSize; float gl_ClipDistance[]; }"

const (
	inBlockIdentifier  = "in gl_PerVertex"
	outBlockIdentifier = "out gl_PerVertex"
)

// PerVertexBlocks returns the gl_PerVertex redeclarations to insert for a
// stage. Vertex shaders have no input block; fragment and compute shaders
// have neither.
func PerVertexBlocks(stage reflection.ShaderStage) (in, out string) {
	switch stage {
	case reflection.StageVertex:
		return "", outBlockIdentifier + " " + perVertexMembers + ";\n"
	case reflection.StageTessControl:
		return inBlockIdentifier + " " + perVertexMembers + " gl_in[];\n",
			outBlockIdentifier + " " + perVertexMembers + " gl_out[];\n"
	case reflection.StageTessEval, reflection.StageGeometry:
		return inBlockIdentifier + " " + perVertexMembers + " gl_in[];\n",
			outBlockIdentifier + " " + perVertexMembers + ";\n"
	}
	return "", ""
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

// InsertionPoint finds the first offset in src where a global declaration
// can go: after the #version directive and its profile, and after any
// following whitespace, comments and #extension directives. It returns
// false when src has no #version directive.
func InsertionPoint(src string) (int, bool) {
	const version = "#version"
	it := strings.Index(src, version)
	if it < 0 {
		return 0, false
	}
	n := len(src)
	it += len(version)

	for it < n && isBlank(src[it]) {
		it++
	}
	for it < n && src[it] >= '0' && src[it] <= '9' {
		it++
	}
	for it < n && isBlank(src[it]) {
		it++
	}
	for _, profile := range []string{"core", "compatibility", "es"} {
		if strings.HasPrefix(src[it:], profile) {
			it += len(profile)
			break
		}
	}

	const extension = "#extension"
	for it < n {
		for it < n && isSpace(src[it]) {
			it++
		}
		rest := src[it:]
		switch {
		case strings.HasPrefix(rest, "//"):
			for it < n && src[it] != '\r' && src[it] != '\n' {
				it++
			}
		case strings.HasPrefix(rest, extension) && len(rest) > len(extension) && isBlank(rest[len(extension)]):
			for it < n && src[it] != '\r' && src[it] != '\n' {
				it++
			}
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return n, true
			}
			it += 2 + end + 2
		default:
			return it, true
		}
	}
	return it, true
}

// PatchPerVertex returns a copy of sources with the stage's gl_PerVertex
// blocks inserted into the first source that has a #version directive.
// A block is left out when any source already mentions it. The input slice
// is never modified.
func PatchPerVertex(stage reflection.ShaderStage, sources []string) []string {
	patched := append([]string(nil), sources...)
	in, out := PerVertexBlocks(stage)

	blocks := []struct {
		ident string
		text  string
	}{
		{inBlockIdentifier, in},
		{outBlockIdentifier, out},
	}
	for _, b := range blocks {
		if b.text == "" || mentions(sources, b.ident) {
			continue
		}
		for i, src := range patched {
			at, ok := InsertionPoint(src)
			if !ok {
				continue
			}
			patched[i] = src[:at] + b.text + src[at:]
			break
		}
	}
	return patched
}

func mentions(sources []string, ident string) bool {
	for _, s := range sources {
		if strings.Contains(s, ident) {
			return true
		}
	}
	return false
}

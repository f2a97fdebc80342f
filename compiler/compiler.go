// Package compiler turns shader sources into SPIR-V words for disassembly.
package compiler

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gogpu/naga"

	"github.com/richinsley/glreflect/reflection"
)

// Compiler produces a SPIR-V module for one stage.
type Compiler interface {
	Compile(stage reflection.ShaderStage, sources []string) ([]uint32, error)
}

// Error is a failed compile. Log holds the compiler's diagnostics.
type Error struct {
	Stage reflection.ShaderStage
	Log   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// Words reinterprets a little-endian SPIR-V byte stream as words. Trailing
// bytes that do not fill a word are dropped.
func Words(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return words
}

// WGSL compiles WGSL sources with naga.
type WGSL struct {
	opts naga.CompileOptions
}

// WGSLOption adjusts a WGSL compiler.
type WGSLOption func(*WGSL)

// WithoutValidation skips IR validation before code generation.
func WithoutValidation() WGSLOption {
	return func(w *WGSL) { w.opts.Validate = false }
}

// WithoutDebugNames omits OpName and friends from the module.
func WithoutDebugNames() WGSLOption {
	return func(w *WGSL) { w.opts.Debug = false }
}

// NewWGSL returns a validating compiler that keeps debug names, so listings
// show identifiers instead of bare ids.
func NewWGSL(opts ...WGSLOption) *WGSL {
	w := &WGSL{opts: naga.DefaultOptions()}
	w.opts.Debug = true
	for _, o := range opts {
		o(w)
	}
	return w
}

// Compile joins sources in order and compiles them as one WGSL module.
func (w *WGSL) Compile(stage reflection.ShaderStage, sources []string) ([]uint32, error) {
	src := strings.Join(sources, "\n")
	if strings.TrimSpace(src) == "" {
		return nil, &Error{Stage: stage, Log: "empty source"}
	}
	b, err := naga.CompileWithOptions(src, w.opts)
	if err != nil {
		return nil, &Error{Stage: stage, Log: err.Error()}
	}
	if len(b)%4 != 0 {
		return nil, &Error{Stage: stage, Log: fmt.Sprintf("module is %d bytes, not a whole number of words", len(b))}
	}
	return Words(b), nil
}

type fixedSources struct {
	c       Compiler
	sources []string
}

// WithSources wraps c so every Compile uses sources instead of the ones it
// is given, e.g. a WGSL port of a GLSL shader being reflected.
func WithSources(c Compiler, sources []string) Compiler {
	return &fixedSources{c: c, sources: sources}
}

func (f *fixedSources) Compile(stage reflection.ShaderStage, _ []string) ([]uint32, error) {
	return f.c.Compile(stage, f.sources)
}

// Package translator converts WebGL2 (GLSL ES 3.00) shaders to desktop GLSL
// so they can be reflected against a core profile context.
package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	gst "github.com/richinsley/goshadertranslator"

	"github.com/richinsley/glreflect/reflection"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide translator, creating it on first
// use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// Translation is a translated shader. Names maps the identifiers the
// translator emitted back to the ones in the WebGL source.
type Translation struct {
	Code  string
	Names map[string]string
}

func stageName(stage reflection.ShaderStage) (string, error) {
	switch stage {
	case reflection.StageVertex:
		return "vertex", nil
	case reflection.StageFragment:
		return "fragment", nil
	}
	return "", fmt.Errorf("WebGL2 has no %s stage", stage)
}

// Translate converts a WebGL2 source for stage to GLSL 4.10.
func Translate(stage reflection.ShaderStage, source string) (*Translation, error) {
	name, err := stageName(stage)
	if err != nil {
		return nil, err
	}
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("creating shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, name, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}

	tr := &Translation{Code: out.Code, Names: make(map[string]string, len(out.Variables))}
	for original, v := range out.Variables {
		if v.MappedName != "" && v.MappedName != original {
			tr.Names[v.MappedName] = original
		}
	}
	return tr, nil
}

// Restore renames everything in refl that the translator renamed. Array
// and member suffixes ("_uLights[2].colour") are kept.
func (t *Translation) Restore(refl *reflection.ShaderReflection) {
	if len(t.Names) == 0 {
		return
	}
	for i := range refl.Resources {
		refl.Resources[i].Name = t.restore(refl.Resources[i].Name)
		restoreConstants(t, refl.Resources[i].Variables)
	}
	for i := range refl.ConstantBlocks {
		refl.ConstantBlocks[i].Name = t.restore(refl.ConstantBlocks[i].Name)
		restoreConstants(t, refl.ConstantBlocks[i].Variables)
	}
	for i := range refl.InputSig {
		refl.InputSig[i].VarName = t.restore(refl.InputSig[i].VarName)
	}
	for i := range refl.OutputSig {
		refl.OutputSig[i].VarName = t.restore(refl.OutputSig[i].VarName)
	}
}

func restoreConstants(t *Translation, vars []reflection.ShaderConstant) {
	for i := range vars {
		vars[i].Name = t.restore(vars[i].Name)
		restoreConstants(t, vars[i].Members)
	}
}

func (t *Translation) restore(name string) string {
	end := strings.IndexAny(name, ".[:")
	if end < 0 {
		end = len(name)
	}
	if original, ok := t.Names[name[:end]]; ok {
		return original + name[end:]
	}
	return name
}

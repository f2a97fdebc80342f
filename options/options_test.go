package options

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/richinsley/glreflect/reflection"
)

func parse(t *testing.T, args ...string) (*ReflectOptions, error) {
	t.Helper()
	fs := flag.NewFlagSet("glreflect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return Parse(fs, args)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glreflect.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	o, err := parse(t, "a.frag")
	if err != nil {
		t.Fatal(err)
	}
	if *o.Context != ContextGLFW || *o.GLVersion != "4.3" || !*o.Bindings || *o.Watch {
		t.Errorf("unexpected defaults: context=%s gl=%s bindings=%v watch=%v", *o.Context, *o.GLVersion, *o.Bindings, *o.Watch)
	}
	if !reflect.DeepEqual(o.Files, []string{"a.frag"}) {
		t.Errorf("Files = %v", o.Files)
	}
}

func TestLoadFile(t *testing.T) {
	cfg := writeConfig(t, `
stage = "vert"
context = "headless"
gl = "4.6"
loglevel = "debug"
include_paths = ["/inc/common"]
files = ["from_config.vert"]
`)
	o, err := parse(t, "-config", cfg, "-context", "glfw", "-I", "/inc/local")
	if err != nil {
		t.Fatal(err)
	}
	if *o.Context != ContextGLFW {
		t.Errorf("explicit -context overridden by config: %s", *o.Context)
	}
	if *o.Stage != "vert" || *o.GLVersion != "4.6" || *o.LogLevel != "debug" {
		t.Errorf("config not applied: stage=%s gl=%s loglevel=%s", *o.Stage, *o.GLVersion, *o.LogLevel)
	}
	if got := []string(*o.IncludePaths); !reflect.DeepEqual(got, []string{"/inc/common", "/inc/local"}) {
		t.Errorf("IncludePaths = %v", got)
	}
	if !reflect.DeepEqual(o.Files, []string{"from_config.vert"}) {
		t.Errorf("Files = %v", o.Files)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", `colour = "red"`, "parsing config"},
		{"wrong type", `watch = "yes"`, "parsing config"},
		{"syntax", `stage = `, "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, "-config", writeConfig(t, tt.body), "x.frag")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v", err)
			}
		})
	}

	if _, err := parse(t, "-config", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestShaderStage(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    reflection.ShaderStage
		wantErr bool
	}{
		{"explicit", []string{"-stage", "geom", "x.glsl"}, reflection.StageGeometry, false},
		{"extension", []string{"water.tese"}, reflection.StageTessEval, false},
		{"shadertoy", []string{"-shader", "abc123"}, reflection.StageFragment, false},
		{"unknown extension", []string{"x.glsl"}, 0, true},
		{"bad stage", []string{"-stage", "pixel", "x.frag"}, 0, true},
		{"no files", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := parse(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			got, err := o.ShaderStage()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("stage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		gl           string
		major, minor int
		wantErr      bool
	}{
		{"4.3", 4, 3, false},
		{"3.3", 3, 3, false},
		{"3.2", 0, 0, true},
		{"four", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.gl, func(t *testing.T) {
			o, err := parse(t, "-gl", tt.gl, "x.frag")
			if err != nil {
				t.Fatal(err)
			}
			major, minor, err := o.Version()
			if (err != nil) != tt.wantErr || major != tt.major || minor != tt.minor {
				t.Errorf("Version = %d.%d, %v", major, minor, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"ok", []string{"x.frag"}, ""},
		{"nothing", nil, "either -shader"},
		{"both", []string{"-shader", "abc", "x.frag"}, "mutually exclusive"},
		{"context", []string{"-context", "wayland", "x.frag"}, "unknown context"},
		{"disasm", []string{"-disasm", "x.frag"}, "-wgsl"},
		{"watch shadertoy", []string{"-watch", "-shader", "abc"}, "-watch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := parse(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			err = o.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

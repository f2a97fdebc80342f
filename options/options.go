package options

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/richinsley/glreflect/reflection"
)

// Context kinds accepted by -context.
const (
	ContextGLFW     = "glfw"
	ContextHeadless = "headless"
)

// ReflectOptions holds the command line. Files come from the positional
// arguments.
type ReflectOptions struct {
	Config       *string
	Stage        *string
	ShaderID     *string
	APIKey       *string
	CacheShaders *bool
	WebGL        *bool
	IncludePaths *stringList
	Disassemble  *bool
	WGSL         *string // WGSL port of the shader, compiled for the disassembly
	Bindings     *bool
	Watch        *bool
	Context      *string
	GLVersion    *string
	LogLevel     *string
	Help         *bool
	Files        []string
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Register defines every flag on fs.
func Register(fs *flag.FlagSet) *ReflectOptions {
	o := &ReflectOptions{IncludePaths: &stringList{}}
	o.Config = fs.String("config", "", "TOML file with default option values")
	o.Stage = fs.String("stage", "", "shader stage: vert, tesc, tese, geom, frag or comp (default from file extension)")
	o.ShaderID = fs.String("shader", "", "Shadertoy shader ID or URL to reflect instead of files")
	o.APIKey = fs.String("apikey", "", "Shadertoy API key (from SHADERTOY_KEY env var if not set)")
	o.CacheShaders = fs.Bool("cache", true, "cache downloaded Shadertoy shaders")
	o.WebGL = fs.Bool("webgl", false, "sources are WebGL2 (GLSL ES 3.00) and are translated first")
	fs.Var(o.IncludePaths, "I", "include search path (repeatable)")
	o.Disassemble = fs.Bool("disasm", false, "attach an IR disassembly compiled from -wgsl")
	o.WGSL = fs.String("wgsl", "", "WGSL source compiled for the disassembly")
	o.Bindings = fs.Bool("bindings", true, "print the bindpoint mapping of the linked program")
	o.Watch = fs.Bool("watch", false, "re-reflect files when they change")
	o.Context = fs.String("context", ContextGLFW, "GL context: glfw or headless")
	o.GLVersion = fs.String("gl", "4.3", "requested GL core profile version")
	o.LogLevel = fs.String("loglevel", "info", "debug, info, warn, error or fatal")
	o.Help = fs.Bool("help", false, "Show help message")
	return o
}

// fileConfig mirrors ReflectOptions in a config file. Absent keys leave the
// flag defaults alone.
type fileConfig struct {
	Stage        *string  `toml:"stage"`
	ShaderID     *string  `toml:"shader"`
	APIKey       *string  `toml:"apikey"`
	CacheShaders *bool    `toml:"cache"`
	WebGL        *bool    `toml:"webgl"`
	IncludePaths []string `toml:"include_paths"`
	Disassemble  *bool    `toml:"disasm"`
	WGSL         *string  `toml:"wgsl"`
	Bindings     *bool    `toml:"bindings"`
	Watch        *bool    `toml:"watch"`
	Context      *string  `toml:"context"`
	GLVersion    *string  `toml:"gl"`
	LogLevel     *string  `toml:"loglevel"`
	Files        []string `toml:"files"`
}

// LoadFile applies the TOML file at path to every option not set explicitly
// on fs. fs must already be parsed.
func (o *ReflectOptions) LoadFile(fs *flag.FlagSet, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	var cfg fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	setString := func(name string, dst *string, v *string) {
		if v != nil && !set[name] {
			*dst = *v
		}
	}
	setBool := func(name string, dst *bool, v *bool) {
		if v != nil && !set[name] {
			*dst = *v
		}
	}
	setString("stage", o.Stage, cfg.Stage)
	setString("shader", o.ShaderID, cfg.ShaderID)
	setString("apikey", o.APIKey, cfg.APIKey)
	setBool("cache", o.CacheShaders, cfg.CacheShaders)
	setBool("webgl", o.WebGL, cfg.WebGL)
	setBool("disasm", o.Disassemble, cfg.Disassemble)
	setString("wgsl", o.WGSL, cfg.WGSL)
	setBool("bindings", o.Bindings, cfg.Bindings)
	setBool("watch", o.Watch, cfg.Watch)
	setString("context", o.Context, cfg.Context)
	setString("gl", o.GLVersion, cfg.GLVersion)
	setString("loglevel", o.LogLevel, cfg.LogLevel)

	// include paths accumulate; the file's come first
	if len(cfg.IncludePaths) > 0 {
		*o.IncludePaths = append(append(stringList{}, cfg.IncludePaths...), *o.IncludePaths...)
	}
	if len(o.Files) == 0 {
		o.Files = cfg.Files
	}
	return nil
}

// Parse parses args into a new ReflectOptions, applying -config if given.
func Parse(fs *flag.FlagSet, args []string) (*ReflectOptions, error) {
	o := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.Files = fs.Args()
	if *o.Config != "" {
		if err := o.LoadFile(fs, *o.Config); err != nil {
			return nil, err
		}
	}
	return o, nil
}

var extStages = map[string]reflection.ShaderStage{
	".vert": reflection.StageVertex,
	".tesc": reflection.StageTessControl,
	".tese": reflection.StageTessEval,
	".geom": reflection.StageGeometry,
	".frag": reflection.StageFragment,
	".comp": reflection.StageCompute,
}

// ShaderStage resolves -stage, falling back to the extension of the first
// file. Shadertoy shaders are always fragment shaders.
func (o *ReflectOptions) ShaderStage() (reflection.ShaderStage, error) {
	if *o.Stage != "" {
		return reflection.ParseStage(*o.Stage)
	}
	if *o.ShaderID != "" {
		return reflection.StageFragment, nil
	}
	if len(o.Files) == 0 {
		return 0, fmt.Errorf("no shader files given")
	}
	name := o.Files[0]
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		if stage, ok := extStages[name[i:]]; ok {
			return stage, nil
		}
	}
	return 0, fmt.Errorf("cannot tell the stage of %s; use -stage", name)
}

// Version parses -gl as "major.minor".
func (o *ReflectOptions) Version() (int, int, error) {
	var major, minor int
	if _, err := fmt.Sscanf(*o.GLVersion, "%d.%d", &major, &minor); err != nil {
		return 0, 0, fmt.Errorf("invalid GL version %q", *o.GLVersion)
	}
	if major < 3 || (major == 3 && minor < 3) {
		return 0, 0, fmt.Errorf("GL %d.%d is too old; reflection needs a 3.3+ core profile", major, minor)
	}
	return major, minor, nil
}

// Validate checks option combinations that flag parsing cannot.
func (o *ReflectOptions) Validate() error {
	if *o.ShaderID == "" && len(o.Files) == 0 {
		return fmt.Errorf("either -shader or at least one shader file is required")
	}
	if *o.ShaderID != "" && len(o.Files) > 0 {
		return fmt.Errorf("-shader and shader files are mutually exclusive")
	}
	if *o.Context != ContextGLFW && *o.Context != ContextHeadless {
		return fmt.Errorf("unknown context kind %q", *o.Context)
	}
	if *o.Disassemble && *o.WGSL == "" {
		return fmt.Errorf("-disasm needs a -wgsl source")
	}
	if *o.Watch && *o.ShaderID != "" {
		return fmt.Errorf("-watch only applies to shader files")
	}
	if _, _, err := o.Version(); err != nil {
		return err
	}
	_, err := o.ShaderStage()
	return err
}

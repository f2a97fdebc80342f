package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/richinsley/glreflect/compiler"
	"github.com/richinsley/glreflect/gldriver"
	"github.com/richinsley/glreflect/glfwcontext"
	"github.com/richinsley/glreflect/graphics"
	"github.com/richinsley/glreflect/headless"
	"github.com/richinsley/glreflect/introspect"
	"github.com/richinsley/glreflect/logging"
	"github.com/richinsley/glreflect/options"
	"github.com/richinsley/glreflect/reflection"
	"github.com/richinsley/glreflect/report"
	"github.com/richinsley/glreflect/shadertoy"
	"github.com/richinsley/glreflect/translator"
	"github.com/richinsley/glreflect/watch"
)

func init() {
	runtime.LockOSThread()
}

// job is one stage to reflect.
type job struct {
	title   string
	stage   reflection.ShaderStage
	sources []string
	webgl   bool
}

func newContext(opts *options.ReflectOptions) (graphics.Context, func(), error) {
	major, minor, err := opts.Version()
	if err != nil {
		return nil, nil, err
	}
	switch *opts.Context {
	case options.ContextHeadless:
		h, err := headless.NewHeadless(major, minor)
		if err != nil {
			return nil, nil, err
		}
		return h, h.Shutdown, nil
	default:
		if err := glfwcontext.InitGraphics(); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize GLFW: %w", err)
		}
		c, err := glfwcontext.New(major, minor)
		if err != nil {
			glfwcontext.TerminateGraphics()
			return nil, nil, err
		}
		return c, func() {
			c.Shutdown()
			glfwcontext.TerminateGraphics()
		}, nil
	}
}

func newReflector(drv *gldriver.Driver, opts *options.ReflectOptions) (*introspect.Reflector, error) {
	var ropts []introspect.Option
	if paths := []string(*opts.IncludePaths); len(paths) > 0 {
		ropts = append(ropts, introspect.WithIncludePaths(paths...))
	}
	if *opts.Disassemble {
		src, err := os.ReadFile(*opts.WGSL)
		if err != nil {
			return nil, fmt.Errorf("reading WGSL source: %w", err)
		}
		ropts = append(ropts, introspect.WithCompiler(compiler.WithSources(compiler.NewWGSL(), []string{string(src)})))
	}
	return introspect.NewReflector(drv, ropts...), nil
}

func fileJob(opts *options.ReflectOptions) (job, error) {
	stage, err := opts.ShaderStage()
	if err != nil {
		return job{}, err
	}
	j := job{title: strings.Join(opts.Files, " + "), stage: stage, webgl: *opts.WebGL}
	for _, f := range opts.Files {
		data, err := os.ReadFile(f)
		if err != nil {
			return job{}, err
		}
		j.sources = append(j.sources, string(data))
	}
	return j, nil
}

func shadertoyJobs(opts *options.ReflectOptions) ([]job, error) {
	var copts []shadertoy.Option
	if *opts.CacheShaders {
		dir, err := shadertoy.DefaultCacheDir("shaders")
		if err != nil {
			return nil, fmt.Errorf("could not get cache directory: %w", err)
		}
		copts = append(copts, shadertoy.WithCache(dir))
	}
	client := shadertoy.NewClient(*opts.APIKey, copts...)

	logging.LogInfo("Fetching shader with ID: %s", *opts.ShaderID)
	resp, err := client.Fetch(context.Background(), *opts.ShaderID)
	if err != nil {
		return nil, fmt.Errorf("error fetching shader from ID: %w", err)
	}
	args, err := shadertoy.ShaderArgsFromJSON(resp)
	if err != nil {
		return nil, fmt.Errorf("error processing shader JSON: %w", err)
	}
	logging.LogInfo("Successfully processed shader: %s", args.Title)
	if !args.Complete {
		logging.LogWarn("shader may be incomplete (unsupported passes or inputs were skipped)")
	}

	jobs := make([]job, 0, len(args.Passes))
	for _, p := range args.Passes {
		jobs = append(jobs, job{
			title:   args.Title + " / " + p.Name,
			stage:   reflection.StageFragment,
			sources: []string{p.Source},
			webgl:   true,
		})
	}
	return jobs, nil
}

func run(r *introspect.Reflector, j job, bindings bool) error {
	sources := j.sources
	var tr *translator.Translation
	if j.webgl {
		var err error
		tr, err = translator.Translate(j.stage, strings.Join(sources, "\n"))
		if err != nil {
			return err
		}
		sources = []string{tr.Code}
	}

	var (
		refl    *reflection.ShaderReflection
		mapping *reflection.BindpointMapping
		err     error
	)
	if bindings {
		refl, mapping, err = r.ReflectBindings(j.stage, sources)
	} else {
		refl, err = r.Reflect(j.stage, sources)
	}
	if err != nil {
		return err
	}
	if tr != nil {
		tr.Restore(refl)
	}
	return report.Write(os.Stdout, j.title, refl, mapping)
}

func main() {
	opts, err := options.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *opts.Help {
		fmt.Println("glreflect: reflect GLSL shaders through a live GL driver")
		fmt.Println("usage: glreflect [flags] file...")
		flag.PrintDefaults()
		return
	}
	if err := logging.SetLevel(*opts.LogLevel); err != nil {
		logging.LogFatal("invalid log level: %v", err)
	}
	if err := opts.Validate(); err != nil {
		logging.LogFatal("%v", err)
	}

	var jobs []job
	if *opts.ShaderID != "" {
		if jobs, err = shadertoyJobs(opts); err != nil {
			logging.LogFatal("%v", err)
		}
	} else {
		j, err := fileJob(opts)
		if err != nil {
			logging.LogFatal("%v", err)
		}
		jobs = append(jobs, j)
	}

	glctx, shutdown, err := newContext(opts)
	if err != nil {
		logging.LogFatal("failed to create GL context: %v", err)
	}
	defer shutdown()
	glctx.MakeCurrent()

	drv, err := gldriver.New()
	if err != nil {
		logging.LogFatal("%v", err)
	}
	ctxMajor, ctxMinor := glctx.Version()
	drvMajor, drvMinor := drv.Version()
	logging.LogDebug("context %d.%d, driver reports %d.%d", ctxMajor, ctxMinor, drvMajor, drvMinor)

	r, err := newReflector(drv, opts)
	if err != nil {
		logging.LogFatal("%v", err)
	}

	failed := false
	for _, j := range jobs {
		if err := run(r, j, *opts.Bindings); err != nil {
			logging.LogError("%s: %v", j.title, err)
			failed = true
		}
	}

	if !*opts.Watch {
		if failed {
			shutdown()
			os.Exit(1)
		}
		return
	}

	w, err := watch.New(watch.DefaultSettle, opts.Files...)
	if err != nil {
		logging.LogFatal("failed to watch shader files: %v", err)
	}
	defer w.Close()
	logging.LogInfo("watching %s for changes", strings.Join(opts.Files, ", "))
	for {
		select {
		case name, ok := <-w.Events():
			if !ok {
				return
			}
			logging.LogInfo("%s changed", name)
			j, err := fileJob(opts)
			if err != nil {
				logging.LogError("%v", err)
				continue
			}
			if err := run(r, j, *opts.Bindings); err != nil {
				logging.LogError("%s: %v", j.title, err)
			}
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			logging.LogWarn("watch error: %v", err)
		}
	}
}

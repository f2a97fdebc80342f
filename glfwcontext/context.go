package glfwcontext

import (
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/glreflect/graphics"
	"github.com/richinsley/glreflect/logging"
)

var _ graphics.Context = (*Context)(nil)

// Context is a hidden GLFW window whose only purpose is to own a core
// profile GL context for reflection queries.
type Context struct {
	window       *glfw.Window
	major, minor int
}

// New creates a hidden window with a core profile context of at least the
// requested version. Call InitGraphics first, from the main thread.
func New(major, minor int) (*Context, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	win, err := glfw.CreateWindow(1, 1, "glreflect", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating GL %d.%d core context: %w", major, minor, err)
	}

	c := &Context{window: win}
	c.major = win.GetAttrib(glfw.ContextVersionMajor)
	c.minor = win.GetAttrib(glfw.ContextVersionMinor)
	return c, nil
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// DetachCurrent makes no context current on the calling thread.
func (c *Context) DetachCurrent() {
	glfw.DetachCurrentContext()
}

// Shutdown destroys the window and its context.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) Version() (int, int) { return c.major, c.minor }

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	logging.LogDebug("GLFW initialized")
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logging.LogDebug("GLFW terminated")
}

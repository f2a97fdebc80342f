package graphics

// Context defines the interface for an OpenGL context that reflection
// queries can run against. All Driver calls must happen on the thread that
// made the context current.
type Context interface {
	MakeCurrent()
	Shutdown()
	// Version returns the GL version the context was created with.
	Version() (major, minor int)
}

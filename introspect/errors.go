package introspect

import (
	"errors"
	"fmt"

	"github.com/richinsley/glreflect/reflection"
)

// Malformed introspection records. Reflection logs these and drops the
// record; the rest of the program is still reflected.
var (
	ErrMisalignedOffset = errors.New("variable offset is not a multiple of 4")
	ErrOrphanVariable   = errors.New("variable has no parent block")
	ErrNakedArrayMember = errors.New("array member index not followed by a struct member")
	ErrMalformedName    = errors.New("malformed array index in variable name")
)

// LinkError is returned when no separable program could be linked for a
// stage, even after patching gl_PerVertex in.
type LinkError struct {
	Stage reflection.ShaderStage
	Log   string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link separable %s program: %s", e.Stage, e.Log)
}

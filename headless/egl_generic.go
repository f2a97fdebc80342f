//go:build !linux

package headless

import (
	"fmt"

	"github.com/richinsley/glreflect/graphics"
)

func NewHeadless(major, minor int) (graphics.Context, error) {
	return nil, fmt.Errorf("egl headless contexts are not supported on this platform")
}

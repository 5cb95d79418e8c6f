package game

import (
	"errors"
	"fmt"
)

// Startup failure sites. Each maps to its own process exit code.
var (
	ErrImageInit = errors.New("image library error")
	ErrWindow    = errors.New("window creation error")
	ErrFrameLoad = errors.New("animation frame load failure")
	ErrRenderer  = errors.New("renderer creation failure")
	ErrNoFrames  = errors.New("zero animation frames defined for screen saver logo")
	ErrConfig    = errors.New("configuration error")
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitImageInit = 1
	ExitWindow    = 2
	ExitFrameLoad = 3
	ExitRenderer  = 4
	ExitNoFrames  = 5
	ExitConfig    = 6
	ExitUnknown   = 7
)

var exitCodes = []struct {
	err  error
	code int
}{
	{ErrImageInit, ExitImageInit},
	{ErrWindow, ExitWindow},
	{ErrFrameLoad, ExitFrameLoad},
	{ErrRenderer, ExitRenderer},
	{ErrNoFrames, ExitNoFrames},
	{ErrConfig, ExitConfig},
}

// ExitCode returns the process exit status for an error returned by Run.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, ec := range exitCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return ExitUnknown
}

// classifyRunError attributes a failure from the Ebitengine loop. Window
// and graphics context are created inside the loop, so the only signal is
// how far the game got: no Update means the window never came up.
func (g *Game) classifyRunError(err error) error {
	if !g.started {
		return fmt.Errorf("%w: %w", ErrWindow, err)
	}
	return fmt.Errorf("%w: %w", ErrRenderer, err)
}

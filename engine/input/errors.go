package input

import "errors"

var (
	ErrAlreadySetup = errors.New("input manager already set up")
	ErrNotSetup     = errors.New("input manager not set up")
)

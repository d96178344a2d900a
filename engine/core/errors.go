package core

import (
	"errors"
)

var (
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrWatcherClosed      = errors.New("config watcher already closed")
	ErrInvalidRunLoopID   = errors.New("run loop callback id not registered")
	ErrNilCallback        = errors.New("nil callback")
	ErrEventNotRegistered = errors.New("event listener not registered")
)

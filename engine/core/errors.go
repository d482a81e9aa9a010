package core

import (
	"errors"
)

var (
	ErrWindowClosed   = errors.New("window closed, shutting down")
	ErrNoGLContext    = errors.New("no current OpenGL context")
	ErrUnknownProgram = errors.New("unknown program")
	ErrUnknown        = errors.New("unknown")
)

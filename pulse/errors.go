package pulse

import "errors"

var (
	ErrNoSurface          = errors.New("no surface")
	ErrNoAdapter          = errors.New("no suitable adapter")
	ErrNoDevice           = errors.New("no device")
	ErrSurfaceUnsupported = errors.New("surface reports no supported formats")
	ErrInvalidExtent      = errors.New("invalid swapchain extent")
	ErrEmptyShader        = errors.New("empty shader source")
	ErrMissingEntryPoint  = errors.New("missing shader entry point")
	ErrLayoutMismatch     = errors.New("shader does not match the pipeline layout")
)

package console

import "errors"

var (
	ErrStream            = errors.New("console stream error")
	ErrInvalidDetachKeys = errors.New("invalid detach keys")

	// errCopyAborted is reported by a copy loop that did not return normally.
	errCopyAborted = errors.New("copy loop aborted")

	// errServerWrite marks input that could not be delivered to the server.
	errServerWrite = errors.New("write to server")
)

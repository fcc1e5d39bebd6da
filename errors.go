package cryo

import (
	"fmt"
	"syscall"
)

// PathEncodingError reports a configured path that cannot be handed to the
// operating system.
type PathEncodingError struct {
	Path string
}

func (err PathEncodingError) Error() string {
	return fmt.Sprintf("path cannot be represented in the platform encoding: %q", err.Path)
}

// DirectoryOpenError reports a directory that could not be opened as a
// directory handle, with the OS error code.
type DirectoryOpenError struct {
	Path  string
	Errno syscall.Errno
}

func (err DirectoryOpenError) Error() string {
	return fmt.Sprintf("opening directory %s: %s (errno %d)", err.Path, err.Errno.Error(), int(err.Errno))
}

// DirectoryCloseError reports a directory handle that could not be closed,
// with the OS error code.
type DirectoryCloseError struct {
	Path  string
	Errno syscall.Errno
}

func (err DirectoryCloseError) Error() string {
	return fmt.Sprintf("closing directory %s: %s (errno %d)", err.Path, err.Errno.Error(), int(err.Errno))
}

// EngineError reports a failure of the external engine. Op is the engine
// primitive that failed ("init" or "dump").
type EngineError struct {
	Op  string
	Err error
}

func (err EngineError) Error() string {
	return fmt.Sprintf("engine %s failed: %s", err.Op, err.Err)
}

func (err EngineError) Unwrap() error {
	return err.Err
}

// HookError reports a runtime hook that failed. Hook names the phase:
// "prepare-checkpoint" or "resume-from-checkpoint".
type HookError struct {
	Hook string
	Err  error
}

func (err HookError) Error() string {
	return fmt.Sprintf("%s hook failed: %s", err.Hook, err.Err)
}

func (err HookError) Unwrap() error {
	return err.Err
}

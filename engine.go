package cryo

//go:generate counterfeiter . Engine

// Engine is the external checkpoint/restore engine, driven through option
// setters and a dump primitive. The setters only take effect for the dump
// that follows the most recent Init.
type Engine interface {
	// Supported reports whether the engine is usable on this host. It is
	// queried once per process and the answer is cached by the coordinator.
	Supported() bool

	// Init prepares the engine for one dump. Option values from earlier
	// attempts are discarded.
	Init() error

	// SetImagesDir hands the engine an open directory handle for the
	// checkpoint image. The caller retains ownership of the handle.
	SetImagesDir(fd int)

	// SetWorkDir hands the engine an open directory handle for non-image
	// files. The caller retains ownership of the handle.
	SetWorkDir(fd int)

	SetShellJob(shellJob bool)
	SetLogLevel(level int)
	SetLogFile(name string)
	SetLeaveRunning(leaveRunning bool)
	SetExtUnixSupport(extUnixSupport bool)
	SetFileLocks(fileLocks bool)

	// Dump checkpoints the current process with the options accumulated
	// since Init. When the image is later restored, execution resumes from
	// inside this call in the restored process.
	Dump() error
}

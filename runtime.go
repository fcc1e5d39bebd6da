package cryo

//go:generate counterfeiter . Runtime

// Runtime is the host runtime's side of the checkpoint protocol: the
// permission gate, the exclusive-access barrier, and the two hooks that let
// the runtime capture and recover its own state.
type Runtime interface {
	// CheckpointAllowed reports whether the runtime currently permits a
	// checkpoint. It is queried once per attempt.
	CheckpointAllowed() bool

	// AcquireExclusiveAccess blocks until all other activity in the runtime
	// is quiescent. It is paired with ReleaseExclusiveAccess and is not
	// reentrant.
	AcquireExclusiveAccess()

	ReleaseExclusiveAccess()

	// PrepareCheckpoint is invoked once per attempt while exclusive access
	// is held, before the dump. An error aborts the attempt before the dump
	// is taken.
	PrepareCheckpoint() error

	// ResumeFromCheckpoint is invoked once per attempt while exclusive
	// access is held, after a successful dump. In the restored process this
	// is the first runtime code to run.
	ResumeFromCheckpoint() error
}

package cryo

//go:generate counterfeiter . Checkpointer

// Checkpointer takes checkpoints of the current process.
type Checkpointer interface {
	// Supported reports whether checkpointing is available at all. The
	// answer is fixed for the lifetime of the process.
	Supported() bool

	// Checkpoint runs one checkpoint attempt with the given configuration.
	// It never panics and never leaks resources; every outcome, including
	// every failure, is reported as a Result.
	Checkpoint(support *Support) Result
}

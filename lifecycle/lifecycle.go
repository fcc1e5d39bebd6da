// Package lifecycle implements the runtime side of the checkpoint protocol
// for a process that checkpoints itself: a registry of hooks run around the
// dump, and an exclusive-access barrier that serializes attempts against
// registration and against each other.
package lifecycle

import "sync"

// A Hook is run at a fixed point in the checkpoint sequence. Returning an
// error aborts the attempt; the error becomes the attempt's captured fault.
type Hook func() error

type Registry struct {
	// exclusive is the exclusive-access barrier handed to the coordinator.
	exclusive sync.Mutex

	mu      sync.Mutex
	prepare []Hook
	resume  []Hook
	allowed bool
}

func NewRegistry() *Registry {
	return &Registry{allowed: true}
}

// OnPrepareCheckpoint registers a hook run before the dump, while exclusive
// access is held. Hooks run in registration order; the first error aborts.
func (r *Registry) OnPrepareCheckpoint(hook Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prepare = append(r.prepare, hook)
}

// OnResumeFromCheckpoint registers a hook run after a successful dump, in
// the restored process (or the original one when the image was taken with
// leave-running).
func (r *Registry) OnResumeFromCheckpoint(hook Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resume = append(r.resume, hook)
}

// SetCheckpointAllowed flips the per-attempt permission gate. New
// registries start out allowing checkpoints.
func (r *Registry) SetCheckpointAllowed(allowed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.allowed = allowed
}

// CheckpointAllowed implements cryo.Runtime.
func (r *Registry) CheckpointAllowed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.allowed
}

// AcquireExclusiveAccess implements cryo.Runtime. It blocks until any
// in-flight attempt releases; no timeout is applied.
func (r *Registry) AcquireExclusiveAccess() {
	r.exclusive.Lock()
}

// ReleaseExclusiveAccess implements cryo.Runtime.
func (r *Registry) ReleaseExclusiveAccess() {
	r.exclusive.Unlock()
}

// PrepareCheckpoint implements cryo.Runtime.
func (r *Registry) PrepareCheckpoint() error {
	return runHooks(r.snapshot(&r.prepare))
}

// ResumeFromCheckpoint implements cryo.Runtime.
func (r *Registry) ResumeFromCheckpoint() error {
	return runHooks(r.snapshot(&r.resume))
}

func (r *Registry) snapshot(hooks *[]Hook) []Hook {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Hook(nil), *hooks...)
}

func runHooks(hooks []Hook) error {
	for _, hook := range hooks {
		if err := hook(); err != nil {
			return err
		}
	}

	return nil
}

// Package coordinator sequences a checkpoint attempt: configuration
// validation, directory handle acquisition, engine initialization, the
// exclusive-access critical section around the dump, and cleanup on every
// exit path.
package coordinator

import (
	"code.cloudfoundry.org/cryo"
	"code.cloudfoundry.org/lager"
)

type Coordinator struct {
	engine  cryo.Engine
	runtime cryo.Runtime
	logger  lager.Logger

	// supported is computed once at construction and never re-queried.
	supported bool
}

func New(engine cryo.Engine, runtime cryo.Runtime, logger lager.Logger) *Coordinator {
	return &Coordinator{
		engine:  engine,
		runtime: runtime,
		logger:  logger.Session("coordinator"),

		supported: engine.Supported(),
	}
}

// Supported implements cryo.Checkpointer.
func (c *Coordinator) Supported() bool {
	return c.supported
}

// Checkpoint implements cryo.Checkpointer. The attempt holds exclusive
// access over the runtime for the duration of the hooks and the dump; when
// the dump succeeds without leave-running, the process returning from it is
// the restored image.
func (c *Coordinator) Checkpoint(support *cryo.Support) (result cryo.Result) {
	log := c.logger.Session("checkpoint")

	if !c.supported {
		log.Info("not-supported")
		return cryo.FailureResult(cryo.UnsupportedOperation, nil)
	}

	if !c.runtime.CheckpointAllowed() {
		log.Info("not-allowed")
		return cryo.FailureResult(cryo.UnsupportedOperation, nil)
	}

	spec := support.Spec()

	imagePath, err := nativePath(spec.ImageDir)
	if err != nil {
		log.Error("invalid-image-dir", err)
		return cryo.FailureResult(cryo.InvalidArguments, err)
	}

	imageFD, err := openDir(imagePath)
	if err != nil {
		log.Error("failed-to-open-image-dir", err, lager.Data{"path": imagePath})
		return cryo.FailureResult(cryo.InvalidArguments, err)
	}

	// afterCheckpoint selects the tag for cleanup failures: checkpoint
	// failures before the dump has completed, restore failures after.
	afterCheckpoint := false

	defer c.closeDir(log, imageFD, imagePath, &result, &afterCheckpoint)

	workFD := -1
	if spec.WorkDir != "" {
		workPath, err := nativePath(spec.WorkDir)
		if err != nil {
			log.Error("invalid-work-dir", err)
			return cryo.FailureResult(cryo.InvalidArguments, err)
		}

		workFD, err = openDir(workPath)
		if err != nil {
			log.Error("failed-to-open-work-dir", err, lager.Data{"path": workPath})
			return cryo.FailureResult(cryo.InvalidArguments, err)
		}

		// Deferred closes run in reverse acquisition order: work dir
		// before image dir.
		defer c.closeDir(log, workFD, workPath, &result, &afterCheckpoint)
	}

	if err := c.engine.Init(); err != nil {
		log.Error("engine-init-failed", err)
		return cryo.FailureResult(cryo.SystemCheckpointFailure, err)
	}

	c.engine.SetImagesDir(imageFD)
	c.engine.SetShellJob(spec.ShellJob)
	if spec.LogLevel > 0 {
		c.engine.SetLogLevel(spec.LogLevel)
	}
	if spec.LogFile != "" {
		c.engine.SetLogFile(spec.LogFile)
	}
	c.engine.SetLeaveRunning(spec.LeaveRunning)
	c.engine.SetExtUnixSupport(spec.ExtUnixSupport)
	c.engine.SetFileLocks(spec.FileLocks)
	if workFD >= 0 {
		c.engine.SetWorkDir(workFD)
	}

	log.Debug("acquiring-exclusive-access")
	c.runtime.AcquireExclusiveAccess()
	defer c.runtime.ReleaseExclusiveAccess()

	if err := c.runtime.PrepareCheckpoint(); err != nil {
		hookErr := cryo.HookError{Hook: "prepare-checkpoint", Err: err}
		log.Error("prepare-checkpoint-failed", hookErr)
		return cryo.FailureResult(cryo.RuntimeCheckpointFailure, hookErr)
	}

	log.Info("dumping", lager.Data{"image_dir": imagePath})

	if err := c.engine.Dump(); err != nil {
		log.Error("dump-failed", err)
		return cryo.FailureResult(cryo.SystemCheckpointFailure, err)
	}

	// Control only reaches here in the original process (leave-running) or
	// in the process restored from the image.
	afterCheckpoint = true

	if err := c.runtime.ResumeFromCheckpoint(); err != nil {
		hookErr := cryo.HookError{Hook: "resume-from-checkpoint", Err: err}
		log.Error("resume-from-checkpoint-failed", hookErr)
		return cryo.FailureResult(cryo.RuntimeRestoreFailure, hookErr)
	}

	log.Info("succeeded")
	return cryo.SuccessResult()
}

// closeDir closes a directory handle, converting a close failure into a
// result tag when, and only when, the attempt has not already failed. A
// hook or dump failure is never masked by cleanup.
func (c *Coordinator) closeDir(log lager.Logger, fd int, path string, result *cryo.Result, afterCheckpoint *bool) {
	err := closeDirFD(fd, path)
	if err == nil {
		return
	}

	log.Error("failed-to-close-dir", err, lager.Data{"path": path})

	if result.Type() != cryo.Success {
		return
	}

	if *afterCheckpoint {
		*result = cryo.FailureResult(cryo.RuntimeRestoreFailure, err)
	} else {
		*result = cryo.FailureResult(cryo.RuntimeCheckpointFailure, err)
	}
}

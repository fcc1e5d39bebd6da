// Package engine binds the external checkpoint/restore engine (CRIU) behind
// the cryo.Engine contract. Option setters accumulate into the engine's RPC
// options message; Dump submits it for the calling process.
package engine

import (
	"os"
	"os/exec"

	criu "github.com/checkpoint-restore/go-criu/v8"
	"github.com/checkpoint-restore/go-criu/v8/rpc"
	"google.golang.org/protobuf/proto"

	"code.cloudfoundry.org/cryo"
)

// Engines below this CRIU version miss options the coordinator relies on.
const minCriuVersion = 31500

type CRIU struct {
	criu *criu.Criu
	opts *rpc.CriuOpts
}

func New() *CRIU {
	return &CRIU{
		criu: criu.MakeCriu(),
		opts: &rpc.CriuOpts{},
	}
}

// Supported implements cryo.Engine. It probes the engine once; the
// coordinator caches the answer for the process lifetime.
func (c *CRIU) Supported() bool {
	version, err := c.criu.GetCriuVersion()
	if err != nil {
		return false
	}

	return version >= minCriuVersion
}

// Init implements cryo.Engine. It discards options accumulated by earlier
// attempts and targets the dump at the calling process.
func (c *CRIU) Init() error {
	c.opts = &rpc.CriuOpts{
		Pid: proto.Int32(int32(os.Getpid())),
	}

	if _, err := exec.LookPath("criu"); err != nil {
		return cryo.EngineError{Op: "init", Err: err}
	}

	return nil
}

func (c *CRIU) SetImagesDir(fd int) {
	c.opts.ImagesDirFd = proto.Int32(int32(fd))
}

func (c *CRIU) SetWorkDir(fd int) {
	c.opts.WorkDirFd = proto.Int32(int32(fd))
}

func (c *CRIU) SetShellJob(shellJob bool) {
	c.opts.ShellJob = proto.Bool(shellJob)
}

func (c *CRIU) SetLogLevel(level int) {
	c.opts.LogLevel = proto.Int32(int32(level))
}

func (c *CRIU) SetLogFile(name string) {
	c.opts.LogFile = proto.String(name)
}

func (c *CRIU) SetLeaveRunning(leaveRunning bool) {
	c.opts.LeaveRunning = proto.Bool(leaveRunning)
}

func (c *CRIU) SetExtUnixSupport(extUnixSupport bool) {
	c.opts.ExtUnixSk = proto.Bool(extUnixSupport)
}

func (c *CRIU) SetFileLocks(fileLocks bool) {
	c.opts.FileLocks = proto.Bool(fileLocks)
}

// Dump implements cryo.Engine. In the restored process this call is where
// execution resumes.
func (c *CRIU) Dump() error {
	if err := c.criu.Dump(c.opts, nil); err != nil {
		return cryo.EngineError{Op: "dump", Err: err}
	}

	return nil
}

var _ cryo.Engine = new(CRIU)

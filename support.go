package cryo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Log verbosity bounds accepted by the engine: 1 is errors only, 4 adds
// debug output.
const (
	MinLogLevel = 1
	MaxLogLevel = 4
)

// CheckpointSpec is the wire form of a checkpoint request. All fields other
// than ImageDir are optional.
type CheckpointSpec struct {
	// ImageDir is the directory that will hold the checkpoint image.
	ImageDir string `json:"image_dir"`

	// WorkDir is the directory for non-image files such as engine logs.
	// Defaults to ImageDir.
	WorkDir string `json:"work_dir,omitempty"`

	// LeaveRunning controls whether the process tree keeps running after
	// the checkpoint is taken.
	LeaveRunning bool `json:"leave_running,omitempty"`

	// ShellJob permits checkpointing processes attached to a terminal.
	ShellJob bool `json:"shell_job,omitempty"`

	// ExtUnixSupport permits dumping only one end of a unix socket pair.
	ExtUnixSupport bool `json:"ext_unix_support,omitempty"`

	// LogLevel is the engine log verbosity, 1 to 4. Zero means unset.
	LogLevel int `json:"log_level,omitempty"`

	// LogFile is the name of the engine log file, relative to WorkDir.
	LogFile string `json:"log_file,omitempty"`

	// FileLocks permits dumping file locks.
	FileLocks bool `json:"file_locks,omitempty"`
}

// Support holds the validated configuration for checkpoint attempts. Values
// only enter through the setters, so a Support handed to a Checkpointer is
// known to be well formed. Setting the same option twice keeps the value
// from the last call; a rejected value leaves the previous one in place.
type Support struct {
	imageDir       string
	workDir        string
	leaveRunning   bool
	shellJob       bool
	extUnixSupport bool
	logLevel       int
	logFile        string
	fileLocks      bool
}

// NewSupport returns a Support for checkpoints into imageDir. The image
// directory is the only required option.
func NewSupport(imageDir string) (*Support, error) {
	s := &Support{}

	if err := s.SetImageDir(imageDir); err != nil {
		return nil, err
	}

	return s, nil
}

// NewSupportFromSpec builds a Support by running every field of the spec
// through its validating setter.
func NewSupportFromSpec(spec CheckpointSpec) (*Support, error) {
	s, err := NewSupport(spec.ImageDir)
	if err != nil {
		return nil, err
	}

	if spec.WorkDir != "" {
		if err := s.SetWorkDir(spec.WorkDir); err != nil {
			return nil, err
		}
	}

	if spec.LogLevel != 0 {
		if err := s.SetLogLevel(spec.LogLevel); err != nil {
			return nil, err
		}
	}

	if spec.LogFile != "" {
		if err := s.SetLogFile(spec.LogFile); err != nil {
			return nil, err
		}
	}

	s.SetLeaveRunning(spec.LeaveRunning)
	s.SetShellJob(spec.ShellJob)
	s.SetExtUnixSupport(spec.ExtUnixSupport)
	s.SetFileLocks(spec.FileLocks)

	return s, nil
}

// SetImageDir sets the directory that will hold the checkpoint image. The
// path must name an existing directory.
func (s *Support) SetImageDir(dir string) error {
	abs, err := validateDir(dir)
	if err != nil {
		return err
	}

	s.imageDir = abs
	return nil
}

// SetWorkDir sets the directory for non-image files such as engine logs.
// The path must name an existing directory.
func (s *Support) SetWorkDir(dir string) error {
	abs, err := validateDir(dir)
	if err != nil {
		return err
	}

	s.workDir = abs
	return nil
}

// SetLogLevel sets the engine log verbosity; levels 1 to 4 are accepted.
func (s *Support) SetLogLevel(level int) error {
	if level < MinLogLevel || level > MaxLogLevel {
		return fmt.Errorf("log level must be %d to %d inclusive, got %d", MinLogLevel, MaxLogLevel, level)
	}

	s.logLevel = level
	return nil
}

// SetLogFile sets the name of the engine log file. It must be a plain file
// name; the directory is chosen with SetWorkDir.
func (s *Support) SetLogFile(name string) error {
	if name == "" || strings.ContainsRune(name, os.PathSeparator) {
		return fmt.Errorf("log file must be a file name, not a path: %q", name)
	}

	s.logFile = name
	return nil
}

func (s *Support) SetLeaveRunning(leaveRunning bool) *Support {
	s.leaveRunning = leaveRunning
	return s
}

func (s *Support) SetShellJob(shellJob bool) *Support {
	s.shellJob = shellJob
	return s
}

func (s *Support) SetExtUnixSupport(extUnixSupport bool) *Support {
	s.extUnixSupport = extUnixSupport
	return s
}

func (s *Support) SetFileLocks(fileLocks bool) *Support {
	s.fileLocks = fileLocks
	return s
}

// Spec returns a snapshot of the configuration. Each checkpoint attempt
// consumes one snapshot; later setter calls do not affect it.
func (s *Support) Spec() CheckpointSpec {
	return CheckpointSpec{
		ImageDir:       s.imageDir,
		WorkDir:        s.workDir,
		LeaveRunning:   s.leaveRunning,
		ShellJob:       s.shellJob,
		ExtUnixSupport: s.extUnixSupport,
		LogLevel:       s.logLevel,
		LogFile:        s.logFile,
		FileLocks:      s.fileLocks,
	}
}

func validateDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory must not be empty")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%s is not a valid directory: %s", dir, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a valid directory", dir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	return abs, nil
}

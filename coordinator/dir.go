package coordinator

import (
	"strings"
	"syscall"

	"golang.org/x/sys/unix"

	"code.cloudfoundry.org/cryo"
)

// nativePath vets a configured path before it reaches any OS call. Go
// strings are already in the platform encoding, so the conversion step
// reduces to rejecting values the OS cannot accept.
func nativePath(path string) (string, error) {
	if path == "" || strings.ContainsRune(path, 0) {
		return "", cryo.PathEncodingError{Path: path}
	}

	return path, nil
}

// openDir opens path as a directory handle. CLOEXEC is cleared so the
// engine's child process can inherit the handle. Overridable for tests.
var openDir = func(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_DIRECTORY|unix.O_RDONLY, 0)
	if err != nil {
		return -1, cryo.DirectoryOpenError{Path: path, Errno: errno(err)}
	}

	if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFD, 0); err != nil {
		unix.Close(fd)
		return -1, cryo.DirectoryOpenError{Path: path, Errno: errno(err)}
	}

	return fd, nil
}

var closeDirFD = func(fd int, path string) error {
	if err := unix.Close(fd); err != nil {
		return cryo.DirectoryCloseError{Path: path, Errno: errno(err)}
	}

	return nil
}

func errno(err error) syscall.Errno {
	if errno, ok := err.(syscall.Errno); ok {
		return errno
	}

	return syscall.EIO
}

//go:build darwin

package outfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync forces file data to disk.
//
// With fullFsync, F_FULLFSYNC also flushes the drive cache; plain fsync on
// macOS only reaches the drive.
func fdatasync(f *os.File, fullFsync bool) error {
	if fullFsync {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}

// syncDir makes a rename inside dir durable.
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	return unix.Fsync(fd)
}

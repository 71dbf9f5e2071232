//go:build linux

package outfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync forces file data to disk.
//
// On Linux, fdatasync() provides sufficient guarantees.
// The fullFsync parameter is ignored.
func fdatasync(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}

// syncDir makes a rename inside dir durable.
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	return unix.Fsync(fd)
}

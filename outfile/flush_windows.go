//go:build windows

package outfile

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync forces file data to disk using FlushFileBuffers.
// The fullFsync parameter is ignored on Windows.
func fdatasync(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}

// syncDir is a no-op: Windows cannot open a directory handle for flushing
// without backup semantics, and MoveFileEx is already durable on NTFS.
func syncDir(string) error { return nil }

//go:build !windows

package install

import "golang.org/x/sys/unix"

// DirWritable reports whether the invoking user can write to dir right now.
func DirWritable(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}

//go:build windows

package install

import "os"

// DirWritable probes dir with a throwaway file; there is no cheap access
// check on Windows. The platform gate rejects Windows hosts before install,
// so this exists only to keep the package buildable there.
func DirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".oav-install-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

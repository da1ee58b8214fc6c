// Package install places the verified executable into a directory on the
// search path.
package install

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/otiai10/copy"
	"github.com/pkg/errors"

	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/fs"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/print"
)

// SystemBinDir is preferred when the invoking user can write to it.
const SystemBinDir = "/usr/local/bin"

// Destination picks the install directory: an explicit override wins,
// otherwise the system-wide bin dir when writable, otherwise the per-user
// bin dir under the home directory.
func Destination(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if DirWritable(SystemBinDir) {
		return SystemBinDir, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine home directory")
	}
	return filepath.Join(home, ".local", "bin"), nil
}

// Binary copies the executable at srcPath into destDir under its own name,
// creating destDir if absent, and sets the executable permission bits. This
// is the sole persistent side effect of an install run.
func Binary(srcPath, destDir string) (string, error) {
	if !fs.Exists(srcPath) {
		return "", errors.Errorf("executable %s missing after extraction", filepath.Base(srcPath))
	}
	if err := fs.EnsureDir(destDir, fs.PermDirShared); err != nil {
		return "", errors.Wrapf(err, "failed to create install directory %s", destDir)
	}

	target := filepath.Join(destDir, filepath.Base(srcPath))
	if err := copy.Copy(srcPath, target); err != nil {
		return "", errors.Wrapf(err, "failed to copy executable to %s", target)
	}
	if err := os.Chmod(target, fs.PermFileExec); err != nil {
		return "", errors.Wrapf(err, "failed to set executable permissions on %s", target)
	}
	return target, nil
}

// AdvisePath warns when dir is not a segment of the search path. Purely
// informational, never fails the install.
func AdvisePath(dir string) {
	if OnPath(dir, os.Getenv("PATH")) {
		return
	}
	print.Warn(dir, "is not on your PATH")
	print.Warn("add it with: export PATH=\"" + dir + ":$PATH\"")
}

// OnPath reports whether dir appears as a segment of the given search path
// value.
func OnPath(dir, pathEnv string) bool {
	for _, seg := range filepath.SplitList(pathEnv) {
		if seg == "" {
			continue
		}
		if filepath.Clean(seg) == filepath.Clean(dir) {
			return true
		}
	}
	return false
}

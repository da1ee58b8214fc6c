package fs

import "os"

const (
	PermDirPrivate os.FileMode = 0o700
	PermDirShared  os.FileMode = 0o755
)

const (
	PermFileShared os.FileMode = 0o644
	PermFileExec   os.FileMode = 0o755
	PermFileTemp   os.FileMode = 0o600
)

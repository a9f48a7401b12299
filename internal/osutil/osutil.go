// Package osutil holds platform constants shared by focuswatch packages.
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

// ExitCode is the process exit status.
type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
)

// DirPermission is the mode used for directories created by focuswatch.
const DirPermission = 0o755

// FilePermission is the mode used for files that only the user may read.
const FilePermission = 0o600

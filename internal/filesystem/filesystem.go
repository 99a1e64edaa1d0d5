package filesystem

import "os"

// Filesystem is the subset of filesystem calls dirnav needs. Swapping it
// lets callers run against an in-memory tree or a mock.
type Filesystem interface {
	Stat(name string) (os.FileInfo, error)
	Getwd() (string, error)
	// ReadDir returns the immediate children of name in the order the
	// underlying filesystem yields them.
	ReadDir(name string) ([]os.FileInfo, error)
}

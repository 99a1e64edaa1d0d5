package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

// AferoFs adapts an afero.Fs, which has no notion of a working directory,
// to Filesystem by pinning one.
type AferoFs struct {
	fs afero.Fs
	wd string
}

func NewAferoFs(fs afero.Fs, wd string) *AferoFs {
	return &AferoFs{fs: fs, wd: wd}
}

// NewMemFs returns an empty in-memory filesystem whose working directory
// is wd. The directory itself is created.
func NewMemFs(wd string) (*AferoFs, error) {
	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(wd, 0o755); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return NewAferoFs(mem, wd), nil
}

// Afero exposes the wrapped filesystem for populating test trees.
func (fs *AferoFs) Afero() afero.Fs {
	return fs.fs
}

func (fs *AferoFs) Stat(name string) (os.FileInfo, error) {
	return fs.fs.Stat(name) //nolint:wrapcheck
}

func (fs *AferoFs) Getwd() (string, error) {
	return fs.wd, nil
}

func (fs *AferoFs) ReadDir(name string) ([]os.FileInfo, error) {
	return afero.ReadDir(fs.fs, name) //nolint:wrapcheck
}

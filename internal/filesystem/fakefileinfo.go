package filesystem

import (
	"io/fs"
	"time"
)

// FakeFileInfo is a fs.FileInfo with caller-chosen name and type.
type FakeFileInfo struct {
	FileName string
	Dir      bool
}

func (f *FakeFileInfo) Name() string {
	if f.FileName == "" {
		return "filename.ext"
	}
	return f.FileName
}

func (f *FakeFileInfo) Size() int64 {
	return 1
}

func (f *FakeFileInfo) Mode() fs.FileMode {
	if f.Dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

func (f *FakeFileInfo) ModTime() time.Time {
	return time.Now()
}

func (f *FakeFileInfo) IsDir() bool {
	return f.Dir
}

func (f *FakeFileInfo) Sys() any {
	return "sys"
}

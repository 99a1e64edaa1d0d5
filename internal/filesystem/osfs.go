package filesystem

import "os"

type OsFs struct {
}

func (fs *OsFs) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *OsFs) Getwd() (string, error) {
	return os.Getwd()
}

// ReadDir skips the name sort os.ReadDir applies.
func (fs *OsFs) ReadDir(name string) ([]os.FileInfo, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdir(-1)
}

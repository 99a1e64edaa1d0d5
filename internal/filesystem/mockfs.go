package filesystem

import (
	"os"

	"github.com/stretchr/testify/mock"
)

type MockFs struct {
	mock.Mock
}

func (fs *MockFs) Stat(name string) (os.FileInfo, error) {
	args := fs.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(os.FileInfo), args.Error(1) //nolint:wrapcheck
}

func (fs *MockFs) Getwd() (string, error) {
	args := fs.Called()
	return args.String(0), args.Error(1) //nolint:wrapcheck
}

func (fs *MockFs) ReadDir(name string) ([]os.FileInfo, error) {
	args := fs.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).([]os.FileInfo), args.Error(1) //nolint:wrapcheck
}

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwu-tools/dirnav/internal/config"
	"github.com/uwu-tools/dirnav/internal/filesystem"
	"github.com/uwu-tools/dirnav/internal/navigator"
	"github.com/uwu-tools/dirnav/internal/options"
)

func newRepoFs(t *testing.T) *filesystem.AferoFs {
	t.Helper()

	mem, err := filesystem.NewMemFs("/repo")
	require.NoError(t, err)
	require.NoError(t, mem.Afero().MkdirAll("/repo/src", 0o755))
	require.NoError(t, afero.WriteFile(mem.Afero(), "/repo/src/main.ext", []byte("main"), 0o644))
	require.NoError(t, afero.WriteFile(mem.Afero(), "/repo/README", []byte("readme"), 0o644))

	return mem
}

func newConfigMock(dir, format string) *config.ConfigMock {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	cfg := config.NewConfigMock()
	cfg.On("GetLogger").Return(logrus.NewEntry(logger))
	cfg.On("GetDir").Return(dir)
	cfg.On("GetFormat").Return(format)
	return cfg
}

func TestRun(t *testing.T) {
	nav, err := navigator.NewFromWorkingDir(newRepoFs(t), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(newConfigMock("src", options.FormatPlain), nav, &out))

	// MemMapFs yields names in sorted order.
	assert.Equal(t, "main.ext\nREADME\nsrc/\n", out.String())
	assert.Equal(t, "/repo", nav.Current())
	_, ok := nav.Previous()
	assert.False(t, ok)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name        string
		dir         string
		format      string
		expectedErr error
	}{
		{"missing directory", "lib", options.FormatPlain, navigator.ErrNotFound},
		{"file instead of directory", "README", options.FormatPlain, navigator.ErrNotADirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, err := navigator.NewFromWorkingDir(newRepoFs(t), nil)
			require.NoError(t, err)

			var out bytes.Buffer
			err = run(newConfigMock(tt.dir, tt.format), nav, &out)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, out.String())
			assert.Equal(t, "/repo", nav.Current())
		})
	}
}

func TestRunUnknownFormat(t *testing.T) {
	nav, err := navigator.NewFromWorkingDir(newRepoFs(t), nil)
	require.NoError(t, err)

	cfg := config.NewConfigMock()
	cfg.On("GetLogger").Return(logrus.NewEntry(logrus.New()))
	cfg.On("GetFormat").Return("xml")

	var out bytes.Buffer
	require.Error(t, run(cfg, nav, &out))
	assert.Empty(t, out.String())
	cfg.AssertNotCalled(t, "GetDir")
}

func TestRunListFailure(t *testing.T) {
	m := &filesystem.MockFs{}
	m.On("Getwd").Return("/repo", nil)
	m.On("Stat", "/repo/src").Return(&filesystem.FakeFileInfo{FileName: "src", Dir: true}, nil)
	m.On("ReadDir", "/repo/src").Return(nil, afero.ErrFileNotFound)

	nav, err := navigator.NewFromWorkingDir(m, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	err = run(newConfigMock("src", options.FormatPlain), nav, &out)
	require.ErrorIs(t, err, navigator.ErrRead)
	m.AssertExpectations(t)
}

func TestRootCmd(t *testing.T) {
	orig := fsys
	fsys = newRepoFs(t)
	t.Cleanup(func() { fsys = orig })

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "plain",
			args:     []string{"--dir", "src", "--log-level", "error"},
			contains: []string{"main.ext\n", "README\n", "src/\n"},
		},
		{
			name:     "table",
			args:     []string{"-d", "src", "-f", "table", "--log-level", "error"},
			contains: []string{"Name", "Type", "main.ext", "Directory", "File"},
		},
		{
			name:     "json",
			args:     []string{"--format", "json", "--log-level", "error"},
			contains: []string{`"path": "/repo/src"`, `"path": "/repo"`, `"name": "main.ext"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.ExecuteContext(context.Background()))
			for _, c := range tt.contains {
				assert.Contains(t, out.String(), c)
			}
		})
	}
}

func TestRootCmdFailure(t *testing.T) {
	orig := fsys
	fsys = newRepoFs(t)
	t.Cleanup(func() { fsys = orig })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dir", "missing", "--log-level", "error"})

	err := cmd.Execute()
	require.ErrorIs(t, err, navigator.ErrNotFound)
	assert.Contains(t, err.Error(), "/repo/missing: No such file or directory")
	assert.Empty(t, out.String())
}

func TestVersionCommand(t *testing.T) {
	sub, _, err := newRootCmd().Find([]string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "version", sub.Name())
}

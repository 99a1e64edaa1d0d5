// Copyright 2024 uwu-tools Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package navigator

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/uwu-tools/dirnav/internal/filesystem"
)

// Kind is the type of a directory entry.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	switch k {
	case Directory:
		return "Directory"
	default:
		return "File"
	}
}

// Entry is one immediate child of a listed directory.
type Entry struct {
	Name string
	Kind Kind
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == Directory
}

// Navigator tracks the current directory and at most one previous
// directory for a single step back.
type Navigator struct {
	fs  filesystem.Filesystem
	log *logrus.Entry

	current     string
	previous    string
	hasPrevious bool
}

// NewFromWorkingDir creates a Navigator rooted at the working directory
// reported by fsys.
func NewFromWorkingDir(fsys filesystem.Filesystem, log *logrus.Entry) (*Navigator, error) {
	wd, err := fsys.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkingDirectory, err)
	}
	if !filepath.IsAbs(wd) {
		return nil, fmt.Errorf("%w: %s is not absolute", ErrWorkingDirectory, wd)
	}

	return newNavigator(fsys, filepath.Clean(wd), log), nil
}

// New creates a Navigator rooted at start, which must be an absolute path
// to an existing directory.
func New(fsys filesystem.Filesystem, start string, log *logrus.Entry) (*Navigator, error) {
	if !filepath.IsAbs(start) {
		return nil, fmt.Errorf("%w: %s is not absolute", ErrWorkingDirectory, start)
	}

	start = filepath.Clean(start)
	if err := checkDir(fsys, start); err != nil {
		return nil, err
	}

	return newNavigator(fsys, start, log), nil
}

func newNavigator(fsys filesystem.Filesystem, start string, log *logrus.Entry) *Navigator {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	n := &Navigator{
		fs:      fsys,
		log:     log,
		current: start,
	}
	n.log.WithField("path", start).Debug("navigator initialized")

	return n
}

// Current returns the absolute path of the current directory.
func (n *Navigator) Current() string {
	return n.current
}

// Previous returns the directory Back would return to, if any.
func (n *Navigator) Previous() (string, bool) {
	return n.previous, n.hasPrevious
}

// Navigate changes into name, resolved against the current directory.
// The state is left unchanged if the target is missing or not a directory.
func (n *Navigator) Navigate(name string) error {
	candidate := filepath.Join(n.current, name)
	if err := checkDir(n.fs, candidate); err != nil {
		n.log.WithError(err).WithField("path", candidate).Debug("navigation refused")
		return err
	}

	n.previous, n.hasPrevious = n.current, true
	n.current = candidate
	n.log.WithFields(logrus.Fields{
		"path":     n.current,
		"previous": n.previous,
	}).Debug("changed directory")

	return nil
}

// Back returns to the previous directory and consumes the history.
func (n *Navigator) Back() error {
	if !n.hasPrevious {
		return ErrNoHistory
	}

	n.current = n.previous
	n.previous, n.hasPrevious = "", false
	n.log.WithField("path", n.current).Debug("returned to previous directory")

	return nil
}

// List reads the immediate children of the current directory. The order
// is whatever the filesystem yields.
func (n *Navigator) List() ([]Entry, error) {
	infos, err := n.fs.ReadDir(n.current)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", n.current, ErrRead, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{
			Name: info.Name(),
			Kind: n.classify(info),
		})
	}
	n.log.WithFields(logrus.Fields{
		"path":    n.current,
		"entries": len(entries),
	}).Debug("listed directory")

	return entries, nil
}

// classify follows symlinks. A link that cannot be resolved is a File.
func (n *Navigator) classify(info fs.FileInfo) Kind {
	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := n.fs.Stat(filepath.Join(n.current, info.Name()))
		if err != nil {
			return File
		}
		info = target
	}

	if info.IsDir() {
		return Directory
	}
	return File
}

func checkDir(fsys filesystem.Filesystem, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("%s: %w: %w", path, ErrNotFound, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotADirectory)
	}

	return nil
}

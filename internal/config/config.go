// Copyright 2017 CoreOS, Inc.
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

package config

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uwu-tools/dirnav/internal/filesystem"
	"github.com/uwu-tools/dirnav/internal/options"
)

// fs is the filesystem used to locate the config file.
var fs filesystem.Filesystem = &filesystem.OsFs{}

// Config is the root configuration object the application creates.
type Config struct {
	// cmdFile is the file Viper is using for its configuration, if any.
	cmdFile string

	// cmdConfig is the Viper configuration object created from the command line and config file.
	cmdConfig *viper.Viper

	// ctx carries a deadline, a cancellation signal, and other values across
	// API boundaries.
	ctx context.Context

	// log is a logger set up with the configured log level, app name, etc.
	log *logrus.Entry
}

// New creates a new, immutable configuration object. This object
// holds the Viper configuration and the logger, and is validated.
func New(ctx context.Context, cmd *cobra.Command) (*Config, error) {
	var cfg Config

	cfgFile, err := getConfigFilePath(cmd)
	if err != nil {
		return nil, err
	}

	cfg.cmdConfig, err = newViper(options.AppName, cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.cmdConfig.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	cfg.cmdFile = cfg.cmdConfig.ConfigFileUsed()

	cfg.ctx = ctx

	cfg.log = newLogger(
		options.AppName,
		cfg.cmdConfig.GetString(options.ConfigKeyLogLevel),
	)

	if err := cfg.validateConfig(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Context returns the context.
func (c *Config) Context() context.Context {
	return c.ctx
}

// GetConfigFile returns the file that Viper loaded the configuration from.
func (c *Config) GetConfigFile() string {
	return c.cmdFile
}

// GetConfigString returns a string value from the Viper configuration.
func (c *Config) GetConfigString(key string) string {
	return c.cmdConfig.GetString(key)
}

// GetLogger returns the configured application logger.
func (c *Config) GetLogger() *logrus.Entry {
	return c.log
}

// GetDir returns the child directory to navigate into.
func (c *Config) GetDir() string {
	return c.cmdConfig.GetString(options.ConfigKeyDir)
}

// GetFormat returns the listing output format.
func (c *Config) GetFormat() string {
	return c.cmdConfig.GetString(options.ConfigKeyFormat)
}

// getConfigFilePath returns the --config flag value if it names an
// existing file. Without the flag it falls back to the default file in
// the working directory, and to no file at all if that does not exist.
func getConfigFilePath(cmd *cobra.Command) (string, error) {
	path, err := cmd.Flags().GetString(options.ConfigKeyConfigFile)
	if err == nil && path != "" {
		if _, err := fs.Stat(path); err != nil {
			return "", fmt.Errorf("checking config file %s: %w", path, err)
		}
		return path, nil
	}

	wd, err := fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	path = filepath.Join(wd, options.DefaultConfigFile)
	if _, err := fs.Stat(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("checking config file %s: %w", path, err)
	}

	return path, nil
}

// newViper generates a viper configuration object which
// merges (in order from highest to lowest priority) the
// command line options, environment, configuration file
// options, and default configuration values. This viper
// object becomes the single source of truth for the app
// configuration.
func newViper(appName, cfgFile string) (*viper.Viper, error) {
	log := logrus.New()
	v := viper.New()

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(options.ConfigKeyLogLevel, options.DefaultLogLevelStr)
	v.SetDefault(options.ConfigKeyDir, options.DefaultDir)
	v.SetDefault(options.ConfigKeyFormat, options.DefaultFormat)

	if cfgFile == "" {
		return v, nil
	}

	v.SetConfigFile(cfgFile)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
	log.WithField("file", v.ConfigFileUsed()).Debug("config file loaded")

	return v, nil
}

// parseLogLevel is a helper function to parse the log level passed in the
// configuration into a logrus Level, or to use the default log level set
// above if the log level can't be parsed.
func parseLogLevel(level string) logrus.Level {
	if level == "" {
		return options.DefaultLogLevel
	}

	ll, err := logrus.ParseLevel(level)
	if err != nil {
		fmt.Printf("Failed to parse log level, using default. Error: %v\n", err)
		return options.DefaultLogLevel
	}
	return ll
}

// newLogger uses the log level provided in the configuration
// to create a new logrus logger and set fields on it to make
// it easy to use.
func newLogger(app, level string) *logrus.Entry {
	logger := logrus.New()
	logger.Level = parseLogLevel(level)
	logEntry := logrus.NewEntry(logger).WithFields(logrus.Fields{
		"app": app,
	})
	logEntry.WithField("log-level", logger.Level).Debug("log level set")
	return logEntry
}

// validateConfig checks the values provided to the configuration options.
// It does not check that the directory exists; that is left to the first
// navigation.
func (c *Config) validateConfig() error {
	c.log.Debug("Checking config variables...")

	dir := c.cmdConfig.GetString(options.ConfigKeyDir)
	if dir == "" {
		return errDirRequired
	}
	if filepath.IsAbs(dir) {
		return errDirNotRelative
	}

	format := c.cmdConfig.GetString(options.ConfigKeyFormat)
	if !isKnownFormat(format) {
		return errFormatInvalid(format)
	}

	c.log.Debug("All config variables are valid!")

	return nil
}

func isKnownFormat(format string) bool {
	for _, f := range options.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Errors

var (
	errDirRequired    = errors.New("directory to navigate into required")
	errDirNotRelative = errors.New("directory to navigate into must be relative")
)

func errFormatInvalid(format string) error {
	return fmt.Errorf( //nolint:goerr113
		"output format %q must be one of %s", format, strings.Join(options.Formats, ", "),
	)
}

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

package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/log"
	"sigs.k8s.io/release-utils/version"

	"github.com/uwu-tools/dirnav/internal/config"
	"github.com/uwu-tools/dirnav/internal/filesystem"
	"github.com/uwu-tools/dirnav/internal/navigator"
	"github.com/uwu-tools/dirnav/internal/options"
	"github.com/uwu-tools/dirnav/internal/render"
)

// fsys is the filesystem the navigator starts from and lists.
var fsys filesystem.Filesystem = &filesystem.OsFs{}

// Execute provides a single function to run the root command and handle errors.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// RootCmd represents the command itself and configures it.
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options.Options{}

	cmd := &cobra.Command{
		Use:   "dirnav [options]",
		Short: "Step into a directory, list it, step back and list again",
		Long: `dirnav starts in the working directory, changes into --dir, lists it,
returns to the previous directory and lists that too.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initLogging(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(cmd.Context(), cmd)
			if err != nil {
				return fmt.Errorf("creating new config: %w", err)
			}

			nav, err := navigator.NewFromWorkingDir(fsys, cfg.GetLogger())
			if err != nil {
				return fmt.Errorf("creating navigator: %w", err)
			}

			return run(cfg, nav, cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVar(
		&opts.LogLevel,
		options.ConfigKeyLogLevel,
		options.DefaultLogLevelStr,
		fmt.Sprintf("the logging verbosity, either %s", log.LevelNames()),
	)

	cmd.PersistentFlags().StringVar(
		&opts.ConfigFile,
		options.ConfigKeyConfigFile,
		"",
		fmt.Sprintf("viper config file location (default ./%s if present)", options.DefaultConfigFile),
	)

	cmd.PersistentFlags().StringVarP(
		&opts.Dir,
		options.ConfigKeyDir,
		"d",
		options.DefaultDir,
		"set the child directory to navigate into",
	)

	cmd.PersistentFlags().StringVarP(
		&opts.Format,
		options.ConfigKeyFormat,
		"f",
		options.DefaultFormat,
		fmt.Sprintf("set the listing format, one of %v", options.Formats),
	)

	cmd.AddCommand(version.Version())

	return cmd
}

// run executes the fixed sequence: enter the configured directory, list
// it, go back, list again. The first failure aborts the rest.
func run(cfg config.IConfig, nav *navigator.Navigator, out io.Writer) error {
	log := cfg.GetLogger()

	r, err := render.ForFormat(cfg.GetFormat())
	if err != nil {
		return fmt.Errorf("selecting renderer: %w", err)
	}

	dir := cfg.GetDir()
	if err := nav.Navigate(dir); err != nil {
		return fmt.Errorf("navigating into %s: %w", dir, err)
	}
	log.WithField("path", nav.Current()).Info("entered directory")

	if err := list(nav, r, out); err != nil {
		return err
	}

	if err := nav.Back(); err != nil {
		return fmt.Errorf("navigating back: %w", err)
	}
	log.WithField("path", nav.Current()).Info("returned to directory")

	return list(nav, r, out)
}

func list(nav *navigator.Navigator, r render.Renderer, out io.Writer) error {
	entries, err := nav.List()
	if err != nil {
		return fmt.Errorf("listing directory: %w", err)
	}

	if err := r(out, nav.Current(), entries); err != nil {
		return fmt.Errorf("rendering %s: %w", nav.Current(), err)
	}

	return nil
}

func initLogging(opts *options.Options) error {
	err := log.SetupGlobalLogger(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("setting up global logger: %w", err)
	}
	return nil
}

// Copyright 2022 uwu-tools Authors
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

package options

import (
	"github.com/sirupsen/logrus"
)

type Options struct {
	LogLevel   string
	ConfigFile string
	// Dir is the child directory the fixed sequence navigates into.
	Dir    string
	Format string
}

const (
	AppName = "dirnav"

	// Application config keys.
	ConfigKeyLogLevel   = "log-level"
	ConfigKeyConfigFile = "config"
	ConfigKeyDir        = "dir"
	ConfigKeyFormat     = "format"

	// Output formats.
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"

	// Default values
	//
	// DefaultLogLevel is the level logrus should default to if the configured
	// option can't be parsed.
	DefaultLogLevel = logrus.InfoLevel
	// DefaultConfigFile is looked up in the working directory when no
	// config file is passed.
	DefaultConfigFile = ".dirnav.json"
	DefaultDir        = "src"
	DefaultFormat     = FormatPlain
)

var DefaultLogLevelStr = DefaultLogLevel.String()

// Formats lists every supported output format.
var Formats = []string{FormatPlain, FormatTable, FormatJSON, FormatYAML, FormatTOML}

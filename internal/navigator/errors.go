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

import "errors"

// Errors

//nolint:stylecheck,revive // wording matches the shell's messages
var (
	ErrWorkingDirectory = errors.New("cannot determine working directory")
	ErrNotFound         = errors.New("No such file or directory")
	ErrNotADirectory    = errors.New("Not a directory")
	ErrNoHistory        = errors.New("Already at root directory")
	ErrRead             = errors.New("cannot read directory")
)

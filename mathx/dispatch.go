// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mathx

import (
	"os"
	"strconv"
)

// Level identifies which Kernel the package-level functions use.
type Level int

const (
	// LevelSoft indicates the dependency-free kernel.
	LevelSoft Level = iota

	// LevelHost indicates the chewxy/math32-backed kernel.
	LevelHost
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelSoft:
		return "soft"
	case LevelHost:
		return "host"
	default:
		return "unknown"
	}
}

// currentLevel is the selected kernel level.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// current is the Kernel behind the package-level functions.
// Set by init() in dispatch_*.go files and never written afterwards.
var current Kernel = Soft{}

// CurrentLevel returns the kernel level selected for this process.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns the name of the selected kernel, "soft" or "host".
func CurrentName() string {
	return current.Name()
}

// Current returns the Kernel behind the package-level functions.
func Current() Kernel {
	return current
}

// SoftEnv checks if the MATHX_SOFT environment variable is set.
// When set, the soft kernel is used regardless of CPU capabilities.
// This is useful for testing the dependency-free path on a host machine.
func SoftEnv() bool {
	val := os.Getenv("MATHX_SOFT")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setSoftMode() {
	currentLevel = LevelSoft
	current = Soft{}
}

func setHostMode() {
	currentLevel = LevelHost
	current = Host{}
}

// Copyright 2025 walteh LLC
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

package operation

import (
	"os/exec"

	"github.com/walteh/albumrc/pkg/settings"
	"gitlab.com/tozd/go/errors"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrConverterNotFound = errors.Base("converter not found on PATH")
	ErrViewerNotFound    = errors.Base("viewer not found on PATH")
)

// 🔍 Dependency is an external program a run needs
type Dependency struct {
	Role   string
	Binary string
	Path   string
	Err    error
}

// Dependencies lists the external programs the settings call for and whether
// each one can be found.
func Dependencies(s *settings.Settings) []Dependency {
	deps := []Dependency{}

	if s.Converter == settings.ConverterGraphicsMagick {
		deps = append(deps, lookup("converter", s.ConverterBinary, ErrConverterNotFound))
	}
	if s.Viewer != "" {
		deps = append(deps, lookup("viewer", s.Viewer, ErrViewerNotFound))
	}
	return deps
}

// CheckDeps returns the first missing dependency.
func CheckDeps(s *settings.Settings) error {
	for _, d := range Dependencies(s) {
		if d.Err != nil {
			return d.Err
		}
	}
	return nil
}

func lookup(role, binary string, sentinel error) Dependency {
	d := Dependency{Role: role, Binary: binary}
	path, err := exec.LookPath(binary)
	if err != nil {
		d.Err = errors.Errorf("%w: %s", sentinel, err.Error())
		return d
	}
	d.Path = path
	return d
}

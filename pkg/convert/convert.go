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

// Package convert turns a resolved unit into an output image. Two backends are
// available: the GraphicsMagick command line tool and an in-process pipeline
// built on the imaging library.
package convert

import (
	"context"

	"github.com/walteh/albumrc/pkg/album"
	"gitlab.com/tozd/go/errors"
)

var ErrUnknownConverter = errors.Base("unknown converter")

type Converter interface {
	// Name identifies the backend in logs.
	Name() string

	// Convert reads unit.InputPath, applies unit.Operations in order and
	// writes unit.OutputPath.
	Convert(ctx context.Context, unit album.ResolvedUnit) error
}

// New returns the backend called name. binary is only used by the gm backend.
func New(name, binary string) (Converter, error) {
	switch name {
	case "gm", "graphicsmagick":
		if binary == "" {
			binary = "gm"
		}
		return &GraphicsMagick{Binary: binary}, nil
	case "imaging":
		return &Imaging{}, nil
	default:
		return nil, errors.Errorf("%w: %q", ErrUnknownConverter, name)
	}
}

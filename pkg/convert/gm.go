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

package convert

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/albumrc/pkg/album"
	"github.com/walteh/albumrc/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// GraphicsMagick runs `gm convert` once per image.
type GraphicsMagick struct {
	Binary string
}

func (g *GraphicsMagick) Name() string { return "gm" }

// Args returns the arguments passed to the binary for unit, without the binary
// itself:
//
//	convert -size 1920x1080 -normalize -enhance -unsharp 3 <input> <output>
func Args(unit album.ResolvedUnit) []string {
	b := &argBuilder{args: []string{"convert"}}
	unit.Operations.Accept(b)
	return append(b.args, unit.InputPath, unit.OutputPath)
}

type argBuilder struct {
	args []string
}

func (b *argBuilder) VisitSize(s transform.Size) {
	b.args = append(b.args, "-size", strconv.FormatUint(uint64(s.Width), 10)+"x"+strconv.FormatUint(uint64(s.Height), 10))
}

func (b *argBuilder) VisitNormalize(transform.Normalize) {
	b.args = append(b.args, "-normalize")
}

func (b *argBuilder) VisitEnhance(transform.Enhance) {
	b.args = append(b.args, "-enhance")
}

func (b *argBuilder) VisitUnsharp(u transform.Unsharp) {
	b.args = append(b.args, "-unsharp", strconv.FormatUint(uint64(u.Radius), 10))
}

func (g *GraphicsMagick) Convert(ctx context.Context, unit album.ResolvedUnit) error {
	args := Args(unit)

	zerolog.Ctx(ctx).Debug().
		Str("binary", g.Binary).
		Strs("args", args).
		Msg("running converter")

	cmd := exec.CommandContext(ctx, g.Binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return errors.Errorf("running %s convert: %w", g.Binary, err)
		}
		return errors.Errorf("running %s convert: %w: %s", g.Binary, err, msg)
	}
	return nil
}

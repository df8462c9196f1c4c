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
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/walteh/albumrc/pkg/album"
	"github.com/walteh/albumrc/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

const (
	normalizeContrast = 10
	enhanceSharpen    = 0.5
	enhanceGamma      = 1.05
)

// Imaging converts in process. The output format follows the output file
// extension.
type Imaging struct{}

func (i *Imaging) Name() string { return "imaging" }

func (i *Imaging) Convert(ctx context.Context, unit album.ResolvedUnit) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("converting %s: %w", unit.Filename, err)
	}

	src, err := imaging.Open(unit.InputPath, imaging.AutoOrientation(true))
	if err != nil {
		return errors.Errorf("opening %s: %w", unit.InputPath, err)
	}

	p := &pipeline{}
	unit.Operations.Accept(p)

	zerolog.Ctx(ctx).Debug().
		Str("input", unit.InputPath).
		Int("steps", len(p.steps)).
		Msg("applying imaging pipeline")

	out := p.apply(src)

	if err := imaging.Save(out, unit.OutputPath); err != nil {
		return errors.Errorf("saving %s: %w", unit.OutputPath, err)
	}
	return nil
}

type pipeline struct {
	steps []func(image.Image) image.Image
}

func (p *pipeline) apply(img image.Image) image.Image {
	for _, step := range p.steps {
		img = step(img)
	}
	return img
}

func (p *pipeline) add(step func(image.Image) image.Image) {
	p.steps = append(p.steps, step)
}

func (p *pipeline) VisitSize(s transform.Size) {
	w, h := int(s.Width), int(s.Height)
	switch {
	case w == 0 && h == 0:
	case w == 0 || h == 0:
		// zero keeps the aspect ratio
		p.add(func(img image.Image) image.Image {
			return imaging.Resize(img, w, h, imaging.Lanczos)
		})
	default:
		p.add(func(img image.Image) image.Image {
			return imaging.Fit(img, w, h, imaging.Lanczos)
		})
	}
}

func (p *pipeline) VisitNormalize(transform.Normalize) {
	p.add(func(img image.Image) image.Image {
		return imaging.AdjustContrast(img, normalizeContrast)
	})
}

func (p *pipeline) VisitEnhance(transform.Enhance) {
	p.add(func(img image.Image) image.Image {
		return imaging.AdjustGamma(imaging.Sharpen(img, enhanceSharpen), enhanceGamma)
	})
}

func (p *pipeline) VisitUnsharp(u transform.Unsharp) {
	if u.Radius == 0 {
		return
	}
	p.add(func(img image.Image) image.Image {
		return imaging.Sharpen(img, float64(u.Radius))
	})
}

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

package album

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/albumrc/pkg/naming"
	"github.com/walteh/albumrc/pkg/transform"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

type resolveOptions struct {
	concurrency int
}

// ResolveOption configures Resolve.
type ResolveOption func(*resolveOptions)

// WithConcurrency resolves up to n images at once. Output numbering and the
// reported error do not depend on n.
func WithConcurrency(n int) ResolveOption {
	return func(o *resolveOptions) {
		o.concurrency = n
	}
}

// 🔄 Resolve turns every image of a into a ResolvedUnit whose output lives
// under outputRoot. It stops at the first image that cannot be resolved, in
// album order, and then returns no units at all.
//
// Resolve only computes strings: it does not touch the filesystem.
func Resolve(ctx context.Context, a *Album, outputRoot string, opts ...ResolveOption) ([]ResolvedUnit, error) {
	o := resolveOptions{concurrency: 1}
	for _, opt := range opts {
		opt(&o)
	}

	if a == nil {
		return nil, errors.New("album is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("resolving album: %w", err)
	}

	logger := zerolog.Ctx(ctx)

	catalog := transform.NewCatalog(a.Transformations)
	total := len(a.Images)
	builder := naming.NewBuilder(a.Base, outputRoot, total)

	logger.Debug().
		Str("album", a.Name).
		Int("images", total).
		Int("prefix_width", builder.Width()).
		Strs("sets", catalog.Names()).
		Msg("resolving album")

	units := make([]ResolvedUnit, total)

	if o.concurrency <= 1 || total <= 1 {
		for i, img := range a.Images {
			unit, err := resolveImage(catalog, builder, img, i+1)
			if err != nil {
				return nil, err
			}
			units[i] = unit
		}
		return units, nil
	}

	errs := make([]error, total)
	g := new(errgroup.Group)
	g.SetLimit(o.concurrency)
	for i, img := range a.Images {
		g.Go(func() error {
			units[i], errs[i] = resolveImage(catalog, builder, img, i+1)
			return nil
		})
	}
	// workers always return nil; failures land in errs so album order picks the error
	g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return units, nil
}

func resolveImage(catalog *transform.Catalog, builder *naming.Builder, img Image, position int) (ResolvedUnit, error) {
	setName := img.SetName()

	ops, err := catalog.Lookup(setName)
	if err != nil {
		return ResolvedUnit{}, &ImageError{Position: position, Filename: img.Filename, Err: err}
	}

	input, output, err := builder.Build(img.Filename, position)
	if err != nil {
		return ResolvedUnit{}, &ImageError{Position: position, Filename: img.Filename, Err: err}
	}

	return ResolvedUnit{
		Position:   position,
		Filename:   img.Filename,
		SetName:    setName,
		InputPath:  input,
		OutputPath: output,
		Operations: ops,
	}, nil
}

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
	"context"
	"path/filepath"

	"github.com/walteh/albumrc/pkg/album"
	"github.com/walteh/albumrc/pkg/convert"
	"github.com/walteh/albumrc/pkg/log"
	"github.com/walteh/albumrc/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work a command executes
type Operation interface {
	Execute(ctx context.Context) error
}

// 👀 Viewer shows a directory to the user and returns once it is closed
type Viewer interface {
	Open(ctx context.Context, dir string) error
}

// 🔧 Options configures album operations
type Options struct {
	// Album is the loaded album document
	Album *album.Album
	// Converter produces output images, required for runs
	Converter convert.Converter
	// Viewer is opened on the workspace after conversion, nil to skip
	Viewer Viewer
	// TempDir is where the workspace is created, empty for os.TempDir()
	TempDir string
	// Keep leaves the converted images in place
	Keep bool
	// Concurrency bounds parallel resolution, values below 2 resolve sequentially
	Concurrency int
}

// 🏃 RunOperation converts an album and shows the result
type RunOperation struct {
	opts  Options
	ws    *workspace.Workspace
	units []album.ResolvedUnit
}

// 🏭 NewRun creates a run operation
func NewRun(opts Options) (*RunOperation, error) {
	if opts.Album == nil {
		return nil, errors.Errorf("album is required")
	}
	if opts.Converter == nil {
		return nil, errors.Errorf("converter is required")
	}
	return &RunOperation{opts: opts}, nil
}

// Workspace returns the workspace of the last Execute, nil before resolution
// succeeded.
func (r *RunOperation) Workspace() *workspace.Workspace {
	return r.ws
}

// Units returns the units of the last Execute.
func (r *RunOperation) Units() []album.ResolvedUnit {
	return r.units
}

func (r *RunOperation) Execute(ctx context.Context) (err error) {
	clog := log.FromContext(ctx)
	a := r.opts.Album

	ws := workspace.New(r.opts.TempDir)

	units, err := album.Resolve(ctx, a, ws.Dir(), album.WithConcurrency(r.opts.Concurrency))
	if err != nil {
		return err
	}
	r.units = units

	if err := ws.Create(ctx); err != nil {
		return err
	}
	r.ws = ws

	if !r.opts.Keep {
		defer func() {
			if cerr := ws.Cleanup(ctx, units); cerr != nil {
				if err == nil {
					err = errors.Errorf("cleaning up: %w", cerr)
					return
				}
				clog.Warningf("cleanup failed: %v", cerr)
			}
		}()
	}

	clog.Header("converting " + a.Name)
	clog.StartAlbumOperation(ctx, log.AlbumOperation{
		Name:   a.Name,
		Base:   a.Base,
		Output: ws.Dir(),
		Images: len(units),
	})

	for _, u := range units {
		entry := imageEntry(u)
		if cerr := r.opts.Converter.Convert(ctx, u); cerr != nil {
			entry.Status = "failed"
			entry.IsFailed = true
			clog.LogImageOperation(ctx, entry)
			clog.EndAlbumOperation(ctx)
			return &album.ImageError{Position: u.Position, Filename: u.Filename, Err: errors.Errorf("converting with %s: %w", r.opts.Converter.Name(), cerr)}
		}
		entry.Status = "converted"
		entry.IsDone = true
		clog.LogImageOperation(ctx, entry)
	}

	done, _ := clog.EndAlbumOperation(ctx)
	clog.LogNewline()
	clog.Successf("converted %d images into %s", done, ws.Dir())

	if r.opts.Viewer != nil {
		if err := r.opts.Viewer.Open(ctx, ws.Dir()); err != nil {
			return errors.Errorf("opening viewer: %w", err)
		}
	}

	if r.opts.Keep {
		clog.Infof("kept outputs in %s", ws.Dir())
	}

	return nil
}

func imageEntry(u album.ResolvedUnit) log.ImageOperation {
	return log.ImageOperation{
		Name:       filepath.Base(u.OutputPath),
		Set:        u.SetName,
		Operations: u.Operations.String(),
	}
}

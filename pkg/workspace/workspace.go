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

// Package workspace manages the output root of a run: a uniquely named
// directory under a temp root that holds the converted images until the run
// ends.
package workspace

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/albumrc/pkg/album"
	"gitlab.com/tozd/go/errors"
)

const Prefix = "album_creator_"

type Workspace struct {
	dir string
}

// New picks a fresh <root>/album_creator_<uuid> directory without creating it.
// An empty root means os.TempDir().
func New(root string) *Workspace {
	if root == "" {
		root = os.TempDir()
	}
	return &Workspace{dir: Path(root, uuid.New())}
}

// Create makes the workspace directory.
func (w *Workspace) Create(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return errors.Errorf("creating workspace: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", w.dir).Msg("workspace created")
	return nil
}

// Path returns the workspace directory for id under root without creating it.
func Path(root string, id uuid.UUID) string {
	if root != "" && !os.IsPathSeparator(root[len(root)-1]) {
		root += string(os.PathSeparator)
	}
	return root + Prefix + id.String()
}

func (w *Workspace) Dir() string {
	return w.dir
}

// Cleanup removes every unit's output file, then the workspace directory.
// Missing outputs are ignored; anything else left in the directory is kept and
// makes the directory removal fail.
func (w *Workspace) Cleanup(ctx context.Context, units []album.ResolvedUnit) error {
	logger := zerolog.Ctx(ctx)

	for _, u := range units {
		if err := os.Remove(u.OutputPath); err != nil && !os.IsNotExist(err) {
			return errors.Errorf("removing %s: %w", u.OutputPath, err)
		}
	}

	if err := os.Remove(w.dir); err != nil && !os.IsNotExist(err) {
		return errors.Errorf("removing workspace: %w", err)
	}

	logger.Debug().Str("dir", w.dir).Int("files", len(units)).Msg("workspace removed")
	return nil
}

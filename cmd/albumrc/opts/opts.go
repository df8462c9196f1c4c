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

package opts

import (
	"context"

	"github.com/walteh/albumrc/pkg/album"
	"github.com/walteh/albumrc/pkg/config"
	"github.com/walteh/albumrc/pkg/settings"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	Settings   *settings.Settings
}

// AlbumPath returns the album file named on the command line, falling back to
// the --config flag.
func (o *RootOpts) AlbumPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return o.ConfigFile
}

// LoadAlbum loads the album named by args or --config.
func (o *RootOpts) LoadAlbum(ctx context.Context, args []string) (*album.Album, error) {
	path := o.AlbumPath(args)
	a, err := config.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading album %s: %w", path, err)
	}
	return a, nil
}

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

package config

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/albumrc/pkg/album"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Expand appends the files matched by the album's discover patterns to its
// image list. Matches are taken relative to base, sorted, de-duplicated against
// each other, and only files directly inside base are used.
func Expand(ctx context.Context, a *album.Album) error {
	if len(a.Discover) == 0 {
		return nil
	}
	if a.Base == "" {
		return errors.Errorf("base is required to discover images")
	}

	logger := zerolog.Ctx(ctx)
	fsys := os.DirFS(a.Base)

	seen := map[string]bool{}
	found := []string{}
	for _, pattern := range a.Discover {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid discover pattern %q", pattern)
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return errors.Errorf("globbing %q: %w", pattern, err)
		}

		for _, m := range matches {
			if strings.Contains(m, "/") {
				logger.Debug().Str("pattern", pattern).Str("match", m).Msg("skipping nested match")
				continue
			}
			if seen[m] {
				continue
			}
			seen[m] = true
			found = append(found, m)
		}
	}

	sort.Strings(found)
	for _, name := range found {
		a.Images = append(a.Images, album.Image{Filename: name})
	}

	logger.Debug().Strs("patterns", a.Discover).Int("found", len(found)).Msg("discovered images")
	return nil
}

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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/albumrc/cmd/albumrc/opts"
	"github.com/walteh/albumrc/pkg/convert"
	"github.com/walteh/albumrc/pkg/operation"
	"github.com/walteh/albumrc/pkg/viewer"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	var noView bool

	cmd := &cobra.Command{
		Use:   "run [album-file]",
		Short: "Convert an album and show the result",
		Long: `Run processes every image of an album.
It will:
1. Resolve each image's transformations and output name
2. Create a fresh workspace directory
3. Convert the images one by one, in album order
4. Open the viewer on the workspace
5. Remove the converted images unless --keep is set`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := opts.Settings

			a, err := opts.LoadAlbum(ctx, args)
			if err != nil {
				return err
			}

			conv, err := convert.New(s.Converter, s.ConverterBinary)
			if err != nil {
				return errors.Errorf("creating converter: %w", err)
			}

			if noView {
				s.Viewer = ""
			}
			if err := operation.CheckDeps(s); err != nil {
				return errors.Errorf("checking dependencies: %w", err)
			}

			runOpts := operation.Options{
				Album:       a,
				Converter:   conv,
				TempDir:     s.TempDir,
				Keep:        s.Keep,
				Concurrency: s.Concurrency,
			}
			if s.Viewer != "" {
				runOpts.Viewer = viewer.New(s.Viewer, s.ViewerArgs...)
			}

			op, err := operation.NewRun(runOpts)
			if err != nil {
				return errors.Errorf("creating run operation: %w", err)
			}

			return operation.NewRunner().Run(ctx, "run", op)
		},
	}

	cmd.Flags().BoolVar(&noView, "no-view", false, "skip opening the viewer")

	return cmd
}

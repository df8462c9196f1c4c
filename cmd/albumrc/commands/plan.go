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
	"github.com/walteh/albumrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(opts *opts.RootOpts) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan [album-file]",
		Short: "Show what a run would do",
		Long: `Plan resolves an album without converting anything.
For every image it prints the input path, the output name, the
transformation set and the operations that would be applied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := opts.LoadAlbum(ctx, args)
			if err != nil {
				return err
			}

			op, err := operation.NewPlan(operation.Options{
				Album:       a,
				TempDir:     opts.Settings.TempDir,
				Concurrency: opts.Settings.Concurrency,
			}, format)
			if err != nil {
				return errors.Errorf("creating plan operation: %w", err)
			}

			return operation.NewRunner().Run(ctx, "plan", op)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", operation.FormatTable, "output format (table, json, yaml)")

	return cmd
}

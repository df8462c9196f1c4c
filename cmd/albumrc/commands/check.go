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
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/albumrc/cmd/albumrc/opts"
	"github.com/walteh/albumrc/pkg/log"
	"github.com/walteh/albumrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the converter and viewer can be found",
		RunE: func(cmd *cobra.Command, args []string) error {
			clog := log.FromContext(cmd.Context())

			deps := operation.Dependencies(opts.Settings)
			if len(deps) == 0 {
				clog.Success("no external programs needed")
				return nil
			}

			data := pterm.TableData{{"role", "binary", "path"}}
			for _, d := range deps {
				path := d.Path
				if d.Err != nil {
					path = "missing"
				}
				data = append(data, []string{d.Role, d.Binary, path})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			clog.Print(table)

			if err := operation.CheckDeps(opts.Settings); err != nil {
				return err
			}
			clog.Success("all dependencies found")
			return nil
		},
	}

	return cmd
}

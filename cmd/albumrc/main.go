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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/albumrc/cmd/albumrc/commands"
	"github.com/walteh/albumrc/cmd/albumrc/opts"
	"github.com/walteh/albumrc/pkg/album"
	"github.com/walteh/albumrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	clog := log.New(os.Stdout, zerolog.Disabled)
	ctx := log.NewContext(context.Background(), clog)

	rootOpts := &opts.RootOpts{}
	rootCmd := newRootCmd(rootOpts)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportFailure(clog, err)
		os.Exit(1)
	}
}

func newRootCmd(rootOpts *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "albumrc",
		Short: "Batch convert an album of images",
		Long: `albumrc converts a named collection of images with GraphicsMagick.
Each image gets an ordered list of operations from a named transformation set
and a numbered output name, so the results sort in album order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, rootOpts)
		},
	}

	addRootFlags(rootCmd, rootOpts)

	rootCmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewPlanCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// reportFailure prints err, naming the image and error kind when there is one.
func reportFailure(clog *log.Logger, err error) {
	var imgErr *album.ImageError
	if errors.As(err, &imgErr) {
		kind := album.Kind(err)
		if kind == "" {
			kind = "ConversionError"
		}
		clog.Errorf("image %d (%s) failed: %s", imgErr.Position, imgErr.Filename, kind)
	}
	clog.Error(fmt.Sprintf("failed: %v", err))
}

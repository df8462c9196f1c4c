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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/albumrc/cmd/albumrc/opts"
	"github.com/walteh/albumrc/pkg/settings"
	"gitlab.com/tozd/go/errors"
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, rootOpts *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&rootOpts.ConfigFile, "config", "c", "album.yaml", "album file path")
	cmd.PersistentFlags().BoolVarP(&rootOpts.Debug, "debug", "d", false, "enable debug logging")
	settings.AddFlags(cmd.PersistentFlags())
}

// setup configures logging and loads settings once flags are parsed
func setup(cmd *cobra.Command, rootOpts *opts.RootOpts) error {
	logger := setupLogging(rootOpts.Debug)
	cmd.SetContext(logger.WithContext(cmd.Context()))

	v := settings.New()
	if err := settings.BindFlags(v, cmd.Flags()); err != nil {
		return errors.Errorf("binding flags: %w", err)
	}

	s, err := settings.Load(v)
	if err != nil {
		return errors.Errorf("loading settings: %w", err)
	}
	rootOpts.Settings = s

	logger.Debug().Interface("settings", s).Msg("settings loaded")
	return nil
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) *zerolog.Logger {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
	return &log
}

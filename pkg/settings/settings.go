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

// Package settings holds the runtime knobs of a run: which converter and viewer
// to call, where the workspace lives and whether outputs are kept. Values come
// from defaults, ALBUMRC_* environment variables and command line flags, in
// increasing order of precedence.
package settings

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"
)

const EnvPrefix = "ALBUMRC"

// Converter backends.
const (
	ConverterGraphicsMagick = "gm"
	ConverterImaging        = "imaging"
)

type Settings struct {
	Converter       string   `mapstructure:"converter"`
	ConverterBinary string   `mapstructure:"converter_binary"`
	Viewer          string   `mapstructure:"viewer"`
	ViewerArgs      []string `mapstructure:"viewer_args"`
	TempDir         string   `mapstructure:"temp_dir"`
	Keep            bool     `mapstructure:"keep"`
	Concurrency     int      `mapstructure:"concurrency"`
}

// flag name -> viper key
var flagKeys = map[string]string{
	"converter":        "converter",
	"converter-binary": "converter_binary",
	"viewer":           "viewer",
	"viewer-args":      "viewer_args",
	"temp-dir":         "temp_dir",
	"keep":             "keep",
	"concurrency":      "concurrency",
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("converter", ConverterGraphicsMagick)
	v.SetDefault("converter_binary", "gm")
	v.SetDefault("viewer", "dolphin")
	v.SetDefault("viewer_args", []string{"--new-window"})
	v.SetDefault("temp_dir", os.TempDir())
	v.SetDefault("keep", false)
	v.SetDefault("concurrency", 1)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// AddFlags registers the settings flags on fs. Flag defaults are informational;
// only flags the user actually sets override env and defaults.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("converter", ConverterGraphicsMagick, "converter backend (gm, imaging)")
	fs.String("converter-binary", "gm", "path or name of the GraphicsMagick binary")
	fs.String("viewer", "dolphin", "file browser used to show results, empty to disable")
	fs.StringSlice("viewer-args", []string{"--new-window"}, "arguments passed to the viewer before the directory")
	fs.String("temp-dir", os.TempDir(), "directory the workspace is created in")
	fs.Bool("keep", false, "keep converted images after the viewer exits")
	fs.Int("concurrency", 1, "number of images resolved in parallel")
}

// BindFlags binds every known flag present in fs to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Errorf("decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Errorf("validating settings: %w", err)
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	switch s.Converter {
	case ConverterGraphicsMagick:
		if s.ConverterBinary == "" {
			return errors.Errorf("converter_binary is required for the %s converter", s.Converter)
		}
	case ConverterImaging:
	default:
		return errors.Errorf("unknown converter %q", s.Converter)
	}

	if s.Concurrency < 1 {
		return errors.Errorf("concurrency must be at least 1, got %d", s.Concurrency)
	}
	if s.TempDir == "" {
		s.TempDir = os.TempDir()
	}
	return nil
}

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

package convert

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/albumrc/pkg/album"
	"github.com/walteh/albumrc/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		ops  transform.List
		want []string
	}{
		{
			name: "default_pipeline",
			ops:  transform.DefaultList(),
			want: []string{"convert", "-size", "1920x1080", "-normalize", "-enhance", "-unsharp", "3", "/in/a.jpg", "/out/1_a.jpg"},
		},
		{
			name: "custom_order",
			ops:  transform.List{transform.Unsharp{Radius: 2}, transform.Size{Width: 800, Height: 600}, transform.Normalize{}},
			want: []string{"convert", "-unsharp", "2", "-size", "800x600", "-normalize", "/in/a.jpg", "/out/1_a.jpg"},
		},
		{
			name: "repeated_operation",
			ops:  transform.List{transform.Enhance{}, transform.Enhance{}},
			want: []string{"convert", "-enhance", "-enhance", "/in/a.jpg", "/out/1_a.jpg"},
		},
		{
			name: "empty_list",
			ops:  transform.List{},
			want: []string{"convert", "/in/a.jpg", "/out/1_a.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := album.ResolvedUnit{
				InputPath:  "/in/a.jpg",
				OutputPath: "/out/1_a.jpg",
				Operations: tt.ops,
			}
			assert.Equal(t, tt.want, Args(unit))
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		binary   string
		wantName string
		wantErr  bool
	}{
		{name: "gm", backend: "gm", binary: "/usr/bin/gm", wantName: "gm"},
		{name: "gm_long_name", backend: "graphicsmagick", wantName: "gm"},
		{name: "imaging", backend: "imaging", wantName: "imaging"},
		{name: "unknown", backend: "magick", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.backend, tt.binary)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownConverter), "error should be ErrUnknownConverter")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name())
		})
	}

	c, err := New("gm", "")
	require.NoError(t, err)
	assert.Equal(t, "gm", c.(*GraphicsMagick).Binary, "binary should default to gm")
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-gm")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestGraphicsMagickConvert(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}

	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	unit := album.ResolvedUnit{
		Filename:   "a.jpg",
		InputPath:  "/in/a.jpg",
		OutputPath: "/out/1_a.jpg",
		Operations: transform.List{transform.Normalize{}},
	}

	t.Run("success", func(t *testing.T) {
		gm := &GraphicsMagick{Binary: writeScript(t, `echo "$@" > `+argsFile)}

		require.NoError(t, gm.Convert(context.Background(), unit))

		got, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		assert.Equal(t, "convert -normalize /in/a.jpg /out/1_a.jpg\n", string(got))
	})

	t.Run("failure_reports_stderr", func(t *testing.T) {
		gm := &GraphicsMagick{Binary: writeScript(t, `echo "gm convert: Unable to open file" >&2; exit 1`)}

		err := gm.Convert(context.Background(), unit)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unable to open file")
		assert.Contains(t, err.Error(), "exit status 1")
	})

	t.Run("missing_binary", func(t *testing.T) {
		gm := &GraphicsMagick{Binary: filepath.Join(dir, "does-not-exist")}

		err := gm.Convert(context.Background(), unit)
		require.Error(t, err)
	})
}

func TestImagingConvert(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.png")

	src := imaging.New(40, 20, color.NRGBA{R: 120, G: 80, B: 40, A: 255})
	require.NoError(t, imaging.Save(src, input))

	tests := []struct {
		name   string
		ops    transform.List
		output string
		want   image.Point
	}{
		{
			name:   "fit_keeps_aspect",
			ops:    transform.List{transform.Size{Width: 10, Height: 10}, transform.Normalize{}, transform.Enhance{}, transform.Unsharp{Radius: 1}},
			output: "1_a.png",
			want:   image.Pt(10, 5),
		},
		{
			name:   "never_upscales",
			ops:    transform.List{transform.Size{Width: 400, Height: 400}},
			output: "2_a.png",
			want:   image.Pt(40, 20),
		},
		{
			name:   "zero_height_keeps_aspect",
			ops:    transform.List{transform.Size{Width: 20}},
			output: "3_a.jpg",
			want:   image.Pt(20, 10),
		},
		{
			name:   "no_operations",
			ops:    transform.List{},
			output: "4_a.png",
			want:   image.Pt(40, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := album.ResolvedUnit{
				Filename:   "a.png",
				InputPath:  input,
				OutputPath: filepath.Join(dir, tt.output),
				Operations: tt.ops,
			}

			require.NoError(t, (&Imaging{}).Convert(context.Background(), unit))

			out, err := imaging.Open(unit.OutputPath)
			require.NoError(t, err, "output should be readable")
			assert.Equal(t, tt.want, out.Bounds().Size())
		})
	}

	t.Run("missing_input", func(t *testing.T) {
		unit := album.ResolvedUnit{InputPath: filepath.Join(dir, "nope.png"), OutputPath: filepath.Join(dir, "x.png")}
		err := (&Imaging{}).Convert(context.Background(), unit)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening")
	})

	t.Run("unsupported_output_extension", func(t *testing.T) {
		unit := album.ResolvedUnit{InputPath: input, OutputPath: filepath.Join(dir, "x.webp")}
		err := (&Imaging{}).Convert(context.Background(), unit)
		require.Error(t, err)
		assert.True(t, errors.Is(err, imaging.ErrUnsupportedFormat))
	})
}

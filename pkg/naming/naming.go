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

// Package naming builds the input and output paths of album images.
//
// Output names carry a zero-padded position prefix sized to the album, so a
// plain lexicographic listing of the output directory follows the album order:
//
//	total=3    ->  1_a.jpg, 2_b.jpg, 3_c.jpg
//	total=125  ->  001_a.jpg ... 007_g.jpg ... 125_z.jpg
package naming

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// ErrPathEncoding is the kind of every path that cannot be represented.
var ErrPathEncoding = errors.Base("path encoding")

// PathEncodingError reports a computed path the platform path type cannot carry.
type PathEncodingError struct {
	Path   string
	Detail string
}

func (e *PathEncodingError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Detail)
}

func (e *PathEncodingError) Unwrap() error {
	return ErrPathEncoding
}

// DigitCount returns the number of decimal digits in n. Zero and negative
// values count as one digit.
func DigitCount(n int) int {
	if n < 10 {
		return 1
	}
	return len(strconv.Itoa(n))
}

// PadTo left-pads the decimal form of position with '0' up to width.
func PadTo(position, width int) string {
	s := strconv.Itoa(position)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// PadPosition pads position to the digit count of total.
func PadPosition(position, total int) string {
	return PadTo(position, DigitCount(total))
}

// OutputName is the file name an image gets in the output root.
func OutputName(padded, filename string) string {
	return padded + "_" + filename
}

// Join appends segment to dir with a single separator. Unlike filepath.Join it
// does not clean the result: ".." and repeated separators inside either part
// are left for the operating system to interpret.
func Join(dir, segment string) string {
	if dir == "" {
		return segment
	}
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + segment
	}
	return dir + string(os.PathSeparator) + segment
}

// Validate reports whether path can be handed to the operating system.
func Validate(path string) error {
	if !utf8.ValidString(path) {
		return &PathEncodingError{Path: path, Detail: "not valid UTF-8"}
	}
	if strings.IndexByte(path, 0) >= 0 {
		return &PathEncodingError{Path: path, Detail: "contains a NUL byte"}
	}
	return nil
}

// Builder computes paths for one run. The prefix width is fixed at construction.
type Builder struct {
	base       string
	outputRoot string
	width      int
}

// NewBuilder returns a Builder for an album of total images.
func NewBuilder(base, outputRoot string, total int) *Builder {
	return &Builder{
		base:       base,
		outputRoot: outputRoot,
		width:      DigitCount(total),
	}
}

// Width is the prefix width used for every image of the run.
func (b *Builder) Width() int {
	return b.width
}

// Build returns the input and output path of the image at the 1-based position.
func (b *Builder) Build(filename string, position int) (string, string, error) {
	input := Join(b.base, filename)
	if err := Validate(input); err != nil {
		return "", "", err
	}

	output := Join(b.outputRoot, OutputName(PadTo(position, b.width), filename))
	if err := Validate(output); err != nil {
		return "", "", err
	}

	return input, output, nil
}

// BuildPaths is the one-shot form of Builder.Build.
func BuildPaths(base, outputRoot, filename string, position, total int) (string, string, error) {
	return NewBuilder(base, outputRoot, total).Build(filename, position)
}

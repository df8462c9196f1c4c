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

package album

import (
	"fmt"

	"github.com/walteh/albumrc/pkg/naming"
	"github.com/walteh/albumrc/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// Error kinds a resolution run can fail with.
var (
	ErrUnknownTransformationSet = transform.ErrUnknownTransformationSet
	ErrPathEncoding             = naming.ErrPathEncoding
)

// ImageError ties a resolution failure to the image that caused it.
type ImageError struct {
	Position int
	Filename string
	Err      error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image %d (%s): %v", e.Position, e.Filename, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// Kind names the failure kind of err for user-facing reports.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnknownTransformationSet):
		return "UnknownTransformationSet"
	case errors.Is(err, ErrPathEncoding):
		return "PathEncodingError"
	default:
		return ""
	}
}

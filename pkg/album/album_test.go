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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestImageUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		json        string
		yaml        string
		want        Image
		errContains string
	}{
		{
			name: "bare_filename",
			json: `"a.jpg"`,
			yaml: `a.jpg`,
			want: Image{Filename: "a.jpg"},
		},
		{
			name: "object_without_set",
			json: `{"filename": "a.jpg"}`,
			yaml: `filename: a.jpg`,
			want: Image{Filename: "a.jpg"},
		},
		{
			name: "object_with_set",
			json: `{"filename": "a.jpg", "transformations": "bw"}`,
			yaml: "filename: a.jpg\ntransformations: bw",
			want: Image{Filename: "a.jpg", TransformationSet: ptr("bw")},
		},
		{
			name:        "unknown_field",
			json:        `{"filename": "a.jpg", "rotate": 90}`,
			yaml:        "filename: a.jpg\nrotate: 90",
			errContains: "rotate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromJSON Image
			err := json.Unmarshal([]byte(tt.json), &fromJSON)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, fromJSON)
			}

			var fromYAML Image
			err = yaml.Unmarshal([]byte(tt.yaml), &fromYAML)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, fromYAML)
			}
		})
	}
}

func TestImageSetName(t *testing.T) {
	assert.Equal(t, "default", Image{Filename: "a"}.SetName())
	assert.Equal(t, "bw", Image{Filename: "a", TransformationSet: ptr("bw")}.SetName())
	assert.Equal(t, "", Image{Filename: "a", TransformationSet: ptr("")}.SetName())
}

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

package transform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func TestListUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        List
		errContains string
	}{
		{
			name:  "tagged_form",
			input: `["Normalize", {"Size": {"width": 800, "height": 600}}, "Enhance", {"Unsharp": {"radius": 2}}]`,
			want:  List{Normalize{}, Size{Width: 800, Height: 600}, Enhance{}, Unsharp{Radius: 2}},
		},
		{
			name:  "case_insensitive_tags",
			input: `["normalize", {"size": {"Width": 10, "HEIGHT": 20}}]`,
			want:  List{Normalize{}, Size{Width: 10, Height: 20}},
		},
		{
			name:  "unit_variant_as_object",
			input: `[{"Enhance": null}, {"Normalize": {}}]`,
			want:  List{Enhance{}, Normalize{}},
		},
		{
			name:  "empty_list",
			input: `[]`,
			want:  List{},
		},
		{
			name:        "unknown_tag",
			input:       `["Blur"]`,
			errContains: `unknown transformation "Blur"`,
		},
		{
			name:        "missing_field",
			input:       `[{"Size": {"width": 800}}]`,
			errContains: `missing field "height"`,
		},
		{
			name:        "unexpected_field",
			input:       `[{"Unsharp": {"radius": 1, "sigma": 2}}]`,
			errContains: "unexpected fields [sigma]",
		},
		{
			name:        "negative_value",
			input:       `[{"Unsharp": {"radius": -1}}]`,
			errContains: "decoding Unsharp payload",
		},
		{
			name:        "null_list_rejected",
			input:       `null`,
			errContains: "must not be null",
		},
		{
			name:        "two_tags_in_one_object",
			input:       `[{"Enhance": null, "Normalize": null}]`,
			errContains: "expected exactly one tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got List
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        List
		errContains string
	}{
		{
			name: "tagged_form",
			input: `
- Size: {width: 1920, height: 1080}
- Normalize
- Enhance:
- Unsharp:
    radius: 3
`,
			want: DefaultList(),
		},
		{
			name:        "not_a_sequence",
			input:       `Normalize: {}`,
			errContains: "must be a sequence",
		},
		{
			name:        "unknown_tag",
			input:       `- Sepia`,
			errContains: `unknown transformation "Sepia"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got List
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNullSetRejected(t *testing.T) {
	t.Run("json_map_value", func(t *testing.T) {
		var sets map[string]List
		err := json.Unmarshal([]byte(`{"default": null}`), &sets)
		require.Error(t, err, "a null default set must not replace the built-in pipeline")
		assert.True(t, errors.Is(err, ErrNullList))
	})

	t.Run("yaml_node", func(t *testing.T) {
		var doc yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte("~"), &doc))
		require.Len(t, doc.Content, 1)

		var got List
		err := got.UnmarshalYAML(doc.Content[0])
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNullList))
	})
}

func TestListMarshalJSON(t *testing.T) {
	data, err := json.Marshal(DefaultList())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"Size":{"width":1920,"height":1080}},"Normalize","Enhance",{"Unsharp":{"radius":3}}]`, string(data))

	var back List
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, DefaultList(), back, "marshalled form should decode to the same list")
}

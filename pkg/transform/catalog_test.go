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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name      string
		sets      map[string]List
		lookup    string
		want      List
		wantErr   bool
		wantNames []string
	}{
		{
			name:      "nil_sets_synthesize_default",
			sets:      nil,
			lookup:    DefaultSetName,
			want:      List{Size{Width: 1920, Height: 1080}, Normalize{}, Enhance{}, Unsharp{Radius: 3}},
			wantNames: []string{"default"},
		},
		{
			name:      "declared_default_wins",
			sets:      map[string]List{"default": {Normalize{}, Enhance{}}},
			lookup:    DefaultSetName,
			want:      List{Normalize{}, Enhance{}},
			wantNames: []string{"default"},
		},
		{
			name:      "named_set_alongside_synthesized_default",
			sets:      map[string]List{"bw": {Normalize{}}},
			lookup:    "bw",
			want:      List{Normalize{}},
			wantNames: []string{"bw", "default"},
		},
		{
			name:      "missing_set",
			sets:      map[string]List{"bw": {Normalize{}}},
			lookup:    "missing",
			wantErr:   true,
			wantNames: []string{"bw", "default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog(tt.sets)
			assert.Equal(t, tt.wantNames, c.Names(), "names should match")
			assert.Equal(t, len(tt.wantNames), c.Len(), "len should match")

			got, err := c.Lookup(tt.lookup)
			if tt.wantErr {
				require.Error(t, err, "lookup should fail")
				assert.ErrorIs(t, err, ErrUnknownTransformationSet, "error should be an unknown set error")
				var unknown *UnknownTransformationSetError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, tt.lookup, unknown.Name, "error should carry the name")
				return
			}
			require.NoError(t, err, "lookup should succeed")
			assert.Equal(t, tt.want, got, "list should match")
		})
	}
}

func TestCatalogDoesNotMutateInput(t *testing.T) {
	sets := map[string]List{"bw": {Normalize{}}}

	c := NewCatalog(sets)

	_, hasDefault := sets[DefaultSetName]
	assert.False(t, hasDefault, "caller map should not gain a default entry")
	assert.Len(t, sets, 1, "caller map should be untouched")

	sets["bw"][0] = Enhance{}
	got, err := c.Lookup("bw")
	require.NoError(t, err)
	assert.Equal(t, List{Normalize{}}, got, "catalog should hold its own copy")
}

func TestLookupReturnsCopy(t *testing.T) {
	c := NewCatalog(nil)

	first, err := c.Lookup(DefaultSetName)
	require.NoError(t, err)
	first[0] = Normalize{}

	second, err := c.Lookup(DefaultSetName)
	require.NoError(t, err)
	assert.Equal(t, DefaultList(), second, "mutating a lookup result must not affect the catalog")
}

type recorder struct {
	seen []string
}

func (r *recorder) VisitSize(s Size)           { r.seen = append(r.seen, s.String()) }
func (r *recorder) VisitNormalize(n Normalize) { r.seen = append(r.seen, n.String()) }
func (r *recorder) VisitEnhance(e Enhance)     { r.seen = append(r.seen, e.String()) }
func (r *recorder) VisitUnsharp(u Unsharp)     { r.seen = append(r.seen, u.String()) }

func TestListAccept(t *testing.T) {
	r := &recorder{}
	DefaultList().Accept(r)

	assert.Equal(t, []string{"size 1920x1080", "normalize", "enhance", "unsharp 3"}, r.seen)
	assert.Equal(t, "size 1920x1080, normalize, enhance, unsharp 3", DefaultList().String())
}

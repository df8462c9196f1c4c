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
	"bytes"
	"encoding/json"

	"github.com/walteh/albumrc/pkg/transform"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📚 Album describes one batch: where the images live, which transformation
// sets exist and which images to process, in order.
type Album struct {
	Name            string                    `json:"name" yaml:"name"`
	Base            string                    `json:"base" yaml:"base"`
	Transformations map[string]transform.List `json:"transformations,omitempty" yaml:"transformations,omitempty"`
	Images          []Image                   `json:"images" yaml:"images"`
	Discover        []string                  `json:"discover,omitempty" yaml:"discover,omitempty"`
}

// 🖼️ Image is one entry of an album. A nil TransformationSet selects the
// "default" set.
type Image struct {
	Filename          string  `json:"filename" yaml:"filename"`
	TransformationSet *string `json:"transformations,omitempty" yaml:"transformations,omitempty"`
}

// SetName returns the effective transformation-set name.
func (i Image) SetName() string {
	if i.TransformationSet == nil {
		return transform.DefaultSetName
	}
	return *i.TransformationSet
}

func (i Image) String() string {
	return i.Filename
}

// 🎯 ResolvedUnit is everything needed to convert one image.
type ResolvedUnit struct {
	Position   int            `json:"position" yaml:"position"`
	Filename   string         `json:"filename" yaml:"filename"`
	SetName    string         `json:"set" yaml:"set"`
	InputPath  string         `json:"input" yaml:"input"`
	OutputPath string         `json:"output" yaml:"output"`
	Operations transform.List `json:"operations" yaml:"operations"`
}

type imageFields struct {
	Filename          string  `json:"filename" yaml:"filename"`
	TransformationSet *string `json:"transformations,omitempty" yaml:"transformations,omitempty"`
}

// UnmarshalJSON accepts either a bare filename or an object.
func (i *Image) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return errors.Errorf("decoding image filename: %w", err)
		}
		*i = Image{Filename: name}
		return nil
	}

	var f imageFields
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return errors.Errorf("decoding image: %w", err)
	}
	*i = Image(f)
	return nil
}

// UnmarshalYAML accepts either a bare filename or a mapping.
func (i *Image) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*i = Image{Filename: node.Value}
		return nil
	case yaml.MappingNode:
		for j := 0; j < len(node.Content); j += 2 {
			switch key := node.Content[j].Value; key {
			case "filename", "transformations":
			default:
				return errors.Errorf("line %d: field %s not found in image", node.Content[j].Line, key)
			}
		}
		var f imageFields
		if err := node.Decode(&f); err != nil {
			return errors.Errorf("line %d: decoding image: %w", node.Line, err)
		}
		*i = Image(f)
		return nil
	default:
		return errors.Errorf("line %d: image must be a filename or a mapping", node.Line)
	}
}

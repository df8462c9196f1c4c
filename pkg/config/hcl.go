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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/albumrc/pkg/album"
	"github.com/walteh/albumrc/pkg/transform"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
//
//	name = "Holiday"
//	base = "/photos/holiday"
//
//	transformations "bw" {
//	  op "size" {
//	    width  = 800
//	    height = 600
//	  }
//	  op "normalize" {}
//	}
//
//	image "beach.jpg" {}
//	image "sunset.jpg" {
//	  transformations = "bw"
//	}
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

type hclOp struct {
	Kind   string  `hcl:"kind,label"`
	Width  *uint32 `hcl:"width,optional"`
	Height *uint32 `hcl:"height,optional"`
	Radius *uint32 `hcl:"radius,optional"`
}

type hclSet struct {
	Name string  `hcl:"name,label"`
	Ops  []hclOp `hcl:"op,block"`
}

type hclImage struct {
	Filename        string  `hcl:"filename,label"`
	Transformations *string `hcl:"transformations,optional"`
}

type hclAlbum struct {
	Name     string     `hcl:"name,optional"`
	Base     string     `hcl:"base"`
	Discover []string   `hcl:"discover,optional"`
	Sets     []hclSet   `hcl:"transformations,block"`
	Images   []hclImage `hcl:"image,block"`
}

// 📝 Parse parses the album from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*album.Album, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "album.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var doc hclAlbum
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &doc)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	a := &album.Album{
		Name:     doc.Name,
		Base:     doc.Base,
		Discover: doc.Discover,
	}

	if len(doc.Sets) > 0 {
		a.Transformations = make(map[string]transform.List, len(doc.Sets))
	}
	for _, set := range doc.Sets {
		if _, dup := a.Transformations[set.Name]; dup {
			return nil, errors.Errorf("transformation set %q declared twice", set.Name)
		}
		list := make(transform.List, 0, len(set.Ops))
		for i, op := range set.Ops {
			t, err := transform.Build(op.Kind, op.payload())
			if err != nil {
				return nil, errors.Errorf("transformations %q op %d: %w", set.Name, i, err)
			}
			list = append(list, t)
		}
		a.Transformations[set.Name] = list
	}

	for _, img := range doc.Images {
		a.Images = append(a.Images, album.Image{
			Filename:          img.Filename,
			TransformationSet: img.Transformations,
		})
	}

	return a, nil
}

func (op hclOp) payload() map[string]uint32 {
	out := map[string]uint32{}
	if op.Width != nil {
		out["width"] = *op.Width
	}
	if op.Height != nil {
		out["height"] = *op.Height
	}
	if op.Radius != nil {
		out["radius"] = *op.Radius
	}
	return out
}

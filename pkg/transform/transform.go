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
	"fmt"
	"strings"
)

// Kind names a transformation variant. The values double as the tags used in
// album documents.
type Kind string

const (
	KindSize      Kind = "Size"
	KindNormalize Kind = "Normalize"
	KindEnhance   Kind = "Enhance"
	KindUnsharp   Kind = "Unsharp"
)

// Transformation is one image operation. The set of implementations is closed:
// Size, Normalize, Enhance and Unsharp.
type Transformation interface {
	fmt.Stringer
	Kind() Kind
	Accept(v Visitor)
}

// Visitor is implemented by every consumer that translates transformations into
// something executable. A new variant adds a method here, so each consumer stops
// compiling until it handles it.
type Visitor interface {
	VisitSize(s Size)
	VisitNormalize(n Normalize)
	VisitEnhance(e Enhance)
	VisitUnsharp(u Unsharp)
}

// Size scales the image to fit within Width x Height.
type Size struct {
	Width  uint32
	Height uint32
}

// Normalize stretches the image contrast to the full range.
type Normalize struct{}

// Enhance applies a light noise-reducing enhancement.
type Enhance struct{}

// Unsharp sharpens with an unsharp mask of the given radius.
type Unsharp struct {
	Radius uint32
}

func (Size) Kind() Kind      { return KindSize }
func (Normalize) Kind() Kind { return KindNormalize }
func (Enhance) Kind() Kind   { return KindEnhance }
func (Unsharp) Kind() Kind   { return KindUnsharp }

func (s Size) Accept(v Visitor)      { v.VisitSize(s) }
func (n Normalize) Accept(v Visitor) { v.VisitNormalize(n) }
func (e Enhance) Accept(v Visitor)   { v.VisitEnhance(e) }
func (u Unsharp) Accept(v Visitor)   { v.VisitUnsharp(u) }

func (s Size) String() string    { return fmt.Sprintf("size %dx%d", s.Width, s.Height) }
func (Normalize) String() string { return "normalize" }
func (Enhance) String() string   { return "enhance" }
func (u Unsharp) String() string { return fmt.Sprintf("unsharp %d", u.Radius) }

// List is an ordered sequence of transformations.
type List []Transformation

// Clone returns an independent copy of l. All variants are plain values, so a
// shallow copy of the slice is enough.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Accept walks every transformation in order.
func (l List) Accept(v Visitor) {
	for _, t := range l {
		t.Accept(v)
	}
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, t := range l {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

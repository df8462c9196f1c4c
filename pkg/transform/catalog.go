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
	"sort"

	"gitlab.com/tozd/go/errors"
)

// DefaultSetName is the set used by images that do not name one.
const DefaultSetName = "default"

// ErrUnknownTransformationSet is the kind of every failed catalog lookup.
var ErrUnknownTransformationSet = errors.Base("unknown transformation set")

// UnknownTransformationSetError reports the name that was not found.
type UnknownTransformationSetError struct {
	Name string
}

func (e *UnknownTransformationSetError) Error() string {
	return fmt.Sprintf("unknown transformation set %q", e.Name)
}

func (e *UnknownTransformationSetError) Unwrap() error {
	return ErrUnknownTransformationSet
}

// DefaultList returns the built-in pipeline used when an album declares no
// "default" set.
func DefaultList() List {
	return List{
		Size{Width: 1920, Height: 1080},
		Normalize{},
		Enhance{},
		Unsharp{Radius: 3},
	}
}

// 📚 Catalog resolves transformation-set names to operation lists.
type Catalog struct {
	sets map[string]List
}

// 🏭 NewCatalog copies sets and adds the built-in default when none is declared.
// The caller's map is never modified.
func NewCatalog(sets map[string]List) *Catalog {
	c := &Catalog{sets: make(map[string]List, len(sets)+1)}
	for name, list := range sets {
		c.sets[name] = list.Clone()
	}
	if _, ok := c.sets[DefaultSetName]; !ok {
		c.sets[DefaultSetName] = DefaultList()
	}
	return c
}

// 🔍 Lookup returns a copy of the named list.
func (c *Catalog) Lookup(name string) (List, error) {
	list, ok := c.sets[name]
	if !ok {
		return nil, &UnknownTransformationSetError{Name: name}
	}
	return list.Clone(), nil
}

// Names returns the set names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sets))
	for name := range c.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of sets, including the default.
func (c *Catalog) Len() int {
	return len(c.sets)
}

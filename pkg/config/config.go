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
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/albumrc/pkg/album"
	"github.com/walteh/albumrc/pkg/transform"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for album document parsers
type Parser interface {
	// 📝 Parse parses the album from bytes
	Parse(ctx context.Context, data []byte) (*album.Album, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 Load reads an album document, expands its discover patterns and validates
// the result. A relative base is taken relative to the document's directory.
func Load(ctx context.Context, path string) (*album.Album, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading album")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading album file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	a, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing album: %w", err)
	}

	if a.Base != "" && !filepath.IsAbs(a.Base) {
		abs, err := filepath.Abs(filepath.Join(filepath.Dir(path), a.Base))
		if err != nil {
			return nil, errors.Errorf("getting absolute base path: %w", err)
		}
		a.Base = abs
	}

	if err := Expand(ctx, a); err != nil {
		return nil, errors.Errorf("discovering images: %w", err)
	}

	if err := Validate(a); err != nil {
		return nil, errors.Errorf("validating album: %w", err)
	}

	logger.Debug().
		Str("name", a.Name).
		Str("base", a.Base).
		Int("images", len(a.Images)).
		Int("sets", len(a.Transformations)).
		Msg("album loaded")

	return a, nil
}

// 🔍 Validate checks the album document and fills defaults. Set references are
// not checked here; resolution reports them.
func Validate(a *album.Album) error {
	if a.Base == "" {
		return errors.Errorf("base is required")
	}
	if len(a.Images) == 0 {
		return errors.Errorf("at least one image is required")
	}

	for i, img := range a.Images {
		if img.Filename == "" {
			return errors.Errorf("images[%d]: filename is required", i)
		}
		if strings.ContainsRune(img.Filename, '/') || strings.ContainsRune(img.Filename, filepath.Separator) {
			return errors.Errorf("images[%d]: filename %q must not contain a path separator", i, img.Filename)
		}
	}

	for name, list := range a.Transformations {
		if strings.TrimSpace(name) == "" {
			return errors.Errorf("transformation set names must not be empty")
		}
		// YAML decodes a null set without calling the list decoder
		if list == nil {
			return errors.Errorf("transformations[%q]: %w", name, transform.ErrNullList)
		}
	}

	if a.Name == "" {
		a.Name = filepath.Base(a.Base)
	}

	return nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*album.Album, error) {
	var a album.Album
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&a); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &a, nil
}

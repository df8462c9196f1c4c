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
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// ErrNullList is returned when a transformation list is written as null. An
// empty list must be written as [].
var ErrNullList = errors.Base("transformation list must not be null")

// 📦 fields holds the payload of a tagged transformation, keyed by lowercase
// field name.
type fields map[string]uint32

// 🏗️ Build creates a transformation from its tag and payload. Tags match
// case-insensitively; every payload field the variant needs must be present and
// nothing else is accepted.
func Build(tag string, payload map[string]uint32) (Transformation, error) {
	f := fields{}
	for k, v := range payload {
		f[strings.ToLower(k)] = v
	}

	switch Kind(titleCase(tag)) {
	case KindSize:
		if err := f.expect(KindSize, "width", "height"); err != nil {
			return nil, err
		}
		return Size{Width: f["width"], Height: f["height"]}, nil
	case KindNormalize:
		if err := f.expect(KindNormalize); err != nil {
			return nil, err
		}
		return Normalize{}, nil
	case KindEnhance:
		if err := f.expect(KindEnhance); err != nil {
			return nil, err
		}
		return Enhance{}, nil
	case KindUnsharp:
		if err := f.expect(KindUnsharp, "radius"); err != nil {
			return nil, err
		}
		return Unsharp{Radius: f["radius"]}, nil
	default:
		return nil, errors.Errorf("unknown transformation %q", tag)
	}
}

func (f fields) expect(kind Kind, names ...string) error {
	allowed := map[string]bool{}
	for _, n := range names {
		allowed[n] = true
		if _, ok := f[n]; !ok {
			return errors.Errorf("%s: missing field %q", kind, n)
		}
	}
	extra := []string{}
	for k := range f {
		if !allowed[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return errors.Errorf("%s: unexpected fields %v", kind, extra)
	}
	return nil
}

func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// 📝 payloadOf returns the serialized payload of t, nil for unit variants.
func payloadOf(t Transformation) map[string]uint32 {
	switch v := t.(type) {
	case Size:
		return map[string]uint32{"width": v.Width, "height": v.Height}
	case Unsharp:
		return map[string]uint32{"radius": v.Radius}
	default:
		return nil
	}
}

// UnmarshalJSON accepts the externally tagged form:
//
//	["Normalize", {"Size": {"width": 1920, "height": 1080}}, {"Unsharp": {"radius": 3}}]
func (l *List) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return ErrNullList
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Errorf("decoding transformation list: %w", err)
	}

	out := make(List, 0, len(raw))
	for i, item := range raw {
		t, err := decodeJSONItem(item)
		if err != nil {
			return errors.Errorf("transformation %d: %w", i, err)
		}
		out = append(out, t)
	}
	*l = out
	return nil
}

func decodeJSONItem(item json.RawMessage) (Transformation, error) {
	item = bytes.TrimSpace(item)
	if len(item) > 0 && item[0] == '"' {
		var tag string
		if err := json.Unmarshal(item, &tag); err != nil {
			return nil, errors.Errorf("decoding tag: %w", err)
		}
		return Build(tag, nil)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(item, &obj); err != nil {
		return nil, errors.Errorf("expected tag string or single-key object: %w", err)
	}
	if len(obj) != 1 {
		return nil, errors.Errorf("expected exactly one tag, got %d", len(obj))
	}

	for tag, body := range obj {
		var payload map[string]uint32
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				return nil, errors.Errorf("decoding %s payload: %w", tag, err)
			}
		}
		return Build(tag, payload)
	}
	return nil, errors.New("unreachable")
}

// MarshalJSON writes the same externally tagged form UnmarshalJSON reads.
func (l List) MarshalJSON() ([]byte, error) {
	out := make([]any, len(l))
	for i, t := range l {
		if p := payloadOf(t); p != nil {
			out[i] = map[string]map[string]uint32{string(t.Kind()): p}
		} else {
			out[i] = string(t.Kind())
		}
	}
	return json.Marshal(out)
}

// UnmarshalYAML accepts the YAML spelling of the tagged form:
//
//	default:
//	  - Size: {width: 1920, height: 1080}
//	  - Normalize
//	  - Unsharp: {radius: 3}
//
// A null node is rejected.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		return errors.Errorf("line %d: %w", node.Line, ErrNullList)
	}
	if node.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: transformation list must be a sequence", node.Line)
	}

	out := make(List, 0, len(node.Content))
	for i, item := range node.Content {
		t, err := decodeYAMLItem(item)
		if err != nil {
			return errors.Errorf("line %d: transformation %d: %w", item.Line, i, err)
		}
		out = append(out, t)
	}
	*l = out
	return nil
}

func decodeYAMLItem(item *yaml.Node) (Transformation, error) {
	switch item.Kind {
	case yaml.ScalarNode:
		return Build(item.Value, nil)
	case yaml.MappingNode:
		if len(item.Content) != 2 {
			return nil, errors.Errorf("expected exactly one tag, got %d", len(item.Content)/2)
		}
		tag, body := item.Content[0].Value, item.Content[1]
		var payload map[string]uint32
		if body.Tag != "!!null" {
			if err := body.Decode(&payload); err != nil {
				return nil, errors.Errorf("decoding %s payload: %w", tag, err)
			}
		}
		return Build(tag, payload)
	default:
		return nil, errors.New("expected tag string or single-key mapping")
	}
}

// MarshalYAML mirrors MarshalJSON.
func (l List) MarshalYAML() (any, error) {
	out := make([]any, len(l))
	for i, t := range l {
		if p := payloadOf(t); p != nil {
			out[i] = map[string]map[string]uint32{string(t.Kind()): p}
		} else {
			out[i] = string(t.Kind())
		}
	}
	return out, nil
}

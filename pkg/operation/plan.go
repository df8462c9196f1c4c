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

package operation

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/walteh/albumrc/pkg/album"
	"github.com/walteh/albumrc/pkg/log"
	"github.com/walteh/albumrc/pkg/workspace"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Plan output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// 📋 PlanOperation resolves an album and prints the result
type PlanOperation struct {
	opts   Options
	format string
	units  []album.ResolvedUnit
}

// 🏭 NewPlan creates a plan operation. Converter, Viewer and Keep are ignored.
func NewPlan(opts Options, format string) (*PlanOperation, error) {
	if opts.Album == nil {
		return nil, errors.Errorf("album is required")
	}
	switch format {
	case "":
		format = FormatTable
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return nil, errors.Errorf("unknown plan format %q", format)
	}
	return &PlanOperation{opts: opts, format: format}, nil
}

// Units returns the units of the last Execute.
func (p *PlanOperation) Units() []album.ResolvedUnit {
	return p.units
}

func (p *PlanOperation) Execute(ctx context.Context) error {
	clog := log.FromContext(ctx)

	ws := workspace.New(p.opts.TempDir)
	units, err := album.Resolve(ctx, p.opts.Album, ws.Dir(), album.WithConcurrency(p.opts.Concurrency))
	if err != nil {
		return err
	}
	p.units = units

	out, err := Render(p.format, units)
	if err != nil {
		return err
	}
	if p.format == FormatTable {
		clog.Header("plan for " + p.opts.Album.Name)
	}
	clog.Print(out)
	return nil
}

// Render formats units as a table, JSON or YAML.
func Render(format string, units []album.ResolvedUnit) (string, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(units, "", "  ")
		if err != nil {
			return "", errors.Errorf("encoding plan as JSON: %w", err)
		}
		return string(b) + "\n", nil
	case FormatYAML:
		b, err := yaml.Marshal(units)
		if err != nil {
			return "", errors.Errorf("encoding plan as YAML: %w", err)
		}
		return string(b), nil
	case FormatTable, "":
		return renderTable(units)
	default:
		return "", errors.Errorf("unknown plan format %q", format)
	}
}

func renderTable(units []album.ResolvedUnit) (string, error) {
	data := pterm.TableData{{"#", "input", "output", "set", "operations"}}
	for _, u := range units {
		data = append(data, []string{
			strconv.Itoa(u.Position),
			u.InputPath,
			filepath.Base(u.OutputPath),
			u.SetName,
			u.Operations.String(),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering plan table: %w", err)
	}
	return out, nil
}

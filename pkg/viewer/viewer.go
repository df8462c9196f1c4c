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

// Package viewer opens a directory in an external file browser.
package viewer

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Viewer runs Binary with Args followed by the directory and waits for it to
// exit. An empty Binary disables viewing.
type Viewer struct {
	Binary string
	Args   []string
}

func New(binary string, args ...string) *Viewer {
	return &Viewer{Binary: binary, Args: args}
}

func (v *Viewer) Enabled() bool {
	return v != nil && v.Binary != ""
}

func (v *Viewer) Command(dir string) []string {
	out := make([]string, 0, len(v.Args)+2)
	out = append(out, v.Binary)
	out = append(out, v.Args...)
	return append(out, dir)
}

func (v *Viewer) Open(ctx context.Context, dir string) error {
	logger := zerolog.Ctx(ctx)
	if !v.Enabled() {
		logger.Debug().Str("dir", dir).Msg("viewer disabled")
		return nil
	}

	argv := v.Command(dir)
	logger.Debug().Strs("command", argv).Msg("opening viewer")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return errors.Errorf("running viewer %s: %w: %s", v.Binary, err, msg)
		}
		return errors.Errorf("running viewer %s: %w", v.Binary, err)
	}
	return nil
}

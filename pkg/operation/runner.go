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
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	now func() time.Time
}

// 🏗️ NewRunner creates a new runner
func NewRunner() *OperationRunner {
	return &OperationRunner{now: time.Now}
}

// 🏃 Run executes op, logging its start, duration and failure. A cancelled
// context stops the run before op starts.
func (r *OperationRunner) Run(ctx context.Context, name string, op Operation) error {
	logger := zerolog.Ctx(ctx)

	if err := ctx.Err(); err != nil {
		return errors.Errorf("operation %s cancelled: %w", name, err)
	}

	start := r.now()
	logger.Debug().Str("operation", name).Msg("starting operation")

	err := op.Execute(ctx)

	evt := logger.Debug()
	if err != nil {
		evt = logger.Error().Err(err)
	}
	evt.Str("operation", name).Dur("duration", r.now().Sub(start)).Msg("operation finished")

	if err != nil {
		return errors.Errorf("executing %s: %w", name, err)
	}
	return nil
}

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

	"github.com/rs/zerolog"
	"github.com/walteh/dnpm-fixup/pkg/config"
	"github.com/walteh/dnpm-fixup/pkg/correction"
	"github.com/walteh/dnpm-fixup/pkg/log"
	"github.com/walteh/dnpm-fixup/pkg/record"
	"github.com/walteh/dnpm-fixup/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work executed by the runner
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains everything a run needs
type Options struct {
	// Config holds the table path and the input and output directories
	Config *config.Config
	// Logger receives the console commentary
	Logger *log.Logger
}

// 🏗️ BaseOperation carries the pieces shared by operations
type BaseOperation struct {
	Options
	StatusMgr *status.Manager
}

// 🏭 NewBaseOperation creates a base operation writing into the configured
// output directory
func NewBaseOperation(ctx context.Context, opts Options) BaseOperation {
	return BaseOperation{
		Options:   opts,
		StatusMgr: status.New(opts.Config.OutputDir, zerolog.Ctx(ctx)),
	}
}

// 🚀 Run validates the configuration, loads the correction table, classifies
// the input directory and fixes every matching record. Per-file problems are
// reported and counted in the returned summary; only precondition failures
// are returned as errors.
func Run(ctx context.Context, opts Options) (*status.Summary, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}

	if err := opts.Config.Validate(ctx); err != nil {
		return nil, err
	}

	table, err := correction.Load(ctx, opts.Config.TablePath)
	if err != nil {
		return nil, err
	}
	opts.Logger.Infof("Number of TAN/date pairs to fix: %d", table.Len())

	batch, err := record.Classify(ctx, opts.Config.InputDir)
	if err != nil {
		return nil, err
	}
	opts.Logger.Infof("Found %d patient record files", len(batch.PatientRecords))
	opts.Logger.Infof("Found %d submission report files", len(batch.SubmissionReports))

	op := NewFixupOperation(ctx, opts, table, batch)
	if err := NewRunner(zerolog.Ctx(ctx)).Run(ctx, op); err != nil {
		return nil, err
	}

	summary := op.StatusMgr.Summary()
	opts.Logger.LogSummary(summary)

	return &summary, nil
}

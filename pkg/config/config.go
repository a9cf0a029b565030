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
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrTableNotFound     = errors.Base("config file not found")
	ErrInputDirNotFound  = errors.Base("input directory not found")
	ErrOutputDirNotFound = errors.Base("output directory not found")
)

// 📚 Config holds the three paths a fix-up run works with
type Config struct {
	TablePath string // Correction table file (<tan>,<date> rows)
	InputDir  string // Directory holding the records to inspect
	OutputDir string // Existing directory receiving corrected records
}

// 🔍 Validate checks that every path is set and exists with the right type.
// The table is checked first, then the input and output directories.
func (cfg *Config) Validate(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	// Check required fields
	if cfg.TablePath == "" {
		return errors.Errorf("config path is required")
	}
	if cfg.InputDir == "" {
		return errors.Errorf("input directory is required")
	}
	if cfg.OutputDir == "" {
		return errors.Errorf("output directory is required")
	}

	// Clean up paths
	cfg.TablePath = filepath.Clean(cfg.TablePath)
	cfg.InputDir = filepath.Clean(cfg.InputDir)
	cfg.OutputDir = filepath.Clean(cfg.OutputDir)

	if !isFile(cfg.TablePath) {
		return errors.Errorf("%w: %s", ErrTableNotFound, cfg.TablePath)
	}
	if !isDir(cfg.InputDir) {
		return errors.Errorf("%w: %s", ErrInputDirNotFound, cfg.InputDir)
	}
	if !isDir(cfg.OutputDir) {
		return errors.Errorf("%w: %s", ErrOutputDirNotFound, cfg.OutputDir)
	}

	logger.Debug().Str("config", cfg.String()).Msg("paths validated")
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s: %s -> %s", cfg.TablePath, cfg.InputDir, cfg.OutputDir)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

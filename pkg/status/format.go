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

package status

import (
	"fmt"
)

// 🎨 FileFormatter renders tracked outcomes as short log messages
type FileFormatter interface {
	// FormatFileOperation formats the outcome of a processed file
	FormatFileOperation(info FileInfo) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file outcome with an emoji
func (f *DefaultFileFormatter) FormatFileOperation(info FileInfo) string {
	switch info.Status {
	case StatusFixed:
		return fmt.Sprintf("📝 Fixed %s (%s -> %s)", info.Name, info.TAN, info.Date)
	case StatusUnmatched:
		return fmt.Sprintf("👍 Unchanged %s", info.Name)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s", info.Name)
	default:
		return fmt.Sprintf("❔ Unknown %s", info.Name)
	}
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

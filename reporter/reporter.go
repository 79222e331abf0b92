// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporter defines the diagnostic values produced while parsing and
// linking, and the handler that accumulates them.
//
// Diagnostics are plain values with source ranges; nothing in this module
// panics or returns an error to signal a problem in the input. Rendering
// diagnostics for humans is the caller's concern.
package reporter

import (
	"sort"
	"sync"

	"github.com/bufbuild/aidlcompile/ast"
)

// Severity classifies how bad a diagnostic is.
type Severity int

const (
	// SeverityError marks input that is wrong: it would be rejected by a
	// code generator.
	SeverityError Severity = iota + 1
	// SeverityWarning marks input that is suspicious or discouraged but
	// usable.
	SeverityWarning
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding against a source file.
type Diagnostic struct {
	Severity Severity
	Range    ast.Range
	Message  string

	// ContextMessage is a short label suitable for display right at the
	// range, e.g. "unresolved import". Optional.
	ContextMessage string

	// Hint suggests how to fix the problem. Optional.
	Hint string

	// Related points at other source locations that explain the finding,
	// such as the first occurrence of a duplicated name.
	Related []RelatedInfo
}

// RelatedInfo is a secondary location attached to a [Diagnostic].
type RelatedInfo struct {
	// FileKey identifies the file the range belongs to, which is not
	// necessarily the file the diagnostic was reported against.
	FileKey string
	Range   ast.Range
	Message string
}

// Option customizes a diagnostic beyond its message and range.
type Option func(*Diagnostic)

// ContextMessage returns an Option that sets the short in-place label.
func ContextMessage(msg string) Option {
	return func(d *Diagnostic) { d.ContextMessage = msg }
}

// Hint returns an Option that sets the fix-it hint.
func Hint(hint string) Option {
	return func(d *Diagnostic) { d.Hint = hint }
}

// Related returns an Option that appends a secondary location.
func Related(fileKey string, rng ast.Range, msg string) Option {
	return func(d *Diagnostic) {
		d.Related = append(d.Related, RelatedInfo{FileKey: fileKey, Range: rng, Message: msg})
	}
}

// Handler accumulates the diagnostics for a single file. The zero value is
// not usable; use [NewHandler].
//
// A Handler may be shared across goroutines.
type Handler struct {
	fileKey string

	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewHandler constructs a handler for the file identified by fileKey.
func NewHandler(fileKey string) *Handler {
	return &Handler{fileKey: fileKey}
}

// FileKey returns the key of the file this handler reports against.
func (h *Handler) FileKey() string {
	return h.fileKey
}

// Error records an error diagnostic at the given range.
func (h *Handler) Error(rng ast.Range, msg string, opts ...Option) {
	h.report(SeverityError, rng, msg, opts)
}

// Warning records a warning diagnostic at the given range.
func (h *Handler) Warning(rng ast.Range, msg string, opts ...Option) {
	h.report(SeverityWarning, rng, msg, opts)
}

func (h *Handler) report(sev Severity, rng ast.Range, msg string, opts []Option) {
	d := Diagnostic{Severity: sev, Range: rng, Message: msg}
	for _, opt := range opts {
		opt(&d)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.diagnostics = append(h.diagnostics, d)
}

// HasErrors reports whether at least one error-severity diagnostic was
// recorded.
func (h *Handler) HasErrors() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, d := range h.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Diagnostics returns a copy of the recorded diagnostics, sorted by start
// offset. Diagnostics at the same offset keep their report order.
func (h *Handler) Diagnostics() []Diagnostic {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Diagnostic, len(h.diagnostics))
	copy(out, h.diagnostics)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.OffsetStart < out[j].Range.OffsetStart
	})
	return out
}

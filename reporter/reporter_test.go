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

package reporter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/aidlcompile/ast"
	"github.com/bufbuild/aidlcompile/reporter"
)

func rangeAt(offset int) ast.Range {
	return ast.Range{OffsetStart: offset, OffsetEnd: offset + 1}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler("file.aidl")
	assert.Equal(t, "file.aidl", h.FileKey())
	assert.False(t, h.HasErrors())
	assert.Empty(t, h.Diagnostics())

	h.Warning(rangeAt(5), "something odd")
	assert.False(t, h.HasErrors())
	h.Error(rangeAt(2), "something wrong",
		reporter.ContextMessage("wrongness"),
		reporter.Hint("fix it"),
		reporter.Related("other.aidl", rangeAt(0), "see here"),
	)
	assert.True(t, h.HasErrors())

	diags := h.Diagnostics()
	require.Len(t, diags, 2)

	// Sorted by start offset, not report order.
	assert.Equal(t, "something wrong", diags[0].Message)
	assert.Equal(t, reporter.SeverityError, diags[0].Severity)
	assert.Equal(t, "wrongness", diags[0].ContextMessage)
	assert.Equal(t, "fix it", diags[0].Hint)
	require.Len(t, diags[0].Related, 1)
	assert.Equal(t, "other.aidl", diags[0].Related[0].FileKey)
	assert.Equal(t, "see here", diags[0].Related[0].Message)

	assert.Equal(t, "something odd", diags[1].Message)
	assert.Equal(t, reporter.SeverityWarning, diags[1].Severity)
}

func TestDiagnosticsStableOrder(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler("file.aidl")
	h.Error(rangeAt(3), "first at 3")
	h.Error(rangeAt(3), "second at 3")
	h.Error(rangeAt(1), "at 1")

	diags := h.Diagnostics()
	require.Len(t, diags, 3)
	assert.Equal(t, "at 1", diags[0].Message)
	assert.Equal(t, "first at 3", diags[1].Message)
	assert.Equal(t, "second at 3", diags[2].Message)
}

func TestHandlerConcurrent(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler("file.aidl")
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				h.Warning(rangeAt(i), "w")
			}
		}()
	}
	wg.Wait()
	assert.Len(t, h.Diagnostics(), 800)
	assert.False(t, h.HasErrors())
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", reporter.SeverityError.String())
	assert.Equal(t, "warning", reporter.SeverityWarning.String())
	assert.Equal(t, "unknown", reporter.Severity(0).String())
}

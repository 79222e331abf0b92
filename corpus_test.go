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

package aidlcompile_test

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/aidlcompile"
	"github.com/bufbuild/aidlcompile/internal/corpora"
	"github.com/bufbuild/aidlcompile/reporter"
	"github.com/bufbuild/aidlcompile/walk"
)

type symbolInfo struct {
	Name string
	Kind string
}

// TestCorpus validates every testdata/parse/*.aidl file and compares the
// rendered diagnostics and declared symbols against golden files. Set
// AIDLCOMPILE_REFRESH to a glob over case names to regenerate them.
func TestCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata/parse",
		Refresh:   "AIDLCOMPILE_REFRESH",
		Extension: "aidl",
		Outputs: []corpora.Output{
			{Extension: "diagnostics"},
			{Extension: "symbols"},
		},
		Test: func(t *testing.T, path, text string) []string {
			key := filepath.Base(path)
			p := aidlcompile.NewParser()
			p.AddContent(key, text)
			results, err := p.Validate(context.Background())
			require.NoError(t, err)
			require.Len(t, results, 1)
			result := results[0]

			var symbols []symbolInfo
			if result.Tree != nil {
				walk.Walk(result.Tree, walk.FilterItemsAndItemElements, func(sym walk.Symbol) bool {
					symbols = append(symbols, symbolInfo{
						Name: sym.QualifiedName(),
						Kind: sym.Kind().String(),
					})
					return true
				})
			}
			var symbolsText string
			if len(symbols) > 0 {
				symbolsText = corpora.ToYAML(symbols)
			}
			return []string{renderDiagnostics(result.Diagnostics), symbolsText}
		},
	}.Run(t)
}

func renderDiagnostics(diags []reporter.Diagnostic) string {
	var sb strings.Builder
	for _, d := range diags {
		fmt.Fprintf(&sb, "%s at %s: %s\n",
			d.Severity, d.Range, strings.ReplaceAll(d.Message, "\n", " "))
		if d.Hint != "" {
			fmt.Fprintf(&sb, "  hint: %s\n", d.Hint)
		}
		for _, rel := range d.Related {
			fmt.Fprintf(&sb, "  related %s at %s: %s\n", rel.FileKey, rel.Range, rel.Message)
		}
	}
	return sb.String()
}

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

package linker

import (
	"fmt"

	"github.com/bufbuild/aidlcompile/ast"
	"github.com/bufbuild/aidlcompile/internal/ext/mapsx"
	"github.com/bufbuild/aidlcompile/reporter"
)

// legalizeImports reports duplicated, unresolved, and unused imports.
func (l *fileLinker) legalizeImports() {
	fileKey := l.file.Info.Key()
	seen := make(map[string]*ast.Import)
	for _, imp := range l.file.Tree.Imports {
		qualified := imp.QualifiedName()
		if prev, ok := seen[qualified]; ok {
			l.file.Handler.Error(
				imp.SymbolRange,
				fmt.Sprintf("Duplicated import `%s`", qualified),
				reporter.ContextMessage("duplicated import"),
				reporter.Related(fileKey, prev.SymbolRange, "previous location"),
			)
			continue
		}
		seen[qualified] = imp

		if _, ok := l.symbols.Lookup(qualified); !ok {
			l.file.Handler.Error(
				imp.SymbolRange,
				fmt.Sprintf("Unresolved import `%s`", qualified),
				reporter.ContextMessage("unresolved import"),
			)
			continue
		}
		if !mapsx.Contains(l.usedImports, qualified) {
			l.file.Handler.Warning(
				imp.SymbolRange,
				fmt.Sprintf("Unused import `%s`", qualified),
				reporter.ContextMessage("unused import"),
			)
		}
	}
}

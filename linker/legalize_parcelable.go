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
	"github.com/bufbuild/aidlcompile/reporter"
)

func (l *fileLinker) legalizeParcelable(par *ast.Parcelable) {
	fieldNames := make(map[string]ast.Range)
	for _, field := range par.Fields() {
		prev, ok := fieldNames[field.Name]
		if !ok {
			fieldNames[field.Name] = field.SymbolRange
			continue
		}
		l.file.Handler.Error(
			field.SymbolRange,
			fmt.Sprintf("Duplicated field `%s`", field.Name),
			reporter.ContextMessage("duplicated field"),
			reporter.Related(l.file.Info.Key(), prev, "previous location"),
		)
	}
	l.legalizeConsts(constElements(par.Elements))
}

func (l *fileLinker) legalizeEnum(enum *ast.Enum) {
	names := make(map[string]ast.Range)
	for _, el := range enum.Elements {
		prev, ok := names[el.Name]
		if !ok {
			names[el.Name] = el.SymbolRange
			continue
		}
		l.file.Handler.Error(
			el.SymbolRange,
			fmt.Sprintf("Duplicated enum element `%s`", el.Name),
			reporter.ContextMessage("duplicated enum element"),
			reporter.Related(l.file.Info.Key(), prev, "previous location"),
		)
	}
}

// legalizeConsts reports duplicated const names. Consts live in their own
// namespace, separate from methods and fields.
func (l *fileLinker) legalizeConsts(consts []*ast.Const) {
	names := make(map[string]ast.Range)
	for _, c := range consts {
		prev, ok := names[c.Name]
		if !ok {
			names[c.Name] = c.SymbolRange
			continue
		}
		l.file.Handler.Error(
			c.SymbolRange,
			fmt.Sprintf("Duplicated const `%s`", c.Name),
			reporter.ContextMessage("duplicated const"),
			reporter.Related(l.file.Info.Key(), prev, "previous location"),
		)
	}
}

// constElements filters the consts out of a heterogeneous element slice, in
// declaration order.
func constElements[E any](elements []E) []*ast.Const {
	var consts []*ast.Const
	for _, el := range elements {
		if c, ok := any(el).(*ast.Const); ok {
			consts = append(consts, c)
		}
	}
	return consts
}

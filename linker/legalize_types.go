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

// legalizeTypes checks every type reference of the file: unresolved names,
// bare generics, and what containers may contain.
func (l *fileLinker) legalizeTypes() {
	l.eachType(l.legalizeType)
}

func (l *fileLinker) legalizeType(typ *ast.Type) {
	switch typ.Kind {
	case ast.TypeKindUnresolved:
		l.file.Handler.Warning(
			typ.SymbolRange,
			fmt.Sprintf("Unresolved type `%s`", typ.Name),
			reporter.ContextMessage("unresolved type"),
		)
	case ast.TypeKindArray:
		l.legalizeArray(typ)
	case ast.TypeKindList:
		l.legalizeList(typ)
	case ast.TypeKindMap:
		l.legalizeMap(typ)
	}
	for _, generic := range typ.GenericTypes {
		l.legalizeType(generic)
	}
}

func (l *fileLinker) legalizeArray(typ *ast.Type) {
	element := typ.GenericTypes[0]
	if element.Kind == ast.TypeKindArray {
		l.file.Handler.Error(
			typ.FullRange,
			"Unsupported multi-dimensional array",
			reporter.ContextMessage("multi-dimensional array"),
			reporter.Hint("must be one-dimensional"),
		)
		return
	}
	if validArrayElement(element) {
		return
	}
	l.file.Handler.Error(
		element.FullRange,
		fmt.Sprintf("Invalid array element `%s`", element.String()),
		reporter.ContextMessage("invalid array element"),
		reporter.Hint("must be a primitive, an enum, a String, a parcelable or a IBinder"),
	)
}

func validArrayElement(typ *ast.Type) bool {
	switch typ.Kind {
	case ast.TypeKindPrimitive, ast.TypeKindString:
		return true
	case ast.TypeKindResolved:
		switch typ.ResolvedKind {
		case ast.ItemKindParcelable, ast.ItemKindDeclaredParcelable,
			ast.ItemKindBuiltin, ast.ItemKindEnum:
			return true
		}
		return false
	case ast.TypeKindUnresolved:
		// Already reported; no point piling on.
		return true
	}
	return false
}

func (l *fileLinker) legalizeList(typ *ast.Type) {
	if len(typ.GenericTypes) == 0 {
		l.file.Handler.Warning(
			typ.SymbolRange,
			"Declaring a non-generic list is not recommended",
			reporter.ContextMessage("non-generic list"),
			reporter.Hint("consider adding a parameter (e.g.: List<String>)"),
		)
		return
	}
	element := typ.GenericTypes[0]
	if validListElement(element) {
		return
	}
	l.file.Handler.Error(
		element.FullRange,
		fmt.Sprintf("Invalid list element `%s`", element.String()),
		reporter.ContextMessage("invalid list element"),
		reporter.Hint("must be a parcelable, a String, a IBinder or a ParcelFileDescriptor"),
	)
}

func validListElement(typ *ast.Type) bool {
	switch typ.Kind {
	case ast.TypeKindString:
		return true
	case ast.TypeKindResolved:
		switch typ.ResolvedKind {
		case ast.ItemKindParcelable, ast.ItemKindDeclaredParcelable, ast.ItemKindBuiltin:
			return true
		}
		return false
	case ast.TypeKindUnresolved:
		return true
	}
	return false
}

func (l *fileLinker) legalizeMap(typ *ast.Type) {
	if len(typ.GenericTypes) == 0 {
		l.file.Handler.Warning(
			typ.SymbolRange,
			"Declaring a non-generic map is not recommended",
			reporter.ContextMessage("non-generic map"),
			reporter.Hint("consider adding key and value parameters (e.g.: Map<String, String>)"),
		)
		return
	}
	key, value := typ.GenericTypes[0], typ.GenericTypes[1]
	if key.Kind != ast.TypeKindString && key.Kind != ast.TypeKindUnresolved {
		l.file.Handler.Error(
			key.FullRange,
			fmt.Sprintf("Invalid map key `%s`", key.String()),
			reporter.ContextMessage("invalid map key"),
			reporter.Hint("must be a `String`"),
		)
	}
	if invalidMapValue(value) {
		l.file.Handler.Error(
			value.FullRange,
			fmt.Sprintf("Invalid map value `%s`", value.String()),
			reporter.ContextMessage("invalid map value"),
			reporter.Hint("cannot be a primitive"),
		)
	}
}

func invalidMapValue(typ *ast.Type) bool {
	switch typ.Kind {
	case ast.TypeKindPrimitive, ast.TypeKindVoid:
		return true
	case ast.TypeKindResolved:
		return typ.ResolvedKind == ast.ItemKindEnum
	}
	return false
}

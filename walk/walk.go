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

// Package walk provides read-only traversal and position queries over parsed
// trees.
//
// Traversal is depth-first in source order, visiting parents before their
// children: the package, then imports, declared parcelables, the item, and
// its elements. A method yields its return type before its arguments, and
// generic types yield their parameters after themselves.
package walk

import (
	"github.com/bufbuild/aidlcompile/ast"
)

// Walk traverses tree and calls fn for every symbol the filter admits. fn
// returning false stops the walk immediately.
func Walk(tree *ast.Aidl, filter Filter, fn func(Symbol) bool) {
	w := &walker{filter: filter, fn: fn}
	w.file(tree)
}

type walker struct {
	filter  Filter
	fn      func(Symbol) bool
	stopped bool
}

func (w *walker) visit(kind SymbolKind, node any, qualified string) {
	if w.stopped || !w.filter.matches(kind) {
		return
	}
	if !w.fn(Symbol{kind: kind, node: node, qualified: qualified}) {
		w.stopped = true
	}
}

func (w *walker) file(tree *ast.Aidl) {
	pkg := tree.Package.Name
	w.visit(SymbolKindPackage, tree.Package, pkg)
	for _, imp := range tree.Imports {
		w.visit(SymbolKindImport, imp, imp.QualifiedName())
	}
	for _, dp := range tree.DeclaredParcelables {
		w.visit(SymbolKindDeclaredParcelable, dp, dp.QualifiedName())
	}
	if tree.Item == nil || w.stopped {
		return
	}

	itemName := pkg + "." + ast.ItemName(tree.Item)
	switch item := tree.Item.(type) {
	case *ast.Interface:
		w.visit(SymbolKindInterface, item, itemName)
		for _, el := range item.Elements {
			switch el := el.(type) {
			case *ast.Method:
				w.method(el, itemName)
			case *ast.Const:
				w.constant(el, itemName)
			}
		}
	case *ast.Parcelable:
		w.visit(SymbolKindParcelable, item, itemName)
		for _, el := range item.Elements {
			switch el := el.(type) {
			case *ast.Field:
				w.visit(SymbolKindField, el, itemName+"."+el.Name)
				w.typeRef(el.FieldType)
			case *ast.Const:
				w.constant(el, itemName)
			}
		}
	case *ast.Enum:
		w.visit(SymbolKindEnum, item, itemName)
		for _, el := range item.Elements {
			w.visit(SymbolKindEnumElement, el, itemName+"."+el.Name)
		}
	}
}

func (w *walker) method(method *ast.Method, itemName string) {
	qualified := itemName + "." + method.Name
	w.visit(SymbolKindMethod, method, qualified)
	w.typeRef(method.ReturnType)
	for _, arg := range method.Args {
		name := arg.Name
		if name == "" {
			name = arg.ArgType.String()
		}
		w.visit(SymbolKindArg, arg, qualified+"."+name)
		w.typeRef(arg.ArgType)
	}
}

func (w *walker) constant(c *ast.Const, itemName string) {
	w.visit(SymbolKindConst, c, itemName+"."+c.Name)
	w.typeRef(c.ConstType)
}

func (w *walker) typeRef(typ *ast.Type) {
	if typ == nil {
		return
	}
	qualified := typ.Name
	if typ.Definition != nil {
		qualified = typ.Definition.QualifiedName
	}
	w.visit(SymbolKindType, typ, qualified)
	for _, generic := range typ.GenericTypes {
		w.typeRef(generic)
	}
}

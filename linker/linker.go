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

// Package linker resolves type references across a set of parsed files and
// checks the semantic rules that parsing alone cannot: import hygiene,
// container element legality, method id assignment, argument directions, and
// duplicate names.
//
// Linking mutates the trees it is given: custom type references flip from
// unresolved to resolved in place. A tree is linked at most once.
package linker

import (
	"github.com/bufbuild/aidlcompile/ast"
	"github.com/bufbuild/aidlcompile/reporter"
)

// File pairs one parsed file with the handler its diagnostics go to. Tree is
// nil when the file was damaged beyond parsing; such files still occupy a
// slot so that their keys stay reserved, but contribute no symbols.
type File struct {
	Info    *ast.FileInfo
	Tree    *ast.Aidl
	Handler *reporter.Handler
}

// Link builds the symbol table over all files, then resolves and legalizes
// each file against it. Files are processed in the order given; to get
// deterministic diagnostics, pass them sorted by key.
func Link(files []*File) *Symbols {
	symbols := NewSymbols()
	for _, file := range files {
		symbols.collect(file)
	}
	for _, file := range files {
		if file.Tree == nil {
			continue
		}
		l := newFileLinker(file, symbols)
		l.resolve()
		l.legalizeImports()
		l.legalizeTypes()
		l.legalizeItem()
	}
	return symbols
}

type fileLinker struct {
	file    *File
	symbols *Symbols

	importsBySimple    map[string]*ast.Import
	importsByQualified map[string]*ast.Import
	usedImports        map[string]struct{}
}

func newFileLinker(file *File, symbols *Symbols) *fileLinker {
	l := &fileLinker{
		file:               file,
		symbols:            symbols,
		importsBySimple:    make(map[string]*ast.Import),
		importsByQualified: make(map[string]*ast.Import),
		usedImports:        make(map[string]struct{}),
	}
	for _, imp := range file.Tree.Imports {
		// The first import of a name wins; duplicates are reported later.
		if _, ok := l.importsBySimple[imp.Name]; !ok {
			l.importsBySimple[imp.Name] = imp
		}
		if _, ok := l.importsByQualified[imp.QualifiedName()]; !ok {
			l.importsByQualified[imp.QualifiedName()] = imp
		}
	}
	return l
}

// eachType calls fn once for every top-level type reference of the file's
// item: return types, argument types, const types, and field types. fn is
// responsible for descending into generic parameters.
func (l *fileLinker) eachType(fn func(*ast.Type)) {
	switch item := l.file.Tree.Item.(type) {
	case *ast.Interface:
		for _, el := range item.Elements {
			switch el := el.(type) {
			case *ast.Method:
				fn(el.ReturnType)
				for _, arg := range el.Args {
					fn(arg.ArgType)
				}
			case *ast.Const:
				fn(el.ConstType)
			}
		}
	case *ast.Parcelable:
		for _, el := range item.Elements {
			switch el := el.(type) {
			case *ast.Field:
				fn(el.FieldType)
			case *ast.Const:
				fn(el.ConstType)
			}
		}
	case *ast.Enum:
		// Enums reference no types.
	}
}

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

package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/aidlcompile/ast"
	"github.com/bufbuild/aidlcompile/linker"
	"github.com/bufbuild/aidlcompile/parser"
	"github.com/bufbuild/aidlcompile/reporter"
	"github.com/bufbuild/aidlcompile/walk"
)

func parseTree(t *testing.T, text string) *ast.Aidl {
	t.Helper()
	info := ast.NewFileInfo("test.aidl", text)
	handler := reporter.NewHandler("test.aidl")
	tree := parser.Parse(info, handler)
	require.NotNil(t, tree)
	require.False(t, handler.HasErrors(), "fixture must parse cleanly: %v", handler.Diagnostics())
	return tree
}

func linkTree(t *testing.T, tree *ast.Aidl) {
	t.Helper()
	linker.Link([]*linker.File{{
		Info:    ast.NewFileInfo("test.aidl", ""),
		Tree:    tree,
		Handler: reporter.NewHandler("test.aidl"),
	}})
}

const interfaceSource = `package com.demo;

import android.os.Bundle;

parcelable Extra;

interface IDemo {
    const int VERSION = 3;
    int add(int a, in String b);
    oneway void fire(in List<String> names);
}
`

func collect(tree *ast.Aidl, filter walk.Filter) []walk.Symbol {
	var symbols []walk.Symbol
	walk.Walk(tree, filter, func(sym walk.Symbol) bool {
		symbols = append(symbols, sym)
		return true
	})
	return symbols
}

func qualifiedNames(symbols []walk.Symbol) []string {
	names := make([]string, len(symbols))
	for i, sym := range symbols {
		names[i] = sym.Kind().String() + " " + sym.QualifiedName()
	}
	return names
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)
	assert.Equal(t, []string{
		"package com.demo",
		"import android.os.Bundle",
		"declared parcelable Extra",
		"interface com.demo.IDemo",
		"const com.demo.IDemo.VERSION",
		"type int",
		"method com.demo.IDemo.add",
		"type int",
		"argument com.demo.IDemo.add.a",
		"type int",
		"argument com.demo.IDemo.add.b",
		"type String",
		"method com.demo.IDemo.fire",
		"type void",
		"argument com.demo.IDemo.fire.names",
		"type List",
		"type String",
	}, qualifiedNames(collect(tree, walk.FilterAll)))
}

func TestWalkFilters(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)

	assert.Equal(t, []string{
		"declared parcelable Extra",
		"interface com.demo.IDemo",
	}, qualifiedNames(collect(tree, walk.FilterItemsOnly)))

	assert.Equal(t, []string{
		"declared parcelable Extra",
		"interface com.demo.IDemo",
		"const com.demo.IDemo.VERSION",
		"method com.demo.IDemo.add",
		"method com.demo.IDemo.fire",
	}, qualifiedNames(collect(tree, walk.FilterItemsAndItemElements)))

	assert.Equal(t, []string{
		"argument com.demo.IDemo.add.a",
		"argument com.demo.IDemo.add.b",
		"argument com.demo.IDemo.fire.names",
	}, qualifiedNames(collect(tree, walk.FilterParametersOnly)))

	types := collect(tree, walk.FilterTypesOnly)
	require.Len(t, types, 7)
	for _, sym := range types {
		assert.Equal(t, walk.SymbolKindType, sym.Kind())
	}
}

func TestWalkStops(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)
	var count int
	walk.Walk(tree, walk.FilterAll, func(walk.Symbol) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestWalkParcelableAndEnum(t *testing.T) {
	t.Parallel()

	par := parseTree(t, `package com.demo;

parcelable Point {
    int x;
    int y = 0;
    const int DIMS = 2;
}
`)
	assert.Equal(t, []string{
		"parcelable com.demo.Point",
		"field com.demo.Point.x",
		"field com.demo.Point.y",
		"const com.demo.Point.DIMS",
	}, qualifiedNames(collect(par, walk.FilterItemsAndItemElements)))

	enum := parseTree(t, `package com.demo;

enum Mode {
    OFF = 0,
    ON = 1,
}
`)
	assert.Equal(t, []string{
		"enum com.demo.Mode",
		"enum element com.demo.Mode.OFF",
		"enum element com.demo.Mode.ON",
	}, qualifiedNames(collect(enum, walk.FilterItemsAndItemElements)))
}

func TestWalkResolvedTypeQualifiedName(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, `package com.demo;

parcelable Extra;

interface IDemo {
    void put(in Extra e);
}
`)
	linkTree(t, tree)

	var typeNames []string
	walk.Walk(tree, walk.FilterTypesOnly, func(sym walk.Symbol) bool {
		typeNames = append(typeNames, sym.QualifiedName())
		return true
	})
	assert.Equal(t, []string{"void", "Extra"}, typeNames)
}

func TestSymbolSignatures(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)
	var signatures []string
	walk.Walk(tree, walk.FilterAll, func(sym walk.Symbol) bool {
		if sym.Kind() != walk.SymbolKindType {
			signatures = append(signatures, sym.Signature())
		}
		return true
	})
	assert.Equal(t, []string{
		"package com.demo",
		"import android.os.Bundle",
		"parcelable Extra",
		"interface IDemo",
		"const int VERSION = 3",
		"int add(int a, in String b)",
		"int a",
		"in String b",
		"oneway void fire(in List<String> names)",
		"in List<String> names",
	}, signatures)
}

func TestSymbolNames(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)
	byQualified := make(map[string]walk.Symbol)
	walk.Walk(tree, walk.FilterAll, func(sym walk.Symbol) bool {
		byQualified[sym.QualifiedName()] = sym
		return true
	})

	assert.Equal(t, "com.demo", byQualified["com.demo"].Name())
	assert.Equal(t, "IDemo", byQualified["com.demo.IDemo"].Name())
	assert.Equal(t, "add", byQualified["com.demo.IDemo.add"].Name())
	assert.Equal(t, "Bundle", byQualified["android.os.Bundle"].Name())
}

func TestSymbolDetails(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)
	byQualified := make(map[string]walk.Symbol)
	walk.Walk(tree, walk.FilterAll, func(sym walk.Symbol) bool {
		byQualified[sym.QualifiedName()] = sym
		return true
	})

	assert.Equal(t, "parcelable", byQualified["Extra"].Details())
	assert.Equal(t, "interface", byQualified["com.demo.IDemo"].Details())
	assert.Equal(t, "const int", byQualified["com.demo.IDemo.VERSION"].Details())
	assert.Equal(t, "int(int, in String)", byQualified["com.demo.IDemo.add"].Details())
	assert.Equal(t, "void(in List<String>)", byQualified["com.demo.IDemo.fire"].Details())
	assert.Equal(t, "int", byQualified["com.demo.IDemo.add.a"].Details())
	assert.Equal(t, "in String", byQualified["com.demo.IDemo.add.b"].Details())
	assert.Equal(t, "", byQualified["com.demo"].Details())

	// Generic types list their parameters; everything else stays empty.
	listSym, ok := walk.FindSymbol(tree, walk.FilterTypesOnly, func(sym walk.Symbol) bool {
		return sym.Name() == "List<String>"
	})
	require.True(t, ok)
	assert.Equal(t, "String", listSym.Details())
	intSym, ok := walk.FindSymbol(tree, walk.FilterTypesOnly, func(sym walk.Symbol) bool {
		return sym.Name() == "int"
	})
	require.True(t, ok)
	assert.Equal(t, "", intSym.Details())
}

func TestSymbolDetailsParcelableAndEnum(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, `package com.demo;

parcelable Point {
    int x;
}
`)
	field, ok := walk.FindSymbol(tree, walk.FilterItemsAndItemElements, func(sym walk.Symbol) bool {
		return sym.Kind() == walk.SymbolKindField
	})
	require.True(t, ok)
	assert.Equal(t, "int", field.Details())

	enum := parseTree(t, "package com.demo;\n\nenum Mode {\n    OFF,\n}\n")
	item, ok := walk.FindSymbol(enum, walk.FilterItemsOnly, func(walk.Symbol) bool { return true })
	require.True(t, ok)
	assert.Equal(t, "enum", item.Details())
	elem, ok := walk.FindSymbol(enum, walk.FilterItemsAndItemElements, func(sym walk.Symbol) bool {
		return sym.Kind() == walk.SymbolKindEnumElement
	})
	require.True(t, ok)
	assert.Empty(t, elem.Details())
}

func TestFilterSymbols(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)

	methods := walk.FilterSymbols(tree, walk.FilterAll, func(sym walk.Symbol) bool {
		return sym.Kind() == walk.SymbolKindMethod
	})
	assert.Equal(t, []string{
		"method com.demo.IDemo.add",
		"method com.demo.IDemo.fire",
	}, qualifiedNames(methods))

	// A nil predicate admits everything the filter does.
	all := walk.FilterSymbols(tree, walk.FilterItemsOnly, nil)
	assert.Len(t, all, 2)
}

func TestFindSymbol(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)

	sym, ok := walk.FindSymbol(tree, walk.FilterAll, func(sym walk.Symbol) bool {
		return sym.Name() == "fire"
	})
	require.True(t, ok)
	assert.Equal(t, walk.SymbolKindMethod, sym.Kind())
	assert.Equal(t, "com.demo.IDemo.fire", sym.QualifiedName())

	_, ok = walk.FindSymbol(tree, walk.FilterAll, func(sym walk.Symbol) bool {
		return sym.Name() == "nonexistent"
	})
	assert.False(t, ok)
}

func TestFindSymbolAt(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)

	// Inside the method name "add" on line 9, the innermost symbol is the
	// method itself when types are filtered out.
	sym, ok := walk.FindSymbolAt(tree, walk.FilterItemsAndItemElements, 9, 10)
	require.True(t, ok)
	assert.Equal(t, walk.SymbolKindMethod, sym.Kind())
	assert.Equal(t, "com.demo.IDemo.add", sym.QualifiedName())

	// With everything admitted, the return type "int" at column 5 wins over
	// the method and interface that also span the position.
	sym, ok = walk.FindSymbolAt(tree, walk.FilterAll, 9, 5)
	require.True(t, ok)
	assert.Equal(t, walk.SymbolKindType, sym.Kind())
	assert.Equal(t, "int", sym.Name())

	// On the argument name "a" the argument is narrower than the method.
	sym, ok = walk.FindSymbolAt(tree, walk.FilterAll, 9, 17)
	require.True(t, ok)
	assert.Equal(t, walk.SymbolKindArg, sym.Kind())
	assert.Equal(t, "com.demo.IDemo.add.a", sym.QualifiedName())

	// On "String" inside "List<String>" the generic parameter is narrower
	// than the list wrapping it.
	sym, ok = walk.FindSymbolAt(tree, walk.FilterTypesOnly, 10, 32)
	require.True(t, ok)
	assert.Equal(t, "String", sym.Name())

	// A position outside every declaration finds nothing.
	_, ok = walk.FindSymbolAt(tree, walk.FilterItemsAndItemElements, 2, 1)
	assert.False(t, ok)
}

func TestFindSymbolAtEndpoint(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, "package p;\n\nenum E {\n    A,\n}\n")

	// The cursor sitting just past the enumerator still hits it.
	sym, ok := walk.FindSymbolAt(tree, walk.FilterItemsAndItemElements, 4, 6)
	require.True(t, ok)
	assert.Equal(t, walk.SymbolKindEnumElement, sym.Kind())
	assert.Equal(t, "p.E.A", sym.QualifiedName())
}

func TestFindSymbolsIn(t *testing.T) {
	t.Parallel()

	tree := parseTree(t, interfaceSource)

	// Lines 8 through 9 cover the const and the first method, not the second.
	rng := ast.Range{
		Start: ast.Position{Line: 8, Col: 1},
		End:   ast.Position{Line: 9, Col: 99},
	}
	symbols := walk.FindSymbolsIn(tree, walk.FilterItemsAndItemElements, rng)
	assert.Equal(t, []string{
		"const com.demo.IDemo.VERSION",
		"method com.demo.IDemo.add",
	}, qualifiedNames(symbols))

	// An empty range selects nothing.
	empty := ast.Range{
		Start: ast.Position{Line: 2, Col: 1},
		End:   ast.Position{Line: 2, Col: 1},
	}
	assert.Empty(t, walk.FindSymbolsIn(tree, walk.FilterAll, empty))
}

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

package walk

import (
	"strings"

	"github.com/bufbuild/aidlcompile/ast"
)

// SymbolKind classifies the nodes a walk visits.
type SymbolKind int

const (
	SymbolKindPackage SymbolKind = iota + 1
	SymbolKindImport
	SymbolKindDeclaredParcelable
	SymbolKindInterface
	SymbolKindParcelable
	SymbolKindEnum
	SymbolKindMethod
	SymbolKindConst
	SymbolKindField
	SymbolKindEnumElement
	SymbolKindArg
	SymbolKindType
)

// String implements fmt.Stringer.
func (k SymbolKind) String() string {
	switch k {
	case SymbolKindPackage:
		return "package"
	case SymbolKindImport:
		return "import"
	case SymbolKindDeclaredParcelable:
		return "declared parcelable"
	case SymbolKindInterface:
		return "interface"
	case SymbolKindParcelable:
		return "parcelable"
	case SymbolKindEnum:
		return "enum"
	case SymbolKindMethod:
		return "method"
	case SymbolKindConst:
		return "const"
	case SymbolKindField:
		return "field"
	case SymbolKindEnumElement:
		return "enum element"
	case SymbolKindArg:
		return "argument"
	case SymbolKindType:
		return "type"
	default:
		return "unknown"
	}
}

// Filter selects which symbol kinds a walk or query yields.
type Filter int

const (
	// FilterAll yields every symbol.
	FilterAll Filter = iota
	// FilterItemsOnly yields items and declared parcelables.
	FilterItemsOnly
	// FilterItemsAndItemElements additionally yields methods, consts,
	// fields, and enum elements.
	FilterItemsAndItemElements
	// FilterTypesOnly yields type references, including generic parameters.
	FilterTypesOnly
	// FilterParametersOnly yields method arguments.
	FilterParametersOnly
)

func (f Filter) matches(kind SymbolKind) bool {
	switch f {
	case FilterAll:
		return true
	case FilterItemsOnly:
		switch kind {
		case SymbolKindInterface, SymbolKindParcelable, SymbolKindEnum,
			SymbolKindDeclaredParcelable:
			return true
		}
	case FilterItemsAndItemElements:
		switch kind {
		case SymbolKindInterface, SymbolKindParcelable, SymbolKindEnum,
			SymbolKindDeclaredParcelable, SymbolKindMethod, SymbolKindConst,
			SymbolKindField, SymbolKindEnumElement:
			return true
		}
	case FilterTypesOnly:
		return kind == SymbolKindType
	case FilterParametersOnly:
		return kind == SymbolKindArg
	}
	return false
}

// Symbol is one visited node together with enough context to describe it
// without re-walking the tree.
type Symbol struct {
	kind      SymbolKind
	node      any
	qualified string
}

// Kind returns what sort of node this symbol wraps.
func (s Symbol) Kind() SymbolKind {
	return s.kind
}

// Node returns the underlying tree node, one of the pointer types of package
// ast (or ast.Package by value for the package symbol).
func (s Symbol) Node() any {
	return s.node
}

// QualifiedName returns the dotted name of the symbol, qualified by its
// enclosing declarations: "pkg.Item", "pkg.Item.method", and so on. Type
// symbols return the qualified name of their definition when resolved.
func (s Symbol) QualifiedName() string {
	return s.qualified
}

// Name returns the simple declared name: the last segment of the qualified
// name for named nodes, or the rendered type for type symbols.
func (s Symbol) Name() string {
	switch node := s.node.(type) {
	case ast.Package:
		return node.Name
	case *ast.Type:
		return node.String()
	}
	if i := strings.LastIndexByte(s.qualified, '.'); i >= 0 {
		return s.qualified[i+1:]
	}
	return s.qualified
}

// Details returns a short rendering of what the symbol is, suitable for
// display next to its name: the member type for fields, "const" plus the
// type for consts, the return and argument types for methods, the direction
// and type for arguments, and the generic parameters for generic types.
// Kinds with nothing to add beyond their name return "".
func (s Symbol) Details() string {
	switch node := s.node.(type) {
	case *ast.DeclaredParcelable:
		return "parcelable"
	case *ast.Interface:
		return "interface"
	case *ast.Parcelable:
		return "parcelable"
	case *ast.Enum:
		return "enum"
	case *ast.Method:
		args := make([]string, len(node.Args))
		for i, arg := range node.Args {
			args[i] = argDetails(arg)
		}
		return node.ReturnType.String() + "(" + strings.Join(args, ", ") + ")"
	case *ast.Const:
		return "const " + node.ConstType.String()
	case *ast.Field:
		return node.FieldType.String()
	case *ast.Arg:
		return argDetails(node)
	case *ast.Type:
		if len(node.GenericTypes) == 0 {
			return ""
		}
		parts := make([]string, len(node.GenericTypes))
		for i, g := range node.GenericTypes {
			parts[i] = g.String()
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func argDetails(arg *ast.Arg) string {
	if dir := arg.Direction.String(); dir != "" {
		return dir + " " + arg.ArgType.String()
	}
	return arg.ArgType.String()
}

// SymbolRange returns the range of the name itself.
func (s Symbol) SymbolRange() ast.Range {
	symbol, _ := s.ranges()
	return symbol
}

// FullRange returns the range of the whole declaration.
func (s Symbol) FullRange() ast.Range {
	_, full := s.ranges()
	return full
}

func (s Symbol) ranges() (symbol, full ast.Range) {
	switch node := s.node.(type) {
	case ast.Package:
		return node.SymbolRange, node.FullRange
	case *ast.Import:
		return node.SymbolRange, node.FullRange
	case *ast.DeclaredParcelable:
		return node.SymbolRange, node.FullRange
	case *ast.Interface:
		return node.SymbolRange, node.FullRange
	case *ast.Parcelable:
		return node.SymbolRange, node.FullRange
	case *ast.Enum:
		return node.SymbolRange, node.FullRange
	case *ast.Method:
		return node.SymbolRange, node.FullRange
	case *ast.Const:
		return node.SymbolRange, node.FullRange
	case *ast.Field:
		return node.SymbolRange, node.FullRange
	case *ast.EnumElement:
		return node.SymbolRange, node.FullRange
	case *ast.Arg:
		return node.SymbolRange, node.FullRange
	case *ast.Type:
		return node.SymbolRange, node.FullRange
	}
	return ast.Range{}, ast.Range{}
}

// Signature renders the symbol roughly the way it appears in source, without
// annotations or documentation.
func (s Symbol) Signature() string {
	switch node := s.node.(type) {
	case ast.Package:
		return "package " + node.Name
	case *ast.Import:
		return "import " + node.QualifiedName()
	case *ast.DeclaredParcelable:
		return "parcelable " + node.QualifiedName()
	case *ast.Interface:
		if node.Oneway {
			return "oneway interface " + node.Name
		}
		return "interface " + node.Name
	case *ast.Parcelable:
		return "parcelable " + node.Name
	case *ast.Enum:
		return "enum " + node.Name
	case *ast.Method:
		return methodSignature(node)
	case *ast.Const:
		return "const " + node.ConstType.String() + " " + node.Name + " = " + node.Value
	case *ast.Field:
		sig := node.FieldType.String() + " " + node.Name
		if node.Value != "" {
			sig += " = " + node.Value
		}
		return sig
	case *ast.EnumElement:
		if node.Value != "" {
			return node.Name + " = " + node.Value
		}
		return node.Name
	case *ast.Arg:
		return argSignature(node)
	case *ast.Type:
		return node.String()
	}
	return ""
}

func methodSignature(method *ast.Method) string {
	var sb strings.Builder
	if method.Oneway {
		sb.WriteString("oneway ")
	}
	sb.WriteString(method.ReturnType.String())
	sb.WriteString(" ")
	sb.WriteString(method.Name)
	sb.WriteString("(")
	for i, arg := range method.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(argSignature(arg))
	}
	sb.WriteString(")")
	return sb.String()
}

func argSignature(arg *ast.Arg) string {
	var parts []string
	if dir := arg.Direction.String(); dir != "" {
		parts = append(parts, dir)
	}
	parts = append(parts, arg.ArgType.String())
	if arg.Name != "" {
		parts = append(parts, arg.Name)
	}
	return strings.Join(parts, " ")
}

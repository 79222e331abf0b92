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

package ast

import "strings"

// Type is a type reference appearing in a method signature, const, field, or
// generic parameter position.
type Type struct {
	// Name is the bare type name: "int", "String", "List", "Array" for the
	// synthetic array wrapper, or the (possibly dotted) custom name as
	// written in source.
	Name string

	Kind TypeKind

	// ResolvedKind is meaningful only when Kind is TypeKindResolved; it
	// names the kind of item the reference was linked to.
	ResolvedKind ItemKind

	// GenericTypes holds the element type of arrays (exactly one), the
	// element type of generic lists (one), and the key and value types of
	// generic maps (two). Empty otherwise.
	GenericTypes []*Type

	// Definition identifies the item this reference was resolved to. It is
	// nil until the linker runs, and stays nil for unresolved references
	// and for non-custom types.
	Definition *TypeRef

	// SymbolRange covers the bare name; FullRange additionally covers
	// generic parameters and array brackets.
	SymbolRange Range
	FullRange   Range
}

// TypeRef identifies a resolved item definition without holding a pointer
// into another file's tree, so that files can be re-parsed or removed
// without leaving the reference dangling.
type TypeRef struct {
	// FileKey is the key of the file defining the item. It is empty for
	// built-in Android types, which have no defining file.
	FileKey string

	QualifiedName string
}

// TypeKind discriminates the type reference variants.
type TypeKind int

const (
	// TypeKindInvalid marks a placeholder produced during error recovery.
	TypeKindInvalid TypeKind = iota
	TypeKindVoid
	TypeKindPrimitive
	TypeKindString
	TypeKindCharSequence
	TypeKindArray
	TypeKindList
	TypeKindMap
	// TypeKindUnresolved is a custom name reference the linker has not (or
	// could not) resolve.
	TypeKindUnresolved
	// TypeKindResolved is a custom name reference linked to a definition;
	// see [Type].ResolvedKind.
	TypeKindResolved
)

// String implements fmt.Stringer.
func (k TypeKind) String() string {
	switch k {
	case TypeKindVoid:
		return "void"
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindString:
		return "String"
	case TypeKindCharSequence:
		return "CharSequence"
	case TypeKindArray:
		return "array"
	case TypeKindList:
		return "list"
	case TypeKindMap:
		return "map"
	case TypeKindUnresolved:
		return "unresolved"
	case TypeKindResolved:
		return "resolved"
	default:
		return "invalid"
	}
}

// ItemKind names the kind of definition a resolved type reference points to.
type ItemKind int

const (
	itemKindInvalid ItemKind = iota
	ItemKindInterface
	ItemKindParcelable
	ItemKindEnum
	// ItemKindDeclaredParcelable is a forward-declared parcelable with no
	// defining body.
	ItemKindDeclaredParcelable
	// ItemKindBuiltin covers the well-known Android types (IBinder,
	// ParcelableHolder, ...) which behave like opaque parcelables.
	ItemKindBuiltin
)

// String implements fmt.Stringer.
func (k ItemKind) String() string {
	switch k {
	case ItemKindInterface:
		return "interface"
	case ItemKindParcelable:
		return "parcelable"
	case ItemKindEnum:
		return "enum"
	case ItemKindDeclaredParcelable:
		return "declared parcelable"
	case ItemKindBuiltin:
		return "builtin"
	default:
		return "invalid"
	}
}

// String renders the type the way it is written in source: "int",
// "List<String>", "Map<String, Foo>", "byte[]".
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	if t.Kind == TypeKindArray {
		if len(t.GenericTypes) == 1 {
			return t.GenericTypes[0].String() + "[]"
		}
		return "[]"
	}
	if len(t.GenericTypes) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.GenericTypes))
	for i, g := range t.GenericTypes {
		parts[i] = g.String()
	}
	return t.Name + "<" + strings.Join(parts, ", ") + ">"
}

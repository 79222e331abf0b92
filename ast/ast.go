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

// Aidl is the root of a parsed file: a package declaration, any number of
// imports and forward-declared parcelables, and exactly one item.
type Aidl struct {
	Package             Package
	Imports             []*Import
	DeclaredParcelables []*DeclaredParcelable
	Item                Item
}

// Key returns the qualified name of the file's item, i.e.
// "some.pack.age.ItemName".
func (a *Aidl) Key() string {
	return a.Package.Name + "." + ItemName(a.Item)
}

// Package is the package declaration at the top of a file.
type Package struct {
	Name string

	SymbolRange Range
	FullRange   Range
}

// Import brings one item of another file into scope under its simple name.
type Import struct {
	// Path is the dotted prefix and Name the final segment, so that
	// "import a.b.C;" has Path "a.b" and Name "C".
	Path string
	Name string

	SymbolRange Range
	FullRange   Range
}

// QualifiedName returns the dotted name as written in source.
func (i *Import) QualifiedName() string {
	if i.Path == "" {
		return i.Name
	}
	return i.Path + "." + i.Name
}

// DeclaredParcelable is a forward declaration ("parcelable a.b.C;") which
// makes C referenceable as an opaque parcelable without a defining file.
type DeclaredParcelable struct {
	Path string
	Name string

	Annotations []*Annotation
	Doc         string

	SymbolRange Range
	FullRange   Range
}

// QualifiedName returns the dotted name as written in source.
func (d *DeclaredParcelable) QualifiedName() string {
	if d.Path == "" {
		return d.Name
	}
	return d.Path + "." + d.Name
}

// Item is the single top-level declaration of a file: one of [*Interface],
// [*Parcelable], or [*Enum].
type Item interface {
	isItem()
}

func (*Interface) isItem()  {}
func (*Parcelable) isItem() {}
func (*Enum) isItem()       {}

// ItemName returns the declared name of an item.
func ItemName(item Item) string {
	switch item := item.(type) {
	case *Interface:
		return item.Name
	case *Parcelable:
		return item.Name
	case *Enum:
		return item.Name
	}
	return ""
}

// ItemKindOf returns the kind tag corresponding to an item's concrete type.
func ItemKindOf(item Item) ItemKind {
	switch item.(type) {
	case *Interface:
		return ItemKindInterface
	case *Parcelable:
		return ItemKindParcelable
	case *Enum:
		return ItemKindEnum
	}
	return itemKindInvalid
}

// ItemRanges returns the symbol and full ranges of an item.
func ItemRanges(item Item) (symbol, full Range) {
	switch item := item.(type) {
	case *Interface:
		return item.SymbolRange, item.FullRange
	case *Parcelable:
		return item.SymbolRange, item.FullRange
	case *Enum:
		return item.SymbolRange, item.FullRange
	}
	return Range{}, Range{}
}

// Interface is an AIDL interface declaration.
type Interface struct {
	Name string

	// Oneway records an interface-level oneway qualifier, which makes every
	// method of the interface asynchronous. The flag is not copied onto the
	// methods; consumers must consult it alongside each method's own flag.
	Oneway      bool
	OnewayRange Range

	Elements []InterfaceElement

	Annotations []*Annotation
	Doc         string

	SymbolRange Range
	FullRange   Range
}

// Methods returns only the method elements, in declaration order.
func (i *Interface) Methods() []*Method {
	var methods []*Method
	for _, el := range i.Elements {
		if m, ok := el.(*Method); ok {
			methods = append(methods, m)
		}
	}
	return methods
}

// InterfaceElement is a direct child of an interface body: a [*Method] or a
// [*Const].
type InterfaceElement interface {
	isInterfaceElement()
}

func (*Method) isInterfaceElement() {}
func (*Const) isInterfaceElement()  {}

// Method is a single method declaration inside an interface.
type Method struct {
	Name string

	// Oneway records an explicit oneway qualifier on this method. When
	// absent, OnewayRange is a zero-width range at the start of the return
	// type.
	Oneway      bool
	OnewayRange Range

	ReturnType *Type
	Args       []*Arg

	// TransactCode is the optional "= N" method id. When absent, it is nil
	// and TransactCodeRange is a zero-width range just before the
	// terminating semicolon.
	TransactCode      *int
	TransactCodeRange Range

	Annotations []*Annotation
	Doc         string

	SymbolRange Range
	FullRange   Range
}

// Arg is a single method parameter.
type Arg struct {
	// Direction is the optional in/out/inout qualifier. When it is
	// DirectionUnspecified, DirectionRange is a zero-width range at the
	// start of the type.
	Direction      Direction
	DirectionRange Range

	// Name is empty for unnamed parameters.
	Name    string
	ArgType *Type

	Annotations []*Annotation
	Doc         string

	SymbolRange Range
	FullRange   Range
}

// Direction qualifies which way a method argument travels.
type Direction int

const (
	DirectionUnspecified Direction = iota
	DirectionIn
	DirectionOut
	DirectionInOut
)

// String implements fmt.Stringer. The unspecified direction renders as the
// empty string.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	case DirectionInOut:
		return "inout"
	default:
		return ""
	}
}

// Const is a constant declaration, legal inside interfaces and parcelables.
type Const struct {
	Name      string
	ConstType *Type

	// Value is the literal as written in source ("3", "-0.5f", `"str"`),
	// with brace initializers reduced to a "{}" or "{...}" marker.
	Value string

	Annotations []*Annotation
	Doc         string

	SymbolRange Range
	FullRange   Range
}

// Parcelable is an AIDL parcelable declaration with a body.
type Parcelable struct {
	Name string

	Elements []ParcelableElement

	Annotations []*Annotation
	Doc         string

	SymbolRange Range
	FullRange   Range
}

// Fields returns only the field elements, in declaration order.
func (p *Parcelable) Fields() []*Field {
	var fields []*Field
	for _, el := range p.Elements {
		if f, ok := el.(*Field); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// ParcelableElement is a direct child of a parcelable body: a [*Field] or a
// [*Const].
type ParcelableElement interface {
	isParcelableElement()
}

func (*Field) isParcelableElement() {}
func (*Const) isParcelableElement() {}

// Field is a data member of a parcelable.
type Field struct {
	Name      string
	FieldType *Type

	// Value is the optional default value literal; empty when absent.
	Value string

	Annotations []*Annotation
	Doc         string

	SymbolRange Range
	FullRange   Range
}

// Enum is an AIDL enum declaration.
type Enum struct {
	Name string

	Elements []*EnumElement

	Annotations []*Annotation
	Doc         string

	SymbolRange Range
	FullRange   Range
}

// EnumElement is a single enumerator, with an optional "= literal" value.
type EnumElement struct {
	Name string

	// Value is the literal as written in source; empty when absent.
	Value string

	Doc string

	SymbolRange Range
	FullRange   Range
}

// Annotation is an "@Name" or "@Name(k = v, ...)" marker attached to a
// declaration.
type Annotation struct {
	// Name includes the leading '@'.
	Name string

	// KeyValues maps parameter names to their literal values; a parameter
	// given without a value maps to the empty string.
	KeyValues map[string]string
}

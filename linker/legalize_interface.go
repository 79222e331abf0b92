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

// legalizeItem dispatches to the item-specific semantic checks.
func (l *fileLinker) legalizeItem() {
	switch item := l.file.Tree.Item.(type) {
	case *ast.Interface:
		l.legalizeInterface(item)
	case *ast.Parcelable:
		l.legalizeParcelable(item)
	case *ast.Enum:
		l.legalizeEnum(item)
	}
}

func (l *fileLinker) legalizeInterface(iface *ast.Interface) {
	fileKey := l.file.Info.Key()

	methodNames := make(map[string]ast.Range)
	methodIDs := make(map[int]*ast.Method)
	var firstWithID, firstWithoutID *ast.Method

	for _, method := range iface.Methods() {
		oneway := iface.Oneway || method.Oneway

		if iface.Oneway && method.Oneway {
			l.file.Handler.Warning(
				method.OnewayRange,
				fmt.Sprintf("Method `%s` of oneway interface does not need to be marked as oneway", method.Name),
				reporter.ContextMessage("redundant oneway"),
				reporter.Related(fileKey, iface.SymbolRange, "oneway interface"),
			)
		}
		if oneway && method.ReturnType.Kind != ast.TypeKindVoid {
			rng := method.OnewayRange
			if !method.Oneway {
				rng = method.SymbolRange
			}
			l.file.Handler.Error(
				rng,
				"Oneway method must return void",
				reporter.ContextMessage("must be void"),
			)
		}

		for _, arg := range method.Args {
			l.legalizeDirection(method, arg, oneway)
		}

		if prev, ok := methodNames[method.Name]; ok {
			l.file.Handler.Error(
				method.SymbolRange,
				fmt.Sprintf("Duplicated method name `%s`", method.Name),
				reporter.ContextMessage("duplicated method name"),
				reporter.Related(fileKey, prev, "previous location"),
			)
			continue
		}
		methodNames[method.Name] = method.SymbolRange

		if method.TransactCode != nil {
			if firstWithID == nil && firstWithoutID != nil {
				l.reportMixedIDs(method, firstWithoutID, "method without id")
			}
			if prev, ok := methodIDs[*method.TransactCode]; ok {
				l.file.Handler.Error(
					method.TransactCodeRange,
					"Duplicated method id",
					reporter.ContextMessage("duplicated method id"),
					reporter.Related(fileKey, prev.TransactCodeRange, "previous method"),
				)
			} else {
				methodIDs[*method.TransactCode] = method
			}
			if firstWithID == nil {
				firstWithID = method
			}
		} else {
			if firstWithoutID == nil && firstWithID != nil {
				l.reportMixedIDs(method, firstWithID, "method with id")
			}
			if firstWithoutID == nil {
				firstWithoutID = method
			}
		}
	}

	l.legalizeConsts(constElements(iface.Elements))
}

func (l *fileLinker) reportMixedIDs(method, other *ast.Method, otherLabel string) {
	l.file.Handler.Error(
		method.TransactCodeRange,
		"Mixed usage of method ids",
		reporter.ContextMessage("mixed method ids"),
		reporter.Hint("Either all methods should have an id or none of them"),
		reporter.Related(l.file.Info.Key(), other.TransactCodeRange, otherLabel),
	)
}

// directionRequirement classifies what direction qualifiers a type admits in
// argument position.
type directionRequirement int

const (
	// noRequirement means anything goes, used for unresolved types where
	// guessing would produce noise.
	noRequirement directionRequirement = iota
	// directionRequired marks object types that are serialized in full and
	// must say which way they travel.
	directionRequired
	// inOrUnspecifiedOnly marks value types, which can only flow inward.
	inOrUnspecifiedOnly
)

func requirementOf(typ *ast.Type) directionRequirement {
	switch typ.Kind {
	case ast.TypeKindPrimitive, ast.TypeKindVoid,
		ast.TypeKindString, ast.TypeKindCharSequence:
		return inOrUnspecifiedOnly
	case ast.TypeKindArray, ast.TypeKindList, ast.TypeKindMap:
		return directionRequired
	case ast.TypeKindResolved:
		switch typ.ResolvedKind {
		case ast.ItemKindParcelable, ast.ItemKindDeclaredParcelable, ast.ItemKindBuiltin:
			return directionRequired
		}
		return inOrUnspecifiedOnly
	}
	return noRequirement
}

func (l *fileLinker) legalizeDirection(method *ast.Method, arg *ast.Arg, oneway bool) {
	outbound := arg.Direction == ast.DirectionOut || arg.Direction == ast.DirectionInOut
	if oneway && outbound {
		l.file.Handler.Error(
			arg.DirectionRange,
			"Oneway method cannot have out/inout args",
			reporter.ContextMessage("invalid direction"),
			reporter.Hint("arguments of oneway methods can be neither `out` nor `inout`"),
		)
		return
	}

	switch requirementOf(arg.ArgType) {
	case directionRequired:
		if arg.Direction == ast.DirectionUnspecified {
			l.file.Handler.Error(
				arg.DirectionRange,
				fmt.Sprintf("Direction required for `%s`", arg.ArgType.String()),
				reporter.ContextMessage("missing direction"),
				reporter.Hint("direction is required for objects"),
			)
		}
	case inOrUnspecifiedOnly:
		if outbound {
			l.file.Handler.Error(
				arg.DirectionRange,
				fmt.Sprintf("Invalid direction for `%s`", arg.ArgType.String()),
				reporter.ContextMessage("invalid direction"),
				reporter.Hint("can only be `in` or omitted"),
			)
		}
	}
}

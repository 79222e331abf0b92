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
	"strings"

	"github.com/bufbuild/aidlcompile/ast"
)

// resolve binds every custom type reference in the file to its definition,
// if one can be found. References that stay unresolved are reported by the
// type legalization pass.
func (l *fileLinker) resolve() {
	l.eachType(l.resolveType)
}

// resolveType attempts names in order: the exact name as written, the
// imports by simple name, the file's own declared parcelables, and finally
// the file's package. The first hit wins.
func (l *fileLinker) resolveType(typ *ast.Type) {
	for _, generic := range typ.GenericTypes {
		l.resolveType(generic)
	}
	if typ.Kind != ast.TypeKindUnresolved {
		return
	}

	name := typ.Name
	if entry, ok := l.symbols.Lookup(name); ok {
		if imp, ok := l.importsByQualified[name]; ok {
			l.markUsed(imp)
		}
		l.bind(typ, entry)
		return
	}

	if !strings.Contains(name, ".") {
		if imp, ok := l.importsBySimple[name]; ok {
			// A matching import counts as used even when its target is
			// missing; the import itself is reported as unresolved.
			l.markUsed(imp)
			if entry, ok := l.symbols.Lookup(imp.QualifiedName()); ok {
				l.bind(typ, entry)
			}
			return
		}
		if dp := l.declaredParcelable(name); dp != nil {
			l.bind(typ, Entry{
				Kind:          ast.ItemKindDeclaredParcelable,
				FileKey:       l.file.Info.Key(),
				QualifiedName: dp.QualifiedName(),
			})
			return
		}
		local := l.file.Tree.Package.Name + "." + name
		if entry, ok := l.symbols.Lookup(local); ok {
			l.bind(typ, entry)
			return
		}
	}
}

func (l *fileLinker) declaredParcelable(simple string) *ast.DeclaredParcelable {
	for _, dp := range l.file.Tree.DeclaredParcelables {
		if dp.Name == simple {
			return dp
		}
	}
	return nil
}

func (l *fileLinker) bind(typ *ast.Type, entry Entry) {
	typ.Kind = ast.TypeKindResolved
	typ.ResolvedKind = entry.Kind
	typ.Definition = &ast.TypeRef{
		FileKey:       entry.FileKey,
		QualifiedName: entry.QualifiedName,
	}
}

func (l *fileLinker) markUsed(imp *ast.Import) {
	l.usedImports[imp.QualifiedName()] = struct{}{}
}

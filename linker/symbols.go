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
	"github.com/bufbuild/aidlcompile/ast"
	"github.com/tidwall/btree"
)

// Entry is one resolvable definition in the symbol table.
type Entry struct {
	Kind ast.ItemKind

	// FileKey is the key of the defining file; empty for built-in Android
	// types.
	FileKey string

	// QualifiedName is the canonical dotted name of the definition. For
	// entries reachable under several names (built-ins under both bare and
	// qualified names), it always carries the qualified form.
	QualifiedName string
}

// Symbols maps dotted names to definitions across all linked files.
//
// The table is keyed by every name a definition is reachable under, so a
// built-in occupies two slots. Iteration order is lexical by name, which
// keeps anything derived from a table scan deterministic.
type Symbols struct {
	table btree.Map[string, Entry]
}

// Built-in Android types behave like opaque parcelables and are resolvable
// both bare and fully qualified, without any import.
var builtins = []string{
	"android.os.IBinder",
	"android.os.ParcelFileDescriptor",
	"android.os.ParcelableHolder",
	"java.io.FileDescriptor",
}

// NewSymbols returns a table pre-seeded with the built-in types.
func NewSymbols() *Symbols {
	s := &Symbols{}
	for _, qualified := range builtins {
		_, simple := splitName(qualified)
		entry := Entry{Kind: ast.ItemKindBuiltin, QualifiedName: qualified}
		s.table.Set(qualified, entry)
		s.table.Set(simple, entry)
	}
	return s
}

func splitName(name string) (path, simple string) {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i], name[i+1:]
		}
	}
	return "", name
}

// Lookup returns the definition reachable under name, if any.
func (s *Symbols) Lookup(name string) (Entry, bool) {
	return s.table.Get(name)
}

// Len returns the number of table slots, counting aliased entries once per
// name.
func (s *Symbols) Len() int {
	return s.table.Len()
}

// Range iterates the table in lexical name order until fn returns false.
func (s *Symbols) Range(fn func(name string, entry Entry) bool) {
	s.table.Scan(fn)
}

// collect registers the file's item and its forward-declared parcelables.
// The first definition of a name wins; later ones are ignored.
func (s *Symbols) collect(file *File) {
	if file.Tree == nil {
		return
	}
	fileKey := file.Info.Key()

	key := file.Tree.Key()
	s.add(key, Entry{
		Kind:          ast.ItemKindOf(file.Tree.Item),
		FileKey:       fileKey,
		QualifiedName: key,
	})

	for _, dp := range file.Tree.DeclaredParcelables {
		s.add(dp.QualifiedName(), Entry{
			Kind:          ast.ItemKindDeclaredParcelable,
			FileKey:       fileKey,
			QualifiedName: dp.QualifiedName(),
		})
	}
}

func (s *Symbols) add(name string, entry Entry) {
	if _, ok := s.table.Get(name); ok {
		return
	}
	s.table.Set(name, entry)
}

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

// Package ast defines the data model for parsed AIDL source files.
//
// A file's root is [Aidl]: a package declaration, imports, forward-declared
// parcelables, and exactly one item (interface, parcelable, or enum). Every
// node carries a symbol range (the name identifier alone) and a full range
// (the whole declaration, annotations included). Ranges are produced by a
// [FileInfo], which indexes a source text for offset to line/column lookup.
//
// Nodes are built by the parser and then annotated exactly once by the
// linker, which attaches [Type].Definition to resolved type references.
// After that, the tree is read-only and safe to share between goroutines.
package ast

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

// Package aidlcompile parses and validates AIDL source files.
//
// A [Parser] holds a set of file contents keyed by caller-chosen names,
// usually paths. [Parser.Validate] parses every file, links type references
// across all of them, and returns one result per file carrying the parsed
// tree and its diagnostics. Parsing is tolerant: local syntax errors become
// diagnostics and the rest of the file still parses, so even a broken file
// usually yields a usable tree.
//
// The returned trees can be explored with package walk and carry precise
// source ranges for every declaration, suitable for editor tooling.
package aidlcompile

import (
	"context"
	"maps"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/aidlcompile/ast"
	"github.com/bufbuild/aidlcompile/linker"
	"github.com/bufbuild/aidlcompile/parser"
	"github.com/bufbuild/aidlcompile/reporter"
)

// Parser is a reusable validation session over a set of AIDL files.
//
// A Parser may be used from multiple goroutines.
type Parser struct {
	maxParallelism int

	mu       sync.Mutex
	contents map[string]string
}

// ParserOption customizes a [Parser].
type ParserOption func(*Parser)

// WithMaxParallelism bounds how many files are parsed concurrently during
// [Parser.Validate]. Values below one are ignored. The default is the number
// of CPUs.
func WithMaxParallelism(n int) ParserOption {
	return func(p *Parser) {
		if n >= 1 {
			p.maxParallelism = n
		}
	}
}

// NewParser constructs an empty session.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		maxParallelism: runtime.GOMAXPROCS(0),
		contents:       make(map[string]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddContent registers (or replaces) the source text of the file identified
// by key.
func (p *Parser) AddContent(key, content string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contents[key] = content
}

// RemoveContent drops the file identified by key from the session. Removing
// an unknown key is a no-op.
func (p *Parser) RemoveContent(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.contents, key)
}

// ParseFileResult is the outcome of validating one file.
type ParseFileResult struct {
	// Key is the name the content was registered under.
	Key string

	// Info gives access to the source text and position mapping.
	Info *ast.FileInfo

	// Tree is the parsed file, with type references resolved where
	// possible. It is nil when the file was damaged beyond parsing.
	Tree *ast.Aidl

	// Diagnostics holds every finding against the file, in source order.
	Diagnostics []reporter.Diagnostic

	handler *reporter.Handler
}

// HasErrors reports whether any diagnostic is error severity.
func (r *ParseFileResult) HasErrors() bool {
	return r.handler.HasErrors()
}

// Validate parses every registered file, resolves types across all of them,
// and runs the semantic checks. Results come back sorted by key, one per
// file, each carrying its own diagnostics.
//
// The only error conditions are the context's; bad input is reported through
// diagnostics instead.
func (p *Parser) Validate(ctx context.Context) ([]*ParseFileResult, error) {
	p.mu.Lock()
	contents := maps.Clone(p.contents)
	p.mu.Unlock()
	keys := slices.Sorted(maps.Keys(contents))

	results := make([]*ParseFileResult, len(keys))
	sem := semaphore.NewWeighted(int64(p.maxParallelism))
	grp, grpCtx := errgroup.WithContext(ctx)
	for i, key := range keys {
		grp.Go(func() error {
			if err := sem.Acquire(grpCtx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			info := ast.NewFileInfo(key, contents[key])
			handler := reporter.NewHandler(key)
			tree := parser.Parse(info, handler)
			results[i] = &ParseFileResult{
				Key:     key,
				Info:    info,
				Tree:    tree,
				handler: handler,
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	files := make([]*linker.File, len(results))
	for i, result := range results {
		files[i] = &linker.File{
			Info:    result.Info,
			Tree:    result.Tree,
			Handler: result.handler,
		}
	}
	linker.Link(files)

	for _, result := range results {
		result.Diagnostics = result.handler.Diagnostics()
	}
	return results, nil
}

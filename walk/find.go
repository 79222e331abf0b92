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
	"github.com/bufbuild/aidlcompile/ast"
	"github.com/bufbuild/aidlcompile/internal/interval"
)

// FilterSymbols returns, in visit order, every admitted symbol for which
// pred returns true. A nil pred admits everything.
func FilterSymbols(tree *ast.Aidl, filter Filter, pred func(Symbol) bool) []Symbol {
	var symbols []Symbol
	Walk(tree, filter, func(sym Symbol) bool {
		if pred == nil || pred(sym) {
			symbols = append(symbols, sym)
		}
		return true
	})
	return symbols
}

// FindSymbol returns the first admitted symbol in visit order for which pred
// returns true. The walk stops as soon as a match is found.
func FindSymbol(tree *ast.Aidl, filter Filter, pred func(Symbol) bool) (Symbol, bool) {
	var (
		match Symbol
		found bool
	)
	Walk(tree, filter, func(sym Symbol) bool {
		if pred(sym) {
			match, found = sym, true
			return false
		}
		return true
	})
	return match, found
}

// FindSymbolAt returns the innermost symbol whose full range contains the
// position, among those the filter admits. Line and col are 1-indexed, col
// in grapheme clusters. Both range endpoints count as inside, so a cursor
// sitting just past the final character still hits.
//
// When several symbols span the position, the narrowest wins; among equally
// narrow ones, the one visited last (deepest, or latest in source) wins.
func FindSymbolAt(tree *ast.Aidl, filter Filter, line, col int) (Symbol, bool) {
	at := packPosition(ast.Position{Line: line, Col: col})

	var (
		best      Symbol
		bestWidth int
		found     bool
	)
	Walk(tree, filter, func(sym Symbol) bool {
		full := sym.FullRange()
		span := interval.Of(packPosition(full.Start), packPosition(full.End))
		if !span.Contains(at) {
			return true
		}
		width := full.Len()
		if !found || width <= bestWidth {
			best, bestWidth, found = sym, width, true
		}
		return true
	})
	return best, found
}

// FindSymbolsIn returns, in visit order, every admitted symbol whose full
// range lies entirely within the given range.
func FindSymbolsIn(tree *ast.Aidl, filter Filter, rng ast.Range) []Symbol {
	span := interval.Of(packPosition(rng.Start), packPosition(rng.End))
	var symbols []Symbol
	Walk(tree, filter, func(sym Symbol) bool {
		full := sym.FullRange()
		if span.ContainsInterval(interval.Of(packPosition(full.Start), packPosition(full.End))) {
			symbols = append(symbols, sym)
		}
		return true
	})
	return symbols
}

// packPosition collapses a position into one ordered value so that interval
// containment can compare line and column together.
func packPosition(p ast.Position) int64 {
	return int64(p.Line)<<32 | int64(p.Col)
}

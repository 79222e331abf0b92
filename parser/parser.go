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

// Package parser turns AIDL source text into the tree defined by package
// ast.
//
// The parser is a hand-written recursive descent over a fully lexed token
// slice. Local errors do not abort the parse: at the item, interface
// element, parcelable element, and enum element levels, a failed production
// records a diagnostic, skips ahead to a synchronization token, and lets the
// surrounding declaration keep the children that did parse.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/aidlcompile/ast"
	"github.com/bufbuild/aidlcompile/internal/ext/slicesx"
	"github.com/bufbuild/aidlcompile/reporter"
)

// Parse parses one source file. Diagnostics are recorded on handler.
//
// The result is nil only when the file is damaged beyond the package/item
// skeleton; localized errors yield a partial tree instead.
func Parse(info *ast.FileInfo, handler *reporter.Handler) *ast.Aidl {
	lx := newLexer(info, handler)
	p := &parser{
		info:     info,
		handler:  handler,
		toks:     lx.Lex(),
		comments: lx.comments,
	}
	return p.parseFile()
}

type parser struct {
	info    *ast.FileInfo
	handler *reporter.Handler

	toks     []Token
	comments []comment
	pos      int
}

func (p *parser) cur() Token {
	if tok, ok := slicesx.Get(p.toks, p.pos); ok {
		return tok
	}
	last, _ := slicesx.Last(p.toks)
	return last
}

func (p *parser) peek(n int) Token {
	if tok, ok := slicesx.Get(p.toks, p.pos+n); ok {
		return tok
	}
	last, _ := slicesx.Last(p.toks)
	return last
}

func (p *parser) advance() Token {
	tok := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) rangeOf(tok Token) ast.Range {
	return p.info.Range(tok.Start, tok.End)
}

func (p *parser) rangeBetween(start, end Token) ast.Range {
	return p.info.Range(start.Start, end.End)
}

func (p *parser) errExpected(expected ...string) *syntaxError {
	return &syntaxError{tok: p.cur(), expected: expected}
}

func (p *parser) expectPunct(punct string) (Token, error) {
	if p.cur().IsPunct(punct) {
		return p.advance(), nil
	}
	return Token{}, p.errExpected("`" + punct + "`")
}

func (p *parser) expectKeyword(kw string) (Token, error) {
	if p.cur().IsKeyword(kw) {
		return p.advance(), nil
	}
	return Token{}, p.errExpected("`" + kw + "`")
}

func (p *parser) expectIdent() (Token, error) {
	if p.cur().Kind == TokenIdent {
		return p.advance(), nil
	}
	return Token{}, p.errExpected("an identifier")
}

// reportSyntax converts a propagated syntax error into a diagnostic. prefix
// names the synchronization point ("Invalid item", ...); it is empty for
// top-of-file failures.
func (p *parser) reportSyntax(prefix string, err error) {
	serr, ok := err.(*syntaxError)
	if !ok {
		panic(fmt.Sprintf("parser: unexpected error type %T", err))
	}
	msg := serr.message()
	if prefix != "" {
		msg = prefix + " - " + msg
	}
	rng := p.rangeOf(serr.tok)
	if serr.tok.Kind == TokenEOF {
		rng = p.info.ZeroRange(serr.tok.Start)
	}
	p.handler.Error(rng, msg, reporter.ContextMessage(serr.contextMessage()))
}

// parseFile corresponds to the production
//
//	file := package import* declared-parcelable* item
//
// with item-level error recovery.
func (p *parser) parseFile() *ast.Aidl {
	pkg, err := p.parsePackage()
	if err != nil {
		p.reportSyntax("", err)
		return nil
	}

	file := &ast.Aidl{Package: pkg}
	for {
		tok := p.cur()
		if tok.Kind == TokenEOF {
			break
		}

		if tok.IsKeyword("import") {
			imp, err := p.parseImport()
			if err != nil {
				p.reportSyntax("Invalid item", err)
				p.recoverItem()
				continue
			}
			file.Imports = append(file.Imports, imp)
			continue
		}

		declStart := p.pos
		doc := p.docBefore(declStart)
		anns, err := p.parseAnnotations()
		if err != nil {
			p.reportSyntax("Invalid item", err)
			p.recoverItem()
			continue
		}

		tok = p.cur()
		switch {
		case tok.IsKeyword("parcelable") && !p.peek(2).IsPunct("{"):
			decl, err := p.parseDeclaredParcelable(declStart, doc, anns)
			if err != nil {
				p.reportSyntax("Invalid item", err)
				p.recoverItem()
				continue
			}
			file.DeclaredParcelables = append(file.DeclaredParcelables, decl)

		case tok.IsKeyword("interface") || tok.IsKeyword("oneway") ||
			tok.IsKeyword("parcelable") || tok.IsKeyword("enum"):
			if file.Item != nil {
				p.handler.Error(
					p.rangeOf(tok),
					fmt.Sprintf("Extra token `%s`", tok.Text),
					reporter.ContextMessage("extra token"),
				)
				// Step past the keyword, or recovery would stop right here.
				p.advance()
				p.recoverItem()
				continue
			}
			item, err := p.parseItem(declStart, doc, anns)
			if err != nil {
				p.reportSyntax("Invalid item", err)
				p.recoverItem()
				continue
			}
			file.Item = item

		default:
			p.reportSyntax("Invalid item", p.errExpected(
				"`interface`", "`parcelable`", "`enum`", "`import`",
			))
			p.recoverItem()
		}
	}

	if file.Item == nil {
		p.reportSyntax("", &syntaxError{
			tok:      p.cur(),
			expected: []string{"`interface`", "`parcelable`", "`enum`"},
		})
		return nil
	}
	return file
}

func (p *parser) parsePackage() (ast.Package, error) {
	kw, err := p.expectKeyword("package")
	if err != nil {
		return ast.Package{}, err
	}
	name, nameRange, err := p.parseQualifiedName()
	if err != nil {
		return ast.Package{}, err
	}
	semi, err := p.expectPunct(";")
	if err != nil {
		return ast.Package{}, err
	}
	return ast.Package{
		Name:        name,
		SymbolRange: nameRange,
		FullRange:   p.rangeBetween(kw, semi),
	}, nil
}

func (p *parser) parseImport() (*ast.Import, error) {
	kw, err := p.expectKeyword("import")
	if err != nil {
		return nil, err
	}
	name, nameRange, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	semi, err := p.expectPunct(";")
	if err != nil {
		return nil, err
	}
	path, simple := splitQualified(name)
	return &ast.Import{
		Path:        path,
		Name:        simple,
		SymbolRange: nameRange,
		FullRange:   p.rangeBetween(kw, semi),
	}, nil
}

func (p *parser) parseDeclaredParcelable(declStart int, doc string, anns []*ast.Annotation) (*ast.DeclaredParcelable, error) {
	if _, err := p.expectKeyword("parcelable"); err != nil {
		return nil, err
	}
	name, nameRange, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	semi, err := p.expectPunct(";")
	if err != nil {
		return nil, err
	}
	path, simple := splitQualified(name)
	return &ast.DeclaredParcelable{
		Path:        path,
		Name:        simple,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: nameRange,
		FullRange:   p.info.Range(p.toks[declStart].Start, semi.End),
	}, nil
}

// parseQualifiedName parses a dotted identifier chain and returns its
// source rendering and range.
func (p *parser) parseQualifiedName() (string, ast.Range, error) {
	first, err := p.expectIdent()
	if err != nil {
		return "", ast.Range{}, err
	}
	name := first.Text
	last := first
	for p.cur().IsPunct(".") {
		p.advance()
		seg, err := p.expectIdent()
		if err != nil {
			return "", ast.Range{}, err
		}
		name += "." + seg.Text
		last = seg
	}
	return name, p.rangeBetween(first, last), nil
}

func splitQualified(name string) (path, simple string) {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// parseTransactCode parses the optional "= N" method id suffix. A numeric
// literal that is not a valid integer yields a diagnostic and a nil code,
// but does not fail the enclosing method.
func (p *parser) parseTransactCode() (*int, ast.Range, error) {
	if !p.cur().IsPunct("=") {
		return nil, ast.Range{}, nil
	}
	p.advance()

	start := p.cur()
	if p.cur().IsPunct("-") {
		p.advance()
	}
	tok := p.cur()
	if tok.Kind != TokenInt && tok.Kind != TokenFloat {
		return nil, ast.Range{}, p.errExpected("an integer")
	}
	p.advance()

	rng := p.rangeBetween(start, tok)
	text := p.info.Text()[start.Start:tok.End]
	code, err := strconv.Atoi(strings.TrimSpace(text))
	if tok.Kind == TokenFloat || err != nil {
		p.handler.Error(
			rng,
			fmt.Sprintf("Invalid method transact code: `%s`", text),
			reporter.ContextMessage("invalid transact code"),
		)
		return nil, rng, nil
	}
	return &code, rng, nil
}

// recoverItem skips forward to the next plausible item start: an import,
// annotation, or item keyword at brace depth zero. Brace pairs passed along
// the way are consumed wholesale.
func (p *parser) recoverItem() {
	depth := 0
	for {
		tok := p.cur()
		switch {
		case tok.Kind == TokenEOF:
			return
		case tok.IsPunct("{"):
			depth++
		case tok.IsPunct("}"):
			p.advance()
			if depth <= 1 {
				return
			}
			depth--
			continue
		case depth == 0:
			if tok.IsKeyword("import") || tok.IsKeyword("interface") ||
				tok.IsKeyword("parcelable") || tok.IsKeyword("enum") ||
				tok.IsKeyword("oneway") || tok.IsPunct("@") {
				return
			}
			if tok.IsPunct(";") {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// recoverElement skips to the end of a damaged interface or parcelable
// element: past the next ";" at depth zero, or up to (but not past) the "}"
// closing the enclosing body.
func (p *parser) recoverElement() {
	depth := 0
	for {
		tok := p.cur()
		switch {
		case tok.Kind == TokenEOF:
			return
		case tok.IsPunct("{") || tok.IsPunct("("):
			depth++
		case tok.IsPunct(")"):
			if depth > 0 {
				depth--
			}
		case tok.IsPunct("}"):
			if depth == 0 {
				return
			}
			depth--
		case tok.IsPunct(";") && depth == 0:
			p.advance()
			return
		}
		p.advance()
	}
}

// recoverEnumElement skips to the next "," at depth zero or up to the
// closing "}".
func (p *parser) recoverEnumElement() {
	depth := 0
	for {
		tok := p.cur()
		switch {
		case tok.Kind == TokenEOF:
			return
		case tok.IsPunct("{") || tok.IsPunct("("):
			depth++
		case tok.IsPunct(")"):
			if depth > 0 {
				depth--
			}
		case tok.IsPunct("}"):
			if depth == 0 {
				return
			}
			depth--
		case tok.IsPunct(",") && depth == 0:
			p.advance()
			return
		}
		p.advance()
	}
}

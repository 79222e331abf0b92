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

package parser

import (
	"github.com/bufbuild/aidlcompile/ast"
	"github.com/bufbuild/aidlcompile/internal/ext/mapsx"
)

// parseType parses a type reference: a builtin, a List or Map with optional
// generic parameters, or a (possibly dotted) custom name. Any number of "[]"
// suffixes wrap the result in synthetic array types, one per dimension.
func (p *parser) parseType() (*ast.Type, error) {
	tok := p.cur()
	var typ *ast.Type
	switch {
	case tok.IsKeyword("void"):
		p.advance()
		typ = p.simpleType(tok, ast.TypeKindVoid)
	case tok.Kind == TokenKeyword && mapsx.Contains(primitives, tok.Text):
		p.advance()
		typ = p.simpleType(tok, ast.TypeKindPrimitive)
	case tok.IsKeyword("String"):
		p.advance()
		typ = p.simpleType(tok, ast.TypeKindString)
	case tok.IsKeyword("CharSequence"):
		p.advance()
		typ = p.simpleType(tok, ast.TypeKindCharSequence)
	case tok.IsKeyword("List"):
		p.advance()
		typ = p.simpleType(tok, ast.TypeKindList)
		if p.cur().IsPunct("<") {
			p.advance()
			elem, err := p.parseType()
			if err != nil {
				return nil, err
			}
			gt, err := p.expectPunct(">")
			if err != nil {
				return nil, err
			}
			typ.GenericTypes = []*ast.Type{elem}
			typ.FullRange = p.info.Range(tok.Start, gt.End)
		}
	case tok.IsKeyword("Map"):
		p.advance()
		typ = p.simpleType(tok, ast.TypeKindMap)
		if p.cur().IsPunct("<") {
			p.advance()
			key, err := p.parseType()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct(","); err != nil {
				return nil, err
			}
			value, err := p.parseType()
			if err != nil {
				return nil, err
			}
			gt, err := p.expectPunct(">")
			if err != nil {
				return nil, err
			}
			typ.GenericTypes = []*ast.Type{key, value}
			typ.FullRange = p.info.Range(tok.Start, gt.End)
		}
	case tok.Kind == TokenIdent:
		name, rng, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		typ = &ast.Type{
			Name:        name,
			Kind:        ast.TypeKindUnresolved,
			SymbolRange: rng,
			FullRange:   rng,
		}
	default:
		return nil, p.errExpected("a type")
	}

	for p.cur().IsPunct("[") {
		p.advance()
		rbracket, err := p.expectPunct("]")
		if err != nil {
			return nil, err
		}
		typ = &ast.Type{
			Name:         "Array",
			Kind:         ast.TypeKindArray,
			GenericTypes: []*ast.Type{typ},
			SymbolRange:  typ.SymbolRange,
			FullRange:    p.info.Range(typ.FullRange.OffsetStart, rbracket.End),
		}
	}
	return typ, nil
}

func (p *parser) simpleType(tok Token, kind ast.TypeKind) *ast.Type {
	return &ast.Type{
		Name:        tok.Text,
		Kind:        kind,
		SymbolRange: p.rangeOf(tok),
		FullRange:   p.rangeOf(tok),
	}
}

// parseValue parses a literal in const, field default, enum element, or
// annotation parameter position. The literal is returned as written in
// source, except that brace initializers are reduced to a "{}" or "{...}"
// marker.
func (p *parser) parseValue() (string, ast.Range, error) {
	tok := p.cur()
	switch {
	case tok.IsPunct("-"):
		minus := p.advance()
		num := p.cur()
		if num.Kind != TokenInt && num.Kind != TokenFloat {
			return "", ast.Range{}, p.errExpected("a number")
		}
		p.advance()
		return "-" + num.Text, p.rangeBetween(minus, num), nil
	case tok.Kind == TokenInt || tok.Kind == TokenFloat || tok.Kind == TokenString:
		p.advance()
		return tok.Text, p.rangeOf(tok), nil
	case tok.IsKeyword("true") || tok.IsKeyword("false"):
		p.advance()
		return tok.Text, p.rangeOf(tok), nil
	case tok.Kind == TokenIdent:
		// A reference to a constant, possibly qualified ("Other.FLAG").
		return p.parseQualifiedName()
	case tok.IsPunct("{"):
		return p.parseBraceValue()
	}
	return "", ast.Range{}, p.errExpected("a value")
}

// parseBraceValue consumes a balanced brace initializer without interpreting
// its contents.
func (p *parser) parseBraceValue() (string, ast.Range, error) {
	lbrace, err := p.expectPunct("{")
	if err != nil {
		return "", ast.Range{}, err
	}
	depth := 1
	empty := true
	for {
		tok := p.cur()
		switch {
		case tok.Kind == TokenEOF:
			return "", ast.Range{}, p.errExpected("`}`")
		case tok.IsPunct("{"):
			depth++
		case tok.IsPunct("}"):
			depth--
			if depth == 0 {
				rbrace := p.advance()
				text := "{}"
				if !empty {
					text = "{...}"
				}
				return text, p.rangeBetween(lbrace, rbrace), nil
			}
		}
		empty = false
		p.advance()
	}
}

// parseAnnotations parses a possibly empty run of "@Name" markers, each with
// an optional parenthesized parameter list.
func (p *parser) parseAnnotations() ([]*ast.Annotation, error) {
	var anns []*ast.Annotation
	for p.cur().IsPunct("@") {
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		ann := &ast.Annotation{Name: "@" + name.Text}
		if p.cur().IsPunct("(") {
			p.advance()
			ann.KeyValues = make(map[string]string)
			if !p.cur().IsPunct(")") {
				for {
					key, err := p.expectIdent()
					if err != nil {
						return nil, err
					}
					var value string
					if p.cur().IsPunct("=") {
						p.advance()
						value, _, err = p.parseValue()
						if err != nil {
							return nil, err
						}
					}
					ann.KeyValues[key.Text] = value
					if p.cur().IsPunct(",") {
						p.advance()
						continue
					}
					break
				}
			}
			if _, err := p.expectPunct(")"); err != nil {
				return nil, err
			}
		}
		anns = append(anns, ann)
	}
	return anns, nil
}

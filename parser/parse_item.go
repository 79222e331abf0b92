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
)

// parseItem parses the file's single top-level declaration. declStart indexes
// the first token of the declaration, before any annotations.
func (p *parser) parseItem(declStart int, doc string, anns []*ast.Annotation) (ast.Item, error) {
	tok := p.cur()
	switch {
	case tok.IsKeyword("oneway") || tok.IsKeyword("interface"):
		return p.parseInterface(declStart, doc, anns)
	case tok.IsKeyword("parcelable"):
		return p.parseParcelable(declStart, doc, anns)
	case tok.IsKeyword("enum"):
		return p.parseEnum(declStart, doc, anns)
	}
	return nil, p.errExpected("`interface`", "`parcelable`", "`enum`")
}

func (p *parser) parseInterface(declStart int, doc string, anns []*ast.Annotation) (*ast.Interface, error) {
	iface := &ast.Interface{Annotations: anns, Doc: doc}
	if p.cur().IsKeyword("oneway") {
		kw := p.advance()
		iface.Oneway = true
		iface.OnewayRange = p.rangeOf(kw)
	}
	kw, err := p.expectKeyword("interface")
	if err != nil {
		return nil, err
	}
	if !iface.Oneway {
		iface.OnewayRange = p.info.ZeroRange(kw.Start)
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	iface.Name = name.Text
	iface.SymbolRange = p.rangeOf(name)
	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	for {
		tok := p.cur()
		if tok.IsPunct("}") {
			break
		}
		if tok.Kind == TokenEOF {
			// An unterminated body keeps the elements parsed so far.
			p.reportSyntax("", p.errExpected("`}`"))
			iface.FullRange = p.info.Range(p.toks[declStart].Start, tok.Start)
			return iface, nil
		}

		elStart := p.pos
		elDoc := p.docBefore(elStart)
		elAnns, err := p.parseAnnotations()
		if err != nil {
			p.reportSyntax("Invalid interface element", err)
			p.recoverElement()
			continue
		}
		var el ast.InterfaceElement
		if p.cur().IsKeyword("const") {
			el, err = p.parseConst(elStart, elDoc, elAnns)
		} else {
			el, err = p.parseMethod(elStart, elDoc, elAnns)
		}
		if err != nil {
			p.reportSyntax("Invalid interface element", err)
			p.recoverElement()
			continue
		}
		iface.Elements = append(iface.Elements, el)
	}

	rbrace := p.advance()
	iface.FullRange = p.info.Range(p.toks[declStart].Start, rbrace.End)
	return iface, nil
}

func (p *parser) parseMethod(elStart int, doc string, anns []*ast.Annotation) (*ast.Method, error) {
	method := &ast.Method{Annotations: anns, Doc: doc}
	if p.cur().IsKeyword("oneway") {
		kw := p.advance()
		method.Oneway = true
		method.OnewayRange = p.rangeOf(kw)
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	method.ReturnType = ret
	if !method.Oneway {
		method.OnewayRange = p.info.ZeroRange(ret.FullRange.OffsetStart)
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	method.Name = name.Text
	method.SymbolRange = p.rangeOf(name)

	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}
	if !p.cur().IsPunct(")") {
		for {
			arg, err := p.parseArg()
			if err != nil {
				return nil, err
			}
			method.Args = append(method.Args, arg)
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

	code, codeRange, err := p.parseTransactCode()
	if err != nil {
		return nil, err
	}
	method.TransactCode = code
	method.TransactCodeRange = codeRange

	semi, err := p.expectPunct(";")
	if err != nil {
		return nil, err
	}
	if codeRange == (ast.Range{}) {
		method.TransactCodeRange = p.info.ZeroRange(semi.Start)
	}
	method.FullRange = p.info.Range(p.toks[elStart].Start, semi.End)
	return method, nil
}

func (p *parser) parseArg() (*ast.Arg, error) {
	argStart := p.pos
	doc := p.docBefore(argStart)
	anns, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	arg := &ast.Arg{Annotations: anns, Doc: doc}

	tok := p.cur()
	switch {
	case tok.IsKeyword("in"):
		arg.Direction = ast.DirectionIn
	case tok.IsKeyword("out"):
		arg.Direction = ast.DirectionOut
	case tok.IsKeyword("inout"):
		arg.Direction = ast.DirectionInOut
	}
	if arg.Direction != ast.DirectionUnspecified {
		p.advance()
		arg.DirectionRange = p.rangeOf(tok)
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	arg.ArgType = typ
	if arg.Direction == ast.DirectionUnspecified {
		arg.DirectionRange = p.info.ZeroRange(typ.FullRange.OffsetStart)
	}

	arg.SymbolRange = typ.SymbolRange
	end := typ.FullRange.OffsetEnd
	if p.cur().Kind == TokenIdent {
		name := p.advance()
		arg.Name = name.Text
		arg.SymbolRange = p.rangeOf(name)
		end = name.End
	}
	arg.FullRange = p.info.Range(p.toks[argStart].Start, end)
	return arg, nil
}

func (p *parser) parseConst(elStart int, doc string, anns []*ast.Annotation) (*ast.Const, error) {
	if _, err := p.expectKeyword("const"); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("="); err != nil {
		return nil, err
	}
	value, _, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	semi, err := p.expectPunct(";")
	if err != nil {
		return nil, err
	}
	return &ast.Const{
		Name:        name.Text,
		ConstType:   typ,
		Value:       value,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: p.rangeOf(name),
		FullRange:   p.info.Range(p.toks[elStart].Start, semi.End),
	}, nil
}

func (p *parser) parseParcelable(declStart int, doc string, anns []*ast.Annotation) (*ast.Parcelable, error) {
	if _, err := p.expectKeyword("parcelable"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	par := &ast.Parcelable{
		Name:        name.Text,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: p.rangeOf(name),
	}
	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	for {
		tok := p.cur()
		if tok.IsPunct("}") {
			break
		}
		if tok.Kind == TokenEOF {
			p.reportSyntax("", p.errExpected("`}`"))
			par.FullRange = p.info.Range(p.toks[declStart].Start, tok.Start)
			return par, nil
		}

		elStart := p.pos
		elDoc := p.docBefore(elStart)
		elAnns, err := p.parseAnnotations()
		if err != nil {
			p.reportSyntax("Invalid parcelable element", err)
			p.recoverElement()
			continue
		}
		var el ast.ParcelableElement
		if p.cur().IsKeyword("const") {
			el, err = p.parseConst(elStart, elDoc, elAnns)
		} else {
			el, err = p.parseField(elStart, elDoc, elAnns)
		}
		if err != nil {
			p.reportSyntax("Invalid parcelable element", err)
			p.recoverElement()
			continue
		}
		par.Elements = append(par.Elements, el)
	}

	rbrace := p.advance()
	par.FullRange = p.info.Range(p.toks[declStart].Start, rbrace.End)
	return par, nil
}

func (p *parser) parseField(elStart int, doc string, anns []*ast.Annotation) (*ast.Field, error) {
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	field := &ast.Field{
		Name:        name.Text,
		FieldType:   typ,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: p.rangeOf(name),
	}
	if p.cur().IsPunct("=") {
		p.advance()
		value, _, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		field.Value = value
	}
	semi, err := p.expectPunct(";")
	if err != nil {
		return nil, err
	}
	field.FullRange = p.info.Range(p.toks[elStart].Start, semi.End)
	return field, nil
}

func (p *parser) parseEnum(declStart int, doc string, anns []*ast.Annotation) (*ast.Enum, error) {
	if _, err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	enum := &ast.Enum{
		Name:        name.Text,
		Annotations: anns,
		Doc:         doc,
		SymbolRange: p.rangeOf(name),
	}
	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	for {
		tok := p.cur()
		if tok.IsPunct("}") {
			break
		}
		if tok.Kind == TokenEOF {
			p.reportSyntax("", p.errExpected("`}`"))
			enum.FullRange = p.info.Range(p.toks[declStart].Start, tok.Start)
			return enum, nil
		}

		elStart := p.pos
		elDoc := p.docBefore(elStart)
		el, err := p.parseEnumElement(elStart, elDoc)
		if err != nil {
			p.reportSyntax("Invalid enum element", err)
			p.recoverEnumElement()
			continue
		}
		enum.Elements = append(enum.Elements, el)

		// Elements are comma-separated; a trailing comma before "}" is fine.
		if p.cur().IsPunct(",") {
			p.advance()
			continue
		}
		if !p.cur().IsPunct("}") {
			p.reportSyntax("Invalid enum element", p.errExpected("`,`", "`}`"))
			p.recoverEnumElement()
		}
	}

	rbrace := p.advance()
	enum.FullRange = p.info.Range(p.toks[declStart].Start, rbrace.End)
	return enum, nil
}

func (p *parser) parseEnumElement(elStart int, doc string) (*ast.EnumElement, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	el := &ast.EnumElement{
		Name:        name.Text,
		Doc:         doc,
		SymbolRange: p.rangeOf(name),
	}
	end := name.End
	if p.cur().IsPunct("=") {
		p.advance()
		value, valueRange, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		el.Value = value
		end = valueRange.OffsetEnd
	}
	el.FullRange = p.info.Range(p.toks[elStart].Start, end)
	return el, nil
}

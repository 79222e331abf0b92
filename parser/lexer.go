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
	"strings"

	"github.com/bufbuild/aidlcompile/ast"
	"github.com/bufbuild/aidlcompile/reporter"
)

// comment records a skipped comment so that documentation blocks can later
// be matched to the declaration that follows them.
type comment struct {
	start, end int
	block      bool
	// doc is set for block comments opened with "/**" (and at least one
	// more character, so "/**/" is an ordinary empty comment).
	doc bool
}

type lexer struct {
	info    *ast.FileInfo
	data    string
	pos     int
	handler *reporter.Handler

	comments []comment
}

func newLexer(info *ast.FileInfo, handler *reporter.Handler) *lexer {
	return &lexer{info: info, data: info.Text(), handler: handler}
}

// Lex tokenizes the whole file. The returned slice always ends with a
// TokenEOF token anchored past the last byte of input.
func (l *lexer) Lex() []Token {
	var toks []Token
	for {
		tok, ok := l.next()
		if !ok {
			toks = append(toks, Token{Kind: TokenEOF, Start: len(l.data), End: len(l.data)})
			return toks
		}
		toks = append(toks, tok)
	}
}

const punctChars = ";,{}()[]<>=.-@"

func (l *lexer) next() (Token, bool) {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v':
			l.pos++
		case c == '/':
			if !l.skipComment() {
				start := l.pos
				l.pos++
				return Token{Kind: TokenError, Text: "/", Start: start, End: l.pos}, true
			}
		case c == '_' || isLetter(c):
			return l.readWord(), true
		case isDigit(c):
			return l.readNumber(l.pos), true
		case c == '.' && l.pos+1 < len(l.data) && isDigit(l.data[l.pos+1]):
			return l.readNumber(l.pos), true
		case c == '"':
			return l.readString(), true
		case strings.IndexByte(punctChars, c) >= 0:
			tok := Token{Kind: TokenPunct, Text: l.data[l.pos : l.pos+1], Start: l.pos, End: l.pos + 1}
			l.pos++
			return tok, true
		default:
			start := l.pos
			// Skip the whole rune, not just one byte of it.
			for l.pos++; l.pos < len(l.data) && l.data[l.pos]&0xc0 == 0x80; l.pos++ {
			}
			return Token{Kind: TokenError, Text: l.data[start:l.pos], Start: start, End: l.pos}, true
		}
	}
	return Token{}, false
}

func (l *lexer) readWord() Token {
	start := l.pos
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if c != '_' && !isLetter(c) && !isDigit(c) {
			break
		}
		l.pos++
	}
	text := l.data[start:l.pos]

	kind := TokenIdent
	if _, ok := keywords[text]; ok {
		kind = TokenKeyword
	} else if _, ok := reservedWords[text]; ok {
		kind = TokenReserved
	}
	return Token{Kind: kind, Text: text, Start: start, End: l.pos}
}

// readNumber lexes an integer or float literal: [0-9]+, (\d*\.)?\d+, with an
// optional trailing 'f'. Signs are separate punctuation tokens.
func (l *lexer) readNumber(start int) Token {
	kind := TokenInt
	for l.pos < len(l.data) && isDigit(l.data[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.data) && l.data[l.pos] == '.' &&
		l.pos+1 < len(l.data) && isDigit(l.data[l.pos+1]) {
		kind = TokenFloat
		l.pos++
		for l.pos < len(l.data) && isDigit(l.data[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.data) && l.data[l.pos] == 'f' {
		kind = TokenFloat
		l.pos++
	}
	return Token{Kind: kind, Text: l.data[start:l.pos], Start: start, End: l.pos}
}

// readString lexes a quoted string. Newlines are not allowed inside string
// literals.
func (l *lexer) readString() Token {
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.data) {
		switch l.data[l.pos] {
		case '"':
			l.pos++
			return Token{Kind: TokenString, Text: l.data[start:l.pos], Start: start, End: l.pos}
		case '\n':
			return Token{Kind: TokenError, Text: l.data[start:l.pos], Start: start, End: l.pos}
		default:
			l.pos++
		}
	}
	return Token{Kind: TokenError, Text: l.data[start:l.pos], Start: start, End: l.pos}
}

// skipComment consumes a line or block comment starting at l.pos and records
// it. Returns false if l.pos does not actually start a comment.
func (l *lexer) skipComment() bool {
	if l.pos+1 >= len(l.data) {
		return false
	}
	start := l.pos
	switch l.data[l.pos+1] {
	case '/':
		end := strings.IndexByte(l.data[l.pos:], '\n')
		if end < 0 {
			l.pos = len(l.data)
		} else {
			l.pos += end
		}
		l.comments = append(l.comments, comment{start: start, end: l.pos})
		return true
	case '*':
		term := strings.Index(l.data[l.pos+2:], "*/")
		if term < 0 {
			l.pos = len(l.data)
			l.errorAt(start, l.pos, "Unterminated block comment")
		} else {
			l.pos += 2 + term + 2
		}
		text := l.data[start:l.pos]
		l.comments = append(l.comments, comment{
			start: start,
			end:   l.pos,
			block: true,
			doc:   len(text) >= 5 && text[2] == '*',
		})
		return true
	default:
		return false
	}
}

func (l *lexer) errorAt(start, end int, msg string) {
	l.handler.Error(l.info.Range(start, end), msg, reporter.ContextMessage("invalid comment"))
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

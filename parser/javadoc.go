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

import "strings"

// docBefore returns the JavaDoc text attached to the declaration starting at
// token index declTok, or "" if there is none.
//
// A "/** ... */" block attaches if only whitespace and line comments separate
// it from the declaration. A plain block comment in between breaks the
// association; blank lines do not.
func (p *parser) docBefore(declTok int) string {
	declStart := p.toks[declTok].Start
	prevEnd := 0
	if declTok > 0 {
		prevEnd = p.toks[declTok-1].End
	}
	for i := len(p.comments) - 1; i >= 0; i-- {
		c := p.comments[i]
		if c.start >= declStart {
			continue
		}
		if c.end <= prevEnd {
			return ""
		}
		if !c.block {
			continue
		}
		if !c.doc {
			return ""
		}
		return cleanJavadoc(p.info.Text()[c.start:c.end])
	}
	return ""
}

// cleanJavadoc strips the comment markers and the conventional "*" gutter
// from a JavaDoc block, preserving interior blank lines.
func cleanJavadoc(text string) string {
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "*"); ok {
			line = strings.TrimPrefix(rest, " ")
		}
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}
	for len(cleaned) > 0 && cleaned[0] == "" {
		cleaned = cleaned[1:]
	}
	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}
	return strings.Join(cleaned, "\n")
}

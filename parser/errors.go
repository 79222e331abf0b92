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
	"fmt"
	"strings"
)

// syntaxError is an internal parse failure. It propagates up to the nearest
// synchronization point, where it is converted to a diagnostic and the
// parser resumes.
type syntaxError struct {
	tok      Token
	expected []string
}

func (e *syntaxError) Error() string {
	return e.message()
}

func (e *syntaxError) message() string {
	switch e.tok.Kind {
	case TokenEOF:
		return strings.TrimSpace("Unrecognized EOF.\n" + expectedStr(e.expected))
	case TokenError:
		if strings.HasPrefix(e.tok.Text, `"`) {
			return "Unterminated string literal"
		}
		return "Invalid token"
	default:
		return fmt.Sprintf("Unrecognized token `%s`.\n%s", e.tok.Text, expectedStr(e.expected))
	}
}

func (e *syntaxError) contextMessage() string {
	switch e.tok.Kind {
	case TokenEOF:
		return "unrecognized EOF"
	case TokenError:
		return "invalid token"
	default:
		return "unrecognized token"
	}
}

// expectedStr renders an expectation list: "Expected X", "Expected X or Y",
// "Expected one of X, Y or Z".
func expectedStr(expected []string) string {
	switch len(expected) {
	case 0:
		return ""
	case 1:
		return "Expected " + expected[0]
	case 2:
		return fmt.Sprintf("Expected %s or %s", expected[0], expected[1])
	default:
		return fmt.Sprintf(
			"Expected one of %s or %s",
			strings.Join(expected[:len(expected)-1], ", "),
			expected[len(expected)-1],
		)
	}
}

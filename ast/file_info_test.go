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

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionOf(t *testing.T) {
	t.Parallel()

	//       01234567890 1234
	text := "package p;\npkg\n"
	info := NewFileInfo("test.aidl", text)

	assert.Equal(t, Position{Line: 1, Col: 1}, info.PositionOf(0))
	assert.Equal(t, Position{Line: 1, Col: 8}, info.PositionOf(7))
	assert.Equal(t, Position{Line: 1, Col: 11}, info.PositionOf(10), "the newline belongs to its line")
	assert.Equal(t, Position{Line: 2, Col: 1}, info.PositionOf(11))
	assert.Equal(t, Position{Line: 2, Col: 4}, info.PositionOf(14))
	assert.Equal(t, Position{Line: 3, Col: 1}, info.PositionOf(15))

	// Out-of-bounds offsets clamp.
	assert.Equal(t, Position{Line: 1, Col: 1}, info.PositionOf(-1))
	assert.Equal(t, Position{Line: 3, Col: 1}, info.PositionOf(999))
}

func TestPositionOfGraphemes(t *testing.T) {
	t.Parallel()

	// The emoji is four bytes but one user-perceived character.
	text := "a\U0001F600b"
	info := NewFileInfo("emoji.aidl", text)

	assert.Equal(t, Position{Line: 1, Col: 2}, info.PositionOf(1))
	assert.Equal(t, Position{Line: 1, Col: 3}, info.PositionOf(5))
	assert.Equal(t, Position{Line: 1, Col: 4}, info.PositionOf(6))
}

func TestRangeAndZeroRange(t *testing.T) {
	t.Parallel()

	text := "package p;\ninterface I {}\n"
	info := NewFileInfo("test.aidl", text)

	rng := info.Range(11, 20)
	assert.Equal(t, Position{Line: 2, Col: 1}, rng.Start)
	assert.Equal(t, Position{Line: 2, Col: 10}, rng.End)
	assert.Equal(t, 9, rng.Len())

	zero := info.ZeroRange(11)
	assert.Equal(t, zero.Start, zero.End)
	assert.Equal(t, 0, zero.Len())
}

func TestFileInfoNil(t *testing.T) {
	t.Parallel()

	var info *FileInfo
	assert.Equal(t, "", info.Key())
	assert.Equal(t, "", info.Text())
	assert.Equal(t, Position{Line: 1, Col: 1}, info.PositionOf(5))
}

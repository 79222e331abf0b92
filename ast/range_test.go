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

func TestPositionBefore(t *testing.T) {
	t.Parallel()

	assert.True(t, Position{Line: 1, Col: 5}.Before(Position{Line: 2, Col: 1}))
	assert.True(t, Position{Line: 2, Col: 1}.Before(Position{Line: 2, Col: 2}))
	assert.False(t, Position{Line: 2, Col: 2}.Before(Position{Line: 2, Col: 2}))
	assert.False(t, Position{Line: 3, Col: 1}.Before(Position{Line: 2, Col: 9}))
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	r := Range{
		Start:       Position{Line: 2, Col: 5},
		End:         Position{Line: 2, Col: 10},
		OffsetStart: 10,
		OffsetEnd:   15,
	}

	assert.True(t, r.Contains(2, 5), "start is inside")
	assert.True(t, r.Contains(2, 7))
	assert.True(t, r.Contains(2, 10), "end is inside")
	assert.False(t, r.Contains(2, 4))
	assert.False(t, r.Contains(2, 11))
	assert.False(t, r.Contains(1, 7))
	assert.False(t, r.Contains(3, 7))
}

func TestRangeContainsRange(t *testing.T) {
	t.Parallel()

	outer := Range{OffsetStart: 10, OffsetEnd: 20}
	assert.True(t, outer.ContainsRange(Range{OffsetStart: 12, OffsetEnd: 18}))
	assert.True(t, outer.ContainsRange(outer))
	assert.False(t, outer.ContainsRange(Range{OffsetStart: 8, OffsetEnd: 18}))
	assert.False(t, outer.ContainsRange(Range{OffsetStart: 12, OffsetEnd: 22}))
}

func TestJoinRanges(t *testing.T) {
	t.Parallel()

	a := Range{
		Start:       Position{Line: 1, Col: 1},
		End:         Position{Line: 1, Col: 4},
		OffsetStart: 0,
		OffsetEnd:   3,
	}
	b := Range{
		Start:       Position{Line: 1, Col: 6},
		End:         Position{Line: 1, Col: 9},
		OffsetStart: 5,
		OffsetEnd:   8,
	}

	joined := JoinRanges(a, b)
	assert.Equal(t, a.Start, joined.Start)
	assert.Equal(t, b.End, joined.End)
	assert.Equal(t, 0, joined.OffsetStart)
	assert.Equal(t, 8, joined.OffsetEnd)

	// Joining with a contained range changes nothing.
	assert.Equal(t, joined, JoinRanges(joined, b))
}

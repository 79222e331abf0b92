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

package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	t.Parallel()

	i := Of(2, 5)
	assert.True(t, i.Contains(2))
	assert.True(t, i.Contains(5))
	assert.False(t, i.Contains(1))
	assert.False(t, i.Contains(6))

	empty := Of(5, 2)
	assert.False(t, empty.Contains(3))
}

func TestContainsInterval(t *testing.T) {
	t.Parallel()

	i := Of(0, 10)
	assert.True(t, i.ContainsInterval(Of(0, 10)))
	assert.True(t, i.ContainsInterval(Of(3, 7)))
	assert.False(t, i.ContainsInterval(Of(-1, 7)))
	assert.False(t, i.ContainsInterval(Of(3, 11)))
}

func TestIntersects(t *testing.T) {
	t.Parallel()

	assert.True(t, Of(0, 5).Intersects(Of(5, 9)))
	assert.True(t, Of(0, 5).Intersects(Of(3, 4)))
	assert.False(t, Of(0, 5).Intersects(Of(6, 9)))
}

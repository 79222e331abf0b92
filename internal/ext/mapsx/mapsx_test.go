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

package mapsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}
	assert.True(t, Contains(m, "a"))
	assert.False(t, Contains(m, "b"))
	assert.False(t, Contains(map[string]int(nil), "a"))
}

func TestAdd(t *testing.T) {
	t.Parallel()

	m := map[string]int{}
	v, inserted := Add(m, "k", 1)
	assert.True(t, inserted)
	assert.Equal(t, 1, v)

	v, inserted = Add(m, "k", 2)
	assert.False(t, inserted)
	assert.Equal(t, 1, v, "the first value sticks")
}

func TestAddZero(t *testing.T) {
	t.Parallel()

	m := map[string]struct{}{}
	assert.True(t, AddZero(m, "k"))
	assert.False(t, AddZero(m, "k"))
	assert.Len(t, m, 1)
}

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

// package interval provides a closed-interval value type used for
// position containment queries.
package interval

import "golang.org/x/exp/constraints"

// Interval is a closed interval [Lo, Hi]. An interval with Hi < Lo is
// empty.
type Interval[T constraints.Ordered] struct {
	Lo, Hi T
}

// Of is a shorthand constructor.
func Of[T constraints.Ordered](lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi}
}

// Contains reports whether v lies within the interval.
func (i Interval[T]) Contains(v T) bool {
	return i.Lo <= v && v <= i.Hi
}

// ContainsInterval reports whether o lies entirely within i.
func (i Interval[T]) ContainsInterval(o Interval[T]) bool {
	return i.Lo <= o.Lo && o.Hi <= i.Hi
}

// Intersects reports whether the two intervals share at least one point.
func (i Interval[T]) Intersects(o Interval[T]) bool {
	return i.Lo <= o.Hi && o.Lo <= i.Hi
}

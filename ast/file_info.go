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
	"slices"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
)

// FileInfo indexes a source text so that byte offsets can be converted to
// line/column positions. The caller-supplied key identifies the file in
// results and related diagnostic infos; it does not need to be a real path.
//
// A FileInfo is immutable once created.
type FileInfo struct {
	key, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, the
	// containing line is recovered by binary search on this list.
	//
	// Alternatively, this slice can be interpreted as the index after each
	// \n in the original file.
	lineIndex []int
}

// NewFileInfo constructs an index over the given source text.
func NewFileInfo(key, text string) *FileInfo {
	return &FileInfo{key: key, text: text}
}

// Key returns the caller-supplied identifier for this file.
func (f *FileInfo) Key() string {
	if f == nil {
		return ""
	}
	return f.key
}

// Text returns this file's textual contents.
func (f *FileInfo) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// PositionOf computes the 1-indexed line/column position of a byte offset.
//
// Columns count grapheme clusters, so a combining sequence or an emoji
// advances the column by one. This operation is O(log n) in the number of
// lines plus O(line length).
func (f *FileInfo) PositionOf(offset int) Position {
	if f == nil || offset <= 0 {
		return Position{Line: 1, Col: 1}
	}
	if offset > len(f.text) {
		offset = len(f.text)
	}

	lines := f.lines()

	// Find the largest index in lines such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	chunk := f.text[lines[line]:offset]
	return Position{
		Line: line + 1,
		Col:  uniseg.GraphemeClusterCount(chunk) + 1,
	}
}

// Range builds a Range for the half-open byte region [start, end).
func (f *FileInfo) Range(start, end int) Range {
	return Range{
		Start:       f.PositionOf(start),
		End:         f.PositionOf(end),
		OffsetStart: start,
		OffsetEnd:   end,
	}
}

// ZeroRange builds a zero-width Range anchored at the given byte offset.
func (f *FileInfo) ZeroRange(offset int) Range {
	pos := f.PositionOf(offset)
	return Range{Start: pos, End: pos, OffsetStart: offset, OffsetEnd: offset}
}

func (f *FileInfo) lines() []int {
	// Compute the prefix sum on demand.
	f.once.Do(func() {
		var next int

		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text := f.text
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}

			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}

		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}

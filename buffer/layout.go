// This file is part of rendercore.
//
// rendercore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rendercore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rendercore.  If not, see <https://www.gnu.org/licenses/>.

package buffer

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/rendercore/gpu"
)

// Element is a single attribute of an interleaved vertex. The Offset field is
// filled in by NewLayout().
type Element struct {
	Name       string
	Type       gpu.DataType
	Normalised bool
	Offset     int
}

// Size of the element in bytes.
func (e Element) Size() int {
	return e.Type.Size()
}

// Components in the element.
func (e Element) Components() int {
	return e.Type.Components()
}

func (e Element) String() string {
	return fmt.Sprintf("%s %s @%d", e.Name, e.Type, e.Offset)
}

// Layout describes the interleaved elements of a vertex buffer.
type Layout struct {
	elements []Element
	stride   int
}

// NewLayout is the preferred method of initialisation for the Layout type.
// Offsets are assigned in order and the stride is the sum of the element
// sizes.
func NewLayout(elements ...Element) Layout {
	l := Layout{
		elements: make([]Element, len(elements)),
	}
	copy(l.elements, elements)

	offset := 0
	for i := range l.elements {
		l.elements[i].Offset = offset
		offset += l.elements[i].Size()
	}
	l.stride = offset

	return l
}

// Elements returns the elements of the layout.
func (l Layout) Elements() []Element {
	return l.elements
}

// Stride returns the size of one vertex in bytes.
func (l Layout) Stride() int {
	return l.stride
}

func (l Layout) String() string {
	s := strings.Builder{}
	for i, e := range l.elements {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(e.String())
	}
	return fmt.Sprintf("[%s] stride %d", s.String(), l.stride)
}

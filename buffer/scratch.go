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
	"sync"

	"github.com/jetsetilly/rendercore/gpu"
)

// pools of backing arrays. released scratch buffers are reused by later
// allocations of the same type.
var (
	uint8Pool   sync.Pool
	float32Pool sync.Pool
)

// Scratch is a host buffer for the pixel data of a format. Float formats use
// the F32 field and all other formats use the U8 field. The unused field is
// nil.
type Scratch struct {
	Format gpu.Format
	U8     []uint8
	F32    []float32
}

// AllocateForFormat returns a Scratch buffer with room for size values of the
// format. The contents of the buffer are zero.
func AllocateForFormat(format gpu.Format, size int) *Scratch {
	s := &Scratch{Format: format}

	if format.IsFloat() {
		if p, ok := float32Pool.Get().(*[]float32); ok && cap(*p) >= size {
			s.F32 = (*p)[:size]
			clear(s.F32)
		} else {
			s.F32 = make([]float32, size)
		}
		return s
	}

	if p, ok := uint8Pool.Get().(*[]uint8); ok && cap(*p) >= size {
		s.U8 = (*p)[:size]
		clear(s.U8)
	} else {
		s.U8 = make([]uint8, size)
	}
	return s
}

// Pixels returns the active field as a value suitable for the pixels argument
// of gpu.Device functions.
func (s *Scratch) Pixels() any {
	if s.F32 != nil {
		return s.F32
	}
	return s.U8
}

// Len returns the number of values in the buffer.
func (s *Scratch) Len() int {
	if s.F32 != nil {
		return len(s.F32)
	}
	return len(s.U8)
}

// Release returns the buffer for reuse. The Scratch must not be used after
// it has been released. It is safe to call Release() more than once.
func (s *Scratch) Release() {
	if s.F32 != nil {
		f := s.F32
		float32Pool.Put(&f)
		s.F32 = nil
	}
	if s.U8 != nil {
		u := s.U8
		uint8Pool.Put(&u)
		s.U8 = nil
	}
}

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

package framebuffer

import (
	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/library"
)

// Library is a named collection of FrameBuffers.
type Library struct {
	*library.Library[*FrameBuffer]
	env *environment.Environment
}

// NewLibrary is the preferred method of initialisation for the Library type.
func NewLibrary(env *environment.Environment) *Library {
	return &Library{
		Library: library.NewLibrary[*FrameBuffer](env, "framebuffer"),
		env:     env,
	}
}

// Create a new FrameBuffer and add it to the library with the name. The new
// FrameBuffer is returned even if the name is already in use, in which case
// it is not added to the library and a warning is logged.
func (lib *Library) Create(name string, spec Specification) *FrameBuffer {
	fb := New(lib.env, spec)
	lib.Add(name, fb)
	return fb
}

// DestroyAll destroys every FrameBuffer in the library. The library is
// emptied.
func (lib *Library) DestroyAll() {
	for _, n := range lib.Names() {
		if fb, ok := lib.Remove(n); ok {
			fb.Destroy()
		}
	}
}

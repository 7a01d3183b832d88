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

// Package library implements a generic registry of named objects.
//
// Adding an object with a name that is already in use, or asking for a name
// that is not in use, is not an error. Instead, a warning is added to the log
// of the Environment and the operation returns false. The registry is left
// unchanged in both cases.
//
//	lib := library.NewLibrary[*framebuffer.FrameBuffer](env, "framebuffer")
//	lib.Add("geometry", fb)
//	fb, ok := lib.Get("geometry")
//
// A Library is not safe for concurrent use.
package library

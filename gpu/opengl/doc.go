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

// Package opengl implements the gpu.Device interface with an OpenGL 3.2 core
// context. The context must be current on the calling thread before
// NewDevice() is called and every function of the Device must be called
// from the same goroutine. The platform package can provide a suitable
// context.
//
// The translate functions map the abstract enumerations of the gpu package
// to OpenGL constants. They do not require a context and can be used freely.
package opengl

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

// Package gpu defines the abstract vocabulary shared by every other package
// in rendercore: pixel formats, texture dimensionality, sampling modes and
// the Device interface.
//
// The Device interface is the narrow set of bind, allocate, attach, blit and
// read operations that the texture and framebuffer packages need. There are
// two implementations. The opengl package drives a real OpenGL 3.2 core
// context and the software package simulates a device in memory with real
// pixel storage. The software device is used for headless export and for
// testing.
//
// Enumerations in this package have String() functions and a matching Parse
// function. The names are used in framebuffer blueprint files.
package gpu

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

// Package buffer contains the host and device buffer primitives of
// rendercore.
//
// Scratch buffers are host memory used for pixel readback. They are sized
// and typed for a pixel format and must be returned with Release() when they
// are no longer needed.
//
// VertexBuffer and IndexBuffer are device buffers. The Layout type describes
// the interleaved elements of a vertex buffer.
package buffer

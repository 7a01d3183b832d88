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

// Package software implements the gpu.Device interface in memory. Textures
// have real pixel storage and framebuffer operations (clears, blits and
// readback) act on that storage.
//
// The device is useful for headless export of framebuffer attachments and for
// testing. Introspection functions, such as TextureCount() and
// Attachment(), expose state that a real graphics context would hide.
//
// Pixel values are stored as float32 regardless of format. Normalised formats
// store values in the range 0.0 to 1.0 and integer formats store the integer
// value. Row zero is the bottom row of an image, as it is with OpenGL.
//
// Invalid operations do not panic. The error is recorded and can be
// retrieved with the Error() function, in the manner of glGetError(). The
// error is also logged.
//
// Multisampled textures store a single sample per texel. The sample count is
// recorded and checked for completeness but blits between multisampled and
// single sampled framebuffers are straight copies.
package software

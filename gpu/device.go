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

package gpu

// TexImage describes the storage to allocate for one level of a texture.
// Depth is only used for 3D textures and Samples only for multisampled 2D
// textures.
//
// Pixels may be nil, in which case the storage is allocated but left
// uninitialised. Otherwise it must be []uint8 or []float32 with enough values
// for Width*Height*Depth texels of the format.
type TexImage struct {
	Level   int
	Format  Format
	Width   int
	Height  int
	Depth   int
	Samples int
	Pixels  any
}

// Sampling is the set of sampling parameters for a texture.
type Sampling struct {
	MinFilter Filter
	MagFilter Filter
	Mipmaps   bool
	WrapS     Wrap
	WrapT     Wrap
	WrapR     Wrap
}

// Device is the set of operations the rest of rendercore requires from a
// graphics backend. Object identifiers are never zero. The zero identifier
// for framebuffers is the default framebuffer.
//
// Functions that take a pixels argument accept []uint8 or []float32.
type Device interface {
	API() API

	// the number of colour attachment slots supported
	MaxColorAttachments() int

	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(target TextureTarget, id uint32)
	ActiveTexture(unit int)
	TexImage(target TextureTarget, img TexImage)
	TexSampling(target TextureTarget, s Sampling)
	TexBorderColor(target TextureTarget, rgba [4]float32)
	GenerateMipmap(target TextureTarget)

	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	BindFramebuffer(target FramebufferTarget, id uint32)

	// attach a texture to the framebuffer bound to target. the texTarget
	// decides the dimensionality of the attachment. layer is only used for
	// 3D textures
	FramebufferTexture(target FramebufferTarget, attachment AttachmentPoint, texTarget TextureTarget, id uint32, level int, layer int)
	CheckFramebufferStatus(target FramebufferTarget) FramebufferStatus
	DrawBuffers(buffers []AttachmentPoint)
	ReadBuffer(buffer AttachmentPoint)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask BufferMask)

	// clear the colour draw buffer at index drawBuffer with an integer value.
	// ClearBufferi is for signed formats and ClearBufferui for unsigned formats
	ClearBufferi(drawBuffer int, value int32)
	ClearBufferui(drawBuffer int, value uint32)
	BlitFramebuffer(src Rect, dst Rect, mask BufferMask, filter Filter)

	// read pixels from the read buffer of the read framebuffer
	ReadPixels(x, y, width, height int, format Format, pixels any)

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target BufferTarget, id uint32)
	BufferData(target BufferTarget, data []byte, usage BufferUsage)
	BufferSubData(target BufferTarget, offset int, data []byte)
}

// DefaultFramebuffer is the identifier of the framebuffer provided by the
// window system.
const DefaultFramebuffer uint32 = 0

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

package opengl

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/rendercore/gpu"
)

// InternalFormat returns the sized internal format for a pixel format.
// Returns zero for gpu.FormatNone.
func InternalFormat(f gpu.Format) int32 {
	switch f {
	case gpu.FormatR8:
		return gl.R8
	case gpu.FormatRG8:
		return gl.RG8
	case gpu.FormatRGB8:
		return gl.RGB8
	case gpu.FormatRGBA8:
		return gl.RGBA8
	case gpu.FormatR16F:
		return gl.R16F
	case gpu.FormatRGB16F:
		return gl.RGB16F
	case gpu.FormatRGBA16F:
		return gl.RGBA16F
	case gpu.FormatRGB32F:
		return gl.RGB32F
	case gpu.FormatRGBA32F:
		return gl.RGBA32F
	case gpu.FormatR8UI:
		return gl.R8UI
	case gpu.FormatRG8UI:
		return gl.RG8UI
	case gpu.FormatRGB8UI:
		return gl.RGB8UI
	case gpu.FormatRGBA8UI:
		return gl.RGBA8UI
	case gpu.FormatDepth24:
		return gl.DEPTH_COMPONENT24
	case gpu.FormatDepth32F:
		return gl.DEPTH_COMPONENT32F
	case gpu.FormatDepth24Stencil8:
		return gl.DEPTH24_STENCIL8
	}
	return 0
}

// BaseFormat returns the pixel transfer format for a pixel format. Integer
// formats use the _INTEGER variants.
func BaseFormat(f gpu.Format) uint32 {
	switch f {
	case gpu.FormatDepth24, gpu.FormatDepth32F:
		return gl.DEPTH_COMPONENT
	case gpu.FormatDepth24Stencil8:
		return gl.DEPTH_STENCIL
	}

	if f.IsInteger() {
		switch f.Channels() {
		case 1:
			return gl.RED_INTEGER
		case 2:
			return gl.RG_INTEGER
		case 3:
			return gl.RGB_INTEGER
		}
		return gl.RGBA_INTEGER
	}

	switch f.Channels() {
	case 1:
		return gl.RED
	case 2:
		return gl.RG
	case 3:
		return gl.RGB
	}
	return gl.RGBA
}

// PixelType returns the data type of pixel transfers for a pixel format. The
// pixels argument decides the type for colour formats: []float32 is
// transferred as gl.FLOAT and everything else as gl.UNSIGNED_BYTE. A nil
// pixels argument uses the natural type of the format.
func PixelType(f gpu.Format, pixels any) uint32 {
	switch f {
	case gpu.FormatDepth24:
		if _, ok := pixels.([]float32); ok {
			return gl.FLOAT
		}
		return gl.UNSIGNED_INT
	case gpu.FormatDepth32F:
		return gl.FLOAT
	case gpu.FormatDepth24Stencil8:
		return gl.UNSIGNED_INT_24_8
	}

	switch pixels.(type) {
	case []float32:
		return gl.FLOAT
	case nil:
		if f.IsFloat() {
			return gl.FLOAT
		}
	}
	return gl.UNSIGNED_BYTE
}

// TextureTarget returns the OpenGL texture target.
func TextureTarget(t gpu.TextureTarget) uint32 {
	switch t {
	case gpu.Texture1D:
		return gl.TEXTURE_1D
	case gpu.Texture2D:
		return gl.TEXTURE_2D
	case gpu.Texture2DMultisample:
		return gl.TEXTURE_2D_MULTISAMPLE
	case gpu.Texture3D:
		return gl.TEXTURE_3D
	case gpu.TextureCubeMap:
		return gl.TEXTURE_CUBE_MAP
	}
	if t.IsCubeFace() {
		return gl.TEXTURE_CUBE_MAP_POSITIVE_X + uint32(t-gpu.TextureCubePositiveX)
	}
	return gl.TEXTURE_2D
}

// FramebufferTarget returns the OpenGL framebuffer binding target.
func FramebufferTarget(t gpu.FramebufferTarget) uint32 {
	switch t {
	case gpu.FramebufferRead:
		return gl.READ_FRAMEBUFFER
	case gpu.FramebufferDraw:
		return gl.DRAW_FRAMEBUFFER
	}
	return gl.FRAMEBUFFER
}

// AttachmentPoint returns the OpenGL attachment point or draw buffer.
func AttachmentPoint(a gpu.AttachmentPoint) uint32 {
	switch a {
	case gpu.DepthAttachment:
		return gl.DEPTH_ATTACHMENT
	case gpu.DepthStencilAttachment:
		return gl.DEPTH_STENCIL_ATTACHMENT
	case gpu.NoBuffer:
		return gl.NONE
	case gpu.BackBuffer:
		return gl.BACK
	}
	return gl.COLOR_ATTACHMENT0 + uint32(a)
}

// Wrap returns the OpenGL wrap mode. gpu.WrapNone is treated as
// gpu.WrapClampToEdge.
func Wrap(w gpu.Wrap) int32 {
	switch w {
	case gpu.WrapRepeat:
		return gl.REPEAT
	case gpu.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case gpu.WrapClampToBorder:
		return gl.CLAMP_TO_BORDER
	}
	return gl.CLAMP_TO_EDGE
}

// MinFilter returns the OpenGL minification filter. When the texture has
// mip-maps the nearest filter samples the nearest mip level and the linear
// filter interpolates between levels.
func MinFilter(f gpu.Filter, mipmaps bool) int32 {
	if mipmaps {
		if f == gpu.FilterNearest {
			return gl.NEAREST_MIPMAP_NEAREST
		}
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return MagFilter(f)
}

// MagFilter returns the OpenGL magnification filter. gpu.FilterNone is
// treated as gpu.FilterLinear.
func MagFilter(f gpu.Filter) int32 {
	if f == gpu.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// BufferMask returns the OpenGL buffer bits for a clear or blit.
func BufferMask(m gpu.BufferMask) uint32 {
	var b uint32
	if m&gpu.ColorBufferBit == gpu.ColorBufferBit {
		b |= gl.COLOR_BUFFER_BIT
	}
	if m&gpu.DepthBufferBit == gpu.DepthBufferBit {
		b |= gl.DEPTH_BUFFER_BIT
	}
	if m&gpu.StencilBufferBit == gpu.StencilBufferBit {
		b |= gl.STENCIL_BUFFER_BIT
	}
	return b
}

// Status returns the gpu.FramebufferStatus for an OpenGL completeness value.
func Status(s uint32) gpu.FramebufferStatus {
	switch s {
	case gl.FRAMEBUFFER_COMPLETE:
		return gpu.StatusComplete
	case gl.FRAMEBUFFER_UNDEFINED:
		return gpu.StatusUndefined
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return gpu.StatusIncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return gpu.StatusMissingAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return gpu.StatusIncompleteDrawBuffer
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return gpu.StatusIncompleteReadBuffer
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return gpu.StatusIncompleteMultisample
	case gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return gpu.StatusIncompleteLayerTargets
	}
	return gpu.StatusUnsupported
}

// DataType returns the OpenGL component type of a vertex layout element.
func DataType(d gpu.DataType) uint32 {
	switch d {
	case gpu.DataBool:
		return gl.BOOL
	case gpu.DataInt:
		return gl.INT
	}
	return gl.FLOAT
}

// BufferTarget returns the OpenGL buffer binding target.
func BufferTarget(t gpu.BufferTarget) uint32 {
	if t == gpu.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// BufferUsage returns the OpenGL buffer usage hint.
func BufferUsage(u gpu.BufferUsage) uint32 {
	if u == gpu.DynamicDraw {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

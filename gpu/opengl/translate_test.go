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

package opengl_test

import (
	"testing"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/gpu/opengl"
	"github.com/jetsetilly/rendercore/test"
)

// the translate functions do not require an OpenGL context

func TestFormats(t *testing.T) {
	test.ExpectEquality(t, opengl.InternalFormat(gpu.FormatRGBA8), int32(gl.RGBA8))
	test.ExpectEquality(t, opengl.InternalFormat(gpu.FormatDepth24Stencil8), int32(gl.DEPTH24_STENCIL8))
	test.ExpectEquality(t, opengl.InternalFormat(gpu.FormatNone), int32(0))

	test.ExpectEquality(t, opengl.BaseFormat(gpu.FormatRGB16F), uint32(gl.RGB))
	test.ExpectEquality(t, opengl.BaseFormat(gpu.FormatR8UI), uint32(gl.RED_INTEGER))
	test.ExpectEquality(t, opengl.BaseFormat(gpu.FormatDepth32F), uint32(gl.DEPTH_COMPONENT))
	test.ExpectEquality(t, opengl.BaseFormat(gpu.FormatDepth24Stencil8), uint32(gl.DEPTH_STENCIL))

	test.ExpectEquality(t, opengl.PixelType(gpu.FormatRGBA8, nil), uint32(gl.UNSIGNED_BYTE))
	test.ExpectEquality(t, opengl.PixelType(gpu.FormatRGBA32F, nil), uint32(gl.FLOAT))
	test.ExpectEquality(t, opengl.PixelType(gpu.FormatRGBA8, []float32{}), uint32(gl.FLOAT))
	test.ExpectEquality(t, opengl.PixelType(gpu.FormatDepth24Stencil8, nil), uint32(gl.UNSIGNED_INT_24_8))
}

func TestTargets(t *testing.T) {
	test.ExpectEquality(t, opengl.TextureTarget(gpu.Texture2DMultisample), uint32(gl.TEXTURE_2D_MULTISAMPLE))
	test.ExpectEquality(t, opengl.TextureTarget(gpu.CubeFace(0)), uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X))
	test.ExpectEquality(t, opengl.TextureTarget(gpu.CubeFace(5)), uint32(gl.TEXTURE_CUBE_MAP_NEGATIVE_Z))

	test.ExpectEquality(t, opengl.AttachmentPoint(gpu.ColorAttachment(3)), uint32(gl.COLOR_ATTACHMENT3))
	test.ExpectEquality(t, opengl.AttachmentPoint(gpu.DepthStencilAttachment), uint32(gl.DEPTH_STENCIL_ATTACHMENT))
	test.ExpectEquality(t, opengl.AttachmentPoint(gpu.NoBuffer), uint32(gl.NONE))
	test.ExpectEquality(t, opengl.AttachmentPoint(gpu.BackBuffer), uint32(gl.BACK))

	test.ExpectEquality(t, opengl.FramebufferTarget(gpu.FramebufferRead), uint32(gl.READ_FRAMEBUFFER))
}

func TestSampling(t *testing.T) {
	test.ExpectEquality(t, opengl.Wrap(gpu.WrapNone), int32(gl.CLAMP_TO_EDGE))
	test.ExpectEquality(t, opengl.Wrap(gpu.WrapClampToBorder), int32(gl.CLAMP_TO_BORDER))
	test.ExpectEquality(t, opengl.MinFilter(gpu.FilterNearest, true), int32(gl.NEAREST_MIPMAP_NEAREST))
	test.ExpectEquality(t, opengl.MinFilter(gpu.FilterLinear, true), int32(gl.LINEAR_MIPMAP_LINEAR))
	test.ExpectEquality(t, opengl.MinFilter(gpu.FilterLinear, false), int32(gl.LINEAR))
	test.ExpectEquality(t, opengl.MagFilter(gpu.FilterNearest), int32(gl.NEAREST))
}

func TestMasksAndStatus(t *testing.T) {
	test.ExpectEquality(t, opengl.BufferMask(gpu.BufferState{Color: true, Depth: true}.Mask()),
		uint32(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT))
	test.ExpectEquality(t, opengl.Status(gl.FRAMEBUFFER_COMPLETE), gpu.StatusComplete)
	test.ExpectEquality(t, opengl.Status(gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE), gpu.StatusIncompleteMultisample)
	test.ExpectEquality(t, opengl.DataType(gpu.DataMat4), uint32(gl.FLOAT))
	test.ExpectEquality(t, opengl.BufferTarget(gpu.ElementArrayBuffer), uint32(gl.ELEMENT_ARRAY_BUFFER))
}

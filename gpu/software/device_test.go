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

package software_test

import (
	"testing"

	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/gpu/software"
	"github.com/jetsetilly/rendercore/test"
)

// create a 2D texture of the given format and size with optional pixels.
func newTexture(dev *software.Device, format gpu.Format, w, h int, pixels any) uint32 {
	id := dev.GenTexture()
	dev.BindTexture(gpu.Texture2D, id)
	dev.TexImage(gpu.Texture2D, gpu.TexImage{Format: format, Width: w, Height: h, Pixels: pixels})
	dev.BindTexture(gpu.Texture2D, 0)
	return id
}

// create a framebuffer with a colour attachment and optional depth
// attachment.
func newFramebuffer(dev *software.Device, color uint32, depth uint32) uint32 {
	fb := dev.GenFramebuffer()
	dev.BindFramebuffer(gpu.FramebufferBoth, fb)
	if color != 0 {
		dev.FramebufferTexture(gpu.FramebufferBoth, gpu.ColorAttachment(0), gpu.Texture2D, color, 0, 0)
	}
	if depth != 0 {
		dev.FramebufferTexture(gpu.FramebufferBoth, gpu.DepthStencilAttachment, gpu.Texture2D, depth, 0, 0)
	}
	return fb
}

func TestTextureUpload(t *testing.T) {
	dev := software.NewDevice(16, 16)

	id := newTexture(dev, gpu.FormatRGBA8, 2, 1, []uint8{255, 0, 0, 255, 0, 51, 0, 255})
	test.ExpectSuccess(t, dev.Error())

	info, ok := dev.Texture(id)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, info.Kind, gpu.Texture2D)
	test.ExpectEquality(t, info.Width, 2)
	test.ExpectEquality(t, info.Height, 1)
	test.ExpectEquality(t, info.Samples, 1)

	p := dev.Pixels(id, 0)
	test.DemandEquality(t, len(p), 8)
	test.ExpectEquality(t, p[0], float32(1.0))
	test.ExpectApproximate(t, p[5], 0.2, 0.001)

	// pixel data that is too short is an error
	dev.BindTexture(gpu.Texture2D, id)
	dev.TexImage(gpu.Texture2D, gpu.TexImage{Format: gpu.FormatRGBA8, Width: 4, Height: 4, Pixels: []uint8{1, 2, 3}})
	test.ExpectFailure(t, dev.Error())

	// binding a 2D texture as a 3D texture is an error
	dev.BindTexture(gpu.Texture3D, id)
	test.ExpectFailure(t, dev.Error())

	dev.DeleteTexture(id)
	test.ExpectEquality(t, dev.TextureCount(), 0)
	dev.DeleteTexture(id)
	test.ExpectFailure(t, dev.Error())
}

func TestCubeMap(t *testing.T) {
	dev := software.NewDevice(16, 16)

	id := dev.GenTexture()
	dev.BindTexture(gpu.TextureCubeMap, id)
	for f := range 6 {
		dev.TexImage(gpu.CubeFace(f), gpu.TexImage{Format: gpu.FormatRGBA8, Width: 4, Height: 4})
	}
	test.ExpectSuccess(t, dev.Error())

	fb := dev.GenFramebuffer()
	dev.BindFramebuffer(gpu.FramebufferBoth, fb)
	dev.FramebufferTexture(gpu.FramebufferBoth, gpu.ColorAttachment(0), gpu.CubeFace(3), id, 0, 0)
	test.ExpectSuccess(t, dev.Error())
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusComplete)

	a, ok := dev.Attachment(fb, gpu.ColorAttachment(0))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, a.Layer, 3)
	test.ExpectEquality(t, a.Target, gpu.TextureCubeNegativeY)

	// attaching a cube map as a 2D texture is an error
	dev.FramebufferTexture(gpu.FramebufferBoth, gpu.ColorAttachment(1), gpu.Texture2D, id, 0, 0)
	test.ExpectFailure(t, dev.Error())

	// faces must be square. a face that is not allocated leaves the
	// framebuffer incomplete
	oblong := dev.GenTexture()
	dev.BindTexture(gpu.TextureCubeMap, oblong)
	dev.TexImage(gpu.CubeFace(0), gpu.TexImage{Format: gpu.FormatRGBA8, Width: 8, Height: 4})
	err := dev.Error()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "software: cube map faces must be square (8x4)")

	fb2 := dev.GenFramebuffer()
	dev.BindFramebuffer(gpu.FramebufferBoth, fb2)
	dev.FramebufferTexture(gpu.FramebufferBoth, gpu.ColorAttachment(0), gpu.CubeFace(0), oblong, 0, 0)
	test.ExpectSuccess(t, dev.Error())
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusIncompleteAttachment)
}

func TestCompleteness(t *testing.T) {
	dev := software.NewDevice(16, 16)

	// no attachments
	fb := dev.GenFramebuffer()
	dev.BindFramebuffer(gpu.FramebufferBoth, fb)
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusMissingAttachment)

	// the default framebuffer is always complete
	dev.BindFramebuffer(gpu.FramebufferBoth, gpu.DefaultFramebuffer)
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusComplete)

	// mismatched sizes
	c := newTexture(dev, gpu.FormatRGBA8, 4, 4, nil)
	d := newTexture(dev, gpu.FormatDepth24Stencil8, 8, 8, nil)
	newFramebuffer(dev, c, d)
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusIncompleteDimensions)

	// depth format in a colour slot
	d2 := newTexture(dev, gpu.FormatDepth24, 4, 4, nil)
	newFramebuffer(dev, d2, 0)
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusIncompleteAttachment)

	// depth without stencil at the depth-stencil attachment point
	newFramebuffer(dev, c, d2)
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusIncompleteAttachment)

	// depth only framebuffer requires no draw buffer and no read buffer
	d3 := newTexture(dev, gpu.FormatDepth24Stencil8, 4, 4, nil)
	newFramebuffer(dev, 0, d3)
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusIncompleteDrawBuffer)
	dev.DrawBuffers([]gpu.AttachmentPoint{gpu.NoBuffer})
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusIncompleteReadBuffer)
	dev.ReadBuffer(gpu.NoBuffer)
	test.ExpectEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusComplete)
}

func TestClearAndRead(t *testing.T) {
	dev := software.NewDevice(16, 16)

	c := newTexture(dev, gpu.FormatRGBA8, 2, 2, nil)
	d := newTexture(dev, gpu.FormatDepth24Stencil8, 2, 2, nil)
	newFramebuffer(dev, c, d)
	test.DemandEquality(t, dev.CheckFramebufferStatus(gpu.FramebufferBoth), gpu.StatusComplete)

	dev.ClearColor(0, 0, 1, 1)
	dev.Clear(gpu.ColorBufferBit | gpu.DepthBufferBit)

	p := make([]uint8, 2*2*4)
	dev.ReadPixels(0, 0, 2, 2, gpu.FormatRGBA8, p)
	test.ExpectSuccess(t, dev.Error())
	for i := 0; i < len(p); i += 4 {
		test.ExpectEquality(t, p[i], uint8(0))
		test.ExpectEquality(t, p[i+2], uint8(255))
		test.ExpectEquality(t, p[i+3], uint8(255))
	}

	depth := dev.Pixels(d, 0)
	test.ExpectEquality(t, depth[0], float32(1.0))

	// float read back of a normalised format
	f := make([]float32, 2*2*4)
	dev.ReadPixels(0, 0, 2, 2, gpu.FormatRGBA32F, f)
	test.ExpectEquality(t, f[2], float32(1.0))

	// buffer too small
	dev.ReadPixels(0, 0, 2, 2, gpu.FormatRGBA8, make([]uint8, 3))
	test.ExpectFailure(t, dev.Error())
}

func TestClearBufferi(t *testing.T) {
	dev := software.NewDevice(16, 16)

	c := newTexture(dev, gpu.FormatR8UI, 2, 2, nil)
	newFramebuffer(dev, c, 0)
	dev.ClearBufferui(0, 7)
	test.ExpectSuccess(t, dev.Error())

	p := make([]uint8, 4)
	dev.ReadPixels(0, 0, 2, 2, gpu.FormatR8UI, p)
	test.ExpectEquality(t, p[3], uint8(7))

	// a signed clear of an unsigned format is an error and leaves the
	// attachment unchanged
	dev.ClearBufferi(0, 3)
	err := dev.Error()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "software: signed integer clear of R8UI attachment")
	dev.ReadPixels(0, 0, 2, 2, gpu.FormatR8UI, p)
	test.ExpectEquality(t, p[3], uint8(7))

	// normalised formats cannot be cleared with an integer
	c2 := newTexture(dev, gpu.FormatRGBA8, 2, 2, nil)
	newFramebuffer(dev, c2, 0)
	dev.ClearBufferi(0, 7)
	test.ExpectFailure(t, dev.Error())
	dev.ClearBufferui(0, 7)
	test.ExpectFailure(t, dev.Error())
}

func TestBlit(t *testing.T) {
	dev := software.NewDevice(16, 16)

	// 2x1 source. black then white
	src := newTexture(dev, gpu.FormatR8, 2, 1, []uint8{0, 255})
	srcFB := newFramebuffer(dev, src, 0)

	dst := newTexture(dev, gpu.FormatR8, 4, 1, nil)
	dstFB := newFramebuffer(dev, dst, 0)

	dev.BindFramebuffer(gpu.FramebufferRead, srcFB)
	dev.BindFramebuffer(gpu.FramebufferDraw, dstFB)
	dev.BlitFramebuffer(gpu.Rect{X1: 2, Y1: 1}, gpu.Rect{X1: 4, Y1: 1}, gpu.ColorBufferBit, gpu.FilterNearest)
	test.ExpectSuccess(t, dev.Error())

	p := dev.Pixels(dst, 0)
	test.ExpectEquality(t, p[0], float32(0))
	test.ExpectEquality(t, p[1], float32(0))
	test.ExpectEquality(t, p[2], float32(1))
	test.ExpectEquality(t, p[3], float32(1))

	// linear filtering produces intermediate values
	dev.BlitFramebuffer(gpu.Rect{X1: 2, Y1: 1}, gpu.Rect{X1: 4, Y1: 1}, gpu.ColorBufferBit, gpu.FilterLinear)
	p = dev.Pixels(dst, 0)
	test.ExpectEquality(t, p[0], float32(0))
	test.ExpectApproximate(t, p[1], 0.25, 0.001)
	test.ExpectApproximate(t, p[2], 0.75, 0.001)
	test.ExpectEquality(t, p[3], float32(1))

	// linear filtering of depth is an error
	dev.BlitFramebuffer(gpu.Rect{X1: 2, Y1: 1}, gpu.Rect{X1: 4, Y1: 1}, gpu.DepthBufferBit, gpu.FilterLinear)
	test.ExpectFailure(t, dev.Error())
}

func TestMipmaps(t *testing.T) {
	dev := software.NewDevice(16, 16)

	id := newTexture(dev, gpu.FormatRGBA8, 8, 4, nil)
	dev.BindTexture(gpu.Texture2D, id)
	dev.GenerateMipmap(gpu.Texture2D)
	test.ExpectSuccess(t, dev.Error())

	info, _ := dev.Texture(id)
	test.ExpectEquality(t, info.MipLevels, 4)
	test.ExpectEquality(t, info.MipGenerations, 1)
}

func TestBuffers(t *testing.T) {
	dev := software.NewDevice(16, 16)

	id := dev.GenBuffer()
	dev.BindBuffer(gpu.ArrayBuffer, id)
	dev.BufferData(gpu.ArrayBuffer, []byte{1, 2, 3, 4}, gpu.StaticDraw)
	dev.BufferSubData(gpu.ArrayBuffer, 2, []byte{9, 9})
	test.ExpectSuccess(t, dev.Error())
	test.ExpectEquality(t, string(dev.BufferContent(id)), string([]byte{1, 2, 9, 9}))

	dev.BufferSubData(gpu.ArrayBuffer, 3, []byte{9, 9})
	test.ExpectFailure(t, dev.Error())

	dev.DeleteBuffer(id)
	test.ExpectEquality(t, dev.BufferCount(), 0)
}

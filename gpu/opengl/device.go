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
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/rendercore/assert"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/logger"
)

// Device implements gpu.Device for an OpenGL 3.2 core context.
type Device struct {
	guard assert.ThreadGuard

	version  string
	renderer string

	maxColorAttachments int
}

// NewDevice is the preferred method of initialisation for the Device type.
// The OpenGL context must be current.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}

	dev := &Device{
		guard:    assert.NewThreadGuard(),
		version:  gl.GoStr(gl.GetString(gl.VERSION)),
		renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}

	var n int32
	gl.GetIntegerv(gl.MAX_COLOR_ATTACHMENTS, &n)
	dev.maxColorAttachments = int(n)

	// rows of pixel data are tightly packed. the default alignment of four
	// bytes is wrong for single channel and RGB formats
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	logger.Logf(logger.Allow, "opengl", "%s (%s)", dev.version, dev.renderer)

	return dev, nil
}

func (dev *Device) String() string {
	return fmt.Sprintf("OpenGL %s", dev.version)
}

// ptr returns a pointer to the first element of a []uint8 or []float32 slice.
// Returns nil for a nil or empty slice, which OpenGL treats as a request for
// uninitialised storage.
func ptr(pixels any) unsafe.Pointer {
	switch p := pixels.(type) {
	case []uint8:
		if len(p) > 0 {
			return gl.Ptr(p)
		}
	case []float32:
		if len(p) > 0 {
			return gl.Ptr(p)
		}
	}
	return nil
}

// API implements the gpu.Device interface.
func (dev *Device) API() gpu.API {
	return gpu.APIOpenGL
}

// MaxColorAttachments implements the gpu.Device interface.
func (dev *Device) MaxColorAttachments() int {
	return dev.maxColorAttachments
}

// GenTexture implements the gpu.Device interface.
func (dev *Device) GenTexture() uint32 {
	dev.guard.Check("opengl")
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

// DeleteTexture implements the gpu.Device interface.
func (dev *Device) DeleteTexture(id uint32) {
	dev.guard.Check("opengl")
	gl.DeleteTextures(1, &id)
}

// BindTexture implements the gpu.Device interface.
func (dev *Device) BindTexture(target gpu.TextureTarget, id uint32) {
	dev.guard.Check("opengl")
	gl.BindTexture(TextureTarget(target), id)
}

// ActiveTexture implements the gpu.Device interface.
func (dev *Device) ActiveTexture(unit int) {
	dev.guard.Check("opengl")
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

// TexImage implements the gpu.Device interface. The dimensionality of the
// target selects the TexImage entry point.
func (dev *Device) TexImage(target gpu.TextureTarget, img gpu.TexImage) {
	dev.guard.Check("opengl")

	t := TextureTarget(target)
	internal := InternalFormat(img.Format)
	base := BaseFormat(img.Format)
	typ := PixelType(img.Format, img.Pixels)

	switch target {
	case gpu.Texture1D:
		gl.TexImage1D(t, int32(img.Level), internal, int32(img.Width), 0, base, typ, ptr(img.Pixels))
	case gpu.Texture2DMultisample:
		gl.TexImage2DMultisample(t, int32(img.Samples), uint32(internal), int32(img.Width), int32(img.Height), true)
	case gpu.Texture3D:
		gl.TexImage3D(t, int32(img.Level), internal, int32(img.Width), int32(img.Height), int32(img.Depth), 0, base, typ, ptr(img.Pixels))
	default:
		gl.TexImage2D(t, int32(img.Level), internal, int32(img.Width), int32(img.Height), 0, base, typ, ptr(img.Pixels))
	}
}

// TexSampling implements the gpu.Device interface.
func (dev *Device) TexSampling(target gpu.TextureTarget, s gpu.Sampling) {
	dev.guard.Check("opengl")

	t := TextureTarget(target)
	gl.TexParameteri(t, gl.TEXTURE_MIN_FILTER, MinFilter(s.MinFilter, s.Mipmaps))
	gl.TexParameteri(t, gl.TEXTURE_MAG_FILTER, MagFilter(s.MagFilter))
	gl.TexParameteri(t, gl.TEXTURE_WRAP_S, Wrap(s.WrapS))
	if target != gpu.Texture1D {
		gl.TexParameteri(t, gl.TEXTURE_WRAP_T, Wrap(s.WrapT))
	}
	if target == gpu.Texture3D || target == gpu.TextureCubeMap {
		gl.TexParameteri(t, gl.TEXTURE_WRAP_R, Wrap(s.WrapR))
	}
}

// TexBorderColor implements the gpu.Device interface.
func (dev *Device) TexBorderColor(target gpu.TextureTarget, rgba [4]float32) {
	dev.guard.Check("opengl")
	gl.TexParameterfv(TextureTarget(target), gl.TEXTURE_BORDER_COLOR, &rgba[0])
}

// GenerateMipmap implements the gpu.Device interface.
func (dev *Device) GenerateMipmap(target gpu.TextureTarget) {
	dev.guard.Check("opengl")
	gl.GenerateMipmap(TextureTarget(target))
}

// GenFramebuffer implements the gpu.Device interface.
func (dev *Device) GenFramebuffer() uint32 {
	dev.guard.Check("opengl")
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

// DeleteFramebuffer implements the gpu.Device interface.
func (dev *Device) DeleteFramebuffer(id uint32) {
	dev.guard.Check("opengl")
	gl.DeleteFramebuffers(1, &id)
}

// BindFramebuffer implements the gpu.Device interface.
func (dev *Device) BindFramebuffer(target gpu.FramebufferTarget, id uint32) {
	dev.guard.Check("opengl")
	gl.BindFramebuffer(FramebufferTarget(target), id)
}

// FramebufferTexture implements the gpu.Device interface. 1D and 3D textures
// have their own entry points. Everything else, including individual cube
// faces, is attached as a 2D texture.
func (dev *Device) FramebufferTexture(target gpu.FramebufferTarget, ap gpu.AttachmentPoint, texTarget gpu.TextureTarget, id uint32, level int, layer int) {
	dev.guard.Check("opengl")

	fb := FramebufferTarget(target)
	a := AttachmentPoint(ap)
	t := TextureTarget(texTarget)

	switch texTarget {
	case gpu.Texture1D:
		gl.FramebufferTexture1D(fb, a, t, id, int32(level))
	case gpu.Texture3D:
		gl.FramebufferTexture3D(fb, a, t, id, int32(level), int32(layer))
	default:
		gl.FramebufferTexture2D(fb, a, t, id, int32(level))
	}
}

// CheckFramebufferStatus implements the gpu.Device interface.
func (dev *Device) CheckFramebufferStatus(target gpu.FramebufferTarget) gpu.FramebufferStatus {
	dev.guard.Check("opengl")
	return Status(gl.CheckFramebufferStatus(FramebufferTarget(target)))
}

// DrawBuffers implements the gpu.Device interface.
func (dev *Device) DrawBuffers(buffers []gpu.AttachmentPoint) {
	dev.guard.Check("opengl")

	if len(buffers) == 1 {
		gl.DrawBuffer(AttachmentPoint(buffers[0]))
		return
	}

	b := make([]uint32, len(buffers))
	for i := range buffers {
		b[i] = AttachmentPoint(buffers[i])
	}
	if len(b) > 0 {
		gl.DrawBuffers(int32(len(b)), &b[0])
	}
}

// ReadBuffer implements the gpu.Device interface.
func (dev *Device) ReadBuffer(buffer gpu.AttachmentPoint) {
	dev.guard.Check("opengl")
	gl.ReadBuffer(AttachmentPoint(buffer))
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(x, y, width, height int) {
	dev.guard.Check("opengl")
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// ClearColor implements the gpu.Device interface.
func (dev *Device) ClearColor(r, g, b, a float32) {
	dev.guard.Check("opengl")
	gl.ClearColor(r, g, b, a)
}

// Clear implements the gpu.Device interface.
func (dev *Device) Clear(mask gpu.BufferMask) {
	dev.guard.Check("opengl")
	gl.Clear(BufferMask(mask))
}

// ClearBufferi implements the gpu.Device interface.
func (dev *Device) ClearBufferi(drawBuffer int, value int32) {
	dev.guard.Check("opengl")
	v := [4]int32{value, value, value, value}
	gl.ClearBufferiv(gl.COLOR, int32(drawBuffer), &v[0])
}

// ClearBufferui implements the gpu.Device interface.
func (dev *Device) ClearBufferui(drawBuffer int, value uint32) {
	dev.guard.Check("opengl")
	v := [4]uint32{value, value, value, value}
	gl.ClearBufferuiv(gl.COLOR, int32(drawBuffer), &v[0])
}

// BlitFramebuffer implements the gpu.Device interface.
func (dev *Device) BlitFramebuffer(src gpu.Rect, dst gpu.Rect, mask gpu.BufferMask, filter gpu.Filter) {
	dev.guard.Check("opengl")
	gl.BlitFramebuffer(
		int32(src.X0), int32(src.Y0), int32(src.X1), int32(src.Y1),
		int32(dst.X0), int32(dst.Y0), int32(dst.X1), int32(dst.Y1),
		BufferMask(mask), uint32(MagFilter(filter)))
}

// ReadPixels implements the gpu.Device interface.
func (dev *Device) ReadPixels(x, y, width, height int, format gpu.Format, pixels any) {
	dev.guard.Check("opengl")

	p := ptr(pixels)
	if p == nil {
		logger.Logf(logger.Allow, "opengl", "unsupported pixel buffer type %T", pixels)
		return
	}

	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), BaseFormat(format), PixelType(format, pixels), p)
}

// GenBuffer implements the gpu.Device interface.
func (dev *Device) GenBuffer() uint32 {
	dev.guard.Check("opengl")
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

// DeleteBuffer implements the gpu.Device interface.
func (dev *Device) DeleteBuffer(id uint32) {
	dev.guard.Check("opengl")
	gl.DeleteBuffers(1, &id)
}

// BindBuffer implements the gpu.Device interface.
func (dev *Device) BindBuffer(target gpu.BufferTarget, id uint32) {
	dev.guard.Check("opengl")
	gl.BindBuffer(BufferTarget(target), id)
}

// BufferData implements the gpu.Device interface.
func (dev *Device) BufferData(target gpu.BufferTarget, data []byte, usage gpu.BufferUsage) {
	dev.guard.Check("opengl")
	gl.BufferData(BufferTarget(target), len(data), ptr(data), BufferUsage(usage))
}

// BufferSubData implements the gpu.Device interface.
func (dev *Device) BufferSubData(target gpu.BufferTarget, offset int, data []byte) {
	dev.guard.Check("opengl")
	gl.BufferSubData(BufferTarget(target), offset, len(data), ptr(data))
}

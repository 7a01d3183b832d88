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

package software

import (
	"github.com/jetsetilly/rendercore/gpu"
)

// The functions in this file expose device state for inspection. They do not
// count as device calls.

// TextureCount returns the number of live textures.
func (dev *Device) TextureCount() int {
	return len(dev.textures)
}

// FramebufferCount returns the number of live framebuffers, not including the
// default framebuffer.
func (dev *Device) FramebufferCount() int {
	return len(dev.framebuffers)
}

// BufferCount returns the number of live vertex and index buffers.
func (dev *Device) BufferCount() int {
	return len(dev.buffers)
}

// Calls returns the number of gpu.Device functions that have been called.
func (dev *Device) Calls() int {
	return dev.calls
}

// IsTexture returns true if the id is a live texture.
func (dev *Device) IsTexture(id uint32) bool {
	_, ok := dev.textures[id]
	return ok
}

// IsFramebuffer returns true if the id is a live framebuffer.
func (dev *Device) IsFramebuffer(id uint32) bool {
	_, ok := dev.framebuffers[id]
	return ok
}

// Bound returns the framebuffers bound for reading and drawing.
func (dev *Device) Bound() (read uint32, draw uint32) {
	return dev.readFB, dev.drawFB
}

// ViewportRect returns the current viewport.
func (dev *Device) ViewportRect() gpu.Rect {
	return dev.viewport
}

// TextureInfo describes a texture.
type TextureInfo struct {
	Kind           gpu.TextureTarget
	Format         gpu.Format
	Width          int
	Height         int
	Depth          int
	Samples        int
	Sampling       gpu.Sampling
	Border         [4]float32
	MipLevels      int
	MipGenerations int
}

// Texture returns information about a texture. Returns false if the id is
// not a live texture.
func (dev *Device) Texture(id uint32) (TextureInfo, bool) {
	tex, ok := dev.textures[id]
	if !ok {
		return TextureInfo{}, false
	}

	info := TextureInfo{
		Kind:           tex.kind,
		Format:         tex.format,
		Width:          tex.width,
		Height:         tex.height,
		Depth:          tex.depth,
		Samples:        tex.samples,
		Sampling:       tex.sampling,
		Border:         tex.border,
		MipLevels:      1,
		MipGenerations: tex.mipGenerations,
	}

	if len(tex.mips) > 0 {
		info.MipLevels = mipLevels(tex.width, tex.height)
	}

	return info, true
}

// Pixels returns a copy of the level zero data of a texture layer. Returns
// nil if the texture or layer does not exist.
func (dev *Device) Pixels(id uint32, layer int) []float32 {
	tex, ok := dev.textures[id]
	if !ok || layer < 0 || layer >= len(tex.layers) || tex.layers[layer] == nil {
		return nil
	}
	return append([]float32(nil), tex.layers[layer].data...)
}

// Stencil returns a copy of the stencil data of a texture layer. Returns nil
// if the texture has no stencil data.
func (dev *Device) Stencil(id uint32, layer int) []uint8 {
	tex, ok := dev.textures[id]
	if !ok || layer < 0 || layer >= len(tex.layers) || tex.layers[layer] == nil {
		return nil
	}
	return append([]uint8(nil), tex.layers[layer].stencil...)
}

// Attachment describes a framebuffer attachment.
type Attachment struct {
	Texture uint32
	Target  gpu.TextureTarget
	Level   int
	Layer   int
}

// Attachment returns the texture attached to a framebuffer at the attachment
// point.
func (dev *Device) Attachment(fb uint32, ap gpu.AttachmentPoint) (Attachment, bool) {
	f, ok := dev.framebuffers[fb]
	if !ok {
		return Attachment{}, false
	}
	a, ok := f.attachments[ap]
	if !ok {
		return Attachment{}, false
	}
	return Attachment{
		Texture: a.texture,
		Target:  a.target,
		Level:   a.level,
		Layer:   a.layer,
	}, true
}

// AttachmentCount returns the number of attachments of a framebuffer.
func (dev *Device) AttachmentCount(fb uint32) int {
	f, ok := dev.framebuffers[fb]
	if !ok {
		return 0
	}
	return len(f.attachments)
}

// DrawBuffersOf returns the draw buffers of a framebuffer.
func (dev *Device) DrawBuffersOf(fb uint32) []gpu.AttachmentPoint {
	f := dev.framebuffer(fb)
	if f == nil {
		return nil
	}
	return append([]gpu.AttachmentPoint(nil), f.draw...)
}

// ReadBufferOf returns the read buffer of a framebuffer.
func (dev *Device) ReadBufferOf(fb uint32) gpu.AttachmentPoint {
	f := dev.framebuffer(fb)
	if f == nil {
		return gpu.NoBuffer
	}
	return f.read
}

// BufferContent returns a copy of the data of a vertex or index buffer.
func (dev *Device) BufferContent(id uint32) []byte {
	b, ok := dev.buffers[id]
	if !ok {
		return nil
	}
	return append([]byte(nil), b.data...)
}

// ScreenPixels returns a copy of the colour data of the default framebuffer.
func (dev *Device) ScreenPixels() []float32 {
	return append([]float32(nil), dev.screenColor.data...)
}

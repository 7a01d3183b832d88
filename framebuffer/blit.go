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

package framebuffer

import (
	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/gpu"
)

// the full rectangle of the framebuffer
func (fb *FrameBuffer) rect() gpu.Rect {
	return gpu.Rect{X1: fb.spec.Width, Y1: fb.height()}
}

// Blit copies the buffers named in the BufferState from src to dst. The
// whole of src is copied to the whole of dst, stretching if the sizes differ.
// The default framebuffer is bound afterwards.
//
// The draw buffers of dst are not changed by Blit(). Compare with
// BlitColorAttachments().
func Blit(src *FrameBuffer, dst *FrameBuffer, filter gpu.Filter, buffers gpu.BufferState) {
	if src == nil || dst == nil {
		panic(curated.Errorf(ErrBlitUndefined))
	}

	dev := src.env.Device
	dev.BindFramebuffer(gpu.FramebufferRead, src.id)
	dev.BindFramebuffer(gpu.FramebufferDraw, dst.id)
	dev.BlitFramebuffer(src.rect(), dst.rect(), buffers.Mask(), filter)
	dev.BindFramebuffer(gpu.FramebufferBoth, gpu.DefaultFramebuffer)
}

// BlitColorAttachments copies colour attachment srcIndex of src to colour
// attachment dstIndex of dst. Only colour is copied. The whole of the
// attachment is copied, stretching if the sizes differ.
//
// Afterwards, the default framebuffer is bound and its draw buffer is set to
// the back buffer. The read buffer of src and the draw buffers of dst are left
// as they were set for the copy.
func BlitColorAttachments(src *FrameBuffer, dst *FrameBuffer, srcIndex int, dstIndex int, filter gpu.Filter) {
	if src == nil || dst == nil {
		panic(curated.Errorf(ErrBlitUndefined))
	}
	src.checkIndex(srcIndex)
	dst.checkIndex(dstIndex)

	dev := src.env.Device
	dev.BindFramebuffer(gpu.FramebufferRead, src.id)
	dev.ReadBuffer(gpu.ColorAttachment(srcIndex))
	dev.BindFramebuffer(gpu.FramebufferDraw, dst.id)
	dev.DrawBuffers([]gpu.AttachmentPoint{gpu.ColorAttachment(dstIndex)})
	dev.BlitFramebuffer(src.rect(), dst.rect(), gpu.ColorBufferBit, filter)
	dev.BindFramebuffer(gpu.FramebufferBoth, gpu.DefaultFramebuffer)
	dev.DrawBuffers([]gpu.AttachmentPoint{gpu.BackBuffer})
}

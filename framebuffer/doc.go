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

// Package framebuffer manages off-screen render targets and their
// attachments.
//
// A FrameBuffer is created from a Specification. The Specification lists the
// attachments required, in order. Attachments with a depth format are depth
// attachments and only the last of these is used. All other attachments with
// a format are colour attachments. A FrameBuffer can have up to four colour
// attachments.
//
//	spec := framebuffer.Specification{
//		Width:  800,
//		Height: 600,
//		Attachments: []framebuffer.AttachmentSpecification{
//			{Format: gpu.FormatRGBA8},
//			{Format: gpu.FormatDepth24Stencil8},
//		},
//	}
//	fb := framebuffer.New(env, spec)
//	defer fb.Destroy()
//
// The size and mip-map setting of the Specification apply to every
// attachment. The wrap mode of an attachment is ClampToBorder for depth
// attachments and ClampToEdge for colour attachments unless the attachment
// specification says otherwise. The filter is always Nearest for depth
// attachments and Linear for colour attachments.
//
// The device resources of a FrameBuffer are created by Invalidate(), which is
// called by New(), Resize() and AdjustSampleCount(). Invalidate() frees any
// resources from a previous call first. Colour attachments that cannot be
// created are skipped and a warning is logged. The skipped attachments are
// also returned by Invalidate() as a slice of errors.
//
// Some conditions are programming errors and cause a panic with a curated
// error. The patterns of these errors are exported so that they can be
// recognised with curated.Is() after recovery. Panics are raised for: a blit
// with a nil FrameBuffer; more than four colour attachments; a FrameBuffer
// that is incomplete after Invalidate(); exporting an attachment with an
// unsupported number of channels; an attachment index that is out of range;
// and a cube face that is out of range.
//
// Blit() and BlitColorAttachments() copy pixels between two FrameBuffers. They
// differ in how they finish: both bind the default framebuffer afterwards but
// only BlitColorAttachments() also sets the draw buffer of the default
// framebuffer back to the back buffer.
//
// A Specification can be loaded from a YAML file with LoadSpecification(). See
// the function for the layout of the file.
package framebuffer

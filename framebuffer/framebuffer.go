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
	"fmt"

	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/texture"
)

// MaxColorAttachments is the maximum number of colour attachments in a
// FrameBuffer.
const MaxColorAttachments = 4

// Patterns of the fatal errors raised by the package.
const (
	ErrBlitUndefined      = "framebuffer: trying to blit undefined framebuffer(s)"
	ErrTooManyAttachments = "framebuffer: using more than %d color attachments (%d)"
	ErrIncomplete         = "framebuffer: framebuffer is incomplete (%v)"
	ErrInvalidChannels    = "framebuffer: invalid number of channels in color attachment %d (%d)"
	ErrAttachmentIndex    = "framebuffer: color attachment index %d out of range (%d attachments)"
	ErrCubeFace           = "framebuffer: cube face %d out of range"
)

// ErrSkipped is the pattern of the errors returned by Invalidate() for colour
// attachments that were not created.
const ErrSkipped = "framebuffer: color attachment %d skipped: %s"

// FrameBuffer is an off-screen render target.
type FrameBuffer struct {
	env *environment.Environment

	// device identifier. zero if the framebuffer has not been invalidated or
	// has been destroyed
	id uint32

	spec Specification

	// the attachment specifications after partitioning. depthSpec has a
	// format of gpu.FormatNone if there is no depth attachment
	colorSpecs []AttachmentSpecification
	depthSpec  AttachmentSpecification

	// one entry for each entry in colorSpecs. entries are nil for attachments
	// that were skipped
	color []texture.Texture
	depth texture.Texture

	active gpu.BufferState
}

// New is the preferred method of initialisation for the FrameBuffer type.
// The specification is copied and the device resources are created
// immediately.
func New(env *environment.Environment, spec Specification) *FrameBuffer {
	env.RequireAPI("framebuffer")

	fb := &FrameBuffer{
		env:  env,
		spec: spec.clone(),
	}

	if fb.spec.Samples < 1 {
		fb.spec.Samples = 1
	}

	fb.depthSpec.Format = gpu.FormatNone

	for i := range fb.spec.Attachments {
		a := &fb.spec.Attachments[i]
		setAttachmentSize(a, fb.spec.Width, fb.spec.Height, fb.spec.Depth)
		a.MipMaps = fb.spec.MipMaps

		if a.Format.IsDepth() {
			a.Filter = gpu.FilterNearest
		} else {
			a.Filter = gpu.FilterLinear
		}
		*a = a.WithDefaults()

		if a.Format.IsDepth() {
			fb.depthSpec = *a
			fb.active.Depth = true
			fb.active.Stencil = a.Format.HasStencil()
		} else if a.Format != gpu.FormatNone {
			fb.colorSpecs = append(fb.colorSpecs, *a)
			fb.active.Color = true
		}
	}

	fb.Invalidate()

	return fb
}

func (fb *FrameBuffer) String() string {
	return fmt.Sprintf("framebuffer %d: %s", fb.id, fb.spec)
}

// the height used for the viewport and for copies. a framebuffer with 1D
// attachments may have a height of zero
func (fb *FrameBuffer) height() int {
	return max(fb.spec.Height, 1)
}

func (fb *FrameBuffer) checkIndex(i int) {
	if i < 0 || i >= len(fb.colorSpecs) {
		panic(curated.Errorf(ErrAttachmentIndex, i, len(fb.colorSpecs)))
	}
}

// attachment returns the texture of colour attachment i or nil if there is
// no texture. the index must have been checked with checkIndex()
func (fb *FrameBuffer) attachment(i int) texture.Texture {
	if i >= len(fb.color) {
		return nil
	}
	return fb.color[i]
}

// release the device framebuffer and the references to the attachments
func (fb *FrameBuffer) release() {
	if fb.id != 0 {
		fb.env.Device.DeleteFramebuffer(fb.id)
		fb.id = 0
	}
	for _, t := range fb.color {
		if t != nil {
			t.Release()
		}
	}
	fb.color = fb.color[:0]
	if fb.depth != nil {
		fb.depth.Release()
		fb.depth = nil
	}
}

// drawBuffers returns the draw buffers for the colour attachments. skipped
// attachments have an entry of gpu.NoBuffer so that the index of an
// attachment is always the same as the index of its specification.
func (fb *FrameBuffer) drawBuffers() []gpu.AttachmentPoint {
	var b []gpu.AttachmentPoint
	var attached bool
	for i, t := range fb.color {
		if t == nil {
			b = append(b, gpu.NoBuffer)
		} else {
			b = append(b, gpu.ColorAttachment(i))
			attached = true
		}
	}
	if !attached {
		return []gpu.AttachmentPoint{gpu.NoBuffer}
	}
	return b
}

// createColor creates the texture for colour attachment i. returns nil and an
// error if the attachment cannot be created
func (fb *FrameBuffer) createColor(i int) (texture.Texture, error) {
	spec := fb.colorSpecs[i]

	if spec.Format == gpu.FormatNone {
		return nil, curated.Errorf(ErrSkipped, i, "no format")
	}
	if spec.Format.IsDepth() {
		return nil, curated.Errorf(ErrSkipped, i, fmt.Sprintf("depth format %s", spec.Format))
	}

	t := texture.New(fb.env, spec, fb.spec.Samples)
	if t == nil {
		return nil, curated.Errorf(ErrSkipped, i, fmt.Sprintf("unsupported type %s", spec.Type))
	}

	return t, nil
}

// Invalidate (re)creates the device resources of the FrameBuffer. Existing
// resources are released first. Colour attachments that cannot be created
// are skipped and the reasons are returned. The default framebuffer is bound
// when Invalidate() returns.
func (fb *FrameBuffer) Invalidate() []error {
	if limit := min(MaxColorAttachments, fb.env.Device.MaxColorAttachments()); len(fb.colorSpecs) > limit {
		panic(curated.Errorf(ErrTooManyAttachments, limit, len(fb.colorSpecs)))
	}

	fb.release()

	dev := fb.env.Device
	fb.id = dev.GenFramebuffer()
	dev.BindFramebuffer(gpu.FramebufferBoth, fb.id)

	var skipped []error

	for i := range fb.colorSpecs {
		t, err := fb.createColor(i)
		fb.color = append(fb.color, t)
		if err != nil {
			fb.env.Warn("framebuffer", err)
			skipped = append(skipped, err)
			continue
		}

		t.CreateTexture(nil)

		switch t.Type() {
		case gpu.TypeCube:
			dev.FramebufferTexture(gpu.FramebufferBoth, gpu.ColorAttachment(i), gpu.CubeFace(0), t.ID(), 0, 0)
		default:
			dev.FramebufferTexture(gpu.FramebufferBoth, gpu.ColorAttachment(i), t.Target(), t.ID(), 0, 0)
		}
	}

	if fb.depthSpec.Format.IsDepth() {
		spec := fb.depthSpec
		spec.Samples = fb.spec.Samples
		fb.depth = texture.NewTexture2D(fb.env, spec)
		fb.depth.CreateTexture(nil)
		dev.FramebufferTexture(gpu.FramebufferBoth, gpu.DepthAttachmentPoint(spec.Format), fb.depth.Target(), fb.depth.ID(), 0, 0)
	}

	draw := fb.drawBuffers()
	dev.DrawBuffers(draw)
	if draw[0] == gpu.NoBuffer && len(draw) == 1 {
		dev.ReadBuffer(gpu.NoBuffer)
	} else {
		for _, b := range draw {
			if b != gpu.NoBuffer {
				dev.ReadBuffer(b)
				break
			}
		}
	}

	if status := dev.CheckFramebufferStatus(gpu.FramebufferBoth); status != gpu.StatusComplete {
		panic(curated.Errorf(ErrIncomplete, status))
	}

	dev.BindFramebuffer(gpu.FramebufferBoth, gpu.DefaultFramebuffer)

	return skipped
}

// Destroy releases the device framebuffer and the attachments. It is safe to
// call Destroy() more than once.
func (fb *FrameBuffer) Destroy() {
	fb.release()
}

// Bind the FrameBuffer as the render target and set the viewport to its
// size.
func (fb *FrameBuffer) Bind() {
	fb.env.Device.BindFramebuffer(gpu.FramebufferBoth, fb.id)
	fb.env.Device.Viewport(0, 0, fb.spec.Width, fb.height())
}

// Unbind binds the default framebuffer. If genMipMaps is true and the
// FrameBuffer uses mip-maps then the mip-maps of every colour attachment are
// regenerated first.
func (fb *FrameBuffer) Unbind(genMipMaps bool) {
	if fb.spec.MipMaps && genMipMaps {
		for _, t := range fb.color {
			if t == nil || !t.Spec().MipMaps {
				continue
			}
			t.Bind()
			fb.env.Device.GenerateMipmap(t.Target())
			t.Unbind()
		}
	}
	fb.env.Device.BindFramebuffer(gpu.FramebufferBoth, gpu.DefaultFramebuffer)
}

// BindForDrawAttachment binds the FrameBuffer as the draw target with colour
// attachment i as the only draw buffer.
func (fb *FrameBuffer) BindForDrawAttachment(i int) {
	fb.checkIndex(i)
	fb.env.Device.BindFramebuffer(gpu.FramebufferDraw, fb.id)
	fb.env.Device.Viewport(0, 0, fb.spec.Width, fb.height())
	fb.env.Device.DrawBuffers([]gpu.AttachmentPoint{gpu.ColorAttachment(i)})
}

// BindForReadAttachment binds the FrameBuffer as the read source with colour
// attachment i as the read buffer.
func (fb *FrameBuffer) BindForReadAttachment(i int) {
	fb.checkIndex(i)
	fb.env.Device.BindFramebuffer(gpu.FramebufferRead, fb.id)
	fb.env.Device.ReadBuffer(gpu.ColorAttachment(i))
}

// BindForDrawAttachmentCube attaches one face and mip level of the cube map
// at colour attachment i and makes it the only draw buffer. Faces are
// numbered from zero in the order +X, -X, +Y, -Y, +Z, -Z.
//
// If the attachment is not a cube map then a warning is logged and nothing
// else happens.
func (fb *FrameBuffer) BindForDrawAttachmentCube(i int, face int, level int) {
	fb.checkIndex(i)
	t := fb.attachment(i)
	if fb.colorSpecs[i].Type != gpu.TypeCube || t == nil {
		fb.env.Warnf("framebuffer", "trying to bind for drawing an incorrect attachment type (%s)", fb.colorSpecs[i].Type)
		return
	}
	if face < 0 || face > 5 {
		panic(curated.Errorf(ErrCubeFace, face))
	}

	dev := fb.env.Device
	dev.BindFramebuffer(gpu.FramebufferDraw, fb.id)
	dev.Viewport(0, 0, fb.spec.Width, fb.height())
	dev.FramebufferTexture(gpu.FramebufferDraw, gpu.ColorAttachment(i), gpu.CubeFace(face), t.ID(), level, 0)
	dev.DrawBuffers([]gpu.AttachmentPoint{gpu.ColorAttachment(i)})
}

// Clear the active buffers of the FrameBuffer. The colour buffers are
// cleared to the RGBA value.
func (fb *FrameBuffer) Clear(r, g, b, a float32) {
	fb.Bind()
	fb.env.Device.ClearColor(r, g, b, a)
	fb.env.Device.Clear(fb.active.Mask())
	fb.env.Device.BindFramebuffer(gpu.FramebufferBoth, gpu.DefaultFramebuffer)
}

// ClearAttachment sets every pixel of colour attachment i to the value. Only
// single channel unsigned integer formats are supported. For other formats a
// warning is logged and the attachment is unchanged.
func (fb *FrameBuffer) ClearAttachment(i int, value uint32) {
	fb.checkIndex(i)

	f := fb.colorSpecs[i].Format
	if f.Channels() != 1 || !f.IsUnsigned() || fb.attachment(i) == nil {
		fb.env.Warnf("framebuffer", "clearing attachment of format %s is not supported", f)
		return
	}

	dev := fb.env.Device
	dev.BindFramebuffer(gpu.FramebufferDraw, fb.id)
	dev.DrawBuffers([]gpu.AttachmentPoint{gpu.ColorAttachment(i)})
	dev.ClearBufferui(0, value)
	dev.DrawBuffers(fb.drawBuffers())
	dev.BindFramebuffer(gpu.FramebufferBoth, gpu.DefaultFramebuffer)
}

// Resize the FrameBuffer and every attachment. The device resources are
// recreated.
func (fb *FrameBuffer) Resize(width, height, depth int) {
	fb.spec.SetSize(width, height, depth)
	for i := range fb.spec.Attachments {
		setAttachmentSize(&fb.spec.Attachments[i], width, height, depth)
	}
	for i := range fb.colorSpecs {
		setAttachmentSize(&fb.colorSpecs[i], width, height, depth)
	}
	setAttachmentSize(&fb.depthSpec, width, height, depth)
	fb.Invalidate()
}

// AdjustSampleCount changes the number of samples of the 2D attachments. The
// device resources are recreated.
func (fb *FrameBuffer) AdjustSampleCount(samples int) {
	fb.spec.Samples = max(samples, 1)
	fb.Invalidate()
}

// ID returns the device identifier of the FrameBuffer.
func (fb *FrameBuffer) ID() uint32 {
	return fb.id
}

// Spec returns a copy of the Specification of the FrameBuffer.
func (fb *FrameBuffer) Spec() Specification {
	return fb.spec.clone()
}

// ColorAttachmentSpec returns the specification of colour attachment i.
func (fb *FrameBuffer) ColorAttachmentSpec(i int) AttachmentSpecification {
	fb.checkIndex(i)
	return fb.colorSpecs[i]
}

// DepthAttachmentSpec returns the specification of the depth attachment. The
// format is gpu.FormatNone if there is no depth attachment.
func (fb *FrameBuffer) DepthAttachmentSpec() AttachmentSpecification {
	return fb.depthSpec
}

// ColorAttachment returns the texture of colour attachment i. Returns nil if
// the attachment was skipped.
func (fb *FrameBuffer) ColorAttachment(i int) texture.Texture {
	fb.checkIndex(i)
	return fb.attachment(i)
}

// DepthAttachment returns the texture of the depth attachment. Returns nil
// if there is no depth attachment.
func (fb *FrameBuffer) DepthAttachment() texture.Texture {
	return fb.depth
}

// ColorAttachmentCount returns the number of colour attachments, including
// any that were skipped.
func (fb *FrameBuffer) ColorAttachmentCount() int {
	return len(fb.colorSpecs)
}

// ActiveBuffers returns the buffers in use by the FrameBuffer.
func (fb *FrameBuffer) ActiveBuffers() gpu.BufferState {
	return fb.active
}

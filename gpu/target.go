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

import "fmt"

// TextureTarget is the device target of a texture, or a face of a cube map
// texture when attaching to a framebuffer.
type TextureTarget int

// List of valid TextureTarget values.
const (
	Texture1D TextureTarget = iota
	Texture2D
	Texture2DMultisample
	Texture3D
	TextureCubeMap
	TextureCubePositiveX
	TextureCubeNegativeX
	TextureCubePositiveY
	TextureCubeNegativeY
	TextureCubePositiveZ
	TextureCubeNegativeZ
)

// CubeFace returns the target for a face of a cube map, in the order +X, -X,
// +Y, -Y, +Z, -Z. The face must be in the range 0 to 5.
func CubeFace(face int) TextureTarget {
	return TextureCubePositiveX + TextureTarget(face)
}

// IsCubeFace returns true if the target is one of the six faces of a cube
// map.
func (t TextureTarget) IsCubeFace() bool {
	return t >= TextureCubePositiveX && t <= TextureCubeNegativeZ
}

func (t TextureTarget) String() string {
	switch t {
	case Texture1D:
		return "1D"
	case Texture2D:
		return "2D"
	case Texture2DMultisample:
		return "2D multisample"
	case Texture3D:
		return "3D"
	case TextureCubeMap:
		return "cube map"
	}
	if t.IsCubeFace() {
		return fmt.Sprintf("cube face %d", int(t-TextureCubePositiveX))
	}
	return fmt.Sprintf("TextureTarget(%d)", int(t))
}

// FramebufferTarget selects which of the framebuffer bindings an operation
// applies to.
type FramebufferTarget int

// List of valid FramebufferTarget values. FramebufferBoth binds for reading
// and drawing at the same time.
const (
	FramebufferBoth FramebufferTarget = iota
	FramebufferRead
	FramebufferDraw
)

// AttachmentPoint is a slot in a framebuffer. Non-negative values are colour
// attachment slots. The negative values are the special attachment points
// and draw/read buffer selectors.
type AttachmentPoint int

// List of special AttachmentPoint values.
const (
	DepthAttachment AttachmentPoint = -1 - iota
	DepthStencilAttachment
	NoBuffer
	BackBuffer
)

// ColorAttachment returns the attachment point for colour slot i.
func ColorAttachment(i int) AttachmentPoint {
	return AttachmentPoint(i)
}

// IsColor returns true if the attachment point is a colour slot.
func (a AttachmentPoint) IsColor() bool {
	return a >= 0
}

func (a AttachmentPoint) String() string {
	switch a {
	case DepthAttachment:
		return "depth"
	case DepthStencilAttachment:
		return "depth-stencil"
	case NoBuffer:
		return "none"
	case BackBuffer:
		return "back"
	}
	return fmt.Sprintf("color%d", int(a))
}

// DepthAttachmentPoint returns the attachment point for a depth format.
// Formats with stencil use DepthStencilAttachment.
func DepthAttachmentPoint(f Format) AttachmentPoint {
	if f.HasStencil() {
		return DepthStencilAttachment
	}
	return DepthAttachment
}

// FramebufferStatus is the result of a completeness check.
type FramebufferStatus int

// List of valid FramebufferStatus values.
const (
	StatusComplete FramebufferStatus = iota
	StatusUndefined
	StatusIncompleteAttachment
	StatusMissingAttachment
	StatusIncompleteDimensions
	StatusIncompleteMultisample
	StatusIncompleteLayerTargets
	StatusIncompleteDrawBuffer
	StatusIncompleteReadBuffer
	StatusUnsupported
)

func (s FramebufferStatus) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusUndefined:
		return "undefined"
	case StatusIncompleteAttachment:
		return "incomplete attachment"
	case StatusMissingAttachment:
		return "missing attachment"
	case StatusIncompleteDimensions:
		return "incomplete dimensions"
	case StatusIncompleteMultisample:
		return "incomplete multisample"
	case StatusIncompleteLayerTargets:
		return "incomplete layer targets"
	case StatusIncompleteDrawBuffer:
		return "incomplete draw buffer"
	case StatusIncompleteReadBuffer:
		return "incomplete read buffer"
	case StatusUnsupported:
		return "unsupported"
	}
	return fmt.Sprintf("FramebufferStatus(%d)", int(s))
}

// BufferMask selects the buffers affected by a clear or blit.
type BufferMask int

// List of BufferMask bits.
const (
	ColorBufferBit BufferMask = 1 << iota
	DepthBufferBit
	StencilBufferBit
)

// BufferState records which buffers of a framebuffer are in use.
type BufferState struct {
	Color   bool
	Depth   bool
	Stencil bool
}

// Mask returns the BufferMask for the active buffers.
func (b BufferState) Mask() BufferMask {
	var m BufferMask
	if b.Color {
		m |= ColorBufferBit
	}
	if b.Depth {
		m |= DepthBufferBit
	}
	if b.Stencil {
		m |= StencilBufferBit
	}
	return m
}

func (b BufferState) String() string {
	return fmt.Sprintf("color=%v depth=%v stencil=%v", b.Color, b.Depth, b.Stencil)
}

// Rect is a rectangle in pixel coordinates. X1 and Y1 are exclusive.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Width of the rectangle.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height of the rectangle.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// BufferTarget is the binding point of a vertex or index buffer.
type BufferTarget int

// List of valid BufferTarget values.
const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// BufferUsage is a hint about how a buffer will be updated.
type BufferUsage int

// List of valid BufferUsage values.
const (
	StaticDraw BufferUsage = iota
	DynamicDraw
)

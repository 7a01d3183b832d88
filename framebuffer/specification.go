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
	"slices"
	"strings"

	"github.com/jetsetilly/rendercore/texture"
)

// AttachmentSpecification describes one attachment of a FrameBuffer.
type AttachmentSpecification = texture.Specification

// Specification is the blueprint of a FrameBuffer.
type Specification struct {
	Width  int
	Height int

	// only used by 3D attachments
	Depth int

	// the number of samples used by 2D attachments. values less than one are
	// treated as one
	Samples int

	MipMaps bool

	Attachments []AttachmentSpecification
}

// SetSize sets the size of the Specification. It does not change the size of
// the attachment specifications.
func (spec *Specification) SetSize(width, height, depth int) {
	spec.Width = width
	spec.Height = height
	spec.Depth = depth
}

// clone returns a copy of the specification that does not share the
// attachments slice.
func (spec Specification) clone() Specification {
	spec.Attachments = slices.Clone(spec.Attachments)
	return spec
}

func (spec Specification) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%dx%d", spec.Width, spec.Height))
	if spec.Depth > 1 {
		s.WriteString(fmt.Sprintf("x%d", spec.Depth))
	}
	if spec.Samples > 1 {
		s.WriteString(fmt.Sprintf(" samples=%d", spec.Samples))
	}
	if spec.MipMaps {
		s.WriteString(" mipmaps")
	}
	for _, a := range spec.Attachments {
		s.WriteString(fmt.Sprintf(" [%s %s]", a.Type, a.Format))
	}
	return s.String()
}

// setAttachmentSize is used to make an attachment specification agree with
// the size of the framebuffer.
func setAttachmentSize(a *AttachmentSpecification, width, height, depth int) {
	a.Width = width
	a.Height = height
	a.Depth = depth
}

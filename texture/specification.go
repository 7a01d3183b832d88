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

package texture

import (
	"fmt"

	"github.com/jetsetilly/rendercore/gpu"
)

// Specification describes the storage of a texture.
type Specification struct {
	Format gpu.Format
	Type   gpu.TextureType

	// height is ignored for 1D textures and depth is only used by 3D
	// textures
	Width  int
	Height int
	Depth  int

	MipMaps bool
	Wrap    gpu.Wrap
	Filter  gpu.Filter

	// samples is only used by 2D textures. a value of one or less means the
	// texture is not multisampled
	Samples int
}

// WithDefaults returns a copy of the Specification with any unset wrap and
// filter values replaced by the default for the format. The default wrap is
// ClampToBorder for depth formats and ClampToEdge otherwise. The default
// filter is Nearest for depth formats and Linear otherwise.
func (spec Specification) WithDefaults() Specification {
	if spec.Wrap == gpu.WrapNone {
		if spec.Format.IsDepth() {
			spec.Wrap = gpu.WrapClampToBorder
		} else {
			spec.Wrap = gpu.WrapClampToEdge
		}
	}
	if spec.Filter == gpu.FilterNone {
		if spec.Format.IsDepth() {
			spec.Filter = gpu.FilterNearest
		} else {
			spec.Filter = gpu.FilterLinear
		}
	}
	return spec
}

// Multisampled returns true if the specification describes a multisampled 2D
// texture.
func (spec Specification) Multisampled() bool {
	return spec.Type == gpu.Type2D && spec.Samples > 1
}

func (spec Specification) String() string {
	s := fmt.Sprintf("%s %s %dx%d", spec.Type, spec.Format, spec.Width, spec.Height)
	if spec.Type == gpu.Type3D {
		s = fmt.Sprintf("%sx%d", s, spec.Depth)
	}
	if spec.Multisampled() {
		s = fmt.Sprintf("%s (%d samples)", s, spec.Samples)
	}
	if spec.MipMaps {
		s = fmt.Sprintf("%s mipmapped", s)
	}
	return s
}

// FormatForImage returns the format suitable for decoded image data with the
// number of channels. Returns FormatNone if there is no suitable format.
func FormatForImage(channels int, float bool) gpu.Format {
	if float {
		switch channels {
		case 1:
			return gpu.FormatR16F
		case 3:
			return gpu.FormatRGB32F
		case 4:
			return gpu.FormatRGBA32F
		}
		return gpu.FormatNone
	}

	switch channels {
	case 1:
		return gpu.FormatR8
	case 2:
		return gpu.FormatRG8
	case 3:
		return gpu.FormatRGB8
	case 4:
		return gpu.FormatRGBA8
	}
	return gpu.FormatNone
}

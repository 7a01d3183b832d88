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

import (
	"fmt"
	"strings"
)

// Format is the pixel format of a texture or attachment.
type Format int

// List of valid Format values. FormatNone is a sentinel indicating the
// absence of a format.
const (
	FormatNone Format = iota
	FormatR8
	FormatRG8
	FormatRGB8
	FormatRGBA8
	FormatR16F
	FormatRGB16F
	FormatRGBA16F
	FormatRGB32F
	FormatRGBA32F
	FormatR8UI
	FormatRG8UI
	FormatRGB8UI
	FormatRGBA8UI
	FormatDepth24
	FormatDepth32F
	FormatDepth24Stencil8
)

var formatNames = []string{
	"None", "R8", "RG8", "RGB8", "RGBA8", "R16F", "RGB16F", "RGBA16F", "RGB32F", "RGBA32F",
	"R8UI", "RG8UI", "RGB8UI", "RGBA8UI", "DEPTH24", "DEPTH32F", "DEPTH24STENCIL8",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the Format with the given name. The comparison is case
// insensitive.
func ParseFormat(s string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return Format(i), nil
		}
	}
	return FormatNone, fmt.Errorf("gpu: unknown format %q", s)
}

// IsDepth returns true for formats that can only be used as a depth or
// depth-stencil attachment.
func (f Format) IsDepth() bool {
	switch f {
	case FormatDepth24, FormatDepth32F, FormatDepth24Stencil8:
		return true
	}
	return false
}

// HasStencil returns true if the format includes stencil data.
func (f Format) HasStencil() bool {
	return f == FormatDepth24Stencil8
}

// IsFloat returns true if the format stores floating point values. Pixel data
// for these formats is exchanged as []float32.
func (f Format) IsFloat() bool {
	switch f {
	case FormatR16F, FormatRGB16F, FormatRGBA16F, FormatRGB32F, FormatRGBA32F, FormatDepth32F:
		return true
	}
	return false
}

// IsInteger returns true if the format stores unnormalised integer values.
func (f Format) IsInteger() bool {
	switch f {
	case FormatR8UI, FormatRG8UI, FormatRGB8UI, FormatRGBA8UI:
		return true
	}
	return false
}

// IsUnsigned returns true if the format stores unsigned integer values. These
// formats must be cleared with ClearBufferui().
func (f Format) IsUnsigned() bool {
	switch f {
	case FormatR8UI, FormatRG8UI, FormatRGB8UI, FormatRGBA8UI:
		return true
	}
	return false
}

// Channels returns the number of colour channels in the format. Depth
// formats have one channel and FormatNone has zero.
func (f Format) Channels() int {
	switch f {
	case FormatR8, FormatR16F, FormatR8UI, FormatDepth24, FormatDepth32F, FormatDepth24Stencil8:
		return 1
	case FormatRG8, FormatRG8UI:
		return 2
	case FormatRGB8, FormatRGB16F, FormatRGB32F, FormatRGB8UI:
		return 3
	case FormatRGBA8, FormatRGBA16F, FormatRGBA32F, FormatRGBA8UI:
		return 4
	}
	return 0
}

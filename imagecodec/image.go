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

package imagecodec

import (
	"fmt"
	"math"
)

// Image is the decoded pixel data of an image file. Only one of U8 and F32
// will be non-nil.
type Image struct {
	Width    int
	Height   int
	Channels int

	U8  []uint8
	F32 []float32
}

// IsFloat returns true if the pixel data is in the F32 field.
func (img *Image) IsFloat() bool {
	return img.F32 != nil
}

func (img *Image) String() string {
	t := "8bit"
	if img.IsFloat() {
		t = "float"
	}
	return fmt.Sprintf("%dx%d %dch %s", img.Width, img.Height, img.Channels, t)
}

// Pixels returns the pixel data as a value suitable for uploading to a
// texture.
func (img *Image) Pixels() any {
	if img.F32 != nil {
		return img.F32
	}
	return img.U8
}

// validate checks that the dimensions of the image agree with the size of the
// pixel data.
func (img *Image) validate() error {
	if img.Channels < 1 || img.Channels > 4 {
		return fmt.Errorf("imagecodec: unsupported channel count (%d)", img.Channels)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("imagecodec: invalid dimensions (%dx%d)", img.Width, img.Height)
	}
	n := img.Width * img.Height * img.Channels
	if img.F32 != nil {
		if len(img.F32) < n {
			return fmt.Errorf("imagecodec: not enough pixel data (%d of %d)", len(img.F32), n)
		}
		return nil
	}
	if len(img.U8) < n {
		return fmt.Errorf("imagecodec: not enough pixel data (%d of %d)", len(img.U8), n)
	}
	return nil
}

// the value at index i as a normalised float.
func (img *Image) float(i int) float32 {
	if img.F32 != nil {
		return img.F32[i]
	}
	return float32(img.U8[i]) / 255
}

// the value at index i as an eight bit value. float values are clamped to the
// range 0 to 1.
func (img *Image) byte(i int) uint8 {
	if img.F32 != nil {
		v := img.F32[i]
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(math.Round(float64(v) * 255))
	}
	return img.U8[i]
}

// FlipVertical reverses the order of the rows in the pixel data. The row
// length in values is width*channels.
func FlipVertical[T any](data []T, rowLen int, height int) {
	top := 0
	bot := (height - 1) * rowLen
	for top < bot {
		for i := range rowLen {
			data[top+i], data[bot+i] = data[bot+i], data[top+i]
		}
		top += rowLen
		bot -= rowLen
	}
}

// FlipVertical reverses the order of the rows of the image.
func (img *Image) FlipVertical() {
	if img.F32 != nil {
		FlipVertical(img.F32, img.Width*img.Channels, img.Height)
		return
	}
	FlipVertical(img.U8, img.Width*img.Channels, img.Height)
}

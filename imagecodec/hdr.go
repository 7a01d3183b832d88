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
	"image"
	"io"

	"github.com/jetsetilly/rendercore/curated"
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
)

// DecodeHDR decodes a Radiance HDR file. The returned Image has three
// channels of float data.
func DecodeHDR(r io.Reader) (*Image, error) {
	m, err := rgbe.Decode(r)
	if err != nil {
		return nil, curated.Errorf(ErrDecode, err)
	}

	h, ok := m.(hdr.Image)
	if !ok {
		return nil, curated.Errorf(ErrDecode, fmt.Sprintf("unexpected hdr image type (%T)", m))
	}

	bounds := h.Bounds()
	if bounds.Empty() {
		return nil, curated.Errorf(ErrDecode, fmt.Sprintf("invalid hdr dimensions (%dx%d)", bounds.Dx(), bounds.Dy()))
	}

	img := &Image{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: 3,
		F32:      make([]float32, bounds.Dx()*bounds.Dy()*3),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := h.HDRAt(x, y).HDRRGBA()
			img.F32[i] = float32(r)
			img.F32[i+1] = float32(g)
			img.F32[i+2] = float32(b)
			i += 3
		}
	}

	return img, nil
}

// EncodeHDR writes the image as a Radiance HDR file. One and two channel
// images are written as grey. Any alpha channel is ignored. Eight bit data is
// normalised to the range 0 to 1.
func EncodeHDR(w io.Writer, img *Image) error {
	if err := img.validate(); err != nil {
		return curated.Errorf(ErrEncode, err)
	}

	m := hdr.NewRGB(image.Rect(0, 0, img.Width, img.Height))
	for y := range img.Height {
		for x := range img.Width {
			i := (y*img.Width + x) * img.Channels
			var c hdrcolor.RGB
			if img.Channels < 3 {
				c.R = float64(img.float(i))
				c.G = c.R
				c.B = c.R
			} else {
				c.R = float64(img.float(i))
				c.G = float64(img.float(i + 1))
				c.B = float64(img.float(i + 2))
			}

			// RGBE has no sign bit
			c.R = max(c.R, 0)
			c.G = max(c.G, 0)
			c.B = max(c.B, 0)
			m.SetRGB(x, y, c)
		}
	}

	if err := rgbe.Encode(w, m); err != nil {
		return curated.Errorf(ErrEncode, err)
	}
	return nil
}

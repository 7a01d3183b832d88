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
	"math"

	"github.com/jetsetilly/rendercore/gpu"
)

// surface is a single two dimensional image. Textures are made up of one or
// more surfaces: one for 1D and 2D textures, one per layer for 3D textures
// and six for cube maps.
type surface struct {
	format   gpu.Format
	width    int
	height   int
	channels int
	data     []float32

	// only allocated for formats with stencil
	stencil []uint8
}

func newSurface(format gpu.Format, width, height int) *surface {
	s := &surface{
		format:   format,
		width:    width,
		height:   height,
		channels: max(format.Channels(), 1),
	}
	s.data = make([]float32, width*height*s.channels)
	if format.HasStencil() {
		s.stencil = make([]uint8, width*height)
	}
	return s
}

// texel returns the index of the first channel of the texel at x, y.
func (s *surface) texel(x, y int) int {
	return (y*s.width + x) * s.channels
}

// normalised formats are stored in the range 0 to 1.
func isNormalised(f gpu.Format) bool {
	return !f.IsFloat() && !f.IsInteger()
}

// upload copies pixel data into the surface. the offset is the number of
// values into pixels at which the surface data starts.
func (s *surface) upload(pixels any, offset int) bool {
	n := len(s.data)
	switch p := pixels.(type) {
	case nil:
		return true
	case []uint8:
		if len(p) < offset+n {
			return false
		}
		for i := range n {
			v := float32(p[offset+i])
			if isNormalised(s.format) {
				v /= 255
			}
			s.data[i] = v
		}
	case []float32:
		if len(p) < offset+n {
			return false
		}
		copy(s.data, p[offset:offset+n])
	default:
		return false
	}
	return true
}

func (s *surface) fill(v [4]float32) {
	for i := 0; i < len(s.data); i += s.channels {
		copy(s.data[i:i+s.channels], v[:s.channels])
	}
}

func (s *surface) fillStencil(v uint8) {
	for i := range s.stencil {
		s.stencil[i] = v
	}
}

// read returns the RGBA value of the texel at x, y. missing channels are zero
// except alpha, which is one.
func (s *surface) read(x, y int) [4]float32 {
	v := [4]float32{0, 0, 0, 1}
	i := s.texel(x, y)
	copy(v[:s.channels], s.data[i:i+s.channels])
	return v
}

func (s *surface) write(x, y int, v [4]float32) {
	i := s.texel(x, y)
	copy(s.data[i:i+s.channels], v[:s.channels])
}

// sample with bilinear filtering. fx and fy are in texel space where the
// centre of texel 0 is at 0.5.
func (s *surface) sampleLinear(fx, fy float64) [4]float32 {
	fx -= 0.5
	fy -= 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - float64(x0))
	ty := float32(fy - float64(y0))

	clampX := func(x int) int { return min(max(x, 0), s.width-1) }
	clampY := func(y int) int { return min(max(y, 0), s.height-1) }

	a := s.read(clampX(x0), clampY(y0))
	b := s.read(clampX(x0+1), clampY(y0))
	c := s.read(clampX(x0), clampY(y0+1))
	d := s.read(clampX(x0+1), clampY(y0+1))

	var v [4]float32
	for i := range v {
		top := a[i] + (b[i]-a[i])*tx
		bot := c[i] + (d[i]-c[i])*tx
		v[i] = top + (bot-top)*ty
	}
	return v
}

// downsample produces the next mip level with a box filter.
func (s *surface) downsample() *surface {
	w := max(s.width/2, 1)
	h := max(s.height/2, 1)
	d := newSurface(s.format, w, h)
	for y := range h {
		for x := range w {
			var acc [4]float32
			n := float32(0)
			for dy := range 2 {
				for dx := range 2 {
					sx := min(x*2+dx, s.width-1)
					sy := min(y*2+dy, s.height-1)
					v := s.read(sx, sy)
					for i := range acc {
						acc[i] += v[i]
					}
					n++
				}
			}
			for i := range acc {
				acc[i] /= n
			}
			d.write(x, y, acc)
		}
	}
	return d
}

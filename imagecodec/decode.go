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
	"bufio"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	// image formats supported by the standard library
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// additional image formats
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"

	"github.com/jetsetilly/rendercore/curated"
)

// Sentinal error patterns.
const (
	ErrUnsupportedExtension = "imagecodec: unsupported extension (%s)"
	ErrDecode               = "imagecodec: decode: %v"
	ErrEncode               = "imagecodec: encode: %v"
)

// IsHDR returns true if the filename has the extension of a Radiance HDR file.
func IsHDR(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".hdr")
}

// Decode the named file. HDR files are decoded into float data and all other
// files are decoded into eight bit data.
func Decode(filename string) (*Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(ErrDecode, err)
	}
	defer f.Close()

	if IsHDR(filename) {
		return DecodeHDR(f)
	}
	return DecodeImage(f)
}

// DecodeImage decodes any of the eight bit image formats. The number of
// channels in the returned Image depends on the colour model of the file:
// one for greyscale images, three for opaque images and four otherwise.
func DecodeImage(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, curated.Errorf(ErrDecode, err)
	}
	return fromImage(src), nil
}

func fromImage(src image.Image) *Image {
	b := src.Bounds()
	img := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
	}

	switch src.(type) {
	case *image.Gray, *image.Gray16:
		dst := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
		img.Channels = 1
		img.U8 = dst.Pix
		return img
	}

	img.Channels = 4
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		img.Channels = 3
	}

	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)

	if img.Channels == 4 {
		img.U8 = dst.Pix
		return img
	}

	img.U8 = make([]uint8, img.Width*img.Height*3)
	for i, j := 0, 0; i < len(dst.Pix); i, j = i+4, j+3 {
		copy(img.U8[j:j+3], dst.Pix[i:i+3])
	}

	return img
}

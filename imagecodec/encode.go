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
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/rendercore/curated"
)

// JPEGQuality is the quality used for every JPEG file written by the package.
const JPEGQuality = 100

// Encoder writes an Image to an io.Writer.
type Encoder func(w io.Writer, img *Image) error

// EncoderFor returns the Encoder for the extension of the filename. Returns
// false if the extension is not supported.
func EncoderFor(filename string) (Encoder, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return EncodePNG, true
	case ".jpg", ".jpeg":
		return EncodeJPEG, true
	case ".hdr":
		return EncodeHDR, true
	}
	return nil, false
}

// Encode the image to the named file. The encoder is chosen by the extension
// of the filename. An unsupported extension returns an ErrUnsupportedExtension
// error and no file is created.
func Encode(filename string, img *Image) (rerr error) {
	enc, ok := EncoderFor(filename)
	if !ok {
		return curated.Errorf(ErrUnsupportedExtension, filepath.Ext(filename))
	}

	if err := img.validate(); err != nil {
		return curated.Errorf(ErrEncode, err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ErrEncode, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(ErrEncode, err)
		}
	}()

	w := bufio.NewWriter(f)
	if err := enc(w, img); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return curated.Errorf(ErrEncode, err)
	}

	return nil
}

// EncodePNG writes the image as a PNG. Float data is clamped to the range 0
// to 1.
func EncodePNG(w io.Writer, img *Image) error {
	if err := img.validate(); err != nil {
		return curated.Errorf(ErrEncode, err)
	}
	if err := png.Encode(w, toImage(img, false)); err != nil {
		return curated.Errorf(ErrEncode, err)
	}
	return nil
}

// EncodeJPEG writes the image as a JPEG. Any alpha channel is ignored.
func EncodeJPEG(w io.Writer, img *Image) error {
	if err := img.validate(); err != nil {
		return curated.Errorf(ErrEncode, err)
	}
	if err := jpeg.Encode(w, toImage(img, true), &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return curated.Errorf(ErrEncode, err)
	}
	return nil
}

// toImage converts the image to the image.Image type. if opaque is true then
// any alpha channel is ignored.
func toImage(img *Image, opaque bool) image.Image {
	r := image.Rect(0, 0, img.Width, img.Height)

	if img.Channels == 1 {
		g := image.NewGray(r)
		for i := range g.Pix {
			g.Pix[i] = img.byte(i)
		}
		return g
	}

	n := image.NewNRGBA(r)
	for i := range img.Width * img.Height {
		s := i * img.Channels
		var c color.NRGBA
		switch img.Channels {
		case 2:
			c.R = img.byte(s)
			c.G = c.R
			c.B = c.R
			c.A = img.byte(s + 1)
		case 3:
			c.R = img.byte(s)
			c.G = img.byte(s + 1)
			c.B = img.byte(s + 2)
			c.A = 255
		case 4:
			c.R = img.byte(s)
			c.G = img.byte(s + 1)
			c.B = img.byte(s + 2)
			c.A = img.byte(s + 3)
		}
		if opaque {
			c.A = 255
		}
		n.Pix[i*4] = c.R
		n.Pix[i*4+1] = c.G
		n.Pix[i*4+2] = c.B
		n.Pix[i*4+3] = c.A
	}
	return n
}

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
	"path/filepath"
	"slices"

	"github.com/jetsetilly/rendercore/buffer"
	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/imagecodec"
)

// read colour attachment i into a scratch buffer. the scratch buffer must be
// released by the caller
func (fb *FrameBuffer) read(i int) (*buffer.Scratch, int) {
	fb.checkIndex(i)

	f := fb.colorSpecs[i].Format
	ch := f.Channels()
	if ch < 1 || ch > 4 {
		panic(curated.Errorf(ErrInvalidChannels, i, ch))
	}

	w, h := fb.spec.Width, fb.height()
	scr := buffer.AllocateForFormat(f, w*h*ch)

	fb.BindForReadAttachment(i)
	fb.env.Device.ReadPixels(0, 0, w, h, f, scr.Pixels())
	fb.env.Device.BindFramebuffer(gpu.FramebufferRead, gpu.DefaultFramebuffer)

	return scr, ch
}

// AttachmentData returns the pixels of colour attachment i. The data is
// []uint8 or []float32 depending on the format of the attachment. The first
// row of the data is the bottom row of the attachment.
func (fb *FrameBuffer) AttachmentData(i int) any {
	scr, _ := fb.read(i)
	defer scr.Release()

	if scr.F32 != nil {
		return slices.Clone(scr.F32)
	}
	return slices.Clone(scr.U8)
}

// SaveAttachment writes colour attachment i to an image file. The type of
// file is chosen by the extension of the filename: PNG, JPEG and HDR files
// are supported. For any other extension a warning is logged and no file is
// written.
//
// A relative filename is taken to be relative to the export directory in the
// preferences, if it has been set.
func (fb *FrameBuffer) SaveAttachment(i int, filename string) error {
	scr, ch := fb.read(i)
	defer scr.Release()

	if _, ok := imagecodec.EncoderFor(filename); !ok {
		fb.env.Warnf("framebuffer", "unsupported file format (%s)", filepath.Ext(filename))
		return nil
	}

	if !filepath.IsAbs(filename) && fb.env.Prefs != nil {
		if dir := fb.env.Prefs.ExportDir.String(); dir != "" {
			filename = filepath.Join(dir, filename)
		}
	}

	img := &imagecodec.Image{
		Width:    fb.spec.Width,
		Height:   fb.height(),
		Channels: ch,
		U8:       scr.U8,
		F32:      scr.F32,
	}
	img.FlipVertical()

	return imagecodec.Encode(filename, img)
}

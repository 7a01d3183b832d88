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

package framebuffer_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/rendercore/framebuffer"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/imagecodec"
	"github.com/jetsetilly/rendercore/test"
)

// a 2x2 framebuffer. the bottom row is red and green and the top row is blue
// and white
func quad(t *testing.T) (*framebuffer.FrameBuffer, func() string) {
	t.Helper()
	env, _ := newEnv(t)

	fb := framebuffer.New(env, framebuffer.Specification{Width: 2, Height: 2, Attachments: rgba(1)})
	fb.ColorAttachment(0).CreateTexture([]uint8{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	})

	logged := func() string {
		var s test.CompareWriter
		env.Log.Write(&s)
		return s.String()
	}

	return fb, logged
}

func TestAttachmentData(t *testing.T) {
	fb, _ := quad(t)

	// data is in device order, bottom row first
	b := fb.AttachmentData(0).([]uint8)
	test.ExpectEquality(t, fmt.Sprint(b), "[255 0 0 255 0 255 0 255 0 0 255 255 255 255 255 255]")

	// the returned data is a copy
	b[0] = 0
	test.ExpectEquality(t, fb.AttachmentData(0).([]uint8)[0], uint8(255))
}

func TestSavePNG(t *testing.T) {
	fb, _ := quad(t)

	filename := filepath.Join(t.TempDir(), "quad.png")
	test.DemandSuccess(t, fb.SaveAttachment(0, filename))

	img, err := imagecodec.Decode(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Width, 2)
	test.ExpectEquality(t, img.Height, 2)
	test.DemandEquality(t, img.Channels, 3)

	// image files have the top row first
	test.ExpectEquality(t, fmt.Sprint(img.U8), "[0 0 255 255 255 255 255 0 0 0 255 0]")
}

func TestSaveUnsupported(t *testing.T) {
	fb, logged := quad(t)

	filename := filepath.Join(t.TempDir(), "quad.bmp")
	test.ExpectSuccess(t, fb.SaveAttachment(0, filename))

	_, err := os.Stat(filename)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, logged(), "framebuffer: unsupported file format (.bmp)\n")
}

func TestSaveExportDir(t *testing.T) {
	env, _ := newEnv(t)
	dir := t.TempDir()
	test.DemandSuccess(t, env.Prefs.ExportDir.Set(dir))

	fb := framebuffer.New(env, framebuffer.Specification{Width: 2, Height: 2, Attachments: rgba(1)})
	test.DemandSuccess(t, fb.SaveAttachment(0, "export.jpg"))

	_, err := os.Stat(filepath.Join(dir, "export.jpg"))
	test.ExpectSuccess(t, err)

	// absolute paths ignore the export directory
	other := filepath.Join(t.TempDir(), "other.png")
	test.DemandSuccess(t, fb.SaveAttachment(0, other))
	_, err = os.Stat(other)
	test.ExpectSuccess(t, err)
}

func TestSaveHDR(t *testing.T) {
	env, _ := newEnv(t)

	fb := framebuffer.New(env, framebuffer.Specification{
		Width:       3,
		Height:      2,
		Attachments: []framebuffer.AttachmentSpecification{{Format: gpu.FormatRGBA16F}},
	})
	fb.Clear(0.5, 1, 2, 1)

	filename := filepath.Join(t.TempDir(), "bright.hdr")
	test.DemandSuccess(t, fb.SaveAttachment(0, filename))

	img, err := imagecodec.Decode(filename)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, img.IsFloat())
	test.ExpectEquality(t, img.Width, 3)
	test.ExpectEquality(t, img.Height, 2)
	test.DemandEquality(t, len(img.F32), 3*2*3)
	test.ExpectEquality(t, img.F32[0], float32(0.5))
	test.ExpectEquality(t, img.F32[1], float32(1))
	test.ExpectEquality(t, img.F32[2], float32(2))
}

func TestSaveError(t *testing.T) {
	fb, _ := quad(t)

	filename := filepath.Join(t.TempDir(), "missing", "quad.png")
	test.ExpectFailure(t, fb.SaveAttachment(0, filename))
}

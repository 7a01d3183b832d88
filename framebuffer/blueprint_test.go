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
	"strings"
	"testing"

	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/framebuffer"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/test"
)

func TestLibrary(t *testing.T) {
	env, dev := newEnv(t)

	lib := framebuffer.NewLibrary(env)
	main := lib.Create("main", colorDepth(4))
	test.ExpectEquality(t, lib.Len(), 1)

	// the new framebuffer is returned but not added
	dup := lib.Create("main", colorDepth(8))
	test.DemandSuccess(t, dup != nil)
	test.ExpectInequality(t, dup, main)
	test.ExpectEquality(t, lib.Len(), 1)

	var s test.CompareWriter
	env.Log.Write(&s)
	test.ExpectSuccess(t, s.Compare("framebuffer: main already exists!\n"))

	fb, ok := lib.Get("main")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, fb, main)

	lib.Create("bloom", framebuffer.Specification{Width: 4, Height: 4, Attachments: rgba(2)})
	test.ExpectEquality(t, lib.Len(), 2)

	dup.Destroy()
	lib.DestroyAll()
	test.ExpectEquality(t, lib.Len(), 0)
	test.ExpectEquality(t, dev.FramebufferCount(), 0)
	test.ExpectEquality(t, dev.TextureCount(), 0)
}

const blueprintYAML = `
width: 64
height: 32
attachments:
  - format: rgba8
  - format: RGBA16F
    type: 2D
    wrap: repeat
  - format: DEPTH24STENCIL8
`

func TestLoadSpecification(t *testing.T) {
	prefs, err := environment.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Samples.Set(4))
	test.DemandSuccess(t, prefs.MipMaps.Set(true))

	// missing values are taken from the preferences
	spec, err := framebuffer.LoadSpecification(strings.NewReader(blueprintYAML), prefs)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, spec.Width, 64)
	test.ExpectEquality(t, spec.Height, 32)
	test.ExpectEquality(t, spec.Samples, 4)
	test.ExpectEquality(t, spec.MipMaps, true)
	test.DemandEquality(t, len(spec.Attachments), 3)
	test.ExpectEquality(t, spec.Attachments[0].Format, gpu.FormatRGBA8)
	test.ExpectEquality(t, spec.Attachments[1].Wrap, gpu.WrapRepeat)
	test.ExpectEquality(t, spec.Attachments[2].Format, gpu.FormatDepth24Stencil8)

	// without preferences
	spec, err = framebuffer.LoadSpecification(strings.NewReader(blueprintYAML), nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, spec.Samples, 1)
	test.ExpectEquality(t, spec.MipMaps, false)

	// explicit values
	spec, err = framebuffer.LoadSpecification(strings.NewReader(blueprintYAML+"samples: 2\nmipmaps: false\n"), prefs)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, spec.Samples, 2)
	test.ExpectEquality(t, spec.MipMaps, false)

	// the blueprint can be used to create a framebuffer
	env, dev := newEnv(t)
	fb := framebuffer.New(env, spec)
	test.ExpectSuccess(t, dev.Error())
	expectComplete(t, dev, fb)
	test.ExpectEquality(t, fb.ColorAttachmentCount(), 2)
}

func TestLoadSpecificationErrors(t *testing.T) {
	for _, y := range []string{
		"width: 0\nheight: 4\n",
		"width: 4\nheight: 4\ncolour: red\n",
		"width: 4\nattachments:\n  - format: RGBA9\n",
		"width: 4\nattachments:\n  - format: RGBA8\n    type: 4D\n",
		"width: 4\nattachments:\n  - format: RGBA8\n    wrap: sideways\n",
		"width: [4\n",
	} {
		_, err := framebuffer.LoadSpecification(strings.NewReader(y), nil)
		test.ExpectFailure(t, err, y)
		test.ExpectSuccess(t, curated.Is(err, framebuffer.ErrBlueprint), y)
	}
}

func TestSaveSpecification(t *testing.T) {
	spec := framebuffer.Specification{
		Width:   16,
		Height:  8,
		Depth:   2,
		Samples: 2,
		MipMaps: true,
		Attachments: []framebuffer.AttachmentSpecification{
			{Format: gpu.FormatRG8, Type: gpu.Type3D},
			{Format: gpu.FormatR8UI, Wrap: gpu.WrapMirroredRepeat},
			{Format: gpu.FormatDepth32F},
		},
	}

	var s strings.Builder
	test.DemandSuccess(t, framebuffer.SaveSpecification(&s, spec))

	loaded, err := framebuffer.LoadSpecification(strings.NewReader(s.String()), nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, loaded.String(), spec.String())
	test.DemandEquality(t, len(loaded.Attachments), len(spec.Attachments))
	for i := range spec.Attachments {
		test.ExpectEquality(t, loaded.Attachments[i], spec.Attachments[i], i)
	}
}

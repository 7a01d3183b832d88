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
	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/gpu"
)

// Texture1D is a texture with a width only.
type Texture1D struct {
	resource
}

// NewTexture1D is the preferred method of initialisation for the Texture1D
// type.
func NewTexture1D(env *environment.Environment, spec Specification) *Texture1D {
	spec.Type = gpu.Type1D
	return &Texture1D{resource: newResource(env, spec, gpu.Texture1D)}
}

// CreateTexture implements the Texture interface.
func (t *Texture1D) CreateTexture(data any) {
	t.prepare(t.spec.Width, 1, 1)
	t.env.Device.TexImage(t.target, gpu.TexImage{
		Format: t.spec.Format,
		Width:  t.spec.Width,
		Height: 1,
		Depth:  1,
		Pixels: data,
	})
	t.configure()
}

// Texture2D is a texture with a width and height. A Texture2D with more than
// one sample is a multisampled texture. Multisampled textures cannot be
// initialised with pixel data and do not have sampling parameters.
type Texture2D struct {
	resource
}

// NewTexture2D is the preferred method of initialisation for the Texture2D
// type.
func NewTexture2D(env *environment.Environment, spec Specification) *Texture2D {
	spec.Type = gpu.Type2D
	spec.Samples = max(spec.Samples, 1)

	target := gpu.Texture2D
	if spec.Multisampled() {
		target = gpu.Texture2DMultisample
		spec.MipMaps = false
	}

	return &Texture2D{resource: newResource(env, spec, target)}
}

// Samples returns the number of samples of the texture.
func (t *Texture2D) Samples() int {
	return t.spec.Samples
}

// CreateTexture implements the Texture interface.
func (t *Texture2D) CreateTexture(data any) {
	t.prepare(t.spec.Width, t.spec.Height, 1)

	img := gpu.TexImage{
		Format: t.spec.Format,
		Width:  t.spec.Width,
		Height: t.spec.Height,
		Depth:  1,
		Pixels: data,
	}
	if t.spec.Multisampled() {
		if data != nil {
			t.env.Warn("texture", "pixel data ignored for multisample texture")
		}
		img.Samples = t.spec.Samples
		img.Pixels = nil
	}

	t.env.Device.TexImage(t.target, img)
	t.configure()
}

// Texture3D is a texture with a width, height and depth.
type Texture3D struct {
	resource
}

// NewTexture3D is the preferred method of initialisation for the Texture3D
// type.
func NewTexture3D(env *environment.Environment, spec Specification) *Texture3D {
	spec.Type = gpu.Type3D
	return &Texture3D{resource: newResource(env, spec, gpu.Texture3D)}
}

// CreateTexture implements the Texture interface. The data argument is the
// pixel data of every layer, one after the other.
func (t *Texture3D) CreateTexture(data any) {
	t.prepare(t.spec.Width, t.spec.Height, t.spec.Depth)
	t.env.Device.TexImage(t.target, gpu.TexImage{
		Format: t.spec.Format,
		Width:  t.spec.Width,
		Height: t.spec.Height,
		Depth:  t.spec.Depth,
		Pixels: data,
	})
	t.configure()
}

// CubeFaces is the pixel data for each of the faces of a cube map in the
// order +X, -X, +Y, -Y, +Z, -Z. A nil entry allocates the face without
// initialising it.
type CubeFaces [6]any

// TextureCube is a cube map of six square faces.
type TextureCube struct {
	resource
}

// NewTextureCube is the preferred method of initialisation for the
// TextureCube type.
func NewTextureCube(env *environment.Environment, spec Specification) *TextureCube {
	spec.Type = gpu.TypeCube
	return &TextureCube{resource: newResource(env, spec, gpu.TextureCubeMap)}
}

// CreateTexture implements the Texture interface. The data argument should
// be nil, the CubeFaces type, or pixel data that will be used for every face.
func (t *TextureCube) CreateTexture(data any) {
	t.prepare(t.spec.Width, t.spec.Height, 1)

	faces, ok := data.(CubeFaces)
	if !ok {
		for i := range faces {
			faces[i] = data
		}
	}

	for i, f := range faces {
		t.env.Device.TexImage(gpu.CubeFace(i), gpu.TexImage{
			Format: t.spec.Format,
			Width:  t.spec.Width,
			Height: t.spec.Height,
			Depth:  1,
			Pixels: f,
		})
	}

	t.configure()
}

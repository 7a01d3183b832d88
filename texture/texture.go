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
	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/gpu"
)

// ErrSize is the pattern of the fatal error raised when storage is allocated
// for a texture with invalid dimensions.
const ErrSize = "texture: invalid size for %s texture (%dx%dx%d)"

// Texture is the set of operations common to every texture type.
type Texture interface {
	// the device identifier of the texture. zero if the texture has been
	// released
	ID() uint32

	Spec() Specification
	Type() gpu.TextureType

	// the target used to bind the texture and to attach it to a framebuffer
	Target() gpu.TextureTarget

	Bind()
	BindToTextureUnit(unit int)
	Unbind()

	// allocate storage for the texture. the data argument can be nil
	CreateTexture(data any)

	// free the storage of the texture, regardless of how many references
	// there are
	ReleaseTexture()

	Retain()
	Release()
	RefCount() int
}

// New creates a texture of the type named in the specification. The samples
// argument is used by 2D textures only. Returns nil if the type is not
// recognised.
func New(env *environment.Environment, spec Specification, samples int) Texture {
	env.RequireAPI("texture")

	switch spec.Type {
	case gpu.Type1D:
		return NewTexture1D(env, spec)
	case gpu.Type2D:
		spec.Samples = samples
		return NewTexture2D(env, spec)
	case gpu.Type3D:
		return NewTexture3D(env, spec)
	case gpu.TypeCube:
		return NewTextureCube(env, spec)
	}

	return nil
}

// resource is embedded by every texture type.
type resource struct {
	env    *environment.Environment
	id     uint32
	target gpu.TextureTarget
	spec   Specification
	refs   int
}

func newResource(env *environment.Environment, spec Specification, target gpu.TextureTarget) resource {
	env.RequireAPI(spec.Type.String() + " texture")
	return resource{
		env:    env,
		id:     env.Device.GenTexture(),
		target: target,
		spec:   spec.WithDefaults(),
		refs:   1,
	}
}

// ID implements the Texture interface.
func (r *resource) ID() uint32 {
	return r.id
}

// Spec implements the Texture interface.
func (r *resource) Spec() Specification {
	return r.spec
}

// Type implements the Texture interface.
func (r *resource) Type() gpu.TextureType {
	return r.spec.Type
}

// Target implements the Texture interface.
func (r *resource) Target() gpu.TextureTarget {
	return r.target
}

// Bind implements the Texture interface.
func (r *resource) Bind() {
	r.env.Device.BindTexture(r.target, r.id)
}

// BindToTextureUnit implements the Texture interface.
func (r *resource) BindToTextureUnit(unit int) {
	r.env.Device.ActiveTexture(unit)
	r.Bind()
}

// Unbind implements the Texture interface.
func (r *resource) Unbind() {
	r.env.Device.BindTexture(r.target, 0)
}

// ReleaseTexture implements the Texture interface.
func (r *resource) ReleaseTexture() {
	if r.id == 0 {
		return
	}
	r.env.Device.DeleteTexture(r.id)
	r.id = 0
}

// Retain implements the Texture interface.
func (r *resource) Retain() {
	r.refs++
}

// Release implements the Texture interface.
func (r *resource) Release() {
	if r.refs <= 0 {
		return
	}
	r.refs--
	if r.refs == 0 {
		r.ReleaseTexture()
	}
}

// RefCount implements the Texture interface.
func (r *resource) RefCount() int {
	return r.refs
}

// prepare is called at the start of CreateTexture(). a released texture is
// given a new identifier
func (r *resource) prepare(width, height, depth int) {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic(curated.Errorf(ErrSize, r.spec.Type, width, height, depth))
	}
	if r.id == 0 {
		r.id = r.env.Device.GenTexture()
		if r.refs == 0 {
			r.refs = 1
		}
	}
	r.Bind()
}

// configure sets the sampling parameters for the bound texture and generates
// mip-maps if required. the texture is unbound afterwards
func (r *resource) configure() {
	defer r.Unbind()

	if r.spec.Multisampled() {
		return
	}

	r.env.Device.TexSampling(r.target, gpu.Sampling{
		MinFilter: r.spec.Filter,
		MagFilter: r.spec.Filter,
		Mipmaps:   r.spec.MipMaps,
		WrapS:     r.spec.Wrap,
		WrapT:     r.spec.Wrap,
		WrapR:     r.spec.Wrap,
	})

	// depth textures outside of the border are as far away as possible
	if r.spec.Wrap == gpu.WrapClampToBorder && r.spec.Format.IsDepth() {
		r.env.Device.TexBorderColor(r.target, [4]float32{1, 1, 1, 1})
	}

	if r.spec.MipMaps {
		r.env.Device.GenerateMipmap(r.target)
	}
}

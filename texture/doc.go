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

// Package texture implements device textures of one, two and three
// dimensions, and cube maps.
//
// Each dimensionality has its own type but they all satisfy the Texture
// interface. The New() function creates the type suitable for the
// Specification:
//
//	spec := texture.Specification{
//		Format: gpu.FormatRGBA8,
//		Type:   gpu.Type2D,
//		Width:  256,
//		Height: 256,
//	}
//	tex := texture.New(env, spec, 1)
//	tex.CreateTexture(nil)
//
// Creating a texture reserves a device identifier but does not allocate any
// storage. Storage is allocated by CreateTexture(), optionally with initial
// pixel data, and is freed by ReleaseTexture(). CreateTexture() can be called
// again to reallocate the storage; the texture keeps its identifier.
//
// Textures can be shared between owners. The creator of a texture holds the
// first reference. Every additional owner should call Retain() and every
// owner should call Release() when it no longer needs the texture. Storage is
// freed when the last reference is released.
//
// Creating a texture when the Environment has no graphics API is a fatal
// error and causes a panic with the environment.ErrNoAPI pattern.
package texture

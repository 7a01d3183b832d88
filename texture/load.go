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
	"fmt"
	"path/filepath"

	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/imagecodec"
)

// ErrImage is returned when an image file cannot be used as a texture.
const ErrImage = "texture: %s: %v"

// decode the image file and derive the format from the decoded data.
// device textures have the first row at the bottom so flip will normally be
// true
func decode(filename string, flip bool) (*imagecodec.Image, gpu.Format, error) {
	img, err := imagecodec.Decode(filename)
	if err != nil {
		return nil, gpu.FormatNone, curated.Errorf(ErrImage, filepath.Base(filename), err)
	}

	f := FormatForImage(img.Channels, img.IsFloat())
	if f == gpu.FormatNone {
		return nil, gpu.FormatNone, curated.Errorf(ErrImage, filepath.Base(filename),
			fmt.Sprintf("%d channel data not supported", img.Channels))
	}

	if flip {
		img.FlipVertical()
	}

	return img, f, nil
}

// LoadFromFile creates a 2D texture from an image file. The format and size
// of the texture are taken from the image. Other fields of the specification
// are kept.
func LoadFromFile(env *environment.Environment, filename string, spec Specification, flip bool) (*Texture2D, error) {
	env.RequireAPI("texture from file")

	img, f, err := decode(filename, flip)
	if err != nil {
		return nil, err
	}

	spec.Format = f
	spec.Width = img.Width
	spec.Height = img.Height
	spec.Depth = 1
	spec.Samples = 1

	t := NewTexture2D(env, spec)
	t.CreateTexture(img.Pixels())
	return t, nil
}

// LoadCubeFromFiles creates a cube map from six image files in the order +X,
// -X, +Y, -Y, +Z, -Z. Every file must have the same size and format.
func LoadCubeFromFiles(env *environment.Environment, dir string, files []string, spec Specification, flip bool) (*TextureCube, error) {
	env.RequireAPI("cube texture from files")

	if len(files) != 6 {
		return nil, curated.Errorf(ErrImage, dir, fmt.Sprintf("cube map needs 6 files not %d", len(files)))
	}

	var faces CubeFaces
	var first *imagecodec.Image

	for i, fn := range files {
		img, f, err := decode(filepath.Join(dir, fn), flip)
		if err != nil {
			return nil, err
		}

		if first == nil {
			first = img
			spec.Format = f
		} else if img.Width != first.Width || img.Height != first.Height || img.Channels != first.Channels || img.IsFloat() != first.IsFloat() {
			return nil, curated.Errorf(ErrImage, fn, fmt.Sprintf("%s does not match %s", img, first))
		}

		faces[i] = img.Pixels()
	}

	spec.Width = first.Width
	spec.Height = first.Height
	spec.Depth = 1

	t := NewTextureCube(env, spec)
	t.CreateTexture(faces)
	return t, nil
}

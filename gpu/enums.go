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

package gpu

import (
	"fmt"
	"strings"
)

// parse is shared by the Parse functions of the enumerations in this file.
func parse(names []string, s string, kind string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("gpu: unknown %s %q", kind, s)
}

func name(names []string, i int, kind string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}

// TextureType is the dimensionality of a texture. The zero value is Type2D.
type TextureType int

// List of valid TextureType values. TypeNone must be set explicitly.
const (
	Type2D TextureType = iota
	Type1D
	Type3D
	TypeCube
	TypeNone
)

var textureTypeNames = []string{"2D", "1D", "3D", "Cube", "None"}

func (t TextureType) String() string {
	return name(textureTypeNames, int(t), "TextureType")
}

// ParseTextureType returns the TextureType with the given name.
func ParseTextureType(s string) (TextureType, error) {
	i, err := parse(textureTypeNames, s, "texture type")
	return TextureType(i), err
}

// Wrap is the texture coordinate wrapping mode.
type Wrap int

// List of valid Wrap values. WrapNone means that a default should be chosen.
const (
	WrapNone Wrap = iota
	WrapRepeat
	WrapMirroredRepeat
	WrapClampToEdge
	WrapClampToBorder
)

var wrapNames = []string{"None", "Repeat", "MirroredRepeat", "ClampToEdge", "ClampToBorder"}

func (w Wrap) String() string {
	return name(wrapNames, int(w), "Wrap")
}

// ParseWrap returns the Wrap with the given name.
func ParseWrap(s string) (Wrap, error) {
	i, err := parse(wrapNames, s, "wrap")
	return Wrap(i), err
}

// Filter is the texture filtering mode.
type Filter int

// List of valid Filter values. FilterNone means that a default should be
// chosen.
const (
	FilterNone Filter = iota
	FilterNearest
	FilterLinear
)

var filterNames = []string{"None", "Nearest", "Linear"}

func (f Filter) String() string {
	return name(filterNames, int(f), "Filter")
}

// ParseFilter returns the Filter with the given name.
func ParseFilter(s string) (Filter, error) {
	i, err := parse(filterNames, s, "filter")
	return Filter(i), err
}

// API identifies the graphics backend behind a Device.
type API int

// List of valid API values.
const (
	APINone API = iota
	APIOpenGL
	APISoftware
)

var apiNames = []string{"None", "OpenGL", "Software"}

func (a API) String() string {
	return name(apiNames, int(a), "API")
}

// ParseAPI returns the API with the given name.
func ParseAPI(s string) (API, error) {
	i, err := parse(apiNames, s, "api")
	return API(i), err
}

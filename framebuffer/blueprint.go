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
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/gpu"
)

// ErrBlueprint is the pattern of errors returned when a blueprint cannot be
// loaded or saved.
const ErrBlueprint = "blueprint: %v"

// the YAML representation of a Specification. fields that can be omitted are
// pointers so that the preferences can be used as defaults
type blueprint struct {
	Width       int                   `yaml:"width"`
	Height      int                   `yaml:"height"`
	Depth       int                   `yaml:"depth,omitempty"`
	Samples     *int                  `yaml:"samples,omitempty"`
	MipMaps     *bool                 `yaml:"mipmaps,omitempty"`
	Attachments []attachmentBlueprint `yaml:"attachments"`
}

type attachmentBlueprint struct {
	Format string `yaml:"format"`
	Type   string `yaml:"type,omitempty"`
	Wrap   string `yaml:"wrap,omitempty"`
}

// LoadSpecification reads a Specification from YAML. For example:
//
//	width: 800
//	height: 600
//	samples: 4
//	mipmaps: false
//	attachments:
//	  - format: RGBA8
//	  - format: RGBA16F
//	    type: 2D
//	    wrap: Repeat
//	  - format: DEPTH24STENCIL8
//
// The names of formats, types and wrap modes are not case sensitive. If
// samples or mipmaps is missing then the value is taken from the
// preferences. The prefs argument can be nil.
func LoadSpecification(r io.Reader, prefs *environment.Preferences) (Specification, error) {
	var bp blueprint

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bp); err != nil {
		return Specification{}, curated.Errorf(ErrBlueprint, err)
	}

	spec := Specification{
		Width:   bp.Width,
		Height:  bp.Height,
		Depth:   bp.Depth,
		Samples: 1,
	}

	if bp.Samples != nil {
		spec.Samples = *bp.Samples
	} else if prefs != nil {
		spec.Samples = prefs.Samples.Get().(int)
	}

	if bp.MipMaps != nil {
		spec.MipMaps = *bp.MipMaps
	} else if prefs != nil {
		spec.MipMaps = prefs.MipMaps.Get().(bool)
	}

	if spec.Width <= 0 {
		return Specification{}, curated.Errorf(ErrBlueprint, fmt.Sprintf("invalid width (%d)", spec.Width))
	}

	for i, a := range bp.Attachments {
		var as AttachmentSpecification
		var err error

		as.Format, err = gpu.ParseFormat(a.Format)
		if err != nil {
			return Specification{}, curated.Errorf(ErrBlueprint, fmt.Errorf("attachment %d: %w", i, err))
		}

		if a.Type != "" {
			as.Type, err = gpu.ParseTextureType(a.Type)
			if err != nil {
				return Specification{}, curated.Errorf(ErrBlueprint, fmt.Errorf("attachment %d: %w", i, err))
			}
		}

		if a.Wrap != "" {
			as.Wrap, err = gpu.ParseWrap(a.Wrap)
			if err != nil {
				return Specification{}, curated.Errorf(ErrBlueprint, fmt.Errorf("attachment %d: %w", i, err))
			}
		}

		spec.Attachments = append(spec.Attachments, as)
	}

	return spec, nil
}

// SaveSpecification writes the Specification as YAML in the form read by
// LoadSpecification().
func SaveSpecification(w io.Writer, spec Specification) error {
	bp := blueprint{
		Width:   spec.Width,
		Height:  spec.Height,
		Depth:   spec.Depth,
		Samples: &spec.Samples,
		MipMaps: &spec.MipMaps,
	}

	for _, a := range spec.Attachments {
		ab := attachmentBlueprint{
			Format: a.Format.String(),
			Type:   a.Type.String(),
		}
		if a.Wrap != gpu.WrapNone {
			ab.Wrap = a.Wrap.String()
		}
		bp.Attachments = append(bp.Attachments, ab)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(bp); err != nil {
		return curated.Errorf(ErrBlueprint, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(ErrBlueprint, err)
	}
	return nil
}

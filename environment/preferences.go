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

package environment

import (
	"github.com/jetsetilly/rendercore/paths"
	"github.com/jetsetilly/rendercore/prefs"
)

// PreferencesFile is the name of the preferences file in the resource
// directory.
const PreferencesFile = "preferences.yaml"

// Preferences that affect the creation of framebuffers and the export of
// attachments.
type Preferences struct {
	// the number of samples used for new framebuffers when the blueprint
	// doesn't specify one
	Samples prefs.Int

	// whether mip-maps are generated for new framebuffers by default
	MipMaps prefs.Bool

	// the directory exported images are written to when no path is given
	ExportDir prefs.String

	// whether warnings are added to the log
	Warnings prefs.Bool

	dsk *prefs.Disk
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are set to their defaults. Use Load() to read
// values from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.Samples.SetRange(1, 32)
	p.SetDefaults()
	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Samples.Set(1)
	p.MipMaps.Set(false)
	p.ExportDir.Set("")
	p.Warnings.Set(true)
}

// the disk is prepared the first time it is needed. this prevents the
// creation of the resource directory when preferences are never loaded or
// saved.
func (p *Preferences) disk() (*prefs.Disk, error) {
	if p.dsk != nil {
		return p.dsk, nil
	}

	pth, err := paths.ResourcePath("", PreferencesFile)
	if err != nil {
		return nil, err
	}

	return p.diskAt(pth)
}

func (p *Preferences) diskAt(pth string) (*prefs.Disk, error) {
	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := dsk.Add("render.samples", &p.Samples); err != nil {
		return nil, err
	}
	if err := dsk.Add("render.mipmaps", &p.MipMaps); err != nil {
		return nil, err
	}
	if err := dsk.Add("export.dir", &p.ExportDir); err != nil {
		return nil, err
	}
	if err := dsk.Add("log.warnings", &p.Warnings); err != nil {
		return nil, err
	}

	p.dsk = dsk
	return dsk, nil
}

// UseFile directs Load() and Save() to the named file rather than the
// default preferences file.
func (p *Preferences) UseFile(pth string) error {
	p.dsk = nil
	_, err := p.diskAt(pth)
	return err
}

// Load preferences from disk. Values on the top of the prefs command line
// stack take priority.
func (p *Preferences) Load() error {
	dsk, err := p.disk()
	if err != nil {
		return err
	}
	return dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	dsk, err := p.disk()
	if err != nil {
		return err
	}
	return dsk.Save()
}

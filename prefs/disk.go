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

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WarningBoilerPlate is written as a comment at the head of every prefs file.
const WarningBoilerPlate = "# *** do not edit this file by hand ***"

// Disk represents preference values as stored on disk. Values are stored in a
// YAML mapping of key to string.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: %s already added", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the existing file. a missing file is not an error.
func (dsk *Disk) read() (map[string]string, error) {
	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	m := make(map[string]string)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return m, nil
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	m, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		m[k] = p.String()
	}

	var b bytes.Buffer
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n")

	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.WriteFile(dsk.path, b.Bytes(), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Any value on the top of the command line
// stack overrides the value on disk.
func (dsk *Disk) Load() error {
	m, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
			continue
		}
		if v, ok := m[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// Reset all values added to the Disk instance.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

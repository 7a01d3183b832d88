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

package library

import (
	"iter"
	"maps"
	"slices"

	"github.com/jetsetilly/rendercore/environment"
)

// Library maps names to objects of type T.
type Library[T any] struct {
	env *environment.Environment

	// the log tag used for warnings. this will normally be the kind of
	// object being stored
	tag string

	objects map[string]T
}

// NewLibrary is the preferred method of initialisation for the Library type.
// If tag is empty then warnings are logged with the tag "library".
func NewLibrary[T any](env *environment.Environment, tag string) *Library[T] {
	if tag == "" {
		tag = "library"
	}
	return &Library[T]{
		env:     env,
		tag:     tag,
		objects: make(map[string]T),
	}
}

// Add object to the library with the name. Returns false if the name is
// already in use, in which case the existing object is kept.
func (lib *Library[T]) Add(name string, object T) bool {
	if lib.Exists(name) {
		lib.env.Warnf(lib.tag, "%s already exists!", name)
		return false
	}
	lib.objects[name] = object
	return true
}

// Get the object with the name. Returns false if the name is not in use.
func (lib *Library[T]) Get(name string) (T, bool) {
	o, ok := lib.objects[name]
	if !ok {
		lib.env.Warnf(lib.tag, "%s not found!", name)
	}
	return o, ok
}

// Update replaces the object with the name. Returns false if the name is not
// in use, in which case the library is unchanged.
func (lib *Library[T]) Update(name string, object T) bool {
	if !lib.Exists(name) {
		lib.env.Warnf(lib.tag, "%s not found!", name)
		return false
	}
	lib.objects[name] = object
	return true
}

// Exists returns true if the name is in use. It never logs a warning.
func (lib *Library[T]) Exists(name string) bool {
	_, ok := lib.objects[name]
	return ok
}

// Remove the object with the name. Returns the removed object and false if
// the name was not in use.
func (lib *Library[T]) Remove(name string) (T, bool) {
	o, ok := lib.objects[name]
	if !ok {
		lib.env.Warnf(lib.tag, "%s not found!", name)
		return o, false
	}
	delete(lib.objects, name)
	return o, true
}

// Len returns the number of objects in the library.
func (lib *Library[T]) Len() int {
	return len(lib.objects)
}

// Names returns the names in use, in alphabetical order.
func (lib *Library[T]) Names() []string {
	return slices.Sorted(maps.Keys(lib.objects))
}

// All iterates over every entry in the library in alphabetical order of name.
func (lib *Library[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, n := range lib.Names() {
			if !yield(n, lib.objects[n]) {
				return
			}
		}
	}
}

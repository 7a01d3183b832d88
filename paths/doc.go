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

// Package paths contains functions to prepare paths to rendercore resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	d, err := paths.ResourcePath("", "preferences")
//
// The policy of ResourcePath() depends on the build tag. For non-release
// builds the base path is ".rendercore" in the program's current directory.
// For release builds the user's config directory is used, as returned by
// os.UserConfigDir().
//
// In the example above, on a modern Linux system with a release build, the
// path returned will be:
//
//	/home/user/.config/rendercore/preferences
//
// UniqueFilename() is useful when exporting attachment images.
package paths

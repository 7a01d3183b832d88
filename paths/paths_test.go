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

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/rendercore/paths"
	"github.com/jetsetilly/rendercore/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rendercore/foo/bar/baz")

	// directory has been created
	_, err = os.Stat(".rendercore/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rendercore/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rendercore/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rendercore")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("attachment", "gbuffer")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "attachment_gbuffer_"))

	fn = paths.UniqueFilename("attachment", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "attachment_"))
	test.ExpectFailure(t, strings.HasPrefix(fn, "attachment__"))
}

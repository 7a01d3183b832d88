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

package platform_test

import (
	"testing"

	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/platform"
	"github.com/jetsetilly/rendercore/test"
)

func TestParseWindow(t *testing.T) {
	w, err := platform.ParseWindow("SDL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, platform.WindowSDL)

	w, err = platform.ParseWindow(" glfw ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, platform.WindowGLFW)

	_, err = platform.ParseWindow("x11")
	test.ExpectFailure(t, err)
}

func TestSoftware(t *testing.T) {
	plt, err := platform.Open(gpu.APISoftware, platform.WindowSDL, 64, 32)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plt.Device().API(), gpu.APISoftware)
	test.ExpectSuccess(t, plt.Destroy())

	_, err = platform.Open(gpu.APINone, platform.WindowSDL, 64, 32)
	test.ExpectFailure(t, err)
}

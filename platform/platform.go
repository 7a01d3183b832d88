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

package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/gpu/software"
	"github.com/jetsetilly/rendercore/logger"
	"github.com/jetsetilly/rendercore/version"
)

// Window identifies the windowing library used to create an OpenGL context.
type Window string

// List of valid Window values.
const (
	WindowSDL  Window = "sdl"
	WindowGLFW Window = "glfw"
)

// ParseWindow returns the Window with the given name. The comparison is case
// insensitive.
func ParseWindow(s string) (Window, error) {
	switch w := Window(strings.ToLower(strings.TrimSpace(s))); w {
	case WindowSDL, WindowGLFW:
		return w, nil
	}
	return "", fmt.Errorf("platform: unknown window type %q", s)
}

// Platform owns the graphics device and whatever is required to keep it
// alive.
type Platform interface {
	Device() gpu.Device
	Destroy() error
}

// the title of hidden windows. some window managers show hidden windows in
// task lists so it is useful for it to be meaningful
func windowTitle() string {
	return version.Banner()
}

// Open a platform for the graphics API. The window argument is ignored for
// the software API. The width and height are the size of the default
// framebuffer.
func Open(api gpu.API, window Window, width, height int) (Platform, error) {
	switch api {
	case gpu.APISoftware:
		logger.Logf(logger.Allow, "platform", "software device (%dx%d)", width, height)
		return &softwarePlatform{dev: software.NewDevice(width, height)}, nil
	case gpu.APIOpenGL:
		// OpenGL contexts are bound to a thread
		runtime.LockOSThread()

		switch window {
		case WindowSDL:
			return newSDL(width, height)
		case WindowGLFW:
			return newGLFW(width, height)
		}
		return nil, fmt.Errorf("platform: unknown window type %q", window)
	}
	return nil, fmt.Errorf("platform: unsupported api (%s)", api)
}

type softwarePlatform struct {
	dev *software.Device
}

func (plt *softwarePlatform) Device() gpu.Device {
	return plt.dev
}

func (plt *softwarePlatform) Destroy() error {
	return nil
}

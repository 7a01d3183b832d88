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

	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/gpu/opengl"
	"github.com/jetsetilly/rendercore/logger"
	"github.com/veandco/go-sdl2/sdl"
)

type sdlPlatform struct {
	window  *sdl.Window
	context sdl.GLContext
	dev     *opengl.Device
}

func newSDL(width, height int) (*sdlPlatform, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "platform", "sdl version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &sdlPlatform{}

	plt.window, err = sdl.CreateWindow(windowTitle(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.context, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.context)
	if err != nil {
		_ = plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	if err != nil {
		_ = plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	minor, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	if err != nil {
		_ = plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "platform", "using GL version %d.%d core", major, minor)

	plt.dev, err = opengl.NewDevice()
	if err != nil {
		_ = plt.Destroy()
		return nil, err
	}

	return plt, nil
}

func (plt *sdlPlatform) Device() gpu.Device {
	return plt.dev
}

func (plt *sdlPlatform) Destroy() error {
	if plt.context != nil {
		sdl.GLDeleteContext(plt.context)
		plt.context = nil
	}
	if plt.window != nil {
		err := plt.window.Destroy()
		plt.window = nil
		if err != nil {
			sdl.Quit()
			return fmt.Errorf("sdl: %w", err)
		}
	}
	sdl.Quit()
	return nil
}

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

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/gpu/opengl"
	"github.com/jetsetilly/rendercore/logger"
)

type glfwPlatform struct {
	window *glfw.Window
	dev    *opengl.Device
}

func newGLFW(width, height int) (*glfwPlatform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}

	major, minor, rev := glfw.GetVersion()
	logger.Logf(logger.Allow, "platform", "glfw version %d.%d.%d", major, minor, rev)

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, windowTitle(), nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: %w", err)
	}
	win.MakeContextCurrent()

	plt := &glfwPlatform{window: win}

	plt.dev, err = opengl.NewDevice()
	if err != nil {
		_ = plt.Destroy()
		return nil, err
	}

	return plt, nil
}

func (plt *glfwPlatform) Device() gpu.Device {
	return plt.dev
}

func (plt *glfwPlatform) Destroy() error {
	if plt.window != nil {
		plt.window.Destroy()
		plt.window = nil
	}
	glfw.Terminate()
	return nil
}

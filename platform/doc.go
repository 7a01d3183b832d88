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

// Package platform creates the hidden window and OpenGL 3.2 core context
// that the gpu/opengl device requires. Two windowing libraries are supported:
// SDL and GLFW. Neither window is ever shown.
//
// The software device does not need a platform. Open() with the software
// backend returns a Platform that wraps a software.Device and does nothing
// else. This allows the same code to run with or without a graphics card.
//
//	plt, err := platform.Open(gpu.APIOpenGL, platform.WindowSDL, 800, 600)
//	if err != nil {
//		return err
//	}
//	defer plt.Destroy()
//
//	env, err := environment.NewEnvironment("main", plt.Device(), nil)
//
// The context is current on the calling thread only. Open() locks the
// goroutine to its thread and all device calls must be made from that
// goroutine.
package platform

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

package buffer

import (
	"unsafe"

	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/gpu"
)

// asBytes reinterprets a slice of fixed size values as a slice of bytes.
func asBytes[T float32 | uint32](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(v[0])))
}

// VertexBuffer is a device buffer of vertex data.
type VertexBuffer struct {
	env    *environment.Environment
	id     uint32
	size   int
	layout Layout
}

// NewVertexBuffer creates a static vertex buffer from the vertex data.
func NewVertexBuffer(env *environment.Environment, vertices []float32) *VertexBuffer {
	env.RequireAPI("vertex buffer")

	vb := &VertexBuffer{
		env:  env,
		id:   env.Device.GenBuffer(),
		size: len(vertices) * 4,
	}

	env.Device.BindBuffer(gpu.ArrayBuffer, vb.id)
	env.Device.BufferData(gpu.ArrayBuffer, asBytes(vertices), gpu.StaticDraw)

	return vb
}

// NewDynamicVertexBuffer creates a vertex buffer of size bytes. The content
// is set with SetData().
func NewDynamicVertexBuffer(env *environment.Environment, size int) *VertexBuffer {
	env.RequireAPI("vertex buffer")

	vb := &VertexBuffer{
		env:  env,
		id:   env.Device.GenBuffer(),
		size: size,
	}

	env.Device.BindBuffer(gpu.ArrayBuffer, vb.id)
	env.Device.BufferData(gpu.ArrayBuffer, make([]byte, size), gpu.DynamicDraw)

	return vb
}

// ID returns the device identifier of the buffer.
func (vb *VertexBuffer) ID() uint32 {
	return vb.id
}

// Bind the buffer to the array buffer target.
func (vb *VertexBuffer) Bind() {
	vb.env.Device.BindBuffer(gpu.ArrayBuffer, vb.id)
}

// Unbind the array buffer target.
func (vb *VertexBuffer) Unbind() {
	vb.env.Device.BindBuffer(gpu.ArrayBuffer, 0)
}

// SetData replaces the start of the buffer with the vertex data. Data that
// would overrun the buffer is an error and is ignored.
func (vb *VertexBuffer) SetData(vertices []float32) {
	if len(vertices)*4 > vb.size {
		vb.env.Warnf("buffer", "vertex data (%d bytes) larger than buffer (%d bytes)", len(vertices)*4, vb.size)
		return
	}
	vb.Bind()
	vb.env.Device.BufferSubData(gpu.ArrayBuffer, 0, asBytes(vertices))
}

// SetLayout sets the layout of the vertex data.
func (vb *VertexBuffer) SetLayout(l Layout) {
	vb.layout = l
}

// Layout returns the layout of the vertex data.
func (vb *VertexBuffer) Layout() Layout {
	return vb.layout
}

// Size returns the size of the buffer in bytes.
func (vb *VertexBuffer) Size() int {
	return vb.size
}

// Destroy releases the device buffer. It is safe to call Destroy() more than
// once.
func (vb *VertexBuffer) Destroy() {
	if vb.id == 0 {
		return
	}
	vb.env.Device.DeleteBuffer(vb.id)
	vb.id = 0
}

// IndexBuffer is a device buffer of 32-bit vertex indices.
type IndexBuffer struct {
	env   *environment.Environment
	id    uint32
	count int
}

// NewIndexBuffer creates an index buffer from the indices.
func NewIndexBuffer(env *environment.Environment, indices []uint32) *IndexBuffer {
	env.RequireAPI("index buffer")

	ib := &IndexBuffer{
		env:   env,
		id:    env.Device.GenBuffer(),
		count: len(indices),
	}

	env.Device.BindBuffer(gpu.ElementArrayBuffer, ib.id)
	env.Device.BufferData(gpu.ElementArrayBuffer, asBytes(indices), gpu.StaticDraw)

	return ib
}

// ID returns the device identifier of the buffer.
func (ib *IndexBuffer) ID() uint32 {
	return ib.id
}

// Count returns the number of indices in the buffer.
func (ib *IndexBuffer) Count() int {
	return ib.count
}

// Bind the buffer to the element array target.
func (ib *IndexBuffer) Bind() {
	ib.env.Device.BindBuffer(gpu.ElementArrayBuffer, ib.id)
}

// Unbind the element array target.
func (ib *IndexBuffer) Unbind() {
	ib.env.Device.BindBuffer(gpu.ElementArrayBuffer, 0)
}

// Destroy releases the device buffer. It is safe to call Destroy() more than
// once.
func (ib *IndexBuffer) Destroy() {
	if ib.id == 0 {
		return
	}
	ib.env.Device.DeleteBuffer(ib.id)
	ib.id = 0
}

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

package buffer_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/jetsetilly/rendercore/buffer"
	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/gpu/software"
	"github.com/jetsetilly/rendercore/logger"
	"github.com/jetsetilly/rendercore/test"
)

func newEnv(t *testing.T) (*environment.Environment, *software.Device) {
	t.Helper()
	dev := software.NewDevice(16, 16)
	env, err := environment.NewEnvironment("test", dev, nil)
	test.DemandSuccess(t, err)
	env.Log = logger.NewLogger(100)
	return env, dev
}

func TestScratch(t *testing.T) {
	s := buffer.AllocateForFormat(gpu.FormatRGBA8, 2*2*4)
	test.ExpectEquality(t, s.Len(), 16)
	test.ExpectEquality(t, len(s.U8), 16)
	test.ExpectSuccess(t, s.F32 == nil)
	_, ok := s.Pixels().([]uint8)
	test.ExpectSuccess(t, ok)

	// dirty the buffer and release it. the next allocation must be zeroed
	// even if the backing array is reused
	for i := range s.U8 {
		s.U8[i] = 0xff
	}
	s.Release()
	test.ExpectEquality(t, s.Len(), 0)
	s.Release()

	s = buffer.AllocateForFormat(gpu.FormatR8, 8)
	for _, v := range s.U8 {
		test.ExpectEquality(t, v, uint8(0))
	}
	s.Release()

	f := buffer.AllocateForFormat(gpu.FormatRGB32F, 3*5)
	test.ExpectEquality(t, len(f.F32), 15)
	test.ExpectSuccess(t, f.U8 == nil)
	_, ok = f.Pixels().([]float32)
	test.ExpectSuccess(t, ok)
	f.Release()
}

func TestLayout(t *testing.T) {
	l := buffer.NewLayout(
		buffer.Element{Name: "position", Type: gpu.DataVec3},
		buffer.Element{Name: "colour", Type: gpu.DataVec4},
		buffer.Element{Name: "texcoord", Type: gpu.DataVec2},
		buffer.Element{Name: "model", Type: gpu.DataMat4},
	)

	e := l.Elements()
	test.DemandEquality(t, len(e), 4)
	test.ExpectEquality(t, e[0].Offset, 0)
	test.ExpectEquality(t, e[1].Offset, 12)
	test.ExpectEquality(t, e[2].Offset, 28)
	test.ExpectEquality(t, e[3].Offset, 36)
	test.ExpectEquality(t, l.Stride(), 100)
	test.ExpectEquality(t, e[3].Components(), 4)

	// empty layout
	test.ExpectEquality(t, buffer.NewLayout().Stride(), 0)
}

func TestVertexBuffer(t *testing.T) {
	env, dev := newEnv(t)

	vb := buffer.NewVertexBuffer(env, []float32{0.5, 1.0})
	test.ExpectSuccess(t, dev.Error())
	test.ExpectEquality(t, vb.Size(), 8)

	data := dev.BufferContent(vb.ID())
	test.DemandEquality(t, len(data), 8)
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(data[4:])), float32(1.0))

	dyn := buffer.NewDynamicVertexBuffer(env, 16)
	dyn.SetData([]float32{1, 2, 3})
	test.ExpectSuccess(t, dev.Error())
	data = dev.BufferContent(dyn.ID())
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(data[8:])), float32(3.0))

	// too much data is a warning
	dyn.SetData(make([]float32, 5))
	test.ExpectEquality(t, env.Log.Len(), 1)

	test.ExpectEquality(t, dev.BufferCount(), 2)
	vb.Destroy()
	vb.Destroy()
	dyn.Destroy()
	test.ExpectEquality(t, dev.BufferCount(), 0)
	test.ExpectSuccess(t, dev.Error())
}

func TestIndexBuffer(t *testing.T) {
	env, dev := newEnv(t)

	ib := buffer.NewIndexBuffer(env, []uint32{0, 1, 2, 2, 3, 0})
	test.ExpectEquality(t, ib.Count(), 6)
	data := dev.BufferContent(ib.ID())
	test.DemandEquality(t, len(data), 24)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(data[12:]), uint32(2))
	ib.Destroy()
	test.ExpectEquality(t, dev.BufferCount(), 0)
}

func TestNoAPI(t *testing.T) {
	env, err := environment.NewEnvironment("test", nil, nil)
	test.DemandSuccess(t, err)

	r := test.ExpectPanic(t, func() {
		buffer.NewIndexBuffer(env, []uint32{0})
	})
	if err, ok := r.(error); ok {
		test.ExpectSuccess(t, curated.Is(err, environment.ErrNoAPI))
	} else {
		t.Errorf("expected error from panic")
	}
}

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

package software

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/logger"
)

// the most colour attachment slots a framebuffer can have.
const maxColorAttachments = 8

type texture struct {
	// the kind of texture is decided on the first bind
	kind  gpu.TextureTarget
	bound bool

	format  gpu.Format
	width   int
	height  int
	depth   int
	samples int

	// level zero surfaces. one per layer or cube face
	layers []*surface

	// generated mip levels for each layer. mips[layer][0] is level 1
	mips [][]*surface

	sampling gpu.Sampling
	border   [4]float32

	// number of times GenerateMipmap() has been called
	mipGenerations int
}

// numLayers is the number of surfaces required for a texture kind.
func numLayers(kind gpu.TextureTarget, depth int) int {
	switch kind {
	case gpu.Texture3D:
		return max(depth, 1)
	case gpu.TextureCubeMap:
		return 6
	}
	return 1
}

type attachment struct {
	texture uint32
	target  gpu.TextureTarget
	level   int
	layer   int
}

type framebuffer struct {
	attachments map[gpu.AttachmentPoint]attachment
	draw        []gpu.AttachmentPoint
	read        gpu.AttachmentPoint
}

func newFramebuffer() *framebuffer {
	return &framebuffer{
		attachments: make(map[gpu.AttachmentPoint]attachment),
		draw:        []gpu.AttachmentPoint{gpu.ColorAttachment(0)},
		read:        gpu.ColorAttachment(0),
	}
}

type buffer struct {
	data  []byte
	usage gpu.BufferUsage
}

// Device is an in-memory implementation of gpu.Device.
type Device struct {
	nextID uint32

	textures     map[uint32]*texture
	framebuffers map[uint32]*framebuffer
	buffers      map[uint32]*buffer

	activeUnit int
	units      map[int]map[gpu.TextureTarget]uint32

	readFB uint32
	drawFB uint32

	bufferBindings map[gpu.BufferTarget]uint32

	viewport   gpu.Rect
	clearColor [4]float32

	// the number of colour attachment slots reported by MaxColorAttachments()
	maxColor int

	// the default framebuffer
	screen      *framebuffer
	screenColor *surface
	screenDepth *surface

	err   error
	calls int
}

// NewDevice is the preferred method of initialisation for the Device type.
// The width and height are the size of the default framebuffer.
func NewDevice(width, height int) *Device {
	dev := &Device{
		textures:       make(map[uint32]*texture),
		framebuffers:   make(map[uint32]*framebuffer),
		buffers:        make(map[uint32]*buffer),
		units:          make(map[int]map[gpu.TextureTarget]uint32),
		bufferBindings: make(map[gpu.BufferTarget]uint32),
		viewport:       gpu.Rect{X1: width, Y1: height},
		maxColor:       maxColorAttachments,
		screen: &framebuffer{
			draw: []gpu.AttachmentPoint{gpu.BackBuffer},
			read: gpu.BackBuffer,
		},
		screenColor: newSurface(gpu.FormatRGBA8, width, height),
		screenDepth: newSurface(gpu.FormatDepth24Stencil8, width, height),
	}
	return dev
}

func (dev *Device) String() string {
	return fmt.Sprintf("software device: %d textures, %d framebuffers, %d buffers",
		len(dev.textures), len(dev.framebuffers), len(dev.buffers))
}

// error records an invalid operation. only the first error is kept until
// Error() is called.
func (dev *Device) error(format string, args ...any) {
	err := fmt.Errorf("software: "+format, args...)
	logger.Log(logger.Allow, "software", err)
	if dev.err == nil {
		dev.err = err
	}
}

// Error returns the first invalid operation since the last call to Error()
// and clears it.
func (dev *Device) Error() error {
	err := dev.err
	dev.err = nil
	return err
}

// API implements the gpu.Device interface.
func (dev *Device) API() gpu.API {
	return gpu.APISoftware
}

// MaxColorAttachments implements the gpu.Device interface.
func (dev *Device) MaxColorAttachments() int {
	return dev.maxColor
}

// SetMaxColorAttachments limits the number of colour attachment slots, in
// the way that drivers differ in the number they support. The value is
// clamped to between one and eight.
func (dev *Device) SetMaxColorAttachments(n int) {
	dev.maxColor = min(max(n, 1), maxColorAttachments)
}

func (dev *Device) genID() uint32 {
	dev.nextID++
	return dev.nextID
}

// GenTexture implements the gpu.Device interface.
func (dev *Device) GenTexture() uint32 {
	dev.calls++
	id := dev.genID()
	dev.textures[id] = &texture{}
	return id
}

// DeleteTexture implements the gpu.Device interface. The texture is detached
// from every framebuffer and texture unit.
func (dev *Device) DeleteTexture(id uint32) {
	dev.calls++
	if _, ok := dev.textures[id]; !ok {
		dev.error("delete of unknown texture (%d)", id)
		return
	}
	delete(dev.textures, id)

	for _, fb := range dev.framebuffers {
		for ap, a := range fb.attachments {
			if a.texture == id {
				delete(fb.attachments, ap)
			}
		}
	}

	for _, u := range dev.units {
		for t, b := range u {
			if b == id {
				delete(u, t)
			}
		}
	}
}

// bindingTarget returns the target a texture is bound to for a given
// operation target. cube faces are operations on the cube map binding.
func bindingTarget(target gpu.TextureTarget) gpu.TextureTarget {
	if target.IsCubeFace() {
		return gpu.TextureCubeMap
	}
	return target
}

// BindTexture implements the gpu.Device interface.
func (dev *Device) BindTexture(target gpu.TextureTarget, id uint32) {
	dev.calls++
	if target.IsCubeFace() {
		dev.error("cannot bind texture to %s", target)
		return
	}

	u, ok := dev.units[dev.activeUnit]
	if !ok {
		u = make(map[gpu.TextureTarget]uint32)
		dev.units[dev.activeUnit] = u
	}

	if id == 0 {
		delete(u, target)
		return
	}

	tex, ok := dev.textures[id]
	if !ok {
		dev.error("bind of unknown texture (%d)", id)
		return
	}

	if !tex.bound {
		tex.kind = target
		tex.bound = true
	} else if tex.kind != target {
		dev.error("texture %d is a %s texture and cannot be bound to %s", id, tex.kind, target)
		return
	}

	u[target] = id
}

// ActiveTexture implements the gpu.Device interface.
func (dev *Device) ActiveTexture(unit int) {
	dev.calls++
	dev.activeUnit = unit
}

// boundTexture returns the texture bound to the target in the active unit.
func (dev *Device) boundTexture(target gpu.TextureTarget) *texture {
	id := dev.units[dev.activeUnit][bindingTarget(target)]
	if id == 0 {
		dev.error("no texture bound to %s", target)
		return nil
	}
	return dev.textures[id]
}

// TexImage implements the gpu.Device interface.
func (dev *Device) TexImage(target gpu.TextureTarget, img gpu.TexImage) {
	dev.calls++
	tex := dev.boundTexture(target)
	if tex == nil {
		return
	}

	if img.Width <= 0 || img.Height <= 0 {
		dev.error("invalid texture size (%dx%d)", img.Width, img.Height)
		return
	}

	if target.IsCubeFace() && img.Width != img.Height {
		dev.error("cube map faces must be square (%dx%d)", img.Width, img.Height)
		return
	}

	// only level zero has storage. other levels are produced by
	// GenerateMipmap()
	if img.Level != 0 {
		return
	}

	// cube faces are allocated one at a time. changing the format or size of
	// one face does not change the others
	if target.IsCubeFace() {
		if len(tex.layers) != 6 || tex.format != img.Format {
			tex.layers = make([]*surface, 6)
			tex.mips = nil
		}
		face := int(target - gpu.TextureCubePositiveX)
		s := newSurface(img.Format, img.Width, img.Height)
		if !s.upload(img.Pixels, 0) {
			dev.error("pixel data does not match %s texture (%dx%d)", img.Format, img.Width, img.Height)
		}
		tex.layers[face] = s
		tex.format = img.Format
		tex.width = img.Width
		tex.height = img.Height
		tex.depth = 1
		tex.samples = 1
		return
	}

	tex.format = img.Format
	tex.width = img.Width
	tex.height = img.Height
	tex.depth = max(img.Depth, 1)
	tex.samples = max(img.Samples, 1)
	tex.mips = nil

	n := numLayers(tex.kind, tex.depth)
	tex.layers = make([]*surface, n)
	for i := range n {
		tex.layers[i] = newSurface(img.Format, img.Width, img.Height)
		if !tex.layers[i].upload(img.Pixels, i*len(tex.layers[i].data)) {
			dev.error("pixel data does not match %s texture (%dx%dx%d)", img.Format, img.Width, img.Height, tex.depth)
			break
		}
	}
}

// TexSampling implements the gpu.Device interface.
func (dev *Device) TexSampling(target gpu.TextureTarget, s gpu.Sampling) {
	dev.calls++
	if target == gpu.Texture2DMultisample {
		dev.error("multisample textures do not have sampling parameters")
		return
	}
	if tex := dev.boundTexture(target); tex != nil {
		tex.sampling = s
	}
}

// TexBorderColor implements the gpu.Device interface.
func (dev *Device) TexBorderColor(target gpu.TextureTarget, rgba [4]float32) {
	dev.calls++
	if tex := dev.boundTexture(target); tex != nil {
		tex.border = rgba
	}
}

// GenerateMipmap implements the gpu.Device interface.
func (dev *Device) GenerateMipmap(target gpu.TextureTarget) {
	dev.calls++
	tex := dev.boundTexture(target)
	if tex == nil {
		return
	}
	if tex.kind == gpu.Texture2DMultisample {
		dev.error("cannot generate mipmaps for multisample texture")
		return
	}

	tex.mipGenerations++
	tex.mips = make([][]*surface, len(tex.layers))
	for i, s := range tex.layers {
		if s == nil {
			continue
		}
		for s.width > 1 || s.height > 1 {
			s = s.downsample()
			tex.mips[i] = append(tex.mips[i], s)
		}
	}
}

// GenFramebuffer implements the gpu.Device interface.
func (dev *Device) GenFramebuffer() uint32 {
	dev.calls++
	id := dev.genID()
	dev.framebuffers[id] = newFramebuffer()
	return id
}

// DeleteFramebuffer implements the gpu.Device interface. Deleting a bound
// framebuffer binds the default framebuffer in its place.
func (dev *Device) DeleteFramebuffer(id uint32) {
	dev.calls++
	if _, ok := dev.framebuffers[id]; !ok {
		dev.error("delete of unknown framebuffer (%d)", id)
		return
	}
	delete(dev.framebuffers, id)
	if dev.readFB == id {
		dev.readFB = gpu.DefaultFramebuffer
	}
	if dev.drawFB == id {
		dev.drawFB = gpu.DefaultFramebuffer
	}
}

func (dev *Device) framebuffer(id uint32) *framebuffer {
	if id == gpu.DefaultFramebuffer {
		return dev.screen
	}
	return dev.framebuffers[id]
}

// BindFramebuffer implements the gpu.Device interface.
func (dev *Device) BindFramebuffer(target gpu.FramebufferTarget, id uint32) {
	dev.calls++
	if dev.framebuffer(id) == nil {
		dev.error("bind of unknown framebuffer (%d)", id)
		return
	}
	switch target {
	case gpu.FramebufferBoth:
		dev.readFB = id
		dev.drawFB = id
	case gpu.FramebufferRead:
		dev.readFB = id
	case gpu.FramebufferDraw:
		dev.drawFB = id
	}
}

// the framebuffer bound to the target. FramebufferBoth means the draw
// binding.
func (dev *Device) bound(target gpu.FramebufferTarget) (uint32, *framebuffer) {
	id := dev.drawFB
	if target == gpu.FramebufferRead {
		id = dev.readFB
	}
	return id, dev.framebuffer(id)
}

// FramebufferTexture implements the gpu.Device interface. A texture id of
// zero detaches the attachment point.
func (dev *Device) FramebufferTexture(target gpu.FramebufferTarget, ap gpu.AttachmentPoint, texTarget gpu.TextureTarget, id uint32, level int, layer int) {
	dev.calls++
	fbID, fb := dev.bound(target)
	if fbID == gpu.DefaultFramebuffer {
		dev.error("cannot attach texture to the default framebuffer")
		return
	}

	switch {
	case ap.IsColor():
		if int(ap) >= dev.maxColor {
			dev.error("attachment point %s is out of range", ap)
			return
		}
	case ap == gpu.DepthAttachment || ap == gpu.DepthStencilAttachment:
	default:
		dev.error("invalid attachment point %s", ap)
		return
	}

	if id == 0 {
		delete(fb.attachments, ap)
		return
	}

	tex, ok := dev.textures[id]
	if !ok || !tex.bound {
		dev.error("attach of unknown texture (%d)", id)
		return
	}

	if bindingTarget(texTarget) != tex.kind {
		dev.error("attach of %s texture %d as %s", tex.kind, id, texTarget)
		return
	}

	if texTarget.IsCubeFace() {
		layer = int(texTarget - gpu.TextureCubePositiveX)
	} else if tex.kind != gpu.Texture3D {
		layer = 0
	}

	fb.attachments[ap] = attachment{
		texture: id,
		target:  texTarget,
		level:   level,
		layer:   layer,
	}
}

// surface returns the image attached to an attachment point, or nil.
func (dev *Device) surface(fb *framebuffer, ap gpu.AttachmentPoint) *surface {
	if fb == dev.screen {
		switch ap {
		case gpu.BackBuffer:
			return dev.screenColor
		case gpu.DepthAttachment, gpu.DepthStencilAttachment:
			return dev.screenDepth
		}
		return nil
	}

	a, ok := fb.attachments[ap]
	if !ok {
		return nil
	}
	tex := dev.textures[a.texture]
	if tex == nil || a.layer < 0 || a.layer >= len(tex.layers) {
		return nil
	}
	if a.level == 0 {
		return tex.layers[a.layer]
	}
	if a.layer >= len(tex.mips) || a.level > len(tex.mips[a.layer]) {
		return nil
	}
	return tex.mips[a.layer][a.level-1]
}

// depthSurface returns the depth attachment of the framebuffer. the depth
// attachment point is preferred over the depth-stencil attachment point.
func (dev *Device) depthSurface(fb *framebuffer) *surface {
	if s := dev.surface(fb, gpu.DepthAttachment); s != nil {
		return s
	}
	return dev.surface(fb, gpu.DepthStencilAttachment)
}

// CheckFramebufferStatus implements the gpu.Device interface. Attachments
// must share the same size and sample count.
func (dev *Device) CheckFramebufferStatus(target gpu.FramebufferTarget) gpu.FramebufferStatus {
	dev.calls++
	id, fb := dev.bound(target)
	if id == gpu.DefaultFramebuffer {
		return gpu.StatusComplete
	}

	if len(fb.attachments) == 0 {
		return gpu.StatusMissingAttachment
	}

	width, height, samples := -1, -1, -1
	for ap, a := range fb.attachments {
		s := dev.surface(fb, ap)
		if s == nil {
			return gpu.StatusIncompleteAttachment
		}

		tex := dev.textures[a.texture]

		switch {
		case ap.IsColor():
			if s.format.IsDepth() || s.format == gpu.FormatNone {
				return gpu.StatusIncompleteAttachment
			}
		case ap == gpu.DepthAttachment:
			if !s.format.IsDepth() {
				return gpu.StatusIncompleteAttachment
			}
		case ap == gpu.DepthStencilAttachment:
			if !s.format.HasStencil() {
				return gpu.StatusIncompleteAttachment
			}
		}

		if width == -1 {
			width, height, samples = s.width, s.height, tex.samples
			continue
		}
		if s.width != width || s.height != height {
			return gpu.StatusIncompleteDimensions
		}
		if tex.samples != samples {
			return gpu.StatusIncompleteMultisample
		}
	}

	for _, d := range fb.draw {
		if d != gpu.NoBuffer && dev.surface(fb, d) == nil {
			return gpu.StatusIncompleteDrawBuffer
		}
	}

	if fb.read != gpu.NoBuffer && dev.surface(fb, fb.read) == nil {
		return gpu.StatusIncompleteReadBuffer
	}

	return gpu.StatusComplete
}

// DrawBuffers implements the gpu.Device interface.
func (dev *Device) DrawBuffers(buffers []gpu.AttachmentPoint) {
	dev.calls++
	id, fb := dev.bound(gpu.FramebufferDraw)

	for _, b := range buffers {
		if !dev.validBuffer(id, b) {
			dev.error("invalid draw buffer %s", b)
			return
		}
	}

	fb.draw = append(fb.draw[:0], buffers...)
}

// ReadBuffer implements the gpu.Device interface.
func (dev *Device) ReadBuffer(buffer gpu.AttachmentPoint) {
	dev.calls++
	id, fb := dev.bound(gpu.FramebufferRead)
	if !dev.validBuffer(id, buffer) {
		dev.error("invalid read buffer %s", buffer)
		return
	}
	fb.read = buffer
}

func (dev *Device) validBuffer(fbID uint32, b gpu.AttachmentPoint) bool {
	if b == gpu.NoBuffer {
		return true
	}
	if fbID == gpu.DefaultFramebuffer {
		return b == gpu.BackBuffer
	}
	return b.IsColor() && int(b) < dev.maxColor
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(x, y, width, height int) {
	dev.calls++
	dev.viewport = gpu.Rect{X0: x, Y0: y, X1: x + width, Y1: y + height}
}

// ClearColor implements the gpu.Device interface.
func (dev *Device) ClearColor(r, g, b, a float32) {
	dev.calls++
	dev.clearColor = [4]float32{r, g, b, a}
}

// Clear implements the gpu.Device interface. Depth is cleared to 1.0 and
// stencil to zero.
func (dev *Device) Clear(mask gpu.BufferMask) {
	dev.calls++
	_, fb := dev.bound(gpu.FramebufferDraw)

	if mask&gpu.ColorBufferBit == gpu.ColorBufferBit {
		for _, d := range fb.draw {
			if s := dev.surface(fb, d); s != nil {
				s.fill(dev.clearColor)
			}
		}
	}

	if s := dev.depthSurface(fb); s != nil {
		if mask&gpu.DepthBufferBit == gpu.DepthBufferBit {
			s.fill([4]float32{1, 1, 1, 1})
		}
		if mask&gpu.StencilBufferBit == gpu.StencilBufferBit {
			s.fillStencil(0)
		}
	}
}

// ClearBufferi implements the gpu.Device interface. Only signed integer
// formats can be cleared with this function.
func (dev *Device) ClearBufferi(drawBuffer int, value int32) {
	dev.calls++
	s := dev.integerClearSurface(drawBuffer)
	if s == nil {
		return
	}

	if !s.format.IsInteger() || s.format.IsUnsigned() {
		dev.error("signed integer clear of %s attachment", s.format)
		return
	}

	v := float32(value)
	s.fill([4]float32{v, v, v, v})
}

// ClearBufferui implements the gpu.Device interface. Only unsigned integer
// formats can be cleared with this function.
func (dev *Device) ClearBufferui(drawBuffer int, value uint32) {
	dev.calls++
	s := dev.integerClearSurface(drawBuffer)
	if s == nil {
		return
	}

	if !s.format.IsUnsigned() {
		dev.error("unsigned integer clear of %s attachment", s.format)
		return
	}

	v := float32(value)
	s.fill([4]float32{v, v, v, v})
}

func (dev *Device) integerClearSurface(drawBuffer int) *surface {
	_, fb := dev.bound(gpu.FramebufferDraw)
	if drawBuffer < 0 || drawBuffer >= len(fb.draw) {
		dev.error("draw buffer index %d out of range", drawBuffer)
		return nil
	}
	return dev.surface(fb, fb.draw[drawBuffer])
}

// BlitFramebuffer implements the gpu.Device interface. Colour is copied from
// the read buffer to every draw buffer. Depth and stencil are copied between
// the depth attachments. Depth and stencil are always copied with the
// nearest filter.
func (dev *Device) BlitFramebuffer(src gpu.Rect, dst gpu.Rect, mask gpu.BufferMask, filter gpu.Filter) {
	dev.calls++
	_, rfb := dev.bound(gpu.FramebufferRead)
	_, dfb := dev.bound(gpu.FramebufferDraw)

	if src.Width() <= 0 || src.Height() <= 0 || dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}

	if mask&(gpu.DepthBufferBit|gpu.StencilBufferBit) != 0 && filter == gpu.FilterLinear {
		dev.error("depth and stencil blits must use the nearest filter")
		return
	}

	if mask&gpu.ColorBufferBit == gpu.ColorBufferBit {
		from := dev.surface(rfb, rfb.read)
		if from != nil {
			for _, d := range dfb.draw {
				if to := dev.surface(dfb, d); to != nil {
					blit(from, to, src, dst, filter, false)
				}
			}
		}
	}

	if mask&(gpu.DepthBufferBit|gpu.StencilBufferBit) != 0 {
		from := dev.depthSurface(rfb)
		to := dev.depthSurface(dfb)
		if from == nil || to == nil {
			return
		}
		if from.format != to.format {
			dev.error("depth blit between %s and %s", from.format, to.format)
			return
		}
		if mask&gpu.DepthBufferBit == gpu.DepthBufferBit {
			blit(from, to, src, dst, gpu.FilterNearest, false)
		}
		if mask&gpu.StencilBufferBit == gpu.StencilBufferBit {
			blit(from, to, src, dst, gpu.FilterNearest, true)
		}
	}
}

// blit scales the src rectangle of one surface into the dst rectangle of
// another. texels outside of either surface are ignored.
func blit(from, to *surface, src, dst gpu.Rect, filter gpu.Filter, stencil bool) {
	sx := float64(src.Width()) / float64(dst.Width())
	sy := float64(src.Height()) / float64(dst.Height())

	for y := max(dst.Y0, 0); y < min(dst.Y1, to.height); y++ {
		fy := float64(src.Y0) + (float64(y-dst.Y0)+0.5)*sy
		for x := max(dst.X0, 0); x < min(dst.X1, to.width); x++ {
			fx := float64(src.X0) + (float64(x-dst.X0)+0.5)*sx

			if filter == gpu.FilterLinear && !stencil {
				to.write(x, y, from.sampleLinear(fx, fy))
				continue
			}

			nx := int(fx)
			ny := int(fy)
			if nx < 0 || ny < 0 || nx >= from.width || ny >= from.height {
				continue
			}

			if stencil {
				to.stencil[y*to.width+x] = from.stencil[ny*from.width+nx]
			} else {
				to.write(x, y, from.read(nx, ny))
			}
		}
	}
}

// ReadPixels implements the gpu.Device interface. The pixels argument must be
// large enough for width*height texels of the format. Values are converted
// from the format of the read buffer.
func (dev *Device) ReadPixels(x, y, width, height int, format gpu.Format, pixels any) {
	dev.calls++
	_, fb := dev.bound(gpu.FramebufferRead)

	var s *surface
	if format.IsDepth() {
		s = dev.depthSurface(fb)
	} else {
		s = dev.surface(fb, fb.read)
	}
	if s == nil {
		dev.error("no read buffer")
		return
	}

	channels := format.Channels()
	n := width * height * channels

	switch p := pixels.(type) {
	case []uint8:
		if len(p) < n {
			dev.error("pixel buffer too small (%d < %d)", len(p), n)
			return
		}
	case []float32:
		if len(p) < n {
			dev.error("pixel buffer too small (%d < %d)", len(p), n)
			return
		}
	default:
		dev.error("unsupported pixel buffer type %T", pixels)
		return
	}

	i := 0
	for ry := y; ry < y+height; ry++ {
		for rx := x; rx < x+width; rx++ {
			var v [4]float32
			if rx >= 0 && ry >= 0 && rx < s.width && ry < s.height {
				v = s.read(rx, ry)
			}
			for c := range channels {
				switch p := pixels.(type) {
				case []uint8:
					p[i] = toUint8(v[c], format, s.format)
				case []float32:
					p[i] = v[c]
				}
				i++
			}
		}
	}
}

// toUint8 converts a stored value to an 8-bit value. integer values are
// copied when both the stored and the requested formats are integer.
// normalised values are scaled.
func toUint8(v float32, requested gpu.Format, stored gpu.Format) uint8 {
	if !(requested.IsInteger() && stored.IsInteger()) {
		v *= 255
		v += 0.5
	}
	return uint8(min(max(v, 0), 255))
}

// GenBuffer implements the gpu.Device interface.
func (dev *Device) GenBuffer() uint32 {
	dev.calls++
	id := dev.genID()
	dev.buffers[id] = &buffer{}
	return id
}

// DeleteBuffer implements the gpu.Device interface.
func (dev *Device) DeleteBuffer(id uint32) {
	dev.calls++
	if _, ok := dev.buffers[id]; !ok {
		dev.error("delete of unknown buffer (%d)", id)
		return
	}
	delete(dev.buffers, id)
	for t, b := range dev.bufferBindings {
		if b == id {
			delete(dev.bufferBindings, t)
		}
	}
}

// BindBuffer implements the gpu.Device interface.
func (dev *Device) BindBuffer(target gpu.BufferTarget, id uint32) {
	dev.calls++
	if id == 0 {
		delete(dev.bufferBindings, target)
		return
	}
	if _, ok := dev.buffers[id]; !ok {
		dev.error("bind of unknown buffer (%d)", id)
		return
	}
	dev.bufferBindings[target] = id
}

func (dev *Device) boundBuffer(target gpu.BufferTarget) *buffer {
	id, ok := dev.bufferBindings[target]
	if !ok {
		dev.error("no buffer bound")
		return nil
	}
	return dev.buffers[id]
}

// BufferData implements the gpu.Device interface. A nil data slice with a
// non-zero length is not possible so the size is taken from data.
func (dev *Device) BufferData(target gpu.BufferTarget, data []byte, usage gpu.BufferUsage) {
	dev.calls++
	if b := dev.boundBuffer(target); b != nil {
		b.data = append(b.data[:0], data...)
		b.usage = usage
	}
}

// BufferSubData implements the gpu.Device interface.
func (dev *Device) BufferSubData(target gpu.BufferTarget, offset int, data []byte) {
	dev.calls++
	b := dev.boundBuffer(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(b.data) {
		dev.error("buffer sub-data out of range (%d+%d > %d)", offset, len(data), len(b.data))
		return
	}
	copy(b.data[offset:], data)
}

// mipLevels is the length of a full mip chain for a texture of the given
// size, including level zero.
func mipLevels(width, height int) int {
	return bits.Len(uint(max(width, height, 1)))
}

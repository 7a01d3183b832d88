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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/framebuffer"
)

// ErrMultisample is the pattern of the error returned when trying to digest a
// multisample framebuffer. Multisample attachments must be resolved with
// framebuffer.Blit() first.
const ErrMultisample = "digest: cannot digest multisample framebuffer (%d samples)"

// Attachments is an implementation of the Digest interface. It generates a
// SHA-1 value of the colour attachments of a framebuffer every time Add() is
// called.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Attachments struct {
	digest [sha1.Size]byte
	data   []byte
	count  int
}

// NewAttachments is the preferred method of initialisation for the
// Attachments type.
func NewAttachments() *Attachments {
	return &Attachments{}
}

// Hash implements digest.Digest interface
func (dig *Attachments) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Attachments) ResetDigest() {
	clear(dig.digest[:])
	dig.count = 0
}

// Count returns the number of framebuffers added since the last reset.
func (dig *Attachments) Count() int {
	return dig.count
}

// Add the colour attachments of the framebuffer to the digest. Skipped
// attachments contribute nothing.
func (dig *Attachments) Add(fb *framebuffer.FrameBuffer) error {
	if s := fb.Spec().Samples; s > 1 {
		return curated.Errorf(ErrMultisample, s)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the data
	dig.data = append(dig.data[:0], dig.digest[:]...)

	for i := range fb.ColorAttachmentCount() {
		if fb.ColorAttachment(i) == nil {
			continue
		}
		switch d := fb.AttachmentData(i).(type) {
		case []uint8:
			dig.data = append(dig.data, d...)
		case []float32:
			for _, v := range d {
				dig.data = binary.LittleEndian.AppendUint32(dig.data, math.Float32bits(v))
			}
		}
	}

	dig.digest = sha1.Sum(dig.data)
	dig.count++

	return nil
}

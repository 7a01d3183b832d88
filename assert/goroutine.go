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

package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is undoubtedly useful for but it should only ever be used for
// debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// ThreadGuard remembers the goroutine it was created in. Graphics contexts
// are only current on one thread and calling into them from anywhere else is
// a programming error.
type ThreadGuard struct {
	id uint64
}

// NewThreadGuard is the preferred method of initialisation for the
// ThreadGuard type.
func NewThreadGuard() ThreadGuard {
	return ThreadGuard{id: GetGoRoutineID()}
}

// Check panics if the calling goroutine is not the one that created the
// guard. The zero value ThreadGuard never panics.
func (g ThreadGuard) Check(label string) {
	if g.id == 0 {
		return
	}
	if id := GetGoRoutineID(); id != g.id {
		panic(fmt.Sprintf("%s: called from goroutine %d but owned by goroutine %d", label, id, g.id))
	}
}

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

package assert_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/rendercore/assert"
	"github.com/jetsetilly/rendercore/test"
)

func TestGoRoutineID(t *testing.T) {
	a := assert.GetGoRoutineID()
	test.ExpectEquality(t, a, assert.GetGoRoutineID())

	var b uint64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		b = assert.GetGoRoutineID()
		wg.Done()
	}()
	wg.Wait()
	test.ExpectInequality(t, a, b)
}

func TestThreadGuard(t *testing.T) {
	g := assert.NewThreadGuard()
	g.Check("same goroutine")

	var r any
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			r = recover()
		}()
		g.Check("other goroutine")
	}()
	wg.Wait()
	test.ExpectInequality(t, r, nil)

	// zero value never panics
	var z assert.ThreadGuard
	z.Check("zero")
}

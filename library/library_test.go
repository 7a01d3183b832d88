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

package library_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/library"
	"github.com/jetsetilly/rendercore/logger"
	"github.com/jetsetilly/rendercore/test"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment("test", nil, nil)
	test.DemandSuccess(t, err)
	env.Log = logger.NewLogger(10)
	return env
}

func TestAddAndGet(t *testing.T) {
	env := newEnv(t)
	lib := library.NewLibrary[int](env, "numbers")

	test.ExpectSuccess(t, lib.Add("one", 1))
	test.ExpectSuccess(t, lib.Add("two", 2))
	test.ExpectEquality(t, lib.Len(), 2)
	test.ExpectEquality(t, env.Log.Len(), 0)

	v, ok := lib.Get("two")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 2)
	test.ExpectSuccess(t, lib.Exists("one"))
	test.ExpectFailure(t, lib.Exists("three"))

	// exists doesn't warn
	test.ExpectEquality(t, env.Log.Len(), 0)
}

func TestDuplicate(t *testing.T) {
	env := newEnv(t)
	lib := library.NewLibrary[string](env, "")

	test.ExpectSuccess(t, lib.Add("a", "first"))
	test.ExpectFailure(t, lib.Add("a", "second"))

	v, _ := lib.Get("a")
	test.ExpectEquality(t, v, "first")

	var s strings.Builder
	env.Log.Write(&s)
	test.ExpectEquality(t, s.String(), "library: a already exists!\n")
}

func TestMissing(t *testing.T) {
	env := newEnv(t)
	lib := library.NewLibrary[float64](env, "values")

	v, ok := lib.Get("pi")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, v, 0.0)

	test.ExpectFailure(t, lib.Update("pi", 3.14))
	test.ExpectFailure(t, lib.Exists("pi"))

	_, ok = lib.Remove("pi")
	test.ExpectFailure(t, ok)

	var s strings.Builder
	env.Log.Write(&s)
	test.ExpectEquality(t, s.String(), "values: pi not found! (repeat x3)\n")
}

func TestUpdateAndRemove(t *testing.T) {
	env := newEnv(t)
	lib := library.NewLibrary[int](env, "numbers")

	lib.Add("x", 1)
	test.ExpectSuccess(t, lib.Update("x", 10))
	v, _ := lib.Get("x")
	test.ExpectEquality(t, v, 10)

	v, ok := lib.Remove("x")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 10)
	test.ExpectEquality(t, lib.Len(), 0)
	test.ExpectEquality(t, env.Log.Len(), 0)
}

func TestIteration(t *testing.T) {
	env := newEnv(t)
	lib := library.NewLibrary[int](env, "numbers")
	lib.Add("c", 3)
	lib.Add("a", 1)
	lib.Add("b", 2)

	test.ExpectEquality(t, strings.Join(lib.Names(), ","), "a,b,c")

	sum := 0
	var order strings.Builder
	for n, v := range lib.All() {
		order.WriteString(n)
		sum += v
	}
	test.ExpectEquality(t, order.String(), "abc")
	test.ExpectEquality(t, sum, 6)

	// early exit
	count := 0
	for range lib.All() {
		count++
		break
	}
	test.ExpectEquality(t, count, 1)
}

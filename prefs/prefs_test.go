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

package prefs_test

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/rendercore/prefs"
	"github.com/jetsetilly/rendercore/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "rendercore_prefs_test")
}

func firstLine(t *testing.T, fn string) string {
	t.Helper()

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Scan()
	return scanner.Text()
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	// adding the same key twice is an error
	test.ExpectFailure(t, dsk.Add("test", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	test.ExpectEquality(t, firstLine(t, fn), prefs.WarningBoilerPlate)

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, w.Get().(bool), false)
	test.ExpectEquality(t, x.Get().(bool), true)
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	test.ExpectSuccess(t, dsk.Reset())
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, w.Get().(int), 99)

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))

	// range checking
	v.SetRange(1, 4)
	test.ExpectFailure(t, v.Set(5))
	test.ExpectSuccess(t, v.Set(4))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "1")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) == 3 {
			return fmt.Errorf("three is not allowed")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, post, 2)

	// pre-hook failure prevents the value being stored
	test.ExpectFailure(t, v.Set(3))
	test.ExpectEquality(t, v.Get().(int), 2)
	test.ExpectEquality(t, post, 2)
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			if s == "" {
				w, h = 0, 0
				return nil
			}
			_, err := fmt.Sscanf(s, "%dx%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%dx%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))

	// change values
	w = 800
	h = 600

	test.DemandSuccess(t, dsk.Save())

	// reset values
	w = 0
	h = 0

	// reload them from disk
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 600)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// a third disk instance reads values written by both
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var rv prefs.Bool
	var rs prefs.String
	test.ExpectSuccess(t, dsk.Add("test", &rv))
	test.ExpectSuccess(t, dsk.Add("foo", &rs))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, rv.Get().(bool), true)
	test.ExpectEquality(t, rs.String(), "bar")
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("samples", &v))
	test.ExpectSuccess(t, v.Set(1))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("samples::4")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 4)

	// the value has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

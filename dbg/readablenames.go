package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values into random readable names, which
// is easier to follow than a wall of coordinates when looking at output from a
// triangulation. It leaks memory, but generates the names lazily, so it's not
// a problem unless you're actually using it.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Values that are not comparable (or that contain NaN) can't be remembered, so
// they get a fresh name every time.
func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if obj == nil || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return "Ø"
	}
	if !v.Type().Comparable() {
		return newName()
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := newName()
	memo[obj] = r
	return r
}

func newName() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}

package dbg

import (
	"reflect"
	"strconv"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values (usually pointers) into random
// readable names. Names are memoized for the life of the process and never
// released, which is fine for log lines about a bounded set of polygons.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
	used = make(map[string]bool)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := petname.Generate(2, "-")
	for attempt := 1; used[r]; attempt++ {
		r = petname.Generate(2, "-")
		if attempt >= 10 {
			r += "-" + strconv.Itoa(len(used))
		}
	}
	used[r] = true
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}


// Package initchecker guards handler construction: a provider built over a
// nil dependency fails at startup instead of at first use.
package initchecker

import "fmt"

// CheckInit panics when any named dependency is nil.
// Arguments come in name/value pairs.
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: arguments must come in name/value pairs")
	}
	for k := 0; k < len(pairs); k += 2 {
		name, ok := pairs[k].(string)
		if !ok {
			panic(fmt.Sprintf("CheckInit: pair %v carries a non-string name", k/2))
		}
		if pairs[k+1] == nil {
			panic(fmt.Sprintf("%s dependency not initialized", name))
		}
	}
}

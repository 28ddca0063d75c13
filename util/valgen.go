// Some helpers using closures to generate values
package util

// MakeIncreasingGen returns a generator yielding start+1, start+2, ...
// Each generator keeps its own state.
func MakeIncreasingGen(start int) func() int {
	current := start
	return func() int {
		current++
		return current
	}
}

// Package dbg assigns readable names to otherwise anonymous values.
// Point sets and hulls read from stdin have no identity beyond their
// index; a name like "WittyMarmot" is much easier to track across debug
// output than "polygon 3". The memo leaks by design: names are only
// generated on demand, so it costs nothing unless you are debugging.
package dbg

import (
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

var memo = make(map[interface{}]string)

func init() {
	// Names are handed out in order of demand, so two runs will name
	// things differently. Keeping them nondeterministic reminds the
	// reader that a name never survives a run.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for key within this run. The key
// must be a comparable value (an index, a string, a pointer).
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	if r, ok := memo[key]; ok {
		return r
	}
	r := title(petname.Adjective()) + title(petname.Name())
	memo[key] = r
	return r
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

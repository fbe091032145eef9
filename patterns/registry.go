package patterns

import (
	"sort"

	genart "github.com/iamkag/Generative-Algorithms"
)

// builtin maps rule names to constructors. Constructed per call so
// callers never share rule state.
var builtin = map[string]func() genart.Generator{
	"subdivide": func() genart.Generator { return NewSubdivide() },
	"flowfield": func() genart.Generator { return NewFlowField() },
	"lissajous": func() genart.Generator { return NewLissajous() },
	"swarm":     func() genart.Generator { return NewSwarm() },
}

// Lookup returns a fresh instance of the named built-in rule. ok is
// false when no rule carries that name.
func Lookup(name string) (g genart.Generator, ok bool) {
	ctor, ok := builtin[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names returns the built-in rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

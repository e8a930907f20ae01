package ecomod

import (
	"fmt"
	"sort"
)

var registry = map[string]func() Field{
	"rosmac":       func() Field { return NewRosMac() },
	"rosmac2":      func() Field { return NewRosMac2() },
	"tworesource":  func() Field { return NewTwoResource() },
	"tworesource2": func() Field { return NewTwoResource2() },
	"twoconsumer":  func() Field { return NewTwoConsumer() },
}

// Lookup returns the model variant registered under name.
func Lookup(name string) (Field, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return fn(), nil
}

// Names lists the registered variants in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

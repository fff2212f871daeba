package protocol

import (
	"fmt"
	"slices"
)

// Catalog indexes operations by name. It is read-only after construction.
type Catalog struct {
	ops   map[string]Descriptor
	names []string
}

// NewCatalog panics if two operations share a name.
func NewCatalog(ops ...Descriptor) *Catalog {
	c := &Catalog{
		ops:   make(map[string]Descriptor, len(ops)),
		names: make([]string, 0, len(ops)),
	}
	for _, op := range ops {
		name := op.Name()
		if _, dup := c.ops[name]; dup {
			panic(fmt.Sprintf("protocol: duplicate operation %q", name))
		}
		c.ops[name] = op
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)
	return c
}

func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	op, ok := c.ops[name]
	return op, ok
}

// Names returns the operation names in sorted order.
func (c *Catalog) Names() []string { return slices.Clone(c.names) }

func (c *Catalog) Len() int { return len(c.names) }

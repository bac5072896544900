package vkcaps

import (
	"fmt"
	"strings"
)

// String returns a human-readable summary of the set: API version,
// extension catalog size, and the value of every field of every linked
// block, in chain order.
func (s *FeatureSet) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Vulkan %s (%d device extensions)\n", s.version, len(s.extensions))
	for _, kind := range s.chain {
		fmt.Fprintf(&b, "\n%s [%s]:\n", kind, tagFor(kind))
		for _, f := range fieldsOf(kind) {
			d := &fieldCatalog[f]
			writeFlag(&b, "  "+d.name, *d.get(s))
		}
	}

	return b.String()
}

func writeFlag(b *strings.Builder, name string, v bool) {
	status := "no"
	if v {
		status = "yes"
	}
	fmt.Fprintf(b, "%s: %s\n", name, status)
}

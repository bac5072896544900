package vkcaps

import (
	"errors"
	"fmt"
	"slices"
)

// ErrVulkanUnavailable is returned by [OpenDefaultDevice] when no live
// Vulkan implementation is reachable, e.g. when the binary was built
// without the vulkan build tag.
var ErrVulkanUnavailable = errors.New("vulkan support not available")

// ExtensionProperties mirrors the name/version pair a Vulkan driver
// advertises per device extension.
type ExtensionProperties struct {
	Name        string
	SpecVersion uint32
}

// Device is the boundary to a physical device. Implementations must
// tolerate chains whose linked blocks vary in number and kind.
type Device interface {
	// EnumerateExtensionProperties follows the Vulkan two-call idiom:
	// with a nil buffer it stores the advertised extension count into
	// count; with a buffer it fills up to *count entries and updates
	// *count to the number written.
	EnumerateExtensionProperties(count *uint32, props []ExtensionProperties) error

	// Features fills the supported value of every block linked into
	// chain in a single traversal.
	Features(chain *Chain) error
}

// Chain is the traversable view over a set's linked blocks handed to a
// [Device] during [FeatureSet.Populate].
type Chain struct {
	set   *FeatureSet
	kinds []BlockKind
}

// Kinds returns the linked block kinds in traversal order.
func (c *Chain) Kinds() []BlockKind {
	return slices.Clone(c.kinds)
}

// Block returns the storage for kind, or nil when kind is not linked.
func (c *Chain) Block(kind BlockKind) Block {
	if !slices.Contains(c.kinds, kind) {
		return nil
	}
	return c.set.block(kind)
}

// Visit calls fn for every linked block in traversal order.
func (c *Chain) Visit(fn func(Block)) {
	for _, kind := range c.kinds {
		fn(c.set.block(kind))
	}
}

// Populate fills s in place from what dev actually supports: first the
// extension catalog, then, after reassembling the chain so
// extension-gated blocks become queryable, every linked block's feature
// flags through a single Features call.
//
// A nil device or a failing device call is a precondition violation
// (broken platform setup, not a recoverable condition) and panics.
func (s *FeatureSet) Populate(dev Device) {
	if dev == nil {
		panic("vkcaps: Populate called with nil device")
	}

	var count uint32
	if err := dev.EnumerateExtensionProperties(&count, nil); err != nil {
		panic(fmt.Sprintf("vkcaps: enumerate device extensions: %v", err))
	}
	props := make([]ExtensionProperties, count)
	for count > 0 {
		if err := dev.EnumerateExtensionProperties(&count, props); err != nil {
			panic(fmt.Sprintf("vkcaps: enumerate device extensions: %v", err))
		}
		if int(count) <= len(props) {
			props = props[:count]
			break
		}
		// The driver grew the list between the two calls: grow the
		// buffer and retry, never truncate.
		props = make([]ExtensionProperties, count)
	}
	s.extensions = props

	s.assembleChain()
	if err := dev.Features(&Chain{set: s, kinds: s.chain}); err != nil {
		panic(fmt.Sprintf("vkcaps: query device features: %v", err))
	}
}

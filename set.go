package vkcaps

import (
	"fmt"
	"slices"
)

// FeatureSet aggregates one instance of every known capability block, the
// API version it targets, and the immutable configuration it was built
// with. Blocks for kinds not applicable to the active version, extensions,
// or configuration are present but stay outside the chain.
//
// A FeatureSet is exclusively owned by the caller that constructed it and
// provides no internal locking.
type FeatureSet struct {
	version Version
	config  Config

	Core                   CoreFeatures
	SamplerYcbcrConversion SamplerYcbcrConversionFeatures
	ShaderDrawParameters   ShaderDrawParametersFeatures
	Multiview              MultiviewFeatures
	ShaderFloat16Int8      ShaderFloat16Int8Features
	BufferDeviceAddress    BufferDeviceAddressFeatures
	DescriptorIndexing     DescriptorIndexingFeatures
	Storage16Bit           Storage16BitFeatures
	IndexTypeUint8         IndexTypeUint8Features
	Synchronization2       Synchronization2Features
	TimelineSemaphore      TimelineSemaphoreFeatures

	extensions []ExtensionProperties
	chain      []BlockKind
}

// NewFeatureSet constructs a set targeting version with the given
// configuration and assembles its initial chain. Synchronization2 and
// timeline semaphore start enabled; every other flag starts false until
// [FeatureSet.ApplyDefaults] or [FeatureSet.Populate] runs.
func NewFeatureSet(version Version, config Config) *FeatureSet {
	s := &FeatureSet{version: version, config: config}
	s.Synchronization2.Synchronization2 = true
	s.TimelineSemaphore.TimelineSemaphore = true
	s.assembleChain()
	return s
}

// Version returns the API version the set targets.
func (s *FeatureSet) Version() Version { return s.version }

// Config returns the configuration the set was built with.
func (s *FeatureSet) Config() Config { return s.config }

// Chain returns the block kinds currently linked, in chain order.
func (s *FeatureSet) Chain() []BlockKind {
	return slices.Clone(s.chain)
}

// Extensions returns a copy of the set's extension catalog.
func (s *FeatureSet) Extensions() []ExtensionProperties {
	return slices.Clone(s.extensions)
}

// HasExtension reports whether the set's extension catalog contains name.
// The match is exact and case-sensitive. An unpopulated catalog reports
// every extension as absent.
func (s *FeatureSet) HasExtension(name string) bool {
	return hasExtension(s.extensions, name)
}

func hasExtension(exts []ExtensionProperties, name string) bool {
	for _, e := range exts {
		if e.Name == name {
			return true
		}
	}
	return false
}

// assembleChain rebuilds the chain index sequence from scratch. Dropping
// the previous sequence first guarantees no stale membership survives a
// configuration or extension catalog change. Idempotent: unchanged inputs
// produce an identical chain.
func (s *FeatureSet) assembleChain() {
	s.chain = s.chain[:0]
	for i := range blockRegistry {
		d := &blockRegistry[i]
		if d.active(s.version, s.config, s.extensions) {
			s.chain = append(s.chain, d.kind)
		}
	}
}

// block returns the storage for kind inside the set's block arena.
func (s *FeatureSet) block(kind BlockKind) Block {
	switch kind {
	case KindCore:
		return &s.Core
	case KindSamplerYcbcrConversion:
		return &s.SamplerYcbcrConversion
	case KindShaderDrawParameters:
		return &s.ShaderDrawParameters
	case KindMultiview:
		return &s.Multiview
	case KindShaderFloat16Int8:
		return &s.ShaderFloat16Int8
	case KindBufferDeviceAddress:
		return &s.BufferDeviceAddress
	case KindDescriptorIndexing:
		return &s.DescriptorIndexing
	case KindStorage16Bit:
		return &s.Storage16Bit
	case KindIndexTypeUint8:
		return &s.IndexTypeUint8
	case KindSynchronization2:
		return &s.Synchronization2
	case KindTimelineSemaphore:
		return &s.TimelineSemaphore
	default:
		return nil
	}
}

// ApplyDefaults sets the toggle-able fields of a requested set from its
// configuration. Pure data assignment: the chain and the device are never
// touched. Call it once after construction, before negotiation.
func (s *FeatureSet) ApplyDefaults() {
	cfg := s.config

	s.Core.DualSrcBlend = cfg.EnableDualSrcBlend
	s.Core.ShaderInt16 = cfg.EnableShaderInt16
	s.Core.MultiDrawIndirect = true
	s.Core.DrawIndirectFirstInstance = true
	s.Core.DepthBiasClamp = true
	// fillModeNonSolid is poorly supported by Android drivers, so it stays
	// off there regardless of configuration.
	s.Core.FillModeNonSolid = cfg.Platform != PlatformAndroid

	if cfg.EnableDescriptorIndexing {
		di := &s.DescriptorIndexing
		di.ShaderSampledImageArrayNonUniformIndexing = true
		di.DescriptorBindingUniformBufferUpdateAfterBind = true
		di.DescriptorBindingSampledImageUpdateAfterBind = true
		di.DescriptorBindingStorageImageUpdateAfterBind = true
		di.DescriptorBindingStorageBufferUpdateAfterBind = true
		di.DescriptorBindingUpdateUnusedWhilePending = true
		di.DescriptorBindingPartiallyBound = true
		di.RuntimeDescriptorArray = true
	}

	s.Storage16Bit.StorageBuffer16BitAccess = cfg.EnableStorageBuffer16BitAccess
	if cfg.EnableBufferDeviceAddress {
		s.BufferDeviceAddress.BufferDeviceAddress = true
	}
	s.Multiview.Multiview = true
	s.SamplerYcbcrConversion.SamplerYcbcrConversion = true
	s.ShaderDrawParameters.ShaderDrawParameters = cfg.EnableShaderDrawParameters
	s.Synchronization2.Synchronization2 = true
	s.TimelineSemaphore.TimelineSemaphore = true
}

// Request marks each feature as required in s, beyond whatever
// [FeatureSet.ApplyDefaults] already set. An invalid feature is a
// programmer error and panics.
func (s *FeatureSet) Request(features ...Feature) {
	for _, f := range features {
		if !f.valid() {
			panic(fmt.Sprintf("vkcaps: request of unknown feature %d", int(f)))
		}
		*fieldCatalog[f].get(s) = true
	}
}

// Enabled reports the current value of f's field in s. Unknown features
// report false.
func (s *FeatureSet) Enabled(f Feature) bool {
	if !f.valid() {
		return false
	}
	return *fieldCatalog[f].get(s)
}

// CopyFrom copies other's blocks and extension catalog into s and
// reassembles s's chain. When the API versions or the configurations
// differ the copy is a guarded no-op and CopyFrom returns false: both
// sets stay untouched, so a rejected copy can never leave s half-updated.
func (s *FeatureSet) CopyFrom(other *FeatureSet) bool {
	if s == other {
		return true
	}
	if s.version != other.version || s.config != other.config {
		return false
	}

	s.Core = other.Core
	s.SamplerYcbcrConversion = other.SamplerYcbcrConversion
	s.ShaderDrawParameters = other.ShaderDrawParameters
	s.Multiview = other.Multiview
	s.ShaderFloat16Int8 = other.ShaderFloat16Int8
	s.BufferDeviceAddress = other.BufferDeviceAddress
	s.DescriptorIndexing = other.DescriptorIndexing
	s.Storage16Bit = other.Storage16Bit
	s.IndexTypeUint8 = other.IndexTypeUint8
	s.Synchronization2 = other.Synchronization2
	s.TimelineSemaphore = other.TimelineSemaphore

	s.extensions = slices.Clone(other.extensions)
	s.assembleChain()
	return true
}

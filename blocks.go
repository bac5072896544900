package vkcaps

import "fmt"

// Device extension names gating optional blocks. Matching is exact and
// case-sensitive.
const (
	ExtIndexTypeUint8    = "VK_EXT_index_type_uint8"
	ExtSynchronization2  = "VK_KHR_synchronization2"
	ExtTimelineSemaphore = "VK_KHR_timeline_semaphore"
)

// BlockKind identifies one capability descriptor block in the catalog.
type BlockKind int

const (
	KindCore BlockKind = iota
	KindSamplerYcbcrConversion
	KindShaderDrawParameters
	KindMultiview
	KindShaderFloat16Int8
	KindBufferDeviceAddress
	KindDescriptorIndexing
	KindStorage16Bit
	KindIndexTypeUint8
	KindSynchronization2
	KindTimelineSemaphore
)

var blockKindNames = map[BlockKind]string{
	KindCore:                   "core",
	KindSamplerYcbcrConversion: "samplerYcbcrConversion",
	KindShaderDrawParameters:   "shaderDrawParameters",
	KindMultiview:              "multiview",
	KindShaderFloat16Int8:      "shaderFloat16Int8",
	KindBufferDeviceAddress:    "bufferDeviceAddress",
	KindDescriptorIndexing:     "descriptorIndexing",
	KindStorage16Bit:           "storage16Bit",
	KindIndexTypeUint8:         "indexTypeUint8",
	KindSynchronization2:       "synchronization2",
	KindTimelineSemaphore:      "timelineSemaphore",
}

func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// Block is one capability descriptor block reachable through a [Chain].
type Block interface {
	Kind() BlockKind
}

// CoreFeatures groups the Vulkan 1.1 core feature flags this module
// negotiates. It is the root block of every chain.
type CoreFeatures struct {
	DualSrcBlend              bool
	ShaderInt16               bool
	MultiDrawIndirect         bool
	DrawIndirectFirstInstance bool
	DepthBiasClamp            bool
	FillModeNonSolid          bool
}

// SamplerYcbcrConversionFeatures groups the sampler Y'CbCr conversion flag.
type SamplerYcbcrConversionFeatures struct {
	SamplerYcbcrConversion bool
}

// ShaderDrawParametersFeatures groups the shader draw parameters flag.
type ShaderDrawParametersFeatures struct {
	ShaderDrawParameters bool
}

// MultiviewFeatures groups the multiview rendering flags.
type MultiviewFeatures struct {
	Multiview                   bool
	MultiviewGeometryShader     bool
	MultiviewTessellationShader bool
}

// ShaderFloat16Int8Features groups the 16-bit float and 8-bit int shader
// arithmetic flags introduced with API version 1.2.
type ShaderFloat16Int8Features struct {
	ShaderFloat16 bool
	ShaderInt8    bool
}

// BufferDeviceAddressFeatures groups the buffer device address flags.
// The block is only linked when the configuration opts in.
type BufferDeviceAddressFeatures struct {
	BufferDeviceAddress              bool
	BufferDeviceAddressCaptureReplay bool
	BufferDeviceAddressMultiDevice   bool
}

// DescriptorIndexingFeatures groups the descriptor indexing flags.
// The block is only linked when the configuration opts in.
type DescriptorIndexingFeatures struct {
	ShaderInputAttachmentArrayDynamicIndexing          bool
	ShaderUniformTexelBufferArrayDynamicIndexing       bool
	ShaderStorageTexelBufferArrayDynamicIndexing       bool
	ShaderUniformBufferArrayNonUniformIndexing         bool
	ShaderSampledImageArrayNonUniformIndexing          bool
	ShaderStorageBufferArrayNonUniformIndexing         bool
	ShaderStorageImageArrayNonUniformIndexing          bool
	ShaderInputAttachmentArrayNonUniformIndexing       bool
	ShaderUniformTexelBufferArrayNonUniformIndexing    bool
	ShaderStorageTexelBufferArrayNonUniformIndexing    bool
	DescriptorBindingUniformBufferUpdateAfterBind      bool
	DescriptorBindingSampledImageUpdateAfterBind       bool
	DescriptorBindingStorageImageUpdateAfterBind       bool
	DescriptorBindingStorageBufferUpdateAfterBind      bool
	DescriptorBindingUniformTexelBufferUpdateAfterBind bool
	DescriptorBindingStorageTexelBufferUpdateAfterBind bool
	DescriptorBindingUpdateUnusedWhilePending          bool
	DescriptorBindingPartiallyBound                    bool
	DescriptorBindingVariableDescriptorCount           bool
	RuntimeDescriptorArray                             bool
}

// Storage16BitFeatures groups the 16-bit storage access flags.
type Storage16BitFeatures struct {
	StorageBuffer16BitAccess           bool
	UniformAndStorageBuffer16BitAccess bool
	StoragePushConstant16              bool
	StorageInputOutput16               bool
}

// IndexTypeUint8Features groups the 8-bit index buffer flag, gated by
// VK_EXT_index_type_uint8.
type IndexTypeUint8Features struct {
	IndexTypeUint8 bool
}

// Synchronization2Features groups the synchronization2 flag, gated by
// VK_KHR_synchronization2.
type Synchronization2Features struct {
	Synchronization2 bool
}

// TimelineSemaphoreFeatures groups the timeline semaphore flag, gated by
// VK_KHR_timeline_semaphore.
type TimelineSemaphoreFeatures struct {
	TimelineSemaphore bool
}

func (*CoreFeatures) Kind() BlockKind                   { return KindCore }
func (*SamplerYcbcrConversionFeatures) Kind() BlockKind { return KindSamplerYcbcrConversion }
func (*ShaderDrawParametersFeatures) Kind() BlockKind   { return KindShaderDrawParameters }
func (*MultiviewFeatures) Kind() BlockKind              { return KindMultiview }
func (*ShaderFloat16Int8Features) Kind() BlockKind      { return KindShaderFloat16Int8 }
func (*BufferDeviceAddressFeatures) Kind() BlockKind    { return KindBufferDeviceAddress }
func (*DescriptorIndexingFeatures) Kind() BlockKind     { return KindDescriptorIndexing }
func (*Storage16BitFeatures) Kind() BlockKind           { return KindStorage16Bit }
func (*IndexTypeUint8Features) Kind() BlockKind         { return KindIndexTypeUint8 }
func (*Synchronization2Features) Kind() BlockKind       { return KindSynchronization2 }
func (*TimelineSemaphoreFeatures) Kind() BlockKind      { return KindTimelineSemaphore }

// gateKind describes how a block's participation in a chain is decided.
type gateKind int

const (
	gateAlways gateKind = iota
	gateMinVersion
	gateExtension
	gateConfig
)

// blockDescriptor ties a block kind to its gating rule and the
// version-or-extension tag used in diagnostics.
type blockDescriptor struct {
	kind       BlockKind
	gate       gateKind
	minVersion Version           // gateMinVersion only
	extension  string            // gateExtension only
	enabled    func(Config) bool // gateConfig only
	tag        string
}

// blockRegistry lists every block this build knows about, in the fixed
// order chains are assembled. The order is arbitrary but must never change
// between runs: diagnostic report ordering depends on it.
var blockRegistry = []blockDescriptor{
	{kind: KindCore, gate: gateAlways, tag: "1.1"},
	{kind: KindSamplerYcbcrConversion, gate: gateAlways, tag: "1.1 EXT"},
	{kind: KindShaderDrawParameters, gate: gateAlways, tag: "1.1 EXT"},
	{kind: KindMultiview, gate: gateAlways, tag: "1.1 EXT"},
	{kind: KindShaderFloat16Int8, gate: gateMinVersion, minVersion: Version12, tag: "1.2"},
	{
		kind:    KindBufferDeviceAddress,
		gate:    gateConfig,
		enabled: func(c Config) bool { return c.EnableBufferDeviceAddress },
		tag:     "1.1 EXT",
	},
	{
		kind:    KindDescriptorIndexing,
		gate:    gateConfig,
		enabled: func(c Config) bool { return c.EnableDescriptorIndexing },
		tag:     "1.1 EXT",
	},
	{kind: KindStorage16Bit, gate: gateAlways, tag: "1.1 EXT"},
	{kind: KindIndexTypeUint8, gate: gateExtension, extension: ExtIndexTypeUint8, tag: ExtIndexTypeUint8},
	{kind: KindSynchronization2, gate: gateExtension, extension: ExtSynchronization2, tag: ExtSynchronization2},
	{kind: KindTimelineSemaphore, gate: gateExtension, extension: ExtTimelineSemaphore, tag: ExtTimelineSemaphore},
}

// active reports whether the block belongs in the chain of a set with the
// given version, configuration, and extension catalog. An empty catalog
// reports every extension-gated block as inactive.
func (d *blockDescriptor) active(v Version, cfg Config, exts []ExtensionProperties) bool {
	switch d.gate {
	case gateAlways:
		return true
	case gateMinVersion:
		return v >= d.minVersion
	case gateExtension:
		return hasExtension(exts, d.extension)
	case gateConfig:
		return d.enabled(cfg)
	default:
		return false
	}
}

// tagFor returns the diagnostic tag of a block kind.
func tagFor(kind BlockKind) string {
	for i := range blockRegistry {
		if blockRegistry[i].kind == kind {
			return blockRegistry[i].tag
		}
	}
	return ""
}

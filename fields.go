package vkcaps

import "fmt"

// Feature identifies a single negotiable capability field. Its stable name
// is "<block>.<field>", e.g. "core.dualSrcBlend".
type Feature int

// Feature values follow fieldCatalog order: blocks in registry order,
// fields in declaration order.
const (
	FeatureDualSrcBlend Feature = iota
	FeatureShaderInt16
	FeatureMultiDrawIndirect
	FeatureDrawIndirectFirstInstance
	FeatureDepthBiasClamp
	FeatureFillModeNonSolid
	FeatureSamplerYcbcrConversion
	FeatureShaderDrawParameters
	FeatureMultiview
	FeatureMultiviewGeometryShader
	FeatureMultiviewTessellationShader
	FeatureShaderFloat16
	FeatureShaderInt8
	FeatureBufferDeviceAddress
	FeatureBufferDeviceAddressCaptureReplay
	FeatureBufferDeviceAddressMultiDevice
	FeatureShaderInputAttachmentArrayDynamicIndexing
	FeatureShaderUniformTexelBufferArrayDynamicIndexing
	FeatureShaderStorageTexelBufferArrayDynamicIndexing
	FeatureShaderUniformBufferArrayNonUniformIndexing
	FeatureShaderSampledImageArrayNonUniformIndexing
	FeatureShaderStorageBufferArrayNonUniformIndexing
	FeatureShaderStorageImageArrayNonUniformIndexing
	FeatureShaderInputAttachmentArrayNonUniformIndexing
	FeatureShaderUniformTexelBufferArrayNonUniformIndexing
	FeatureShaderStorageTexelBufferArrayNonUniformIndexing
	FeatureDescriptorBindingUniformBufferUpdateAfterBind
	FeatureDescriptorBindingSampledImageUpdateAfterBind
	FeatureDescriptorBindingStorageImageUpdateAfterBind
	FeatureDescriptorBindingStorageBufferUpdateAfterBind
	FeatureDescriptorBindingUniformTexelBufferUpdateAfterBind
	FeatureDescriptorBindingStorageTexelBufferUpdateAfterBind
	FeatureDescriptorBindingUpdateUnusedWhilePending
	FeatureDescriptorBindingPartiallyBound
	FeatureDescriptorBindingVariableDescriptorCount
	FeatureRuntimeDescriptorArray
	FeatureStorageBuffer16BitAccess
	FeatureUniformAndStorageBuffer16BitAccess
	FeatureStoragePushConstant16
	FeatureStorageInputOutput16
	FeatureIndexTypeUint8
	FeatureSynchronization2
	FeatureTimelineSemaphore
)

// fieldDesc locates one negotiable bool field inside a FeatureSet.
type fieldDesc struct {
	kind BlockKind
	name string
	get  func(*FeatureSet) *bool
}

// fieldCatalog lists every negotiable field, indexed by Feature. The
// Negotiator walks it per block to get a deterministic, run-stable check
// order.
var fieldCatalog = [...]fieldDesc{
	FeatureDualSrcBlend:              {KindCore, "dualSrcBlend", func(s *FeatureSet) *bool { return &s.Core.DualSrcBlend }},
	FeatureShaderInt16:               {KindCore, "shaderInt16", func(s *FeatureSet) *bool { return &s.Core.ShaderInt16 }},
	FeatureMultiDrawIndirect:         {KindCore, "multiDrawIndirect", func(s *FeatureSet) *bool { return &s.Core.MultiDrawIndirect }},
	FeatureDrawIndirectFirstInstance: {KindCore, "drawIndirectFirstInstance", func(s *FeatureSet) *bool { return &s.Core.DrawIndirectFirstInstance }},
	FeatureDepthBiasClamp:            {KindCore, "depthBiasClamp", func(s *FeatureSet) *bool { return &s.Core.DepthBiasClamp }},
	FeatureFillModeNonSolid:          {KindCore, "fillModeNonSolid", func(s *FeatureSet) *bool { return &s.Core.FillModeNonSolid }},

	FeatureSamplerYcbcrConversion: {KindSamplerYcbcrConversion, "samplerYcbcrConversion", func(s *FeatureSet) *bool { return &s.SamplerYcbcrConversion.SamplerYcbcrConversion }},
	FeatureShaderDrawParameters:   {KindShaderDrawParameters, "shaderDrawParameters", func(s *FeatureSet) *bool { return &s.ShaderDrawParameters.ShaderDrawParameters }},

	FeatureMultiview:                   {KindMultiview, "multiview", func(s *FeatureSet) *bool { return &s.Multiview.Multiview }},
	FeatureMultiviewGeometryShader:     {KindMultiview, "multiviewGeometryShader", func(s *FeatureSet) *bool { return &s.Multiview.MultiviewGeometryShader }},
	FeatureMultiviewTessellationShader: {KindMultiview, "multiviewTessellationShader", func(s *FeatureSet) *bool { return &s.Multiview.MultiviewTessellationShader }},

	FeatureShaderFloat16: {KindShaderFloat16Int8, "shaderFloat16", func(s *FeatureSet) *bool { return &s.ShaderFloat16Int8.ShaderFloat16 }},
	FeatureShaderInt8:    {KindShaderFloat16Int8, "shaderInt8", func(s *FeatureSet) *bool { return &s.ShaderFloat16Int8.ShaderInt8 }},

	FeatureBufferDeviceAddress:              {KindBufferDeviceAddress, "bufferDeviceAddress", func(s *FeatureSet) *bool { return &s.BufferDeviceAddress.BufferDeviceAddress }},
	FeatureBufferDeviceAddressCaptureReplay: {KindBufferDeviceAddress, "bufferDeviceAddressCaptureReplay", func(s *FeatureSet) *bool { return &s.BufferDeviceAddress.BufferDeviceAddressCaptureReplay }},
	FeatureBufferDeviceAddressMultiDevice:   {KindBufferDeviceAddress, "bufferDeviceAddressMultiDevice", func(s *FeatureSet) *bool { return &s.BufferDeviceAddress.BufferDeviceAddressMultiDevice }},

	FeatureShaderInputAttachmentArrayDynamicIndexing:          {KindDescriptorIndexing, "shaderInputAttachmentArrayDynamicIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderInputAttachmentArrayDynamicIndexing }},
	FeatureShaderUniformTexelBufferArrayDynamicIndexing:       {KindDescriptorIndexing, "shaderUniformTexelBufferArrayDynamicIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderUniformTexelBufferArrayDynamicIndexing }},
	FeatureShaderStorageTexelBufferArrayDynamicIndexing:       {KindDescriptorIndexing, "shaderStorageTexelBufferArrayDynamicIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderStorageTexelBufferArrayDynamicIndexing }},
	FeatureShaderUniformBufferArrayNonUniformIndexing:         {KindDescriptorIndexing, "shaderUniformBufferArrayNonUniformIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderUniformBufferArrayNonUniformIndexing }},
	FeatureShaderSampledImageArrayNonUniformIndexing:          {KindDescriptorIndexing, "shaderSampledImageArrayNonUniformIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderSampledImageArrayNonUniformIndexing }},
	FeatureShaderStorageBufferArrayNonUniformIndexing:         {KindDescriptorIndexing, "shaderStorageBufferArrayNonUniformIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderStorageBufferArrayNonUniformIndexing }},
	FeatureShaderStorageImageArrayNonUniformIndexing:          {KindDescriptorIndexing, "shaderStorageImageArrayNonUniformIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderStorageImageArrayNonUniformIndexing }},
	FeatureShaderInputAttachmentArrayNonUniformIndexing:       {KindDescriptorIndexing, "shaderInputAttachmentArrayNonUniformIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderInputAttachmentArrayNonUniformIndexing }},
	FeatureShaderUniformTexelBufferArrayNonUniformIndexing:    {KindDescriptorIndexing, "shaderUniformTexelBufferArrayNonUniformIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderUniformTexelBufferArrayNonUniformIndexing }},
	FeatureShaderStorageTexelBufferArrayNonUniformIndexing:    {KindDescriptorIndexing, "shaderStorageTexelBufferArrayNonUniformIndexing", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.ShaderStorageTexelBufferArrayNonUniformIndexing }},
	FeatureDescriptorBindingUniformBufferUpdateAfterBind:      {KindDescriptorIndexing, "descriptorBindingUniformBufferUpdateAfterBind", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.DescriptorBindingUniformBufferUpdateAfterBind }},
	FeatureDescriptorBindingSampledImageUpdateAfterBind:       {KindDescriptorIndexing, "descriptorBindingSampledImageUpdateAfterBind", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.DescriptorBindingSampledImageUpdateAfterBind }},
	FeatureDescriptorBindingStorageImageUpdateAfterBind:       {KindDescriptorIndexing, "descriptorBindingStorageImageUpdateAfterBind", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.DescriptorBindingStorageImageUpdateAfterBind }},
	FeatureDescriptorBindingStorageBufferUpdateAfterBind:      {KindDescriptorIndexing, "descriptorBindingStorageBufferUpdateAfterBind", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.DescriptorBindingStorageBufferUpdateAfterBind }},
	FeatureDescriptorBindingUniformTexelBufferUpdateAfterBind: {KindDescriptorIndexing, "descriptorBindingUniformTexelBufferUpdateAfterBind", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.DescriptorBindingUniformTexelBufferUpdateAfterBind }},
	FeatureDescriptorBindingStorageTexelBufferUpdateAfterBind: {KindDescriptorIndexing, "descriptorBindingStorageTexelBufferUpdateAfterBind", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.DescriptorBindingStorageTexelBufferUpdateAfterBind }},
	FeatureDescriptorBindingUpdateUnusedWhilePending:          {KindDescriptorIndexing, "descriptorBindingUpdateUnusedWhilePending", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.DescriptorBindingUpdateUnusedWhilePending }},
	FeatureDescriptorBindingPartiallyBound:                    {KindDescriptorIndexing, "descriptorBindingPartiallyBound", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.DescriptorBindingPartiallyBound }},
	FeatureDescriptorBindingVariableDescriptorCount:           {KindDescriptorIndexing, "descriptorBindingVariableDescriptorCount", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.DescriptorBindingVariableDescriptorCount }},
	FeatureRuntimeDescriptorArray:                             {KindDescriptorIndexing, "runtimeDescriptorArray", func(s *FeatureSet) *bool { return &s.DescriptorIndexing.RuntimeDescriptorArray }},

	FeatureStorageBuffer16BitAccess:           {KindStorage16Bit, "storageBuffer16BitAccess", func(s *FeatureSet) *bool { return &s.Storage16Bit.StorageBuffer16BitAccess }},
	FeatureUniformAndStorageBuffer16BitAccess: {KindStorage16Bit, "uniformAndStorageBuffer16BitAccess", func(s *FeatureSet) *bool { return &s.Storage16Bit.UniformAndStorageBuffer16BitAccess }},
	FeatureStoragePushConstant16:              {KindStorage16Bit, "storagePushConstant16", func(s *FeatureSet) *bool { return &s.Storage16Bit.StoragePushConstant16 }},
	FeatureStorageInputOutput16:               {KindStorage16Bit, "storageInputOutput16", func(s *FeatureSet) *bool { return &s.Storage16Bit.StorageInputOutput16 }},

	FeatureIndexTypeUint8:    {KindIndexTypeUint8, "indexTypeUint8", func(s *FeatureSet) *bool { return &s.IndexTypeUint8.IndexTypeUint8 }},
	FeatureSynchronization2:  {KindSynchronization2, "synchronization2", func(s *FeatureSet) *bool { return &s.Synchronization2.Synchronization2 }},
	FeatureTimelineSemaphore: {KindTimelineSemaphore, "timelineSemaphore", func(s *FeatureSet) *bool { return &s.TimelineSemaphore.TimelineSemaphore }},
}

func (f Feature) valid() bool {
	return f >= 0 && int(f) < len(fieldCatalog)
}

// Kind returns the block the feature's field belongs to.
func (f Feature) Kind() BlockKind {
	if !f.valid() {
		return BlockKind(-1)
	}
	return fieldCatalog[f].kind
}

// Tag returns the version-or-extension tag of the feature's block.
func (f Feature) Tag() string {
	return tagFor(f.Kind())
}

func (f Feature) String() string {
	if !f.valid() {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	d := &fieldCatalog[f]
	return d.kind.String() + "." + d.name
}

// FeatureValues returns every known Feature in catalog order.
func FeatureValues() []Feature {
	values := make([]Feature, len(fieldCatalog))
	for i := range values {
		values[i] = Feature(i)
	}
	return values
}

// FeatureNames returns every stable feature name in catalog order.
func FeatureNames() []string {
	names := make([]string, len(fieldCatalog))
	for i := range names {
		names[i] = Feature(i).String()
	}
	return names
}

var featuresByName = func() map[string]Feature {
	byName := make(map[string]Feature, len(fieldCatalog))
	for i := range fieldCatalog {
		byName[Feature(i).String()] = Feature(i)
	}
	return byName
}()

// FeatureByName resolves a stable feature name ("<block>.<field>").
// Matching is exact and case-sensitive.
func FeatureByName(name string) (Feature, bool) {
	f, ok := featuresByName[name]
	return f, ok
}

// fieldsOf returns the catalog indices of kind's fields, in declaration
// order.
func fieldsOf(kind BlockKind) []Feature {
	var fields []Feature
	for i := range fieldCatalog {
		if fieldCatalog[i].kind == kind {
			fields = append(fields, Feature(i))
		}
	}
	return fields
}

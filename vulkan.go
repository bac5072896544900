//go:build vulkan

package vkcaps

import (
	"fmt"

	vk "github.com/darkace1998/golang-vulkan-api"
)

// Extensions whose presence carries the availability of a feature block
// the binding cannot chain-query directly. A device advertising the
// extension is treated as supporting the block's flags; core 1.1 flags
// are still read from vkGetPhysicalDeviceFeatures.
var blockExtensions = map[BlockKind]string{
	KindSamplerYcbcrConversion: "VK_KHR_sampler_ycbcr_conversion",
	KindShaderDrawParameters:   "VK_KHR_shader_draw_parameters",
	KindMultiview:              "VK_KHR_multiview",
	KindShaderFloat16Int8:      "VK_KHR_shader_float16_int8",
	KindBufferDeviceAddress:    "VK_KHR_buffer_device_address",
	KindDescriptorIndexing:     "VK_EXT_descriptor_indexing",
	KindStorage16Bit:           "VK_KHR_16bit_storage",
	KindIndexTypeUint8:         ExtIndexTypeUint8,
	KindSynchronization2:       ExtSynchronization2,
	KindTimelineSemaphore:      ExtTimelineSemaphore,
}

// PhysicalDevice adapts a live VkPhysicalDevice to the [Device] boundary.
type PhysicalDevice struct {
	handle vk.PhysicalDevice
}

// NewPhysicalDevice wraps an already-selected VkPhysicalDevice.
func NewPhysicalDevice(handle vk.PhysicalDevice) *PhysicalDevice {
	return &PhysicalDevice{handle: handle}
}

// APIVersion returns the device's advertised API version (major.minor).
func (d *PhysicalDevice) APIVersion() Version {
	props := vk.GetPhysicalDeviceProperties(d.handle)
	return MakeVersion(props.APIVersion.Major(), props.APIVersion.Minor())
}

// EnumerateExtensionProperties implements [Device] on top of
// vkEnumerateDeviceExtensionProperties.
func (d *PhysicalDevice) EnumerateExtensionProperties(count *uint32, props []ExtensionProperties) error {
	exts, err := vk.EnumerateDeviceExtensionProperties(d.handle, "")
	if err != nil {
		return fmt.Errorf("enumerate device extensions: %w", err)
	}

	if props == nil {
		*count = uint32(len(exts))
		return nil
	}

	n := uint32(len(exts))
	for i := uint32(0); i < n && int(i) < len(props); i++ {
		props[i] = ExtensionProperties{
			Name:        exts[i].ExtensionName,
			SpecVersion: uint32(exts[i].SpecVersion),
		}
	}
	*count = n
	return nil
}

// Features implements [Device]: the core block is read from
// vkGetPhysicalDeviceFeatures; every other linked block is derived from
// the advertised extension list per blockExtensions.
func (d *PhysicalDevice) Features(chain *Chain) error {
	features := vk.GetPhysicalDeviceFeatures(d.handle)

	exts, err := vk.EnumerateDeviceExtensionProperties(d.handle, "")
	if err != nil {
		return fmt.Errorf("enumerate device extensions: %w", err)
	}
	advertised := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		advertised[ext.ExtensionName] = struct{}{}
	}
	supported := func(kind BlockKind) bool {
		name, ok := blockExtensions[kind]
		if !ok {
			return false
		}
		_, ok = advertised[name]
		return ok
	}

	chain.Visit(func(b Block) {
		switch block := b.(type) {
		case *CoreFeatures:
			block.DualSrcBlend = features.DualSrcBlend
			block.ShaderInt16 = features.ShaderInt16
			block.MultiDrawIndirect = features.MultiDrawIndirect
			block.DrawIndirectFirstInstance = features.DrawIndirectFirstInstance
			block.DepthBiasClamp = features.DepthBiasClamp
			block.FillModeNonSolid = features.FillModeNonSolid
		case *SamplerYcbcrConversionFeatures:
			block.SamplerYcbcrConversion = supported(b.Kind())
		case *ShaderDrawParametersFeatures:
			block.ShaderDrawParameters = supported(b.Kind())
		case *MultiviewFeatures:
			ok := supported(b.Kind())
			block.Multiview = ok
			block.MultiviewGeometryShader = ok
			block.MultiviewTessellationShader = ok
		case *ShaderFloat16Int8Features:
			ok := supported(b.Kind())
			block.ShaderFloat16 = ok
			block.ShaderInt8 = ok
		case *BufferDeviceAddressFeatures:
			ok := supported(b.Kind())
			block.BufferDeviceAddress = ok
			block.BufferDeviceAddressCaptureReplay = ok
			block.BufferDeviceAddressMultiDevice = ok
		case *DescriptorIndexingFeatures:
			ok := supported(b.Kind())
			*block = DescriptorIndexingFeatures{}
			if ok {
				*block = DescriptorIndexingFeatures{
					ShaderInputAttachmentArrayDynamicIndexing:          true,
					ShaderUniformTexelBufferArrayDynamicIndexing:       true,
					ShaderStorageTexelBufferArrayDynamicIndexing:       true,
					ShaderUniformBufferArrayNonUniformIndexing:         true,
					ShaderSampledImageArrayNonUniformIndexing:          true,
					ShaderStorageBufferArrayNonUniformIndexing:         true,
					ShaderStorageImageArrayNonUniformIndexing:          true,
					ShaderInputAttachmentArrayNonUniformIndexing:       true,
					ShaderUniformTexelBufferArrayNonUniformIndexing:    true,
					ShaderStorageTexelBufferArrayNonUniformIndexing:    true,
					DescriptorBindingUniformBufferUpdateAfterBind:      true,
					DescriptorBindingSampledImageUpdateAfterBind:       true,
					DescriptorBindingStorageImageUpdateAfterBind:       true,
					DescriptorBindingStorageBufferUpdateAfterBind:      true,
					DescriptorBindingUniformTexelBufferUpdateAfterBind: true,
					DescriptorBindingStorageTexelBufferUpdateAfterBind: true,
					DescriptorBindingUpdateUnusedWhilePending:          true,
					DescriptorBindingPartiallyBound:                    true,
					DescriptorBindingVariableDescriptorCount:           true,
					RuntimeDescriptorArray:                             true,
				}
			}
		case *Storage16BitFeatures:
			ok := supported(b.Kind())
			block.StorageBuffer16BitAccess = ok
			block.UniformAndStorageBuffer16BitAccess = ok
			block.StoragePushConstant16 = ok
			block.StorageInputOutput16 = ok
		case *IndexTypeUint8Features:
			block.IndexTypeUint8 = supported(b.Kind())
		case *Synchronization2Features:
			block.Synchronization2 = supported(b.Kind())
		case *TimelineSemaphoreFeatures:
			block.TimelineSemaphore = supported(b.Kind())
		}
	})
	return nil
}

// OpenDefaultDevice bootstraps a Vulkan instance, selects a physical
// device (discrete GPU preferred, then integrated, then anything), and
// returns it wrapped as a [Device] together with a release function for
// the instance.
func OpenDefaultDevice() (Device, func(), error) {
	appInfo := &vk.ApplicationInfo{
		ApplicationName:    "vkcaps",
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      vk.MakeVersion(1, 0, 0),
		APIVersion:         vk.Version13,
	}

	instance, err := vk.CreateInstance(&vk.InstanceCreateInfo{ApplicationInfo: appInfo})
	if err != nil {
		return nil, nil, fmt.Errorf("create instance: %w", err)
	}
	release := func() { vk.DestroyInstance(instance) }

	physicalDevices, err := vk.EnumeratePhysicalDevices(instance)
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("enumerate physical devices: %w", err)
	}
	if len(physicalDevices) == 0 {
		release()
		return nil, nil, ErrVulkanUnavailable
	}

	// 1 = discrete GPU, 2 = integrated GPU in VkPhysicalDeviceType.
	for _, wanted := range []vk.PhysicalDeviceType{1, 2} {
		for _, pd := range physicalDevices {
			if vk.GetPhysicalDeviceProperties(pd).DeviceType == wanted {
				return NewPhysicalDevice(pd), release, nil
			}
		}
	}
	return NewPhysicalDevice(physicalDevices[0]), release, nil
}

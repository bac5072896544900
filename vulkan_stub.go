//go:build !vulkan

package vkcaps

// OpenDefaultDevice requires the vulkan build tag; without it there is no
// loader to bootstrap, so it always reports [ErrVulkanUnavailable].
func OpenDefaultDevice() (Device, func(), error) {
	return nil, nil, ErrVulkanUnavailable
}

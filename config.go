package vkcaps

import (
	"fmt"
	"runtime"
)

// Platform identifies the target platform family for feature policy
// decisions.
type Platform int

const (
	PlatformOther Platform = iota
	PlatformLinux
	PlatformWindows
	PlatformAndroid
	// PlatformApple covers macOS and iOS, where Vulkan runs through
	// MoltenVK.
	PlatformApple
)

var platformNames = map[Platform]string{
	PlatformOther:   "other",
	PlatformLinux:   "linux",
	PlatformWindows: "windows",
	PlatformAndroid: "android",
	PlatformApple:   "apple",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// CurrentPlatform maps runtime.GOOS onto a Platform.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	case "android":
		return PlatformAndroid
	case "darwin", "ios":
		return PlatformApple
	default:
		return PlatformOther
	}
}

// FailurePolicy decides what a non-empty missing-feature report means.
type FailurePolicy int

const (
	// PolicyFatal treats missing requested features as an error.
	PolicyFatal FailurePolicy = iota
	// PolicyDiagnostic downgrades missing requested features to a
	// non-fatal diagnostic.
	PolicyDiagnostic
)

func (p FailurePolicy) String() string {
	switch p {
	case PolicyFatal:
		return "fatal"
	case PolicyDiagnostic:
		return "diagnostic"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// PolicyForPlatform returns the failure policy applied by [Check] on the
// given platform.
//
// MoltenVK reports version and extension availability inconsistently for
// features that in practice still work, so Apple platforms get
// [PolicyDiagnostic]. This is a known special case for that driver stack,
// not a policy to extend to other platforms.
func PolicyForPlatform(p Platform) FailurePolicy {
	if p == PlatformApple {
		return PolicyDiagnostic
	}
	return PolicyFatal
}

// Config holds the caller-facing toggles a [FeatureSet] is built with.
// It is immutable after construction: two sets are only copy-compatible
// when their configs are identical.
type Config struct {
	// Platform selects the hard-coded platform policies applied by
	// [FeatureSet.ApplyDefaults] and [Check].
	Platform Platform

	EnableBufferDeviceAddress      bool
	EnableDescriptorIndexing       bool
	EnableShaderInt16              bool
	EnableStorageBuffer16BitAccess bool
	EnableShaderDrawParameters     bool
	EnableDualSrcBlend             bool
}

// DefaultConfig returns a Config for the current platform with every
// optional feature group disabled.
func DefaultConfig() Config {
	return Config{Platform: CurrentPlatform()}
}

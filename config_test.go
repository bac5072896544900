package vkcaps

import "testing"

func TestPlatform_String(t *testing.T) {
	tests := []struct {
		platform Platform
		want     string
	}{
		{PlatformOther, "other"},
		{PlatformLinux, "linux"},
		{PlatformWindows, "windows"},
		{PlatformAndroid, "android"},
		{PlatformApple, "apple"},
		{Platform(99), "Platform(99)"},
	}
	for _, tt := range tests {
		if got := tt.platform.String(); got != tt.want {
			t.Errorf("Platform(%d).String() = %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestFailurePolicy_String(t *testing.T) {
	tests := []struct {
		policy FailurePolicy
		want   string
	}{
		{PolicyFatal, "fatal"},
		{PolicyDiagnostic, "diagnostic"},
		{FailurePolicy(99), "FailurePolicy(99)"},
	}
	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.want {
			t.Errorf("FailurePolicy(%d).String() = %q, want %q", tt.policy, got, tt.want)
		}
	}
}

func TestPolicyForPlatform(t *testing.T) {
	tests := []struct {
		platform Platform
		want     FailurePolicy
	}{
		{PlatformOther, PolicyFatal},
		{PlatformLinux, PolicyFatal},
		{PlatformWindows, PolicyFatal},
		{PlatformAndroid, PolicyFatal},
		{PlatformApple, PolicyDiagnostic},
	}
	for _, tt := range tests {
		if got := PolicyForPlatform(tt.platform); got != tt.want {
			t.Errorf("PolicyForPlatform(%s) = %s, want %s", tt.platform, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Platform != CurrentPlatform() {
		t.Errorf("Platform = %s, want %s", cfg.Platform, CurrentPlatform())
	}
	if cfg.EnableBufferDeviceAddress || cfg.EnableDescriptorIndexing ||
		cfg.EnableShaderInt16 || cfg.EnableStorageBuffer16BitAccess ||
		cfg.EnableShaderDrawParameters || cfg.EnableDualSrcBlend {
		t.Errorf("DefaultConfig() enables optional features: %+v", cfg)
	}
}

package vkcaps

import (
	"errors"
	"strings"
	"testing"
)

func linuxConfig() Config {
	return Config{Platform: PlatformLinux}
}

// availableSet builds a populated set whose device supports exactly the
// given features and advertises the given extensions.
func availableSet(t *testing.T, version Version, cfg Config, extensions []string, features ...Feature) *FeatureSet {
	t.Helper()

	supported := make(map[Feature]bool, len(features))
	for _, f := range features {
		supported[f] = true
	}

	s := NewFeatureSet(version, cfg)
	s.Populate(&fakeDevice{
		extensions: fakeExtensions(extensions...),
		features:   supported,
	})
	return s
}

func TestCheck_AllSatisfied(t *testing.T) {
	requested := NewFeatureSet(Version11, linuxConfig())
	requested.Request(FeatureMultiview, FeatureDepthBiasClamp)

	available := availableSet(t, Version11, linuxConfig(), nil,
		FeatureMultiview, FeatureDepthBiasClamp, FeatureSamplerYcbcrConversion)

	if err := Check(requested, available); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}
	if missing := Missing(requested, available); len(missing) != 0 {
		t.Fatalf("Missing() = %v, want empty", missing)
	}
}

func TestCheck_ReportsMissingFields(t *testing.T) {
	requested := NewFeatureSet(Version11, linuxConfig())
	requested.ApplyDefaults()
	requested.Request(FeatureDualSrcBlend)

	// Supports everything the defaults ask for except dualSrcBlend and
	// fillModeNonSolid.
	available := availableSet(t, Version11, linuxConfig(), nil,
		FeatureMultiDrawIndirect, FeatureDrawIndirectFirstInstance, FeatureDepthBiasClamp,
		FeatureSamplerYcbcrConversion, FeatureMultiview)

	err := Check(requested, available)
	if err == nil {
		t.Fatal("Check() = nil, want *MissingFeaturesError")
	}

	var missingErr *MissingFeaturesError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Check() error type = %T", err)
	}

	var entries []string
	for _, m := range missingErr.Missing {
		entries = append(entries, m.String())
	}
	want := []string{
		"1.1 core.dualSrcBlend",
		"1.1 core.fillModeNonSolid",
	}
	if len(entries) != len(want) {
		t.Fatalf("Missing = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Missing[%d] = %q, want %q", i, entries[i], want[i])
		}
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, "missing device features:") {
		t.Errorf("Error() = %q, want missing device features prefix", msg)
	}
	for _, entry := range want {
		if !strings.Contains(msg, "\n   "+entry) {
			t.Errorf("Error() missing line for %q:\n%s", entry, msg)
		}
	}
}

func TestMissing_ChainOrder(t *testing.T) {
	cfg := linuxConfig()
	requested := NewFeatureSet(Version12, cfg)
	requested.Request(
		FeatureShaderFloat16,
		FeatureStoragePushConstant16,
		FeatureMultiviewGeometryShader,
		FeatureShaderInt16,
	)

	available := availableSet(t, Version12, cfg, nil)

	missing := Missing(requested, available)
	var got []string
	for _, m := range missing {
		got = append(got, m.String())
	}

	// Block order follows the chain, field order the block declaration,
	// regardless of request order.
	want := []string{
		"1.1 core.shaderInt16",
		"1.1 EXT multiview.multiviewGeometryShader",
		"1.2 shaderFloat16Int8.shaderFloat16",
		"1.1 EXT storage16Bit.storagePushConstant16",
	}
	if len(got) != len(want) {
		t.Fatalf("Missing() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Missing()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMissing_UnlinkedBlocksAreNeverCompared(t *testing.T) {
	// The requested set opts into descriptor indexing, the available set's
	// chain matches because the configs match, but the device supports
	// nothing. A requested set without the toggle must not report the
	// block at all.
	cfg := linuxConfig()
	requested := NewFeatureSet(Version11, cfg)
	// Force the field true even though the block is unlinked.
	requested.DescriptorIndexing.RuntimeDescriptorArray = true
	requested.IndexTypeUint8.IndexTypeUint8 = true

	available := availableSet(t, Version11, cfg, nil)

	if missing := Missing(requested, available); len(missing) != 0 {
		t.Fatalf("Missing() = %v, want empty for unlinked blocks", missing)
	}
}

func TestMissing_ExtensionGatedBlock(t *testing.T) {
	cfg := linuxConfig()

	requested := NewFeatureSet(Version11, cfg)
	requested.Populate(&fakeDevice{
		extensions: fakeExtensions(ExtSynchronization2),
		features:   map[Feature]bool{FeatureSynchronization2: true},
	})
	requested.Request(FeatureSynchronization2)

	available := availableSet(t, Version11, cfg, []string{ExtSynchronization2})

	missing := Missing(requested, available)
	if len(missing) != 1 {
		t.Fatalf("Missing() = %v, want one entry", missing)
	}
	if got, want := missing[0].String(), ExtSynchronization2+" synchronization2.synchronization2"; got != want {
		t.Errorf("Missing()[0] = %q, want %q", got, want)
	}
}

func TestMissing_VersionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Missing across versions did not panic")
		}
	}()

	Missing(NewFeatureSet(Version11, linuxConfig()), NewFeatureSet(Version12, linuxConfig()))
}

func TestCheck_AppleDowngradesToDiagnostic(t *testing.T) {
	cfg := Config{Platform: PlatformApple}

	requested := NewFeatureSet(Version11, cfg)
	requested.Request(FeatureDualSrcBlend, FeatureMultiview)

	available := availableSet(t, Version11, cfg, nil)

	if err := Check(requested, available); err != nil {
		t.Fatalf("Check() on apple = %v, want nil", err)
	}
	// The report stays retrievable for logging.
	if missing := Missing(requested, available); len(missing) != 2 {
		t.Fatalf("Missing() on apple = %v, want two entries", missing)
	}
}

func TestCheck_UnrequestedFeaturesAreIgnored(t *testing.T) {
	requested := NewFeatureSet(Version11, linuxConfig())
	requested.Request(FeatureDepthBiasClamp)

	// Device supports only what was asked; everything else it lacks must
	// not surface.
	available := availableSet(t, Version11, linuxConfig(), nil, FeatureDepthBiasClamp)

	if err := Check(requested, available); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}
}

package vkcaps

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestFromManifest_BareSequence(t *testing.T) {
	path := writeManifest(t, `
- core.dualSrcBlend
- multiview.multiview
- timelineSemaphore.timelineSemaphore
`)

	got, err := FromManifest(path)
	if err != nil {
		t.Fatalf("FromManifest() error = %v", err)
	}

	want := []Feature{FeatureDualSrcBlend, FeatureMultiview, FeatureTimelineSemaphore}
	if !slices.Equal(got, want) {
		t.Fatalf("FromManifest() = %v, want %v", got, want)
	}
}

func TestFromManifest_MappingForm(t *testing.T) {
	path := writeManifest(t, `
features:
  - storage16Bit.storageBuffer16BitAccess
  - core.shaderInt16
`)

	got, err := FromManifest(path)
	if err != nil {
		t.Fatalf("FromManifest() error = %v", err)
	}

	want := []Feature{FeatureStorageBuffer16BitAccess, FeatureShaderInt16}
	if !slices.Equal(got, want) {
		t.Fatalf("FromManifest() = %v, want %v", got, want)
	}
}

func TestFromManifest_DeduplicatesKeepingFirstSeenOrder(t *testing.T) {
	path := writeManifest(t, `
- multiview.multiview
- core.dualSrcBlend
- multiview.multiview
- core.dualSrcBlend
`)

	got, err := FromManifest(path)
	if err != nil {
		t.Fatalf("FromManifest() error = %v", err)
	}

	want := []Feature{FeatureMultiview, FeatureDualSrcBlend}
	if !slices.Equal(got, want) {
		t.Fatalf("FromManifest() = %v, want %v", got, want)
	}
}

func TestFromManifest_SkipsBlankEntriesAndTrimsNames(t *testing.T) {
	path := writeManifest(t, `
- "  core.depthBiasClamp  "
- ""
- "   "
`)

	got, err := FromManifest(path)
	if err != nil {
		t.Fatalf("FromManifest() error = %v", err)
	}

	want := []Feature{FeatureDepthBiasClamp}
	if !slices.Equal(got, want) {
		t.Fatalf("FromManifest() = %v, want %v", got, want)
	}
}

func TestFromManifest_UnknownFeatureFailsClosed(t *testing.T) {
	path := writeManifest(t, `
- core.dualSrcBlend
- core.doesNotExist
`)

	_, err := FromManifest(path)
	if err == nil {
		t.Fatal("FromManifest() with unknown name expected error")
	}
	if !strings.Contains(err.Error(), `unknown feature "core.doesNotExist"`) {
		t.Fatalf("error = %q, want unknown feature context", err)
	}
}

func TestFromManifest_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromManifest(tt.path); err == nil {
				t.Fatal("FromManifest() expected error")
			}
		})
	}
}

func TestFromManifest_MalformedYAML(t *testing.T) {
	path := writeManifest(t, "features: [unclosed")

	if _, err := FromManifest(path); err == nil {
		t.Fatal("FromManifest() with malformed YAML expected error")
	}
}

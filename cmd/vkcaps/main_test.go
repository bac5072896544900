package main

import (
	"strings"
	"testing"

	"github.com/leodido/vkcaps"
	"github.com/spf13/cobra"
)

func TestParseFeatureRequests_CaseInsensitive(t *testing.T) {
	got, err := parseFeatureRequests(" CORE.DUALSRCBLEND, multiview.multiview, timelineSemaphore.TimelineSemaphore ")
	if err != nil {
		t.Fatalf("parseFeatureRequests() error = %v", err)
	}

	want := featureRequests{
		vkcaps.FeatureDualSrcBlend,
		vkcaps.FeatureMultiview,
		vkcaps.FeatureTimelineSemaphore,
	}

	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseFeatureRequests_UnknownFeature(t *testing.T) {
	_, err := parseFeatureRequests("ciao")
	if err == nil {
		t.Fatal("parseFeatureRequests(ciao) expected error")
	}

	msg := err.Error()
	if !strings.Contains(msg, `unknown feature: "ciao"`) {
		t.Fatalf("error %q missing unknown feature context", msg)
	}
	if !strings.Contains(msg, "available:") {
		t.Fatalf("error %q missing available features", msg)
	}
}

func TestFeatureRequestsString(t *testing.T) {
	r := featureRequests{
		vkcaps.FeatureMultiview,
		vkcaps.FeatureDualSrcBlend,
	}
	if got, want := r.String(), "multiview.multiview,core.dualSrcBlend"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCheckLongDescription_UsesEnumNames(t *testing.T) {
	desc := checkLongDescription()
	if !strings.Contains(desc, "Available features:") {
		t.Fatalf("checkLongDescription() missing header: %q", desc)
	}

	for _, name := range vkcaps.FeatureNames() {
		if !strings.Contains(desc, name) {
			t.Fatalf("checkLongDescription() missing feature %q", name)
		}
	}
}

func TestCheckOptionsCompleteRequire(t *testing.T) {
	opts := &CheckOptions{}

	t.Run("empty input returns feature candidates", func(t *testing.T) {
		got, directive := opts.CompleteRequire(nil, nil, "")
		if len(got) == 0 {
			t.Fatal("expected non-empty candidates")
		}
		if got[0] != vkcaps.FeatureNames()[0] {
			t.Fatalf("first candidate = %q, want %q", got[0], vkcaps.FeatureNames()[0])
		}
		if directive != cobra.ShellCompDirectiveNoFileComp|cobra.ShellCompDirectiveNoSpace {
			t.Fatalf("directive = %v, want %v", directive, cobra.ShellCompDirectiveNoFileComp|cobra.ShellCompDirectiveNoSpace)
		}
	})

	t.Run("prefix filter matches", func(t *testing.T) {
		got, _ := opts.CompleteRequire(nil, nil, "multiview.m")
		if len(got) == 0 {
			t.Fatal("expected filtered candidates")
		}
		for _, c := range got {
			if !strings.HasPrefix(c, "multiview.m") {
				t.Fatalf("candidate %q does not match expected prefix", c)
			}
		}
	})

	t.Run("comma-separated completion prefixes and avoids duplicates", func(t *testing.T) {
		got, _ := opts.CompleteRequire(nil, nil, "core.dualSrcBlend,multiview.m")
		if len(got) == 0 {
			t.Fatal("expected comma-separated candidates")
		}
		for _, c := range got {
			if !strings.HasPrefix(c, "core.dualSrcBlend,") {
				t.Fatalf("candidate %q missing expected prefix", c)
			}
			if strings.EqualFold(c, "core.dualSrcBlend,core.dualSrcBlend") {
				t.Fatalf("duplicate selected feature suggested: %q", c)
			}
		}
	})
}

func TestDeviceOptionsVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    vkcaps.Version
		wantErr bool
	}{
		{input: "", want: vkcaps.Version11},
		{input: "1.2", want: vkcaps.Version12},
		{input: "1.3", want: vkcaps.Version13},
		{input: "banana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			opts := &DeviceOptions{APIVersion: tt.input}
			got, err := opts.version()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("version(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("version(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("version(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

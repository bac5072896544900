package vkcaps

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromManifest reads a YAML manifest of required feature names and returns
// the corresponding features, directly consumable by
// [FeatureSet.Request].
//
// Contract:
//   - the manifest is either a bare sequence of names or a mapping with a
//     top-level "features" sequence
//   - output is deduplicated and keeps first-seen order (deterministic)
//   - unknown names fail closed with an error
func FromManifest(path string) ([]Feature, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("from manifest: empty path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("from manifest %q: %w", path, err)
	}

	features, err := parseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("from manifest %q: %w", path, err)
	}
	return features, nil
}

type manifest struct {
	Features []string `yaml:"features"`
}

func parseManifest(data []byte) ([]Feature, error) {
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		var m manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
		names = m.Features
	}

	seen := make(map[Feature]struct{}, len(names))
	features := make([]Feature, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := FeatureByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown feature %q", name)
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		features = append(features, f)
	}
	return features, nil
}

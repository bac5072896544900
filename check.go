package vkcaps

import (
	"fmt"
	"strings"
)

// MissingFeature is one requested-but-unavailable capability field.
type MissingFeature struct {
	Kind  BlockKind
	Field string
	// Tag is the version or extension that introduces the field.
	Tag string
}

func (m MissingFeature) String() string {
	return m.Tag + " " + m.Kind.String() + "." + m.Field
}

// MissingFeaturesError reports the requested fields an available set could
// not satisfy, in negotiation order. Its message shape, one
// "<tag> <block>.<field>" entry per line, is relied on by log-based
// diagnostics and stays stable.
type MissingFeaturesError struct {
	Missing []MissingFeature
}

func (e *MissingFeaturesError) Error() string {
	var b strings.Builder
	b.WriteString("missing device features:")
	for _, m := range e.Missing {
		b.WriteString("\n   ")
		b.WriteString(m.String())
	}
	return b.String()
}

// Missing walks requested's chain in chain order and returns every field
// requested sets true that available reports false. A field requested
// never set to true is never checked, regardless of what available
// reports.
//
// Blocks outside requested's chain are never compared: an extension- or
// config-gated family that is not linked cannot fail negotiation no
// matter what either side stores for it.
//
// Both sets must target the same API version; a mismatch is a usage error
// and panics.
func Missing(requested, available *FeatureSet) []MissingFeature {
	if requested.version != available.version {
		panic(fmt.Sprintf("vkcaps: negotiating across API versions (%s vs %s)",
			requested.version, available.version))
	}

	var missing []MissingFeature
	for _, kind := range requested.chain {
		tag := tagFor(kind)
		for _, f := range fieldsOf(kind) {
			d := &fieldCatalog[f]
			if *d.get(requested) && !*d.get(available) {
				missing = append(missing, MissingFeature{Kind: kind, Field: d.name, Tag: tag})
			}
		}
	}
	return missing
}

// Check negotiates requested against available and applies the failure
// policy of requested's platform: under [PolicyFatal] a non-empty report
// is returned as a *[MissingFeaturesError]; under [PolicyDiagnostic] it
// is downgraded to success; call [Missing] for the report when a caller
// wants to log it anyway.
func Check(requested, available *FeatureSet) error {
	missing := Missing(requested, available)
	if len(missing) == 0 {
		return nil
	}
	if PolicyForPlatform(requested.config.Platform) == PolicyDiagnostic {
		return nil
	}
	return &MissingFeaturesError{Missing: missing}
}

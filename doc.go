// Package vkcaps provides Vulkan device capability negotiation.
//
// It models the feature surface of a Vulkan 1.1+ physical device as a set
// of feature blocks linked into a query chain, samples a device's actual
// capabilities into that shape, and checks an application's requested
// feature set against what the device reported, producing field-level
// diagnostics for anything missing.
//
// # API Model
//
// vkcaps exposes two API families:
//   - [Check]/[Missing] for pass/fail negotiation between a requested and
//     an available [FeatureSet]
//   - [FeatureSet.Populate] for diagnostics data collection from a [Device]
//
// Keep these families separate:
//   - model requestable boolean flags as [Feature]
//   - keep device-descriptive signals (extension lists, versions) probe-only
//
// # Quick Check
//
// Build a requested set, sample the device, and negotiate:
//
//	requested := vkcaps.NewFeatureSet(vkcaps.Version11, cfg)
//	requested.ApplyDefaults()
//	requested.Request(vkcaps.FeatureSamplerYcbcrConversion)
//
//	available := vkcaps.NewFeatureSet(vkcaps.Version11, cfg)
//	available.Populate(device)
//
//	if err := vkcaps.Check(requested, available); err != nil {
//	    var missing *vkcaps.MissingFeaturesError
//	    if errors.As(err, &missing) {
//	        log.Fatal(missing)
//	    }
//	    log.Fatal(err)
//	}
//
// Both sets must target the same API version; negotiating across versions
// is a programming error and panics.
//
// # Types
//
// [FeatureSet] aggregates every feature block for one API version and
// configuration, plus the assembled query chain and the device's extension
// list once populated.
//
// [Feature] names a single requestable boolean flag; [FeatureByName] and
// [FromManifest] map external names onto it, failing closed on unknowns.
//
// [MissingFeaturesError] reports each missing flag with its promotion tag,
// block kind, and field name.
package vkcaps

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/leodido/structcli"
	"github.com/leodido/vkcaps"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
)

// Build metadata injected via ldflags (see .goreleaser.yaml).
// When built without ldflags (e.g., plain `go build`), these remain
// at their zero values and the version command omits them gracefully.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	root := &cobra.Command{
		Use:   "vkcaps",
		Short: "Vulkan device capability negotiation",
		Long: `vkcaps samples the feature surface of a Vulkan physical device.

It enumerates device extensions, queries the chained feature blocks the
target API version and configuration select, and validates application
feature requests against what the device reports. Use it for driver
diagnostics, CI/CD gating, or install-time capability checks.`,
		SilenceUsage: true,
	}

	root.AddCommand(probeCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// DeviceOptions defines the flags shared by subcommands that talk to a device.
type DeviceOptions struct {
	APIVersion           string `flag:"api-version" flagdescr:"Target Vulkan API version (e.g. 1.1, 1.2, 1.3)"`
	BufferDeviceAddress  bool   `flag:"buffer-device-address" flagdescr:"Enable the buffer device address block"`
	DescriptorIndexing   bool   `flag:"descriptor-indexing" flagdescr:"Enable the descriptor indexing block"`
	ShaderInt16          bool   `flag:"shader-int16" flagdescr:"Request 16-bit integer shader operations"`
	Storage16BitAccess   bool   `flag:"storage-16bit" flagdescr:"Request 16-bit storage buffer access"`
	ShaderDrawParameters bool   `flag:"shader-draw-parameters" flagdescr:"Request shader draw parameters"`
	DualSrcBlend         bool   `flag:"dual-src-blend" flagdescr:"Request dual-source blending"`
}

func (o *DeviceOptions) config() vkcaps.Config {
	cfg := vkcaps.DefaultConfig()
	cfg.EnableBufferDeviceAddress = o.BufferDeviceAddress
	cfg.EnableDescriptorIndexing = o.DescriptorIndexing
	cfg.EnableShaderInt16 = o.ShaderInt16
	cfg.EnableStorageBuffer16BitAccess = o.Storage16BitAccess
	cfg.EnableShaderDrawParameters = o.ShaderDrawParameters
	cfg.EnableDualSrcBlend = o.DualSrcBlend
	return cfg
}

func (o *DeviceOptions) version() (vkcaps.Version, error) {
	if o.APIVersion == "" {
		return vkcaps.Version11, nil
	}

	return vkcaps.ParseVersion(o.APIVersion)
}

// ProbeOptions defines flags for the probe subcommand.
type ProbeOptions struct {
	DeviceOptions
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *ProbeOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func probeCmd() *cobra.Command {
	opts := &ProbeOptions{}

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Sample the device's feature surface and display it",
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			available, err := sampleDevice(&opts.DeviceOptions)
			if err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(featureSummary(available))
			}

			fmt.Print(available)
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

// CheckOptions defines flags for the check subcommand.
type CheckOptions struct {
	DeviceOptions
	Require  featureRequests `flag:"require" flagshort:"r" flagdescr:"Required features (see available features above)" flagcustom:"true"`
	Manifest string          `flag:"manifest" flagshort:"m" flagdescr:"YAML manifest listing required features"`
	JSON     bool            `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *CheckOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *CheckOptions) DefineRequire(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*featureRequests)
	*fieldPtr = nil
	return fieldPtr, descr
}

func (o *CheckOptions) CompleteRequire(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	directive := cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace

	prefix := ""
	current := toComplete
	if idx := strings.LastIndex(toComplete, ","); idx >= 0 {
		prefix = toComplete[:idx+1]
		current = toComplete[idx+1:]
	}

	selected := make(map[string]bool)
	for _, name := range strings.Split(prefix, ",") {
		if name = strings.TrimSpace(name); name != "" {
			selected[strings.ToLower(name)] = true
		}
	}

	candidates := make([]string, 0, len(vkcaps.FeatureNames()))
	for _, name := range vkcaps.FeatureNames() {
		if selected[strings.ToLower(name)] {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(name), strings.ToLower(current)) {
			continue
		}
		candidates = append(candidates, prefix+name)
	}

	return candidates, directive
}

func (o *CheckOptions) DecodeRequire(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}

	return parseFeatureRequests(s)
}

func checkCmd() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check feature requests against the device",
		Long:  checkLongDescription(),
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			features := []vkcaps.Feature(opts.Require)
			if opts.Manifest != "" {
				fromManifest, err := vkcaps.FromManifest(opts.Manifest)
				if err != nil {
					return err
				}
				features = append(features, fromManifest...)
			}
			if len(features) == 0 {
				return fmt.Errorf("no features specified")
			}

			apiVersion, err := opts.version()
			if err != nil {
				return err
			}
			cfg := opts.config()

			requested := vkcaps.NewFeatureSet(apiVersion, cfg)
			requested.ApplyDefaults()
			requested.Request(features...)

			available, err := sampleDevice(&opts.DeviceOptions)
			if err != nil {
				return err
			}

			report := vkcaps.Missing(requested, available)
			fatal := vkcaps.PolicyForPlatform(cfg.Platform) == vkcaps.PolicyFatal

			if opts.JSON {
				missing := make([]string, 0, len(report))
				for _, m := range report {
					missing = append(missing, m.String())
				}
				if err := printJSON(map[string]any{
					"ok":      len(report) == 0 || !fatal,
					"missing": missing,
				}); err != nil {
					return err
				}
				if len(report) > 0 && fatal {
					os.Exit(1)
				}
				return nil
			}

			if len(report) == 0 {
				fmt.Println("OK: all requested features available")
				return nil
			}

			label := "WARN"
			if fatal {
				label = "FAIL"
			}
			for _, m := range report {
				fmt.Fprintf(os.Stderr, "%s: missing %s\n", label, m)
			}
			if fatal {
				os.Exit(1)
			}
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tool and device API version",
		RunE: func(c *cobra.Command, args []string) error {
			if version != "" {
				fmt.Printf("vkcaps %s", version)
				if commit != "" {
					fmt.Printf(" (%s)", commit)
				}
				if date != "" {
					fmt.Printf(" built %s", date)
				}
				fmt.Println()
			} else {
				fmt.Println("vkcaps (dev)")
			}

			dev, release, err := vkcaps.OpenDefaultDevice()
			if err != nil {
				if errors.Is(err, vkcaps.ErrVulkanUnavailable) {
					fmt.Println("Vulkan: unavailable")
					return nil
				}
				return err
			}
			defer release()

			if versioned, ok := dev.(interface{ APIVersion() vkcaps.Version }); ok {
				fmt.Printf("Vulkan: %s\n", versioned.APIVersion())
			} else {
				fmt.Println("Vulkan: available")
			}
			return nil
		},
	}
}

func sampleDevice(opts *DeviceOptions) (*vkcaps.FeatureSet, error) {
	apiVersion, err := opts.version()
	if err != nil {
		return nil, err
	}

	dev, release, err := vkcaps.OpenDefaultDevice()
	if err != nil {
		return nil, err
	}
	defer release()

	available := vkcaps.NewFeatureSet(apiVersion, opts.config())
	available.Populate(dev)
	return available, nil
}

func featureSummary(s *vkcaps.FeatureSet) map[string]any {
	features := make(map[string]bool, len(vkcaps.FeatureValues()))
	for _, f := range vkcaps.FeatureValues() {
		if f.Kind() != vkcaps.KindCore && !chainContains(s, f.Kind()) {
			continue
		}
		features[f.String()] = s.Enabled(f)
	}

	extensions := make([]string, 0, len(s.Extensions()))
	for _, ext := range s.Extensions() {
		extensions = append(extensions, ext.Name)
	}

	return map[string]any{
		"version":    s.Version().String(),
		"features":   features,
		"extensions": extensions,
	}
}

func chainContains(s *vkcaps.FeatureSet, kind vkcaps.BlockKind) bool {
	for _, k := range s.Chain() {
		if k == kind {
			return true
		}
	}
	return false
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func availableFeatures() string {
	return strings.Join(vkcaps.FeatureNames(), ", ")
}

func checkLongDescription() string {
	return fmt.Sprintf(`Check that the device supports all requested features.
Exits with code 0 if every request is satisfied, 1 if any are missing
and the platform treats missing features as fatal.

Available features:
%s`, formatWrappedList(vkcaps.FeatureNames(), "  ", 80))
}

func formatWrappedList(items []string, indent string, maxWidth int) string {
	if len(items) == 0 {
		return indent + "(none)"
	}

	lines := make([]string, 0, len(items))
	line := indent
	for i, item := range items {
		token := item
		if i < len(items)-1 {
			token += ", "
		}

		if len(line)+len(token) > maxWidth && line != indent {
			lines = append(lines, strings.TrimRight(line, " "))
			line = indent + token
			continue
		}

		line += token
	}

	lines = append(lines, strings.TrimRight(line, " "))
	return strings.Join(lines, "\n")
}

type featureRequests []vkcaps.Feature

var featureIdentifierMap = func() map[vkcaps.Feature][]string {
	ids := make(map[vkcaps.Feature][]string, len(vkcaps.FeatureValues()))
	for _, f := range vkcaps.FeatureValues() {
		ids[f] = []string{f.String()}
	}
	return ids
}()

func (r *featureRequests) String() string {
	names := make([]string, 0, len(*r))
	for _, f := range *r {
		names = append(names, f.String())
	}

	return strings.Join(names, ",")
}

func (r *featureRequests) Set(input string) error {
	features, err := parseFeatureRequests(input)
	if err != nil {
		return err
	}

	*r = append(*r, features...)
	return nil
}

func (r *featureRequests) Type() string {
	return "feature"
}

func parseFeatureRequests(input string) (featureRequests, error) {
	if strings.TrimSpace(input) == "" {
		return featureRequests{}, nil
	}

	parts := strings.Split(input, ",")
	features := make(featureRequests, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		var feature vkcaps.Feature
		enumValue := enumflag.New(&feature, "vkcaps.Feature", featureIdentifierMap, enumflag.EnumCaseInsensitive)
		if err := enumValue.Set(name); err != nil {
			return nil, fmt.Errorf("unknown feature: %q (available: %s)", name, availableFeatures())
		}

		features = append(features, feature)
	}

	return features, nil
}

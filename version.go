package vkcaps

import (
	"fmt"
	"strconv"
	"strings"
)

// Version encodes a Vulkan API version (major.minor) the way
// VK_MAKE_API_VERSION does, so versions compare as plain integers.
type Version uint32

// Well-known API versions.
const (
	Version10 Version = 1 << 22
	Version11 Version = 1<<22 | 1<<12
	Version12 Version = 1<<22 | 2<<12
	Version13 Version = 1<<22 | 3<<12
)

// MakeVersion builds a Version from its major and minor components.
func MakeVersion(major, minor uint32) Version {
	return Version(major<<22 | minor<<12)
}

// Major returns the major component of the version.
func (v Version) Major() uint32 {
	return uint32(v) >> 22
}

// Minor returns the minor component of the version.
func (v Version) Minor() uint32 {
	return (uint32(v) >> 12) & 0x3FF
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// ParseVersion parses a "major.minor" string (e.g. "1.2") into a Version.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return 0, fmt.Errorf("parse version %q: want major.minor", s)
	}
	maj, err := strconv.ParseUint(major, 10, 10)
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", s, err)
	}
	min, err := strconv.ParseUint(minor, 10, 10)
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", s, err)
	}
	return MakeVersion(uint32(maj), uint32(min)), nil
}

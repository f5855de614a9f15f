package grid

import (
	"fmt"
	"strings"
)

// Profile selects the emission rules.
type Profile int

const (
	// Canonical restates carried values when a hidden column becomes visible
	// again, applies overrides made at hidden breakpoints, and orders tokens
	// breakpoint by breakpoint.
	Canonical Profile = iota

	// Legacy reproduces markup saved by earlier plugin releases: no
	// restatement on reveal, overrides at hidden breakpoints are dropped, and
	// blocks without visibility list tokens property by property.
	Legacy
)

func (p Profile) String() string {
	switch p {
	case Canonical:
		return "canonical"
	case Legacy:
		return "legacy"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

// ParseProfile parses a profile name; the empty string is Canonical.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "canonical":
		return Canonical, nil
	case "legacy":
		return Legacy, nil
	}
	return Canonical, fmt.Errorf("unknown profile %q (must be 'canonical' or 'legacy')", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Profile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Profile) UnmarshalText(b []byte) error {
	v, err := ParseProfile(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

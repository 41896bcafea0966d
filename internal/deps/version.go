package deps

import (
	"strconv"
	"strings"
)

// Version is a numeric version truncated to at most three components. The
// zero value is the invalid sentinel, which sorts below every valid version.
type Version struct {
	parts []int
	valid bool
}

// ParseVersion parses the first three dot-separated components of s. Any
// non-numeric component makes the whole version invalid.
func ParseVersion(s string) Version {
	if s == "" {
		return Version{}
	}
	fields := strings.Split(s, ".")
	if len(fields) > 3 {
		fields = fields[:3]
	}
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Version{}
		}
		parts = append(parts, n)
	}
	return Version{parts: parts, valid: true}
}

// Valid reports whether the version parsed.
func (v Version) Valid() bool { return v.valid }

// Compare returns -1, 0 or 1. Components compare in order; when one version
// is a prefix of the other the shorter one is lower.
func Compare(a, b Version) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return -1
	case !b.valid:
		return 1
	}
	for i := 0; i < len(a.parts) && i < len(b.parts); i++ {
		if a.parts[i] < b.parts[i] {
			return -1
		}
		if a.parts[i] > b.parts[i] {
			return 1
		}
	}
	switch {
	case len(a.parts) < len(b.parts):
		return -1
	case len(a.parts) > len(b.parts):
		return 1
	}
	return 0
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return Compare(v, other) < 0
}

// VersionLess compares two version strings.
func VersionLess(a, b string) bool {
	return ParseVersion(a).Less(ParseVersion(b))
}

func (v Version) String() string {
	if !v.valid {
		return "invalid"
	}
	s := make([]string, len(v.parts))
	for i, p := range v.parts {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, ".")
}

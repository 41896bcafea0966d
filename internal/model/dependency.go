package model

// Status is the outcome of checking one dependency.
type Status int

const (
	StatusSatisfied        Status = iota // Present and new enough
	StatusOutdated                       // Present but below the required minimum
	StatusMissing                        // Required and not found
	StatusOptionalMissing                // Optional and not found
	StatusOptionalOutdated               // Optional and below its minimum
)

func (s Status) String() string {
	switch s {
	case StatusSatisfied:
		return "satisfied"
	case StatusOutdated:
		return "outdated"
	case StatusMissing:
		return "missing"
	case StatusOptionalMissing:
		return "optional-missing"
	case StatusOptionalOutdated:
		return "optional-outdated"
	default:
		return "unknown"
	}
}

// Entry is one line of a dependency report.
type Entry struct {
	Label    string `json:"label"`
	Found    bool   `json:"found"`
	Version  string `json:"version,omitempty"`  // Detected version; empty when unknown
	Required string `json:"required,omitempty"` // Minimum version; empty when any version will do
	Optional bool   `json:"optional"`
	Status   Status `json:"status"`
}

// Fails reports whether the entry should fail the overall check.
func (e Entry) Fails() bool {
	return e.Status == StatusMissing || e.Status == StatusOutdated
}

// Warns reports whether the entry is an advisory gap only.
func (e Entry) Warns() bool {
	return e.Status == StatusOptionalMissing || e.Status == StatusOptionalOutdated
}

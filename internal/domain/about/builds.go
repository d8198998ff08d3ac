package about

import "time"

// ConfigRustcVersion is the configuration name holding the compiler
// version currently used for documentation builds.
const ConfigRustcVersion = "rustc_version"

// Limits are the default resource limits applied to every documentation
// build unless a package has an override.
type Limits struct {
	Memory     int64
	Timeout    time.Duration
	Targets    int
	Networking bool
	MaxLogSize int64
}

// DefaultLimits returns the stock build limits.
func DefaultLimits() Limits {
	return Limits{
		Memory:     3 << 30,
		Timeout:    15 * time.Minute,
		Targets:    10,
		Networking: false,
		MaxLogSize: 100 << 10,
	}
}

// Builds is the content of the builds about page. RustcVersion is nil
// when no compiler version has been recorded yet.
type Builds struct {
	RustcVersion *string
	Limits       Limits
	ActiveTab    string
}

// NewBuilds assembles the builds page content.
func NewBuilds(rustcVersion *string, limits Limits) Builds {
	return Builds{
		RustcVersion: rustcVersion,
		Limits:       limits,
		ActiveTab:    PageBuilds,
	}
}

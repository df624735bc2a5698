// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "tscribe"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the default HTTP User-Agent string sent to wiki hosts.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, injected with -ldflags "-X" at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Release endpoints used by the update check.
const (
	ReleasesAPI = "https://api.github.com/repos/tscribe-cli/tscribe/releases/latest"
	ReleasesURL = "https://github.com/tscribe-cli/tscribe/releases/tag/v"
)

// LogRetentionDays is how long daily log files survive before startup prunes them.
const LogRetentionDays = 14

// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Transcript Source - these keys select the category page and the site profile used to read it.
const (
	SourceURL      = "source.url"
	SourceProvider = "source.provider"
)

// Download Behaviour - these keys govern where transcripts go and how the batch paces itself.
const (
	DownloadOutput   = "download.output"
	DownloadMode     = "download.mode"
	DownloadDelayMs  = "download.delay_ms"
	DownloadSeasons  = "download.seasons"
	DownloadManifest = "download.manifest"
)

// Networking - these keys tune the HTTP client used for every page fetch.
const (
	NetworkTimeout   = "network.timeout"
	NetworkUserAgent = "network.user_agent"
)

// Season Queries - these keys control persistence of season filter patterns.
const (
	QueryRemember = "query.remember"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern terminal output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

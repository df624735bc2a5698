package constant

// Defaults for the transcript source and its on-disk layout.
const (
	DefaultCategoryURL = "https://adventuretime.fandom.com/wiki/Category_talk:Transcripts"
	DefaultOutputDir   = "adventure_time_transcripts"
	DefaultManifest    = "metadata.json"
	DefaultProvider    = "fandom"
)

// Download modes.
const (
	ModeAsk      = "ask"
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"
)

package version

// Build information, overridden at release time with
// -ldflags "-X github.com/arthur-debert/deckscript/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/linky00/pos-writer/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/linky00/pos-writer/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/linky00/pos-writer/internal/version.Date={{.Date}}
)

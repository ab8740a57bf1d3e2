package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/pkghelper/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/pkghelper/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/pkghelper/internal/version.Date={{.Date}}
)

// String returns the one-line version description printed by the version command
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}

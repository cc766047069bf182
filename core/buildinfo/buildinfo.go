package buildinfo

// Set at build time via -ldflags:
//
//	-X 'github.com/m3rciful/prayerbot/core/buildinfo.Version=v0.3.0'
//	-X 'github.com/m3rciful/prayerbot/core/buildinfo.Commit=abcdef0'
//	-X 'github.com/m3rciful/prayerbot/core/buildinfo.Date=2026-10-19T12:00:00Z'
var (
	// Version is the release tag of the binary.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "local"
	// Date is the RFC3339 build timestamp.
	Date = ""
)

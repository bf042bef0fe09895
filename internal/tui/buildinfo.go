package tui

// BuildInfo holds build-time metadata for display in the header.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

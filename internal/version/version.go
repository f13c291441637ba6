// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the build's VCS revision from embedded build info.
package version

import "runtime/debug"

// GetVersion returns the VCS revision embedded at build time, shortened to
// seven characters and suffixed with "(dirty)" when the tree was modified.
// It returns "dev" when no build info is available.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return revision + " (dirty)"
	}
	return revision
}

package polingo

// Version information for polingo.
const (
	// Name is the library name.
	Name = "polingo"

	// Description is a short description of the library.
	Description = "Gettext-style i18n runtime - catalogs, plural rules, interpolation"

	// Repository is the source code repository URL.
	Repository = "https://github.com/polingo/polingo"

	// License is the software license.
	License = "MIT"
)

// BuildInfo contains build-time information.
// These values can be overridden at build time using ldflags:
//
//	go build -ldflags "-X github.com/polingo/polingo.Version=1.0.0"
var (
	// Version is the semantic version of the library.
	Version = "0.1.0"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// GitBranch is the git branch name.
	GitBranch = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// FullVersion returns the version string with optional build info.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}

// UserAgent returns a user agent string for HTTP requests.
func UserAgent() string {
	return Name + "/" + Version
}

package buildinfo

// These variables are intended to be set via -ldflags at build time:
//
//	-X 'github.com/m3rciful/phonebot/core/buildinfo.Version=v1.0.0'
//	-X 'github.com/m3rciful/phonebot/core/buildinfo.Commit=abcdef0'
//	-X 'github.com/m3rciful/phonebot/core/buildinfo.Date=2026-10-16T12:00:00Z'
var (
	// Version reports the semantic version or tag of the build.
	Version = "1.0.0"
	// Commit reports the source control commit used for the build.
	Commit = "local"
	// Date reports the build timestamp in RFC3339 format.
	Date = ""
)

// Short renders the version with the commit for /about style output.
func Short() string {
	if Commit == "" || Commit == "local" {
		return Version
	}
	c := Commit
	if len(c) > 7 {
		c = c[:7]
	}
	return Version + " (" + c + ")"
}

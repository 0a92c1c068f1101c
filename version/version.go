package version

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetFullVersion returns the version string shown by --version
func GetFullVersion() string {
	if Version == "dev" {
		return "dev"
	}
	return Version
}

// Package buildinfo carries the build identity stamped in with -ldflags:
//
//	-X oledkb/internal/buildinfo.Version=v1.2.0
//	-X oledkb/internal/buildinfo.Commit=$(git rev-parse HEAD)
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const shortCommit = 7

// Short returns a compact identifier that fits one line of the display:
// the version if set, else the abbreviated commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > shortCommit {
			return Commit[:shortCommit]
		}
		return Commit
	}
	return "dev"
}

// String is the one-line form used in log output.
func String() string {
	return "oledkb " + Version + " (" + Short() + ", " + Date + ")"
}

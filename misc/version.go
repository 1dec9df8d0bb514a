// Package misc keeps build time information.
package misc

// Values below are set with -ldflags "-X twexp/misc.version=..." at build time.
var (
	appName = "twexp"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

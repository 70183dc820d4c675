package cmd

import (
	goversion "github.com/caarlos0/go-version"
)

// Build metadata, set with -ldflags "-X .../internal/platform/cmd.version=...".
var (
	version   = ""
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

const (
	appDescription = "Operator console for browsing and removing userboard users."
	appWebsite     = "https://github.com/louisbranch/userboard"
)

// VersionInfo returns build metadata for the named service binary.
func VersionInfo(service string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("userboard-"+service, appDescription, appWebsite),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}

// Package version exposes build metadata for the img2txt binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = revision(debug.ReadBuildInfo)
)

// String renders the build metadata on one line per field, as printed by
// "img2txt version".
func String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "version:  %s\n", Version)
	fmt.Fprintf(&sb, "revision: %s\n", Revision)

	if BuildDate != "" {
		fmt.Fprintf(&sb, "built:    %s\n", BuildDate)
	}

	fmt.Fprintf(&sb, "go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return sb.String()
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	buildInfo, ok := read()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}

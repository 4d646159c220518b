package version

import (
	"fmt"
	"runtime"
)

const valueNotProvided = "[not provided]"

// injected at build time via -ldflags
var version = valueNotProvided
var gitCommit = valueNotProvided
var buildDate = valueNotProvided

type Version struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func FromBuild() Version {
	return Version{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

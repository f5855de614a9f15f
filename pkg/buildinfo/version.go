// Package buildinfo records which gridsystem build produced a class string.
//
// The values are stamped at link time:
//
//	go build -ldflags "-X github.com/newjenk/gridsystem/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/newjenk/gridsystem/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/newjenk/gridsystem/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/gridsystem
//
// The CLI prints them for --version and the server reports them on /healthz,
// so a saved class string can be traced to the engine that emitted it.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build stamp as reported by /healthz.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"built"`
}

// Current returns the stamp of the running binary.
func Current() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// Dev reports whether the binary was built without a version stamp.
func (i Info) Dev() bool { return i.Version == "dev" }

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

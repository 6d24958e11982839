package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

const (
	Header  = "X-Client-Version"
	product = "healthion"
)

const (
	versionDevel   = "devel"
	versionUnknown = "unknown"
)

// version is set via ldflags at build time.
// falls back to debug.ReadBuildInfo for go install.
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}

// UserAgent formats the product token sent on every outgoing request.
func UserAgent(v string) string {
	if v == "" {
		v = versionUnknown
	}
	return product + "/" + strings.TrimPrefix(v, "v")
}

// IsDevelopment reports whether v comes from a local or unreleased build.
func IsDevelopment(v string) bool {
	return v == versionDevel || v == versionUnknown || v == "" ||
		strings.Contains(v, "dirty") ||
		strings.Contains(v, "-0.")
}

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version is resolved from module build info. Module builds installed with
// `go install` report the tagged version; source builds fall back to the
// VCS revision when available.
var Version = "(dev)"

var buildInfo = debug.BuildInfo{}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	buildInfo = *bi

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		Version = v
		return
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			Version = s.Value[:12]
			return
		}
	}
}

// GetMore returns a printable version report. With mod set it includes the
// full module build info block.
func GetMore(mod bool) string {
	if mod {
		info := buildInfo.String()
		if len(info) > 0 {
			return fmt.Sprintf("\t%s\n", strings.ReplaceAll(info[:len(info)-1], "\n", "\n\t"))
		}
	}
	return fmt.Sprintf("version %s %s %s/%s\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

package resource

import (
	"runtime/debug"
)

// Module describes one module compiled into the binary.
type Module struct {
	Path    string `json:"path"`
	Version string `json:"version"`
	Sum     string `json:"sum,omitempty"`
}

// BuildInfo is the subset of runtime build metadata useful in logs and health endpoints.
type BuildInfo struct {
	GoVersion string            `json:"go_version"`
	Main      Module            `json:"main"`
	Deps      []Module          `json:"deps,omitempty"`
	Settings  map[string]string `json:"settings,omitempty"`
}

// Revision returns the VCS revision recorded at build time, if any.
func (b BuildInfo) Revision() string {
	return b.Settings["vcs.revision"]
}

// Dependency returns the compiled-in module with the given path.
func (b BuildInfo) Dependency(path string) (Module, bool) {
	for _, d := range b.Deps {
		if d.Path == path {
			return d, true
		}
	}
	return Module{}, false
}

// ReadBuildInfo returns the build metadata embedded in the running binary.
func ReadBuildInfo() (BuildInfo, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return BuildInfo{}, ErrNoBuildInfo
	}
	return fromDebug(info), nil
}

func fromDebug(info *debug.BuildInfo) BuildInfo {
	out := BuildInfo{
		GoVersion: info.GoVersion,
		Main:      toModule(&info.Main),
		Settings:  make(map[string]string, len(info.Settings)),
	}
	for _, s := range info.Settings {
		out.Settings[s.Key] = s.Value
	}
	for _, d := range info.Deps {
		out.Deps = append(out.Deps, toModule(d))
	}
	return out
}

func toModule(m *debug.Module) Module {
	if m == nil {
		return Module{}
	}
	// Replaced modules report the replacement's version.
	if m.Replace != nil {
		return Module{Path: m.Path, Version: m.Replace.Version, Sum: m.Replace.Sum}
	}
	return Module{Path: m.Path, Version: m.Version, Sum: m.Sum}
}

package deps

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrModuleMissing   = errors.New("module not installed")
	ErrVersionMismatch = errors.New("module version below required ABI version")
)

// ModuleResult is the outcome of probing a toolkit library.
type ModuleResult struct {
	State   ProbeState
	Version string // Installed version, also set on ErrVersionMismatch
	Err     error  // nil, ErrModuleMissing or ErrVersionMismatch
}

// ModuleProber finds toolkit libraries by reading pkg-config metadata
// directly instead of running pkg-config.
type ModuleProber struct {
	SearchPath []string
}

// systemPkgConfigDirs are searched when PKG_CONFIG_LIBDIR is unset.
var systemPkgConfigDirs = []string{
	"/usr/local/lib/pkgconfig",
	"/usr/local/share/pkgconfig",
	"/usr/lib64/pkgconfig",
	"/usr/lib/pkgconfig",
	"/usr/share/pkgconfig",
	"/opt/homebrew/lib/pkgconfig",
}

// DefaultSearchPath mirrors pkg-config's lookup order: PKG_CONFIG_PATH first,
// then PKG_CONFIG_LIBDIR or the system directories.
func DefaultSearchPath(lookup func(string) (string, bool)) []string {
	var dirs []string
	if v, ok := lookup("PKG_CONFIG_PATH"); ok {
		dirs = append(dirs, filepath.SplitList(v)...)
	}
	if v, ok := lookup("PKG_CONFIG_LIBDIR"); ok {
		return append(dirs, filepath.SplitList(v)...)
	}
	dirs = append(dirs, systemPkgConfigDirs...)
	if matches, err := filepath.Glob("/usr/lib/*-linux-gnu*/pkgconfig"); err == nil {
		dirs = append(dirs, matches...)
	}
	if runtime.GOOS == "darwin" {
		dirs = append(dirs, "/usr/local/opt/libx11/lib/pkgconfig")
	}
	return dirs
}

// Probe looks for module's .pc file and checks its version against
// abiVersion. An empty abiVersion accepts any version.
func (m ModuleProber) Probe(module, abiVersion string) ModuleResult {
	pc, ok := m.find(module)
	if !ok {
		return ModuleResult{State: Unavailable, Err: fmt.Errorf("%s: %w", module, ErrModuleMissing)}
	}
	version, err := readPCVersion(pc)
	if err != nil || version == "" {
		return ModuleResult{State: AvailableUnknownVersion}
	}
	if abiVersion != "" && VersionLess(version, abiVersion) {
		return ModuleResult{
			State:   Unavailable,
			Version: version,
			Err:     fmt.Errorf("%s %s < %s: %w", module, version, abiVersion, ErrVersionMismatch),
		}
	}
	return ModuleResult{State: Available, Version: version}
}

func (m ModuleProber) find(module string) (string, bool) {
	for _, dir := range m.SearchPath {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, module+".pc")
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// readPCVersion returns the value of the Version: keyword. Variable
// references are not expanded; version fields do not use them in practice.
func readPCVersion(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.ContainsAny(key, "= \t") {
			continue
		}
		if key == "Version" {
			return strings.TrimSpace(value), nil
		}
	}
	return "", sc.Err()
}

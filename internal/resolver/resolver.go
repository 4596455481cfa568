// Package resolver talks to the host operating system to enumerate ready
// storage volumes and well-known special folders and to resolve shortcut
// files to their targets. On platforms with native API bindings the
// enumeration bypasses the subprocess; elsewhere every call is a fresh
// synchronous round-trip to the helper executable. Nothing is cached, and
// no failure here is ever fatal: enumeration degrades to empty results
// and shortcut resolution to the unresolved input.
package resolver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/drivepane/drivepane/internal/config"
	"github.com/drivepane/drivepane/internal/helper"
	"github.com/drivepane/drivepane/internal/platform"
)

// SpecialFolder is a resolved well-known directory role. Entries with an
// empty path must be filtered by callers.
type SpecialFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Resolver performs volume, folder, and shortcut resolution against the
// host OS. The zero value is not usable; construct with New.
type Resolver struct {
	settings config.Settings
}

// New returns a Resolver using the given settings. The settings value is
// read-only to the resolver.
func New(settings config.Settings) *Resolver {
	return &Resolver{settings: settings}
}

// EnumerateReadyVolumes returns the identifiers of all volumes currently
// in a ready state. The result is recomputed on every call and empty on
// any enumeration failure.
func (r *Resolver) EnumerateReadyVolumes(ctx context.Context) []string {
	volumes, _ := r.enumerate(ctx)
	return volumes
}

// EnumerateSpecialFolders returns the fixed set of well-known folder
// roles in enumeration order. Roles the OS does not define carry an empty
// path; callers filter those.
func (r *Resolver) EnumerateSpecialFolders(ctx context.Context) []SpecialFolder {
	_, folders := r.enumerate(ctx)
	return folders
}

// ResolveShortcut returns the recorded target of the shortcut at path,
// with separators normalized to forward slashes. If the shortcut cannot
// be resolved or its target does not exist on disk, the input path is
// returned unchanged. Resolution failure is silent; the result is best
// effort either way.
func (r *Resolver) ResolveShortcut(ctx context.Context, path string) string {
	out, err := r.runHelper(ctx, "/l", path)
	if err != nil {
		return path
	}

	target, _, _ := strings.Cut(out, "\n")
	target = strings.TrimSpace(target)
	if target == "" {
		return path
	}

	target = NormalizeSlashes(target)
	if _, err := os.Stat(filepath.FromSlash(target)); err != nil {
		return path
	}
	return target
}

// enumerate performs one volume/folder round-trip. Native APIs are used
// where available unless a helper override is configured; otherwise the
// helper is invoked and its response parsed.
func (r *Resolver) enumerate(ctx context.Context) ([]string, []SpecialFolder) {
	if platform.HasNativeEnumeration() && r.settings.HelperPath == "" {
		volumes := platform.ReadyVolumes()
		native := platform.KnownFolders()
		folders := make([]SpecialFolder, 0, len(native))
		for _, f := range native {
			folders = append(folders, SpecialFolder{Name: f.Name, Path: NormalizeSlashes(f.Path)})
		}
		return volumes, folders
	}

	out, err := r.runHelper(ctx)
	if err != nil {
		// One retry after resetting to a known-good root. Covers
		// enumerating from a working directory that no longer exists,
		// e.g. after its drive was unplugged.
		if chdirErr := os.Chdir(knownGoodRoot()); chdirErr == nil {
			out, err = r.runHelper(ctx)
		}
	}
	if err != nil {
		return nil, nil
	}

	drives, paths, err := parseHelperResponse(strings.TrimSpace(out))
	if err != nil {
		return nil, nil
	}

	folders := make([]SpecialFolder, 0, len(paths))
	for i, p := range paths {
		if i >= len(platform.FolderRoles) {
			break
		}
		folders = append(folders, SpecialFolder{
			Name: platform.FolderRoles[i],
			Path: NormalizeSlashes(p),
		})
	}
	return drives, folders
}

// runHelper performs one helper round-trip under the configured probe
// timeout and returns its stdout.
func (r *Resolver) runHelper(ctx context.Context, args ...string) (string, error) {
	path := r.settings.HelperPath
	if path == "" {
		var err error
		path, err = helper.Ensure()
		if err != nil {
			return "", err
		}
	}

	timeout := r.settings.ProbeTimeout
	if timeout <= 0 {
		timeout = config.DefaultProbeTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := helper.Command(cctx, path, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("invoking helper %s: %w", path, err)
	}
	return stdout.String(), nil
}

// NormalizeSlashes rewrites backslash separators to the forward-slash
// convention used throughout the listing layer.
func NormalizeSlashes(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// knownGoodRoot returns a directory assumed to always exist, used to
// reset the working context before the enumeration retry.
func knownGoodRoot() string {
	if runtime.GOOS == "windows" {
		if drive := os.Getenv("SystemDrive"); drive != "" {
			return drive + `\`
		}
		return `C:\`
	}
	return "/"
}

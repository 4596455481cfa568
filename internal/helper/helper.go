// Package helper manages the lazily-materialized helper executable: the
// script embedded in the binary is written under the DrivePane home
// directory on first use and rewritten when the embedded version is newer
// than the one on disk. It also builds the per-OS command line for
// invoking the helper.
package helper

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/drivepane/drivepane/internal/config"
)

//go:embed script.ps1
var scriptBytes []byte

// ArtifactName is the file name of the materialized helper script.
const ArtifactName = "helper.ps1"

// versionStamp matches the version comment on the script's first line,
// e.g. "# drivepane helper v1.0.0".
var versionStamp = regexp.MustCompile(`helper v(\d+\.\d+\.\d+)`)

// EmbeddedVersion returns the version stamped into the embedded script.
func EmbeddedVersion() string {
	return stampedVersion(scriptBytes)
}

// stampedVersion extracts the version stamp from script content.
// Returns "" when no stamp is present.
func stampedVersion(data []byte) string {
	m := versionStamp.FindSubmatch(data)
	if m == nil {
		return ""
	}
	return string(m[1])
}

// Ensure materializes the helper script under the DrivePane home
// directory if it is missing or stamped with an older version, and
// returns its path. The artifact content is fixed; nothing else is ever
// written to it.
func Ensure() (string, error) {
	path := filepath.Join(config.Dir(), ArtifactName)

	if existing, err := os.ReadFile(path); err == nil {
		if !isOlder(stampedVersion(existing), EmbeddedVersion()) {
			return path, nil
		}
	}

	if err := config.EnsureDir(); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, scriptBytes, 0755); err != nil {
		return "", fmt.Errorf("writing helper artifact %s: %w", path, err)
	}
	return path, nil
}

// isOlder reports whether current is semver-older than embedded.
// Unparsable or missing stamps are treated as older, forcing a rewrite.
func isOlder(current, embedded string) bool {
	cv, err := semver.NewVersion(current)
	if err != nil {
		return true
	}
	ev, err := semver.NewVersion(embedded)
	if err != nil {
		return false
	}
	return cv.LessThan(ev)
}

// Command builds the command invoking the helper at path with the given
// protocol arguments. On Windows the script runs under powershell; on
// other platforms the file is executed directly, which lets tests and
// deployments substitute any executable honoring the protocol.
func Command(ctx context.Context, path string, args ...string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		psArgs := append([]string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-File", path}, args...)
		return exec.CommandContext(ctx, "powershell", psArgs...)
	}
	return exec.CommandContext(ctx, path, args...)
}

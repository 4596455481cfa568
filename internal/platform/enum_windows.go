//go:build windows

package platform

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// HasNativeEnumeration reports whether volumes and known folders can be
// enumerated through direct OS APIs, without the helper subprocess.
func HasNativeEnumeration() bool {
	return true
}

// ReadyVolumes returns the drive letters of all volumes in a ready state.
// Unready drives (e.g. an empty optical drive) are excluded.
func ReadyVolumes() []string {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil
	}

	var volumes []string
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		letter := string(rune('A' + i))
		root := letter + `:\`

		rootPtr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}
		switch windows.GetDriveType(rootPtr) {
		case windows.DRIVE_UNKNOWN, windows.DRIVE_NO_ROOT_DIR:
			continue
		}

		// Readiness probe: a mapped but unready drive fails to stat.
		if _, err := os.Stat(root); err != nil {
			continue
		}
		volumes = append(volumes, letter)
	}
	return volumes
}

// User Shell Folders value names per role. Downloads has no legacy name
// on modern systems, only the known-folder GUID.
var userShellFolderValues = map[string][]string{
	"desktop":   {"Desktop"},
	"documents": {"Personal"},
	"downloads": {`{374DE290-123F-4565-9164-39C4925E467B}`, "Downloads"},
	"favorites": {"Favorites"},
}

// KnownFolders resolves the fixed folder roles through the registry.
// Roles the system does not define yield entries with an empty path;
// callers filter those.
func KnownFolders() []Folder {
	folders := make([]Folder, 0, len(FolderRoles))
	for _, role := range FolderRoles {
		folders = append(folders, Folder{Name: role, Path: lookupFolder(role)})
	}
	return folders
}

func lookupFolder(role string) string {
	if role == "shared-desktop" {
		return readShellFolder(registry.LOCAL_MACHINE,
			`Software\Microsoft\Windows\CurrentVersion\Explorer\Shell Folders`,
			[]string{"Common Desktop"})
	}
	return readShellFolder(registry.CURRENT_USER,
		`Software\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`,
		userShellFolderValues[role])
}

// readShellFolder reads the first defined value name under the given
// shell-folders key. Values are often REG_EXPAND_SZ, so %USERPROFILE%
// and friends are expanded.
func readShellFolder(root registry.Key, keyPath string, names []string) string {
	k, err := registry.OpenKey(root, keyPath, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	for _, name := range names {
		v, _, err := k.GetStringValue(name)
		if err != nil {
			continue
		}
		// User Shell Folders values are often REG_EXPAND_SZ.
		if expanded, err := registry.ExpandString(v); err == nil {
			v = expanded
		}
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}

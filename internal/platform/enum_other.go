//go:build !windows

package platform

// HasNativeEnumeration reports whether volumes and known folders can be
// enumerated through direct OS APIs. Off Windows the contract is carried
// by the helper executable (or a configured override), which also keeps
// the stack testable with a stub helper.
func HasNativeEnumeration() bool {
	return false
}

// ReadyVolumes returns nil; enumeration goes through the helper.
func ReadyVolumes() []string {
	return nil
}

// KnownFolders returns nil; enumeration goes through the helper.
func KnownFolders() []Folder {
	return nil
}

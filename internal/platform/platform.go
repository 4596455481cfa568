package platform

// Folder is a resolved well-known directory role. Path is empty when the
// OS does not define the role.
type Folder struct {
	Name string
	Path string
}

// FolderRoles is the fixed, ordered set of well-known directory roles the
// enumeration reports. Enumeration output preserves this order.
var FolderRoles = []string{
	"desktop",
	"documents",
	"downloads",
	"favorites",
	"shared-desktop",
}

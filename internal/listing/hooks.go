package listing

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Shortcut file conventions.
const (
	// ShortcutExt is the reserved extension of shortcut files.
	ShortcutExt = ".lnk"

	// VirtualLinkName is the reserved file name that makes a directory
	// virtual: a directory containing it exists only to redirect into
	// the shortcut's target.
	VirtualLinkName = "target.lnk"
)

// NavigateUpResolver is the host extension point for resolving the
// directory a pane should land in when navigating. Hosts register an
// implementation instead of wrapping their navigation internals.
type NavigateUpResolver interface {
	ResolveNavigateUp(ctx context.Context, dir string) string
}

// EntryPathResolver is the host extension point applied whenever a
// listed entry name is turned into an operable path, so that open,
// delete, copy and friends transparently target a shortcut's
// destination.
type EntryPathResolver interface {
	ResolveEntry(ctx context.Context, path string) string
}

var (
	_ NavigateUpResolver = (*Renderer)(nil)
	_ EntryPathResolver  = (*Renderer)(nil)
)

// DereferenceVirtualDirectory returns the target of dirPath's reserved
// shortcut file when shortcut-following is enabled and the file is
// present; otherwise dirPath unchanged. This is what makes a virtual
// directory transparent to all file operations the host performs.
func (r *Renderer) DereferenceVirtualDirectory(ctx context.Context, dirPath string) string {
	if !r.settings.FollowShortcuts {
		return dirPath
	}

	link := filepath.Join(filepath.FromSlash(dirPath), VirtualLinkName)
	if _, err := os.Stat(link); err != nil {
		return dirPath
	}
	return r.src.ResolveShortcut(ctx, link)
}

// ResolveEntryPath returns the shortcut target for paths ending in the
// shortcut extension when following is enabled; all other inputs pass
// through unchanged.
func (r *Renderer) ResolveEntryPath(ctx context.Context, rawPath string) string {
	if !r.settings.FollowShortcuts {
		return rawPath
	}
	if !strings.EqualFold(filepath.Ext(rawPath), ShortcutExt) {
		return rawPath
	}
	return r.src.ResolveShortcut(ctx, rawPath)
}

// ResolveNavigateUp implements NavigateUpResolver.
func (r *Renderer) ResolveNavigateUp(ctx context.Context, dir string) string {
	return r.DereferenceVirtualDirectory(ctx, dir)
}

// ResolveEntry implements EntryPathResolver.
func (r *Renderer) ResolveEntry(ctx context.Context, path string) string {
	return r.ResolveEntryPath(ctx, path)
}

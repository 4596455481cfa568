// Package listing renders the resolver's output into a synthetic
// directory listing a file-manager pane can display: a volumes section
// and a special-folders section of pseudo-directory records. It also
// implements the virtual-directory and shortcut auto-resolution policies
// the host binds to its navigation and path-resolution extension points.
package listing

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/drivepane/drivepane/internal/config"
	"github.com/drivepane/drivepane/internal/resolver"
)

// Source is the resolver surface the renderer consumes.
type Source interface {
	EnumerateReadyVolumes(ctx context.Context) []string
	EnumerateSpecialFolders(ctx context.Context) []resolver.SpecialFolder
	ResolveShortcut(ctx context.Context, path string) string
}

// EntryKind discriminates listing entries.
type EntryKind string

const (
	EntryVolume  EntryKind = "volume"
	EntryFolder  EntryKind = "folder"
	EntryDivider EntryKind = "divider"
)

// Fixed dummy metadata for pseudo-directory records. The fields carry no
// real information beyond "this is a directory" for the host display
// layer.
const (
	recordMode  = "drwxr-xr-x"
	recordStamp = "Jan  1 00:00"
)

// Entry is one row of a rendered listing. For folder entries, the byte
// range [MaskStart, MaskEnd) of Record marks redundant path-prefix text
// the host should visually collapse; the range is presentation-only and
// Path is never altered by it.
type Entry struct {
	Kind      EntryKind `json:"kind"`
	Label     string    `json:"label,omitempty"`
	Path      string    `json:"path,omitempty"`
	Record    string    `json:"record"`
	MaskStart int       `json:"maskStart,omitempty"`
	MaskEnd   int       `json:"maskEnd,omitempty"`
}

// Listing is an ordered sequence of synthetic entries. It is rebuilt in
// full on every render; entries are never carried over between renders.
type Listing struct {
	Entries []Entry `json:"entries"`
}

// Renderer builds listings from a Source under a fixed Settings value.
type Renderer struct {
	src      Source
	settings config.Settings
}

// New returns a Renderer over src. The settings value is read once at
// construction; hosts reload configuration by constructing a new
// Renderer.
func New(src Source, settings config.Settings) *Renderer {
	return &Renderer{src: src, settings: settings}
}

// Render enumerates volumes and special folders and produces the
// two-section listing. Special folders with an empty or non-existent
// path are dropped. The result reflects resources that existed at
// enumeration time; repeated calls under unchanged OS state produce
// structurally identical listings.
func (r *Renderer) Render(ctx context.Context) *Listing {
	volumes := r.src.EnumerateReadyVolumes(ctx)
	folders := r.src.EnumerateSpecialFolders(ctx)

	l := &Listing{}
	l.Entries = append(l.Entries, Entry{Kind: EntryDivider, Record: "Drives:"})
	for _, id := range volumes {
		l.Entries = append(l.Entries, r.volumeEntry(id))
	}

	l.Entries = append(l.Entries, Entry{Kind: EntryDivider})
	l.Entries = append(l.Entries, Entry{Kind: EntryDivider, Record: "Folders:"})
	for _, f := range folders {
		if f.Path == "" {
			continue
		}
		if _, err := os.Stat(filepath.FromSlash(f.Path)); err != nil {
			continue
		}
		l.Entries = append(l.Entries, r.folderEntry(f))
	}
	return l
}

func (r *Renderer) volumeEntry(id string) Entry {
	label := r.settings.VolumeLabelPrefix + id + ":"
	p := id + ":/"
	return Entry{
		Kind:   EntryVolume,
		Label:  label,
		Path:   p,
		Record: record(p),
	}
}

func (r *Renderer) folderEntry(f resolver.SpecialFolder) Entry {
	row := record(f.Path)
	prefix := len(row) - len(f.Path)

	// Collapse the parent-directory portion of the path so only the
	// folder's base name reads in the pane.
	base := path.Base(f.Path)
	maskLen := len(f.Path) - len(base)

	e := Entry{
		Kind:   EntryFolder,
		Label:  f.Name,
		Path:   f.Path,
		Record: row,
	}
	if maskLen > 0 {
		e.MaskStart = prefix
		e.MaskEnd = prefix + maskLen
	}
	return e
}

// record formats one pseudo-directory row with fixed dummy permission,
// ownership, size, and timestamp fields.
func record(p string) string {
	return fmt.Sprintf("  %s %3d %-4s %-4s %8d %s %s",
		recordMode, 1, "-", "-", 0, recordStamp, p)
}

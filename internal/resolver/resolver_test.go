package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/drivepane/drivepane/internal/config"
)

// writeStub materializes a POSIX shell script honoring the helper
// protocol and returns its path.
func writeStub(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub helpers are POSIX shell scripts")
	}
	path := filepath.Join(t.TempDir(), "helper.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func stubSettings(helperPath string) config.Settings {
	return config.Settings{
		FollowShortcuts: true,
		HelperPath:      helperPath,
		ProbeTimeout:    5 * time.Second,
	}
}

func TestEnumerateRoundTrip(t *testing.T) {
	desktop := t.TempDir()
	stub := writeStub(t, fmt.Sprintf(
		`printf '%%s\n' '((drives . ("C" "E")) (folders . ("%s")))'`, desktop))

	r := New(stubSettings(stub))
	ctx := context.Background()

	volumes := r.EnumerateReadyVolumes(ctx)
	if len(volumes) != 2 || volumes[0] != "C" || volumes[1] != "E" {
		t.Errorf("volumes = %v, want [C E]", volumes)
	}

	folders := r.EnumerateSpecialFolders(ctx)
	if len(folders) != 1 {
		t.Fatalf("folders = %v, want one entry", folders)
	}
	if folders[0].Name != "desktop" {
		t.Errorf("folder name = %q, want %q", folders[0].Name, "desktop")
	}
	if folders[0].Path != NormalizeSlashes(desktop) {
		t.Errorf("folder path = %q, want %q", folders[0].Path, desktop)
	}
}

func TestEnumerateFolderRoleOrder(t *testing.T) {
	stub := writeStub(t,
		`printf '%s\n' '((drives . ()) (folders . ("/a" "/b" "/c")))'`)

	r := New(stubSettings(stub))
	folders := r.EnumerateSpecialFolders(context.Background())
	if len(folders) != 3 {
		t.Fatalf("folders = %v, want three entries", folders)
	}
	wantNames := []string{"desktop", "documents", "downloads"}
	for i, want := range wantNames {
		if folders[i].Name != want {
			t.Errorf("folders[%d].Name = %q, want %q", i, folders[i].Name, want)
		}
	}
}

func TestEnumerateMalformedOutput(t *testing.T) {
	stub := writeStub(t, `printf '%s\n' 'not a response'`)

	r := New(stubSettings(stub))
	if volumes := r.EnumerateReadyVolumes(context.Background()); len(volumes) != 0 {
		t.Errorf("volumes = %v, want empty after parse failure", volumes)
	}
	if folders := r.EnumerateSpecialFolders(context.Background()); len(folders) != 0 {
		t.Errorf("folders = %v, want empty after parse failure", folders)
	}
}

func TestEnumerateHelperFailure(t *testing.T) {
	stub := writeStub(t, `exit 3`)

	r := New(stubSettings(stub))
	if volumes := r.EnumerateReadyVolumes(context.Background()); len(volumes) != 0 {
		t.Errorf("volumes = %v, want empty after helper failure", volumes)
	}
}

func TestEnumerateHelperMissing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub helpers are POSIX shell scripts")
	}
	r := New(stubSettings(filepath.Join(t.TempDir(), "no-such-helper")))
	if volumes := r.EnumerateReadyVolumes(context.Background()); len(volumes) != 0 {
		t.Errorf("volumes = %v, want empty when helper is missing", volumes)
	}
}

func TestEnumerateTimeout(t *testing.T) {
	stub := writeStub(t, `sleep 5`)

	settings := stubSettings(stub)
	settings.ProbeTimeout = 100 * time.Millisecond
	r := New(settings)

	start := time.Now()
	volumes := r.EnumerateReadyVolumes(context.Background())
	if len(volumes) != 0 {
		t.Errorf("volumes = %v, want empty on timeout", volumes)
	}
	// Two attempts (initial plus the retry) must both be bounded.
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("enumeration took %v, timeout not enforced", elapsed)
	}
}

func TestResolveShortcutNormalizesSeparators(t *testing.T) {
	target := filepath.Join(t.TempDir(), "Docs")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	backslashed := strings.ReplaceAll(target, "/", `\`)
	stub := writeStub(t, fmt.Sprintf(`printf '%%s\n' '%s'`, backslashed))

	r := New(stubSettings(stub))
	got := r.ResolveShortcut(context.Background(), "/somewhere/docs.lnk")
	if want := NormalizeSlashes(target); got != want {
		t.Errorf("ResolveShortcut = %q, want %q", got, want)
	}
}

func TestResolveShortcutIdentityWhenTargetMissing(t *testing.T) {
	stub := writeStub(t, `printf '%s\n' '/no/such/target'`)

	r := New(stubSettings(stub))
	in := "/somewhere/orphan.lnk"
	if got := r.ResolveShortcut(context.Background(), in); got != in {
		t.Errorf("ResolveShortcut = %q, want input %q", got, in)
	}
}

func TestResolveShortcutIdentityOnEmptyOutput(t *testing.T) {
	stub := writeStub(t, `exit 0`)

	r := New(stubSettings(stub))
	in := "/somewhere/broken.lnk"
	if got := r.ResolveShortcut(context.Background(), in); got != in {
		t.Errorf("ResolveShortcut = %q, want input %q", got, in)
	}
}

func TestResolveShortcutIdentityOnHelperFailure(t *testing.T) {
	stub := writeStub(t, `exit 1`)

	r := New(stubSettings(stub))
	in := "/somewhere/any.lnk"
	if got := r.ResolveShortcut(context.Background(), in); got != in {
		t.Errorf("ResolveShortcut = %q, want input %q", got, in)
	}
}

func TestNormalizeSlashes(t *testing.T) {
	if got := NormalizeSlashes(`C:\Users\x\Docs`); got != "C:/Users/x/Docs" {
		t.Errorf("NormalizeSlashes = %q, want %q", got, "C:/Users/x/Docs")
	}
	if got := NormalizeSlashes("/already/fine"); got != "/already/fine" {
		t.Errorf("NormalizeSlashes = %q, want input unchanged", got)
	}
}

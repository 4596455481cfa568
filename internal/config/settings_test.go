package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/drivepane/drivepane/internal/branding"
	"github.com/spf13/viper"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())
}

func TestLoadSettingsDefaults(t *testing.T) {
	resetConfig(t)

	s := LoadSettings()
	if !s.FollowShortcuts {
		t.Error("FollowShortcuts default = false, want true")
	}
	if s.ProbeTimeout != DefaultProbeTimeout {
		t.Errorf("ProbeTimeout = %v, want %v", s.ProbeTimeout, DefaultProbeTimeout)
	}
	if s.HelperPath != "" {
		t.Errorf("HelperPath = %q, want empty", s.HelperPath)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	resetConfig(t)

	content := "follow_shortcuts: false\nprobe_timeout: 250ms\nhelper_path: /opt/helper.sh\n"
	if err := os.WriteFile(FilePath(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := LoadSettings()
	if s.FollowShortcuts {
		t.Error("FollowShortcuts = true, want false from file")
	}
	if s.ProbeTimeout != 250*time.Millisecond {
		t.Errorf("ProbeTimeout = %v, want 250ms", s.ProbeTimeout)
	}
	if s.HelperPath != "/opt/helper.sh" {
		t.Errorf("HelperPath = %q, want /opt/helper.sh", s.HelperPath)
	}
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	resetConfig(t)
	t.Setenv(branding.EnvVar("FOLLOW_SHORTCUTS"), "false")

	s := LoadSettings()
	if s.FollowShortcuts {
		t.Error("FollowShortcuts = true, want false from environment")
	}
}

func TestLoadSettingsBadTimeoutFallsBack(t *testing.T) {
	resetConfig(t)

	content := "probe_timeout: not-a-duration\n"
	if err := os.WriteFile(FilePath(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := LoadSettings()
	if s.ProbeTimeout != DefaultProbeTimeout {
		t.Errorf("ProbeTimeout = %v, want default %v", s.ProbeTimeout, DefaultProbeTimeout)
	}
}

func TestSetPersists(t *testing.T) {
	resetConfig(t)

	if err := Set(KeyVolumeLabelPrefix, "Drive "); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	s := LoadSettings()
	if s.VolumeLabelPrefix != "Drive " {
		t.Errorf("VolumeLabelPrefix = %q, want %q after reload", s.VolumeLabelPrefix, "Drive ")
	}
}

func TestDirEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(branding.EnvVar("HOME"), home)

	if Dir() != home {
		t.Errorf("Dir() = %q, want %q", Dir(), home)
	}
	if FilePath() != filepath.Join(home, "config.yaml") {
		t.Errorf("FilePath() = %q, want it under %q", FilePath(), home)
	}
}

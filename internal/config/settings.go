package config

import (
	"time"

	"github.com/spf13/viper"
)

// Settings keys in config.yaml.
const (
	KeyFollowShortcuts   = "follow_shortcuts"
	KeyHelperPath        = "helper_path"
	KeyProbeTimeout      = "probe_timeout"
	KeyVolumeLabelPrefix = "volume_label_prefix"
)

// DefaultProbeTimeout bounds every helper subprocess round-trip.
const DefaultProbeTimeout = 5 * time.Second

// Settings holds the typed configuration consumed by the resolver and
// renderer. A Settings value is read once per instance; the core never
// mutates it.
type Settings struct {
	// FollowShortcuts gates shortcut auto-resolution and virtual-directory
	// dereferencing. When false, shortcuts are operated on literally.
	FollowShortcuts bool

	// HelperPath overrides the materialized helper artifact. Useful for
	// tests and for platforms where the bundled script does not apply.
	HelperPath string

	// ProbeTimeout bounds each helper subprocess invocation.
	ProbeTimeout time.Duration

	// VolumeLabelPrefix is prepended to volume labels in rendered
	// listings (cosmetic only).
	VolumeLabelPrefix string
}

// setDefaults registers defaults so unset keys resolve sensibly.
func setDefaults() {
	viper.SetDefault(KeyFollowShortcuts, true)
	viper.SetDefault(KeyProbeTimeout, DefaultProbeTimeout.String())
	viper.SetDefault(KeyVolumeLabelPrefix, "")
}

// LoadSettings reads the config file (if any) and returns the typed
// settings with defaults applied. A missing or unreadable file is not an
// error; defaults and environment overrides apply.
func LoadSettings() Settings {
	Load()

	timeout, err := time.ParseDuration(viper.GetString(KeyProbeTimeout))
	if err != nil || timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	return Settings{
		FollowShortcuts:   viper.GetBool(KeyFollowShortcuts),
		HelperPath:        viper.GetString(KeyHelperPath),
		ProbeTimeout:      timeout,
		VolumeLabelPrefix: viper.GetString(KeyVolumeLabelPrefix),
	}
}

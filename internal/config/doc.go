// Package config manages the ~/.drivepane/config.yaml settings file: the
// follow-shortcuts toggle, helper artifact override, and probe timeout. It
// loads through viper with DRIVEPANE_* environment overrides, applies
// defaults in code, and validates the file against an embedded JSON schema
// before use.
package config

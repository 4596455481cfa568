// Package platform is the per-OS capability layer: native volume
// enumeration and known-folder lookup where the OS exposes direct APIs,
// and an explicit capability check so callers can fall back to the helper
// artifact elsewhere.
package platform

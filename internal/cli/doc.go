// Package cli wires the cobra command tree: list (render the pane
// listing), resolve and deref (shortcut policies), config, doctor, and
// version.
package cli

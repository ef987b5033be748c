// Package config manages user-level dtslink settings stored at
// ~/.dtslink/config.yaml. Project-level generation settings live in the
// dts.config.yaml manifest handled by the project package; this package only
// covers per-user defaults such as the preferred manifest location.
package config

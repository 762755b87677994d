//go:build !windows && !darwin

package dino

// DefaultMeta for ELF platforms.
var DefaultMeta = Meta{Prefix: "lib", Extension: "so"}

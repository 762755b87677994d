package dino

// DefaultMeta for darwin.
var DefaultMeta = Meta{Prefix: "lib", Extension: "dylib"}

package dino

// DefaultMeta for windows, which has no filename prefix.
var DefaultMeta = Meta{Extension: "dll"}

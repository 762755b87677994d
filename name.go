package dino

import (
	"path/filepath"
	"strings"
)

// Meta is the platform dependent part of a shared library filename.
type Meta struct {
	Prefix    string
	Extension string
}

// Name of a shared library: a platform independent ID and the platform Meta.
type Name struct {
	ID string
	Meta
}

// NewName create a Name with the DefaultMeta of current platform.
func NewName(id string) Name {
	return Name{ID: id, Meta: DefaultMeta}
}

// FullName is the on-disk filename: prefix + id + "." + extension.
func (n Name) FullName() string {
	s := strings.Builder{}
	s.Grow(len(n.Prefix) + len(n.ID) + len(n.Extension) + 1)
	s.WriteString(n.Prefix)
	s.WriteString(n.ID)
	s.WriteByte('.')
	s.WriteString(n.Extension)
	return s.String()
}

func (n Name) String() string {
	return n.FullName()
}

// JoinPath joins dir and file with a path separator, file alone when dir is empty.
func JoinPath(dir, file string) string {
	if dir == "" {
		return file
	}
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + file
	}
	return dir + "/" + file
}

package dino

import "testing"

func TestFullName(t *testing.T) {
	tests := []struct {
		name Name
		want string
	}{
		{Name{"foo", Meta{"lib", "so"}}, "libfoo.so"},
		{Name{"foo", Meta{"", "dll"}}, "foo.dll"},
		{Name{"foo", Meta{"lib", "dylib"}}, "libfoo.dylib"},
		{Name{"c", Meta{"lib", "so.6"}}, "libc.so.6"},
		{NewName("bar"), DefaultMeta.Prefix + "bar." + DefaultMeta.Extension},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.name.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		dir, file, want string
	}{
		{"", "libfoo.so", "libfoo.so"},
		{".", "libfoo.so", "./libfoo.so"},
		{"a/b", "libfoo.so", "a/b/libfoo.so"},
		{"a/b/", "libfoo.so", "a/b/libfoo.so"},
	}
	for _, tt := range tests {
		if got := JoinPath(tt.dir, tt.file); got != tt.want {
			t.Errorf("JoinPath(%q, %q) = %q, want %q", tt.dir, tt.file, got, tt.want)
		}
	}
}

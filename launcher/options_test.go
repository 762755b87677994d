package launcher

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	def := Options{Entrypoint: "run", Silent: true}
	tests := []struct {
		name     string
		argv     []string
		opts     Options
		launchee Launchee
	}{
		{"empty", nil, def, Launchee{Args: []string{""}}},
		{"silence off", []string{"-s=false", "mod"}, Options{Entrypoint: "run"}, Launchee{"mod", []string{""}}},
		{"silence bare", []string{"-silent", "mod"}, def, Launchee{"mod", []string{""}}},
		{"silence other value", []string{"-s=no", "mod"}, def, Launchee{"mod", []string{""}}},
		{"dir and entry", []string{"-dir=foo", "-e=bar", "mod", "a", "-b"},
			Options{Dir: "foo", Entrypoint: "bar", Silent: true}, Launchee{"mod", []string{"", "a", "-b"}}},
		{"aliases", []string{"--directory=x", "-d=y", "-entry=m", "-entrypoint=n", "mod"},
			Options{Dir: "y", Entrypoint: "n", Silent: true}, Launchee{"mod", []string{""}}},
		{"unknown keys", []string{"-x=1", "-unknown", "-d=foo", "mod"},
			Options{Dir: "foo", Entrypoint: "run", Silent: true}, Launchee{"mod", []string{""}}},
		{"bare string key", []string{"-d", "-e", "mod"}, def, Launchee{"mod", []string{""}}},
		{"verbose", []string{"-v", "mod"}, Options{Entrypoint: "run", Silent: true, Verbose: true}, Launchee{"mod", []string{""}}},
		{"end of options", []string{"-s=false", "--", "-mod", "a"}, Options{Entrypoint: "run"}, Launchee{"-mod", []string{"", "a"}}},
		{"options only", []string{"-s=false"}, Options{Entrypoint: "run"}, Launchee{Args: []string{""}}},
		{"value with equal", []string{"-d=a=b", "mod"}, Options{Dir: "a=b", Entrypoint: "run", Silent: true}, Launchee{"mod", []string{""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, l := Parse(tt.argv, def)
			if diff := cmp.Diff(tt.opts, opts); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.launchee, l); diff != "" {
				t.Errorf("launchee mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	defer func(e, s string) { DefaultEntrypoint, DefaultSilent = e, s }(DefaultEntrypoint, DefaultSilent)
	DefaultEntrypoint, DefaultSilent = "main", "true"
	if diff := cmp.Diff(Options{Entrypoint: "main", Silent: true}, Defaults()); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	DefaultSilent = "garbage"
	if Defaults().Silent {
		t.Error("unparsable silent default should be false")
	}
}

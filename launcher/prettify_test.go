package launcher

import (
	"testing"
	"time"
)

func TestPrettify(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0us"},
		{999 * time.Microsecond, "999us"},
		{1000 * time.Microsecond, "0us"},
		{1500 * time.Microsecond, "1ms500us"},
		{250*time.Millisecond + 3*time.Microsecond, "250ms3us"},
		{time.Second, "1000ms0us"},
		{1500 * time.Millisecond, "1s500ms"},
		{59*time.Second + 7*time.Millisecond, "59s7ms"},
		{time.Minute, "60s0ms"},
		{61 * time.Second, "1m1s"},
		{2*time.Hour + 5*time.Second, "120m5s"},
	}
	for _, tt := range tests {
		if got := Prettify(tt.d); got != tt.want {
			t.Errorf("Prettify(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

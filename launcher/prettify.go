package launcher

import (
	"strconv"
	"strings"
	"time"
)

// Prettify d as minutes and seconds above a minute, seconds and milliseconds above a second,
// milliseconds and microseconds otherwise.
func Prettify(d time.Duration) string {
	s := strings.Builder{}
	switch {
	case d > time.Minute:
		c := int64(d / time.Second)
		s.WriteString(strconv.FormatInt(c/60, 10))
		s.WriteByte('m')
		s.WriteString(strconv.FormatInt(c%60, 10))
		s.WriteByte('s')
	case d > time.Second:
		c := int64(d / time.Millisecond)
		s.WriteString(strconv.FormatInt(c/1000, 10))
		s.WriteByte('s')
		s.WriteString(strconv.FormatInt(c%1000, 10))
		s.WriteString("ms")
	default:
		c := int64(d / time.Microsecond)
		if c > 1000 {
			s.WriteString(strconv.FormatInt(c/1000, 10))
			s.WriteString("ms")
		}
		s.WriteString(strconv.FormatInt(c%1000, 10))
		s.WriteString("us")
	}
	return s.String()
}

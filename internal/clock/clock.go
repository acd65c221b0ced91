package clock

import (
	"fmt"
	"time"
)

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

const isoLayout = "2006-01-02T15:04:05"

// ISOFormat renders t as YYYY-MM-DDTHH:MM:SS[.ffffff] using the wall clock of t's
// location. The fraction is emitted only when microseconds are non-zero and no zone
// offset is appended.
func ISOFormat(t time.Time) string {
	ret := t.Format(isoLayout)
	if micro := t.Nanosecond() / 1000; micro != 0 {
		ret += fmt.Sprintf(".%06d", micro)
	}
	return ret
}

// ParseISO parses a timestamp produced by ISOFormat, or an RFC3339 value.
func ParseISO(value string) (time.Time, error) {
	for _, layout := range []string{isoLayout + ".999999999", time.RFC3339Nano} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: expected %s[.ffffff]", value, isoLayout)
}

package alert

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"opsworker/internal/pkg/errs"
)

// ParseDuration accepts Go durations extended with a day unit ("1d12h"),
// and bare integers, which count seconds.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.NewValueIsRequiredError("duration")
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return checkPositive(time.Duration(secs) * time.Second)
	}

	var days time.Duration
	if i := strings.IndexByte(s, 'd'); i >= 0 {
		n, err := strconv.Atoi(s[:i])
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause("duration", fmt.Errorf("bad day count in %q", s))
		}
		days = time.Duration(n) * 24 * time.Hour
		s = s[i+1:]
	}

	var rest time.Duration
	if s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause("duration", err)
		}
		rest = d
	}
	return checkPositive(days + rest)
}

func checkPositive(d time.Duration) (time.Duration, error) {
	if d <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("duration", d.String(), "1s", "")
	}
	return d, nil
}

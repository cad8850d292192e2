package model

import (
	"fmt"
	"strconv"
	"time"
)

// ParseISODuration converts an ISO-8601 duration string as returned by the
// videos endpoint (e.g. "PT5M30S", "P1DT2H") into a time.Duration. Only the
// day-and-smaller units the API emits are supported; a calendar unit such as
// months would be ambiguous and is rejected.
func ParseISODuration(s string) (time.Duration, error) {
	if len(s) == 0 || s[0] != 'P' {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}

	var (
		d      time.Duration
		num    string
		inTime bool
	)
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'T':
			if inTime || num != "" {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			inTime = true
		default:
			if num == "" {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
			}
			n, err := strconv.ParseInt(num, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", s, err)
			}
			var unit time.Duration
			switch {
			case r == 'W' && !inTime:
				unit = 7 * 24 * time.Hour
			case r == 'D' && !inTime:
				unit = 24 * time.Hour
			case r == 'H' && inTime:
				unit = time.Hour
			case r == 'M' && inTime:
				unit = time.Minute
			case r == 'S' && inTime:
				unit = time.Second
			default:
				return 0, fmt.Errorf("unsupported unit %q in ISO-8601 duration %q", string(r), s)
			}
			d += time.Duration(n) * unit
			num = ""
		}
	}
	if num != "" {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}
	return d, nil
}

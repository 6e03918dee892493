package ics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidDuration = errors.New("invalid duration")

// ParseDuration converts an RFC 5545 dur-value ("-PT15M", "P1D", "-P2W",
// "P1DT12H") into signed seconds.
func ParseDuration(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return 0, ErrInvalidDuration
	}

	var sign int64 = 1
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if !strings.HasPrefix(s, "P") || len(s) == 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}
	s = s[1:]

	var total int64
	inTime := false
	seen, timeSeen := false, false
	num := ""
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'T':
			if inTime || num != "" {
				return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
			}
			inTime = true
		default:
			if num == "" {
				return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
			}
			n, err := strconv.ParseInt(num, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
			}
			unit, ok := durationUnit(r, inTime)
			if !ok {
				return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
			}
			total += n * unit
			num = ""
			seen = true
			timeSeen = timeSeen || inTime
		}
	}
	if num != "" || !seen || (inTime && !timeSeen) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}
	return sign * total, nil
}

func durationUnit(r rune, inTime bool) (int64, bool) {
	if inTime {
		switch r {
		case 'H':
			return 3600, true
		case 'M':
			return 60, true
		case 'S':
			return 1, true
		}
		return 0, false
	}
	switch r {
	case 'W':
		return 7 * 86400, true
	case 'D':
		return 86400, true
	}
	return 0, false
}

package task

import "fmt"

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Malformed input degrades to 0 rather than failing; callers that accept
// user input are expected to validate with ValidateTimeFormat first.
func TimeToMinutes(t string) int {
	if len(t) < 5 || t[2] != ':' {
		return 0
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return 0
		}
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM".
// Values past midnight wrap, so 1560 renders as "02:00".
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", (m/60)%24, m%60)
}

// ValidateTimeFormat checks that s is a well-formed "HH:MM" clock time.
func ValidateTimeFormat(s string) error {
	if len(s) != 5 || s[2] != ':' {
		return ErrInvalidTimeFormat
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return ErrInvalidTimeFormat
		}
	}
	if s[3] > '5' || TimeToMinutes(s) >= 24*60 {
		return ErrInvalidTimeFormat
	}
	return nil
}

// TimesOverlap returns true if two "HH:MM" ranges overlap.
func TimesOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

package codec

import "time"

// Relative-date tokens. A token stored as a binding default is resolved to a
// concrete calendar date when the form is rendered, never at save time.
const (
	TokenToday            = "today"
	TokenTomorrow         = "tomorrow"
	TokenDayAfterTomorrow = "day-after-tomorrow"
	TokenNextWeek         = "next-week"
	TokenNextMonth        = "next-month"
)

const dateLayout = "2006-01-02"

// IsToken reports whether s is a recognized relative-date token.
func IsToken(s string) bool {
	switch s {
	case TokenToday, TokenTomorrow, TokenDayAfterTomorrow, TokenNextWeek, TokenNextMonth:
		return true
	}
	return false
}

// Resolve maps a relative-date token to a YYYY-MM-DD date computed from ref in
// ref's location. An unrecognized token resolves to ref's own date; the
// permissive fallback is deliberate.
func Resolve(token string, ref time.Time) string {
	switch token {
	case TokenTomorrow:
		return ref.AddDate(0, 0, 1).Format(dateLayout)
	case TokenDayAfterTomorrow:
		return ref.AddDate(0, 0, 2).Format(dateLayout)
	case TokenNextWeek:
		return ref.AddDate(0, 0, 7).Format(dateLayout)
	case TokenNextMonth:
		return nextMonth(ref).Format(dateLayout)
	default:
		return ref.Format(dateLayout)
	}
}

// nextMonth advances one calendar month keeping the day-of-month, clamped to
// the target month's length (Jan 31 -> Feb 28/29). AddDate would normalize
// past the month boundary instead.
func nextMonth(ref time.Time) time.Time {
	year, month, day := ref.Date()
	firstOfTarget := time.Date(year, month+1, 1, 0, 0, 0, 0, ref.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, ref.Location())
}

package i18n

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// Brazilian dates are written lowercase with dotted abbreviations, e.g.
// "sex." and "out.", whatever casing the locale tables use.
func ptBR(s string) string {
	return strings.ToLower(s)
}

func abbreviated(s string) string {
	return strings.TrimSuffix(ptBR(s), ".") + "."
}

// LongDate formats t as a full date, e.g. "sexta-feira, 17 de outubro de 2025"
// or "Friday, October 17, 2025".
func LongDate(t time.Time, tag string) string {
	if Normalize(tag) == Portuguese {
		return ptBR(monday.Format(t, "Monday, 2 de January de 2006", monday.LocalePtBR))
	}
	return monday.Format(t, "Monday, January 2, 2006", monday.LocaleEnUS)
}

// Time formats the hour and minute of t, 24h in Portuguese and 12h in English
func Time(t time.Time, tag string) string {
	if Normalize(tag) == Portuguese {
		return monday.Format(t, "15:04", monday.LocalePtBR)
	}
	return monday.Format(t, "03:04 PM", monday.LocaleEnUS)
}

// Hour formats only the hour of t
func Hour(t time.Time, tag string) string {
	if Normalize(tag) == Portuguese {
		return monday.Format(t, "15", monday.LocalePtBR)
	}
	return monday.Format(t, "03 PM", monday.LocaleEnUS)
}

// WeekdayShort returns the abbreviated weekday of t
func WeekdayShort(t time.Time, tag string) string {
	if Normalize(tag) == Portuguese {
		return abbreviated(monday.Format(t, "Mon", monday.LocalePtBR))
	}
	return monday.Format(t, "Mon", monday.LocaleEnUS)
}

// DayMonth formats day and abbreviated month, e.g. "17 de out." or "Oct 17"
func DayMonth(t time.Time, tag string) string {
	if Normalize(tag) == Portuguese {
		return monday.Format(t, "2 de ", monday.LocalePtBR) + abbreviated(monday.Format(t, "Jan", monday.LocalePtBR))
	}
	return monday.Format(t, "Jan 2", monday.LocaleEnUS)
}

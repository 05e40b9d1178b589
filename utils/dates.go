package utils

import (
	"strings"
	"time"
)

var dueDateLayouts = []struct {
	layout   string
	dateOnly bool
}{
	{time.RFC3339, false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02", true},
	{"1/2/2006", true},
	{"1/2/06", true},
	{"1/2", true},
	{"1-2-2006", true},
	{"1-2-06", true},
	{"1-2", true},
	{"January 2, 2006", true},
	{"January 2 2006", true},
	{"January 2", true},
}

// ParseDueDate разбирает дату платежа из произвольной строки.
// Понимает относительные даты (today, tomorrow, next week, next month)
// и несколько распространённых форматов. Дата без времени получает 09:00,
// нераспознанная строка превращается в завтра 09:00.
func ParseDueDate(raw string) time.Time {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	now := time.Now()

	switch {
	case strings.Contains(lower, "today"):
		return now
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1)
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7)
	case strings.Contains(lower, "next month"):
		return now.AddDate(0, 0, 30)
	}

	for _, l := range dueDateLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			// Формат без года, подставляем текущий
			t = time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
		}
		if l.dateOnly {
			t = time.Date(t.Year(), t.Month(), t.Day(), 9, 0, 0, 0, time.UTC)
		}
		return t
	}

	fallback := now.AddDate(0, 0, 1)
	return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 9, 0, 0, 0, time.UTC)
}

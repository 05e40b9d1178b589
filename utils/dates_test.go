package utils_test

import (
	"testing"
	"time"

	"github.com/valeriaulyamaeva/payment-reminders-app/utils"
)

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func TestParseDueDateISO(t *testing.T) {
	got := utils.ParseDueDate("2024-05-01 18:30:00")
	want := time.Date(2024, time.May, 1, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("дата не совпадает: получили %v, хотели %v", got, want)
	}
}

func TestParseDueDateBareDateGetsMorningTime(t *testing.T) {
	got := utils.ParseDueDate("2024-05-01")
	want := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("дата не совпадает: получили %v, хотели %v", got, want)
	}
}

func TestParseDueDateDashSeparated(t *testing.T) {
	got := utils.ParseDueDate("08-15")
	want := time.Date(time.Now().Year(), time.August, 15, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("дата не совпадает: получили %v, хотели %v", got, want)
	}

	got = utils.ParseDueDate("08-15-2024")
	want = time.Date(2024, time.August, 15, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("дата не совпадает: получили %v, хотели %v", got, want)
	}
}

func TestParseDueDateMonthNameWithoutYear(t *testing.T) {
	got := utils.ParseDueDate("August 15")
	want := time.Date(time.Now().Year(), time.August, 15, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("дата не совпадает: получили %v, хотели %v", got, want)
	}
}

func TestParseDueDateRelativeWords(t *testing.T) {
	now := time.Now()
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"today", now},
		{"tomorrow", now.AddDate(0, 0, 1)},
		{"next week", now.AddDate(0, 0, 7)},
		{"next month", now.AddDate(0, 0, 30)},
	}

	for _, tc := range cases {
		got := utils.ParseDueDate(tc.raw)
		diff := got.Sub(tc.want)
		if diff < -time.Minute || diff > time.Minute {
			t.Errorf("'%s': получили %v, хотели около %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseDueDateFallsBackToTomorrowMorning(t *testing.T) {
	got := utils.ParseDueDate("когда-нибудь потом")
	tomorrow := time.Now().AddDate(0, 0, 1)
	if !sameDay(got, tomorrow) {
		t.Errorf("ожидали завтрашний день, получили %v", got)
	}
	if got.Hour() != 9 || got.Minute() != 0 {
		t.Errorf("ожидали 09:00, получили %02d:%02d", got.Hour(), got.Minute())
	}
}

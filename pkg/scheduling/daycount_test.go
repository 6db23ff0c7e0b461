package scheduling

import (
	"testing"

	"eventdesk/pkg/model"
)

func TestDatesInRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		wantDays []string
	}{
		{
			name:  "single day",
			start: "2026-06-10", end: "2026-06-10",
			wantDays: []string{"2026-06-10"},
		},
		{
			name:  "three days",
			start: "2026-06-10", end: "2026-06-12",
			wantDays: []string{"2026-06-10", "2026-06-11", "2026-06-12"},
		},
		{
			name:  "across month boundary",
			start: "2026-06-29", end: "2026-07-02",
			wantDays: []string{"2026-06-29", "2026-06-30", "2026-07-01", "2026-07-02"},
		},
		{
			name:  "end before start",
			start: "2026-06-12", end: "2026-06-10",
			wantDays: nil,
		},
		{
			name:  "bad start date",
			start: "not-a-date", end: "2026-06-10",
			wantDays: nil,
		},
		{
			name:  "bad end date",
			start: "2026-06-10", end: "",
			wantDays: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DatesInRange(tt.start, tt.end)
			if len(got) != len(tt.wantDays) {
				t.Fatalf("DatesInRange(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.wantDays)
			}
			for i := range got {
				if got[i] != tt.wantDays[i] {
					t.Errorf("day[%d] = %s, want %s", i, got[i], tt.wantDays[i])
				}
			}
		})
	}
}

func TestDatesInRangeCapped(t *testing.T) {
	days := DatesInRange("2020-01-01", "2030-01-01")
	if len(days) != 366 {
		t.Errorf("expected runaway range to be capped at 366 days, got %d", len(days))
	}
}

func TestBuildDayCounts(t *testing.T) {
	bookings := []model.EventBooking{
		booking("b1", "2026-06-10", "2026-06-10", "10:00", "12:00"),
		booking("b2", "2026-06-10", "2026-06-12", "09:00", "21:00"),
		booking("b3", "2026-06-12", "2026-06-12", "15:00", "18:00"),
	}

	counts := BuildDayCounts(bookings, "")

	want := map[string]int{
		"2026-06-10": 2,
		"2026-06-11": 1,
		"2026-06-12": 2,
	}
	if len(counts) != len(want) {
		t.Fatalf("BuildDayCounts() has %d days, want %d: %v", len(counts), len(want), counts)
	}
	for day, n := range want {
		if counts[day] != n {
			t.Errorf("counts[%s] = %d, want %d", day, counts[day], n)
		}
	}
}

func TestBuildDayCountsExcludesBooking(t *testing.T) {
	bookings := []model.EventBooking{
		booking("b1", "2026-06-10", "2026-06-11", "10:00", "12:00"),
		booking("b2", "2026-06-10", "2026-06-10", "14:00", "16:00"),
	}

	counts := BuildDayCounts(bookings, "b1")

	if counts["2026-06-10"] != 1 {
		t.Errorf("counts[2026-06-10] = %d, want 1 with b1 excluded", counts["2026-06-10"])
	}
	if _, ok := counts["2026-06-11"]; ok {
		t.Error("2026-06-11 should have no count with b1 excluded")
	}
}

func TestBuildDayCountsEmpty(t *testing.T) {
	counts := BuildDayCounts(nil, "")
	if len(counts) != 0 {
		t.Errorf("BuildDayCounts(nil) = %v, want empty map", counts)
	}
}

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name  string
		count int
		limit int
		want  Tier
	}{
		{"empty day", 0, 4, TierAvailable},
		{"one booking", 1, 4, TierAvailable},
		{"two bookings is limited", 2, 4, TierLimited},
		{"three bookings is limited", 3, 4, TierLimited},
		{"at the limit", 4, 4, TierUnavailable},
		{"over the limit", 5, 4, TierUnavailable},
		{"limit of one fills immediately", 1, 1, TierUnavailable},
		{"limit of two skips limited", 2, 2, TierUnavailable},
		{"high limit", 2, 20, TierLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDay(tt.count, tt.limit); got != tt.want {
				t.Errorf("ClassifyDay(%d, %d) = %s, want %s", tt.count, tt.limit, got, tt.want)
			}
		})
	}
}

func TestIsDateSelectable(t *testing.T) {
	tests := []struct {
		count int
		limit int
		want  bool
	}{
		{0, 4, true},
		{3, 4, true},
		{4, 4, false},
		{5, 4, false},
		{0, 1, true},
		{1, 1, false},
	}

	for _, tt := range tests {
		if got := IsDateSelectable(tt.count, tt.limit); got != tt.want {
			t.Errorf("IsDateSelectable(%d, %d) = %v, want %v", tt.count, tt.limit, got, tt.want)
		}
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		month     string
		wantFirst string
		wantLast  string
		wantOK    bool
	}{
		{"2026-06", "2026-06-01", "2026-06-30", true},
		{"2026-02", "2026-02-01", "2026-02-28", true},
		{"2028-02", "2028-02-01", "2028-02-29", true},
		{"2026-12", "2026-12-01", "2026-12-31", true},
		{"2026-13", "", "", false},
		{"June 2026", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			first, last, ok := MonthWindow(tt.month)
			if ok != tt.wantOK {
				t.Fatalf("MonthWindow(%q) ok = %v, want %v", tt.month, ok, tt.wantOK)
			}
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("MonthWindow(%q) = %s..%s, want %s..%s",
					tt.month, first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestNextSelection(t *testing.T) {
	tests := []struct {
		name         string
		currentStart string
		clicked      string
		wantStart    string
		wantEnd      string
	}{
		{"first click starts range", "", "2026-06-10", "2026-06-10", ""},
		{"second click completes range", "2026-06-10", "2026-06-12", "2026-06-10", "2026-06-12"},
		{"click on start makes single day range", "2026-06-10", "2026-06-10", "2026-06-10", "2026-06-10"},
		{"earlier click restarts range", "2026-06-10", "2026-06-05", "2026-06-05", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := NextSelection(tt.currentStart, tt.clicked)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("NextSelection(%q, %q) = (%q, %q), want (%q, %q)",
					tt.currentStart, tt.clicked, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

package scheduling

import "testing"

func TestDateRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{
			name:   "identical ranges",
			start1: "2026-06-10", end1: "2026-06-12",
			start2: "2026-06-10", end2: "2026-06-12",
			want: true,
		},
		{
			name:   "partial overlap",
			start1: "2026-06-10", end1: "2026-06-12",
			start2: "2026-06-11", end2: "2026-06-15",
			want: true,
		},
		{
			name:   "shared boundary day overlaps",
			start1: "2026-06-10", end1: "2026-06-12",
			start2: "2026-06-12", end2: "2026-06-14",
			want: true,
		},
		{
			name:   "one range inside the other",
			start1: "2026-06-01", end1: "2026-06-30",
			start2: "2026-06-10", end2: "2026-06-12",
			want: true,
		},
		{
			name:   "single day ranges on the same day",
			start1: "2026-06-10", end1: "2026-06-10",
			start2: "2026-06-10", end2: "2026-06-10",
			want: true,
		},
		{
			name:   "adjacent but disjoint",
			start1: "2026-06-10", end1: "2026-06-12",
			start2: "2026-06-13", end2: "2026-06-14",
			want: false,
		},
		{
			name:   "months apart",
			start1: "2026-06-10", end1: "2026-06-12",
			start2: "2026-08-01", end2: "2026-08-03",
			want: false,
		},
		{
			name:   "across a year boundary",
			start1: "2026-12-30", end1: "2027-01-02",
			start2: "2027-01-01", end2: "2027-01-05",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateRangesOverlap(tt.start1, tt.end1, tt.start2, tt.end2)
			if got != tt.want {
				t.Errorf("DateRangesOverlap(%s..%s, %s..%s) = %v, want %v",
					tt.start1, tt.end1, tt.start2, tt.end2, got, tt.want)
			}

			// Overlap is symmetric in the two ranges.
			sym := DateRangesOverlap(tt.start2, tt.end2, tt.start1, tt.end1)
			if sym != got {
				t.Errorf("DateRangesOverlap is not symmetric for %s", tt.name)
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"9:05", 545, true},
		{"10:00:00", 600, true},
		{"10:00:00.000", 600, true},
		{"", 0, false},
		{"24:00", 0, false},
		{"10:60", 0, false},
		{"-1:00", 0, false},
		{"noon", 0, false},
		{"10", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseTimeOfDay(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{
			name:   "clear overlap",
			start1: "10:00", end1: "14:00",
			start2: "12:00", end2: "16:00",
			want: true,
		},
		{
			name:   "back to back do not conflict",
			start1: "10:00", end1: "12:00",
			start2: "12:00", end2: "14:00",
			want: false,
		},
		{
			name:   "one inside the other",
			start1: "09:00", end1: "18:00",
			start2: "12:00", end2: "13:00",
			want: true,
		},
		{
			name:   "identical ranges",
			start1: "10:00", end1: "12:00",
			start2: "10:00", end2: "12:00",
			want: true,
		},
		{
			name:   "disjoint morning and evening",
			start1: "08:00", end1: "10:00",
			start2: "18:00", end2: "20:00",
			want: false,
		},
		{
			name:   "one minute of overlap",
			start1: "10:00", end1: "12:01",
			start2: "12:00", end2: "14:00",
			want: true,
		},
		{
			name:   "missing time on first range",
			start1: "", end1: "12:00",
			start2: "10:00", end2: "14:00",
			want: false,
		},
		{
			name:   "missing time on second range",
			start1: "10:00", end1: "12:00",
			start2: "10:00", end2: "",
			want: false,
		},
		{
			name:   "unparseable time",
			start1: "10:00", end1: "garbage",
			start2: "10:00", end2: "14:00",
			want: false,
		},
		{
			name:   "seconds suffix tolerated",
			start1: "10:00:00", end1: "14:00:00",
			start2: "12:00", end2: "16:00",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeRangesOverlap(tt.start1, tt.end1, tt.start2, tt.end2)
			if got != tt.want {
				t.Errorf("TimeRangesOverlap(%s-%s, %s-%s) = %v, want %v",
					tt.start1, tt.end1, tt.start2, tt.end2, got, tt.want)
			}

			sym := TimeRangesOverlap(tt.start2, tt.end2, tt.start1, tt.end1)
			if sym != got {
				t.Errorf("TimeRangesOverlap is not symmetric for %s", tt.name)
			}
		})
	}
}

func TestValidDate(t *testing.T) {
	valid := []string{"2026-01-01", "2026-12-31", "2028-02-29"}
	for _, d := range valid {
		if !ValidDate(d) {
			t.Errorf("ValidDate(%q) = false, want true", d)
		}
	}

	invalid := []string{"", "2026-13-01", "2026-02-30", "10-06-2026", "2026/06/10", "someday"}
	for _, d := range invalid {
		if ValidDate(d) {
			t.Errorf("ValidDate(%q) = true, want false", d)
		}
	}
}

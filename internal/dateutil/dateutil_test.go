package dateutil

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15", time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("uses location", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		got, err := ParseDate("2025-01-15", loc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Location() != loc {
			t.Errorf("location = %v, want %v", got.Location(), loc)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("", time.Local)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025", time.UTC)
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{input: "monday", want: time.Monday},
		{input: "Sunday", want: time.Sunday},
		{input: " sat ", want: time.Saturday},
		{input: "thu", want: time.Thursday},
		{input: "mo", wantErr: true},
		{input: "funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWeekday) {
					t.Errorf("got error %v, want %v", err, ErrInvalidWeekday)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	got := TruncateToDay(input)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Reference date: Friday, January 10, 2025
	friday := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "empty returns today", input: "", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "today keyword", input: "today", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "tomorrow", input: "tomorrow", want: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)},
		{name: "yesterday", input: "Yesterday", want: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)},
		{name: "next week", input: "next-week", want: time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)},
		{name: "last week", input: "last-week", want: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)},
		{name: "next month", input: "next-month", want: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
		{name: "last month across year", input: "last-month", want: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)},
		{name: "weekday is next occurrence", input: "  monday  ", want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{name: "same weekday is a week ahead", input: "friday", want: time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)},
		{name: "next-weekday", input: "next-wednesday", want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "past absolute date allowed", input: "2020-01-01", want: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, friday)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRelativeDate_MonthClamp(t *testing.T) {
	jan31 := time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)
	got, err := ParseRelativeDate("next-month", jan31)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRelativeDate_Errors(t *testing.T) {
	friday := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid format US style", input: "01-10-2025"},
		{name: "invalid format slash", input: "10/01/2025"},
		{name: "typo weekday", input: "mondya"},
		{name: "typo next-weekday", input: "next-mondya"},
		{name: "random text", input: "foo"},
		{name: "next- without weekday", input: "next-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRelativeDate(tt.input, friday)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
			}
		})
	}
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"forward_clamps", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"backward_clamps", time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC), -1, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"year_rollover", time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), 1, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"unchanged_day", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), -13, time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AddMonthsClamped(tc.in, tc.n); !got.Equal(tc.want) {
				t.Errorf("AddMonthsClamped(%v, %d) = %v, want %v", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestStartOfDay_MidnightGap(t *testing.T) {
	tests := []struct {
		zone      string
		y         int
		m         time.Month
		d         int
		wantClock string
	}{
		{"America/Santiago", 2024, time.September, 8, "01:00"},
		{"America/Asuncion", 2023, time.October, 1, "01:00"},
		{"America/Havana", 2024, time.March, 10, "01:00"},
		{"America/Santiago", 2024, time.September, 9, "00:00"},
		{"America/New_York", 2024, time.March, 10, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.zone+"/"+time.Date(tt.y, tt.m, tt.d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), func(t *testing.T) {
			loc, err := time.LoadLocation(tt.zone)
			if err != nil {
				t.Fatalf("LoadLocation: %v", err)
			}
			got := StartOfDay(tt.y, tt.m, tt.d, loc)
			if y, m, d := got.Date(); y != tt.y || m != tt.m || d != tt.d {
				t.Errorf("StartOfDay = %v, want %d-%02d-%02d", got, tt.y, tt.m, tt.d)
			}
			if clock := got.Format("15:04"); clock != tt.wantClock {
				t.Errorf("day starts at %s, want %s", clock, tt.wantClock)
			}
			if again := TruncateToDay(got); !again.Equal(got) {
				t.Errorf("TruncateToDay(%v) = %v, want it unchanged", got, again)
			}
		})
	}
}

func TestAddDays_AcrossMidnightGap(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	start := StartOfDay(2024, time.September, 1, santiago)
	for n := 0; n < 14; n++ {
		got := AddDays(start, n)
		if got.Day() != 1+n {
			t.Fatalf("AddDays(Sep 1, %d) = %v, want Sep %d", n, got, 1+n)
		}
	}

	parsed, err := ParseDate("2024-09-08", santiago)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if parsed.Day() != 8 {
		t.Errorf("ParseDate(2024-09-08) = %v, want Sep 8", parsed)
	}

	asuncion, err := time.LoadLocation("America/Asuncion")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	aug31 := StartOfDay(2023, time.August, 31, asuncion)
	if got := AddMonthsClamped(aug31, 1); got.Month() != time.September || got.Day() != 30 {
		t.Errorf("AddMonthsClamped(Aug 31, 1) = %v, want Sep 30", got)
	}
	sep1 := StartOfDay(2023, time.September, 1, asuncion)
	if got := AddMonthsClamped(sep1, 1); got.Month() != time.October || got.Day() != 1 {
		t.Errorf("AddMonthsClamped(Sep 1, 1) = %v, want Oct 1", got)
	}
}

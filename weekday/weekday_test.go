package weekday

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "valid", in: "01-05-2021"},
		{name: "leap day", in: "29-02-2020"},
		{name: "unpadded components", in: "1-5-2021", wantErr: true},
		{name: "impossible date", in: "31-02-2021", wantErr: true},
		{name: "non-leap february", in: "29-02-2021", wantErr: true},
		{name: "month out of range", in: "01-13-2021", wantErr: true},
		{name: "day zero", in: "00-05-2021", wantErr: true},
		{name: "iso order", in: "2021-05-01", wantErr: true},
		{name: "slash separators", in: "01/05/2021", wantErr: true},
		{name: "non-numeric", in: "aa-bb-cccc", wantErr: true},
		{name: "trailing garbage", in: "01-05-2021x", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadDate) {
					t.Fatalf("ParseDate(%q) error = %v, want ErrBadDate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.in, err)
			}
			if got.Hour() != 0 || got.Location() != time.UTC {
				t.Fatalf("ParseDate(%q) = %v, want midnight UTC", tt.in, got)
			}
		})
	}
}

func TestCount_Simple(t *testing.T) {
	got, err := Count("01-05-2021", "30-05-2021", time.Sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Fatalf("Count = %d, want 5", got)
	}
}

func TestCount_ParseErrors(t *testing.T) {
	if _, err := Count("31-02-2021", "30-05-2021", time.Sunday); !errors.Is(err, ErrBadDate) {
		t.Fatalf("bad start date: error = %v, want ErrBadDate", err)
	}
	if _, err := Count("01-05-2021", "1-5-2021", time.Sunday); !errors.Is(err, ErrBadDate) {
		t.Fatalf("bad end date: error = %v, want ErrBadDate", err)
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestCountRange(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		to    string
		wants map[time.Weekday]int
	}{
		{
			name: "full month",
			from: "01-05-2021",
			to:   "30-05-2021",
			wants: map[time.Weekday]int{
				time.Monday:    4,
				time.Tuesday:   4,
				time.Wednesday: 4,
				time.Thursday:  4,
				time.Friday:    4,
				time.Saturday:  5,
				time.Sunday:    5,
			},
		},
		{
			name: "single day",
			from: "01-05-2021",
			to:   "01-05-2021",
			wants: map[time.Weekday]int{
				time.Monday:    0,
				time.Tuesday:   0,
				time.Wednesday: 0,
				time.Thursday:  0,
				time.Friday:    0,
				time.Saturday:  1,
				time.Sunday:    0,
			},
		},
		{
			name: "exactly one week",
			from: "01-05-2021",
			to:   "07-05-2021",
			wants: map[time.Weekday]int{
				time.Monday:    1,
				time.Tuesday:   1,
				time.Wednesday: 1,
				time.Thursday:  1,
				time.Friday:    1,
				time.Saturday:  1,
				time.Sunday:    1,
			},
		},
		{
			name: "inverted range",
			from: "02-05-2021",
			to:   "01-05-2021",
			wants: map[time.Weekday]int{
				time.Monday:    0,
				time.Tuesday:   0,
				time.Wednesday: 0,
				time.Thursday:  0,
				time.Friday:    0,
				time.Saturday:  0,
				time.Sunday:    0,
			},
		},
		{
			name: "partial second week",
			from: "01-05-2021",
			to:   "13-05-2021",
			wants: map[time.Weekday]int{
				time.Monday:    2,
				time.Tuesday:   2,
				time.Wednesday: 2,
				time.Thursday:  2,
				time.Friday:    1,
				time.Saturday:  2,
				time.Sunday:    2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := mustDate(t, tt.from)
			end := mustDate(t, tt.to)
			for wd, want := range tt.wants {
				if got := CountRange(start, end, wd); got != want {
					t.Fatalf("CountRange(%s, %s, %v) = %d, want %d", tt.from, tt.to, wd, got, want)
				}
			}
		})
	}
}

package stockfolio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-06-03", want: NewDate(2024, time.June, 3)},
		{in: "2024-6-3", want: NewDate(2024, time.June, 3)},
		{in: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	if got := NewDate(2024, time.June, 3).String(); got != "2024-06-03" {
		t.Errorf("String() = %q, want %q", got, "2024-06-03")
	}
}

func TestDate_Add(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		i    int
		want Date
	}{
		{"within month", NewDate(2024, time.June, 3), 4, NewDate(2024, time.June, 7)},
		{"across month", NewDate(2024, time.June, 28), 5, NewDate(2024, time.July, 3)},
		{"across year", NewDate(2024, time.December, 31), 1, NewDate(2025, time.January, 1)},
		{"backward", NewDate(2024, time.June, 1), -1, NewDate(2024, time.May, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Add(tt.i); got != tt.want {
				t.Errorf("%s.Add(%d) = %s, want %s", tt.d, tt.i, got, tt.want)
			}
		})
	}
}

func TestRange_Len(t *testing.T) {
	r := NewRange(NewDate(2024, time.June, 1), NewDate(2024, time.June, 30))
	if got := r.Len(); got != 30 {
		t.Errorf("Len() = %d, want 30", got)
	}
	one := NewRange(day(5), day(5))
	if got := one.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestRange_Days(t *testing.T) {
	var got []Date
	for d := range NewRange(day(28), july(2)).Days() {
		got = append(got, d)
	}
	want := []Date{day(28), day(29), day(30), july(1), july(2)}
	if len(got) != len(want) {
		t.Fatalf("Days() yielded %d dates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

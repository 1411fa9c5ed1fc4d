package stockfolio

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(1520), "$1,520.00"},
		{USD(0.5), "$0.50"},
		{USD(-300), "-$300.00"},
		{M(1000, "JPY"), "¥1,000"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a, b := USD(100.5), USD(50.25)
	if got := a.Add(b); !got.Equal(USD(150.75)) {
		t.Errorf("Add() = %s", got)
	}
	if got := a.Sub(b); !got.Equal(USD(50.25)) {
		t.Errorf("Sub() = %s", got)
	}
	if !USD(0).IsZero() || !a.IsPositive() || !USD(-1).IsNegative() {
		t.Errorf("sign predicates are wrong")
	}
}

func TestQuantity(t *testing.T) {
	q := Q(100)
	if got := q.Sub(Q(40)); !got.Equal(Q(60)) {
		t.Errorf("Sub() = %s, want 60", got)
	}
	if !Q(5).LessThan(Q(10)) || !Q(10).GreaterThan(Q(5)) {
		t.Errorf("comparisons are wrong")
	}
	if got := Q(0.5).String(); got != "0.5" {
		t.Errorf("String() = %q, want 0.5", got)
	}

	parsed, err := ParseQuantity("12.25")
	if err != nil {
		t.Fatalf("ParseQuantity() error = %v", err)
	}
	if parsed.InexactFloat64() != 12.25 {
		t.Errorf("ParseQuantity() = %s, want 12.25", parsed)
	}
	if _, err := ParseQuantity("many"); err == nil {
		t.Errorf("ParseQuantity(many) error = nil")
	}
}

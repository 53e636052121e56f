package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"2.365", "2.37"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPeriodConversions(t *testing.T) {
	m := NewMoney(100)
	if got := m.Annual().String(); got != "1200.00" {
		t.Fatalf("Annual got %s", got)
	}
	if got := m.Annual().Monthly().String(); got != "100.00" {
		t.Fatalf("Monthly after Annual got %s", got)
	}
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := NewMoney(10.10)
	b := NewMoney(5.05)
	if got := a.Add(b).String(); got != "15.15" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "5.05" {
		t.Fatalf("Sub got %s", got)
	}
	if got := a.Mul(stddec.NewFromFloat(2.5)).String(); got != "25.25" {
		t.Fatalf("Mul got %s", got)
	}
	if got := a.Div(stddec.NewFromFloat(2)).String(); got != "5.05" {
		t.Fatalf("Div got %s", got)
	}

	if !b.LessThan(a) || !a.GreaterThan(b) || !a.Equal(NewMoney(10.10)) {
		t.Fatalf("comparison logic failure")
	}
	if !Zero().IsZero() {
		t.Fatalf("Zero should be zero")
	}
	if !NewMoney(-0.01).IsNegative() || a.IsNegative() {
		t.Fatalf("IsNegative logic failure")
	}
	if !Min(a, b).Equal(b) || !Max(a, b).Equal(a) {
		t.Fatalf("Min/Max failed")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{999.99, "$999.99"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-45000, "-$45,000.00"},
	}
	for _, c := range cases {
		if got := NewMoney(c.in).Format(); got != c.want {
			t.Fatalf("Format(%v) got %s want %s", c.in, got, c.want)
		}
	}
}

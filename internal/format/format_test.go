package format

import (
	"testing"

	"StockDash/internal/model"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "N/A"},
		{model.Unknown, "N/A"},
		{2.95e12, "$2.95T"},
		{1.5e9, "$1.50B"},
		{42e6, "$42.00M"},
		{1234, "$1.23K"},
		{189.5, "$189.50"},
	}
	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "N/A"},
		{model.Unknown, "N/A"},
		{52e6, "52.00M"},
		{1.2e9, "1.20B"},
		{999, "999"},
	}
	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVolume(t *testing.T) {
	if got := Volume(52000000); got != "52,000,000" {
		t.Errorf("Volume = %q", got)
	}
}

func TestPercentAndRatio(t *testing.T) {
	if got := Percent(0.1534); got != "15.34%" {
		t.Errorf("Percent = %q", got)
	}
	if got := Percent(model.Unknown); got != "N/A" {
		t.Errorf("Percent(Unknown) = %q", got)
	}
	if got := Ratio(28.456); got != "28.46" {
		t.Errorf("Ratio = %q", got)
	}
	if got := Ratio(model.Unknown); got != "N/A" {
		t.Errorf("Ratio(Unknown) = %q", got)
	}
}

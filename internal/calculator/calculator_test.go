package calculator

import (
	"math"
	"testing"
	"time"

	"StockDash/internal/model"
)

func pointsFromCloses(closes []float64) []model.PricePoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{Date: start.AddDate(0, 0, i), Close: c}
	}
	return points
}

func TestCalculateSMA(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}
	got, err := CalculateSMA(prices, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("expected 3, got %v", got)
	}

	// trailing window only
	got, err = CalculateSMA(prices, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4.5 {
		t.Errorf("expected 4.5, got %v", got)
	}

	if _, err := CalculateSMA(prices, 6); err == nil {
		t.Error("expected error when data shorter than period")
	}
	if _, err := CalculateSMA(prices, 0); err == nil {
		t.Error("expected error for non-positive period")
	}
}

func TestRollingSMA(t *testing.T) {
	points := pointsFromCloses([]float64{1, 2, 3, 4, 5, 6})
	got := RollingSMA(points, 3)
	if len(got) != 6 {
		t.Fatalf("expected aligned output, got %d", len(got))
	}
	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Error("expected NaN before the window fills")
	}
	want := []float64{2, 3, 4, 5}
	for i, w := range want {
		if got[i+2] != w {
			t.Errorf("position %d: expected %v, got %v", i+2, w, got[i+2])
		}
	}
}

func TestCalculateRSI_AllGainsIsHundred(t *testing.T) {
	points := pointsFromCloses([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	got, err := CalculateRSI(points, 14)
	if err != nil {
		t.Fatal(err)
	}
	if got != 100 {
		t.Errorf("expected RSI 100 for monotonic gains, got %v", got)
	}
}

func TestCalculateRSI_InsufficientDataDefaults(t *testing.T) {
	points := pointsFromCloses([]float64{1, 2, 3})
	got, err := CalculateRSI(points, 14)
	if err != nil {
		t.Fatal(err)
	}
	if got != 50 {
		t.Errorf("expected default 50, got %v", got)
	}
}

func TestCalculateRSI_Bounded(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + 5*math.Sin(float64(i)/3)
	}
	got, err := CalculateRSI(pointsFromCloses(closes), 14)
	if err != nil {
		t.Fatal(err)
	}
	if got < 0 || got > 100 {
		t.Errorf("RSI out of range: %v", got)
	}
}

func TestCalculateBollinger(t *testing.T) {
	// constant closes: zero deviation, all bands at the mean
	points := pointsFromCloses([]float64{
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	})
	upper, middle, lower, err := CalculateBollinger(points, 20, 2)
	if err != nil {
		t.Fatal(err)
	}
	if upper != 5 || middle != 5 || lower != 5 {
		t.Errorf("expected collapsed bands at 5, got %v/%v/%v", upper, middle, lower)
	}

	if _, _, _, err := CalculateBollinger(points[:10], 20, 2); err == nil {
		t.Error("expected error when data shorter than period")
	}
}

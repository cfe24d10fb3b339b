package calculator

import (
	"errors"
	"math"

	"StockDash/internal/model"
)

// CalculateBollinger returns the Bollinger bands (upper, middle, lower)
// over the trailing window: 20-day SMA plus/minus stdDevs standard
// deviations of the closes.
func CalculateBollinger(points []model.PricePoint, period int, stdDevs float64) (upper, middle, lower float64, err error) {
	if period <= 0 {
		return 0, 0, 0, errors.New("period must be positive")
	}
	if len(points) < period {
		return 0, 0, 0, errors.New("not enough data for Bollinger calculation")
	}

	closes := extractCloses(points)
	window := closes[len(closes)-period:]

	mean := 0.0
	for _, c := range window {
		mean += c
	}
	mean /= float64(period)

	variance := 0.0
	for _, c := range window {
		variance += (c - mean) * (c - mean)
	}
	sd := math.Sqrt(variance / float64(period))

	return mean + stdDevs*sd, mean, mean - stdDevs*sd, nil
}

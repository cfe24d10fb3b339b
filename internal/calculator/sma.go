package calculator

import (
	"errors"
	"math"

	"StockDash/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// CalculateMA20 returns the 20-day simple moving average from daily points.
func CalculateMA20(points []model.PricePoint) (float64, error) {
	return CalculateSMA(extractCloses(points), 20)
}

// CalculateMA50 returns the 50-day simple moving average from daily points.
func CalculateMA50(points []model.PricePoint) (float64, error) {
	return CalculateSMA(extractCloses(points), 50)
}

// RollingSMA returns a per-point moving average aligned with the input,
// for chart overlays. Positions with fewer than period points carry NaN.
func RollingSMA(points []model.PricePoint, period int) []float64 {
	out := make([]float64, len(points))
	sum := 0.0
	for i, p := range points {
		sum += p.Close
		if i >= period {
			sum -= points[i-period].Close
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

func extractCloses(points []model.PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}

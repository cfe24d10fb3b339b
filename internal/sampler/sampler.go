// Package sampler bounds oversized price series. Two independent
// policies: Bound caps what is kept for tables, persistence and export
// while preserving recent-data fidelity; Decimate thins what is plotted.
// Both are pure transforms and never mutate their input.
package sampler

import (
	"sort"

	"StockDash/internal/model"
)

// Bound caps points at roughly maxRows by keeping the most recent
// maxRows/2 points at full density and every sampleRate-th point of the
// older remainder. Series at or under maxRows are returned as-is. The
// most recent point always survives; the earliest point survives only
// when it lands on a sample boundary.
func Bound(points []model.PricePoint, maxRows int) []model.PricePoint {
	if maxRows <= 0 || len(points) <= maxRows {
		return points
	}

	tailLen := maxRows / 2
	if tailLen < 1 {
		tailLen = 1
	}
	head := points[:len(points)-tailLen]
	tail := points[len(points)-tailLen:]

	sampleRate := len(head) / tailLen
	if sampleRate < 1 {
		sampleRate = 1
	}

	out := make([]model.PricePoint, 0, tailLen+len(head)/sampleRate+1)
	for i := 0; i < len(head); i += sampleRate {
		out = append(out, head[i])
	}
	out = append(out, tail...)

	// Segments are internally ordered and non-overlapping, so this is
	// effectively a no-op append; keep the sort as the ordering contract.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Decimate thins a series for plotting: above threshold points, keep
// every max(1, len/target)-th point uniformly. No head/tail split. The
// returned slice is independent of the input, which stays intact for
// tables and CSV export.
func Decimate(points []model.PricePoint, threshold, target int) []model.PricePoint {
	if threshold <= 0 || target <= 0 || len(points) <= threshold {
		return points
	}

	rate := len(points) / target
	if rate < 1 {
		rate = 1
	}

	out := make([]model.PricePoint, 0, len(points)/rate+1)
	for i := 0; i < len(points); i += rate {
		out = append(out, points[i])
	}
	return out
}

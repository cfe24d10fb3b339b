// Package export writes fetched series as CSV downloads.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"StockDash/internal/model"
)

// WriteSeries writes points as CSV with a Date,Open,High,Low,Close,Volume
// header. Callers must pass the full-resolution (bounded) series, never a
// chart-decimated copy.
func WriteSeries(w io.Writer, points []model.PricePoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Open", "High", "Low", "Close", "Volume"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			p.Date.Format("2006-01-02"),
			strconv.FormatFloat(p.Open, 'f', -1, 64),
			strconv.FormatFloat(p.High, 'f', -1, 64),
			strconv.FormatFloat(p.Low, 'f', -1, 64),
			strconv.FormatFloat(p.Close, 'f', -1, 64),
			strconv.FormatInt(p.Volume, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

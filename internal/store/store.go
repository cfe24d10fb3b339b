package store

import (
	"time"

	"StockDash/internal/model"
)

// Store persists fetched series and the user-curated lists. Rows come
// back as immutable value records; all timestamps are set by the write
// path, never by the caller.
type Store interface {
	// ReplaceSeries swaps the stored history for symbol with points.
	ReplaceSeries(symbol string, points []model.PricePoint) error
	// Series returns the stored history for symbol, ascending by date.
	Series(symbol string) ([]model.PricePoint, error)

	AddWatch(symbol, company, notes string) error
	RemoveWatch(symbol string) error
	Watchlist() ([]model.WatchlistEntry, error)

	AddPosition(symbol string, shares, purchasePrice float64, purchaseDate time.Time) error
	UpdatePositionPrice(symbol string, price float64) error
	RemovePosition(id int64) error
	Positions() ([]model.Position, error)

	// RecordView upserts a view-history row, bumping the view counter.
	RecordView(symbol, company string, price float64, period string) error
	RecentViews(limit int) ([]model.ViewRecord, error)

	Close() error
}

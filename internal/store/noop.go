package store

import (
	"time"

	"StockDash/internal/model"
)

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) ReplaceSeries(_ string, _ []model.PricePoint) error { return nil }
func (n *NoopStore) Series(_ string) ([]model.PricePoint, error)        { return nil, nil }
func (n *NoopStore) AddWatch(_, _, _ string) error                      { return nil }
func (n *NoopStore) RemoveWatch(_ string) error                         { return nil }
func (n *NoopStore) Watchlist() ([]model.WatchlistEntry, error)         { return nil, nil }
func (n *NoopStore) AddPosition(_ string, _, _ float64, _ time.Time) error {
	return nil
}
func (n *NoopStore) UpdatePositionPrice(_ string, _ float64) error { return nil }
func (n *NoopStore) RemovePosition(_ int64) error                  { return nil }
func (n *NoopStore) Positions() ([]model.Position, error)          { return nil, nil }
func (n *NoopStore) RecordView(_, _ string, _ float64, _ string) error {
	return nil
}
func (n *NoopStore) RecentViews(_ int) ([]model.ViewRecord, error) { return nil, nil }
func (n *NoopStore) Close() error                                  { return nil }

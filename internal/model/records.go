package model

import "time"

// WatchlistEntry is a persisted watchlist row. Entries are deactivated
// rather than deleted so re-adding a symbol restores its notes.
type WatchlistEntry struct {
	ID      int64
	Symbol  string
	Company string
	Notes   string
	Active  bool
	AddedAt time.Time
}

// Position is a persisted portfolio holding. CurrentPrice is refreshed
// by the price-update path; CreatedAt/UpdatedAt are set by the store on
// write, never mutated in place by callers.
type Position struct {
	ID            int64
	Symbol        string
	Shares        float64
	PurchasePrice float64
	PurchaseDate  time.Time
	CurrentPrice  float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MarketValue returns shares times the last known price.
func (p Position) MarketValue() float64 { return p.Shares * p.CurrentPrice }

// GainLoss returns the unrealized profit or loss for the position.
func (p Position) GainLoss() float64 {
	return (p.CurrentPrice - p.PurchasePrice) * p.Shares
}

// ViewRecord tracks how often and how recently a symbol was viewed.
type ViewRecord struct {
	Symbol     string
	Company    string
	LastViewed time.Time
	ViewCount  int64
	LastPrice  float64
	Period     string
}

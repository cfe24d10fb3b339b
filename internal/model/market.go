package model

import (
	"math"
	"time"
)

// PricePoint represents one daily OHLCV bar.
type PricePoint struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Series holds the price history returned for one symbol+period request.
// Points are ordered ascending by date.
type Series struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.Points) }

// Last returns the most recent point, or a zero PricePoint for an empty series.
func (s *Series) Last() PricePoint {
	if len(s.Points) == 0 {
		return PricePoint{}
	}
	return s.Points[len(s.Points)-1]
}

// Unknown marks a quote field the provider did not report.
var Unknown = math.NaN()

// IsUnknown reports whether a quote field carries the Unknown sentinel.
func IsUnknown(v float64) bool { return math.IsNaN(v) }

// Quote holds per-symbol metadata from the provider. Numeric fields the
// provider omits are set to Unknown rather than zero, since zero is a
// legal value for several of them.
type Quote struct {
	Symbol        string
	ShortName     string
	Currency      string
	Price         float64 // current / last traded price
	PreviousClose float64
	Open          float64
	DayHigh       float64
	DayLow        float64
	High52w       float64
	Low52w        float64
	Volume        float64
	AvgVolume     float64
	MarketCap     float64
	TrailingPE    float64
	DividendYield float64
	ReturnOnEq    float64
	ProfitMargin  float64
	DebtToEquity  float64
}

// NewQuote returns a Quote with every numeric field set to Unknown.
func NewQuote(symbol string) Quote {
	return Quote{
		Symbol:        symbol,
		Price:         Unknown,
		PreviousClose: Unknown,
		Open:          Unknown,
		DayHigh:       Unknown,
		DayLow:        Unknown,
		High52w:       Unknown,
		Low52w:        Unknown,
		Volume:        Unknown,
		AvgVolume:     Unknown,
		MarketCap:     Unknown,
		TrailingPE:    Unknown,
		DividendYield: Unknown,
		ReturnOnEq:    Unknown,
		ProfitMargin:  Unknown,
		DebtToEquity:  Unknown,
	}
}

// HasPrice reports whether the provider returned a current price,
// the cheap liveness check used before a full history fetch.
func (q Quote) HasPrice() bool { return !IsUnknown(q.Price) }

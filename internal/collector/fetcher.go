package collector

import (
	"fmt"
	"time"

	"StockDash/internal/model"
)

// Period is a historical lookback window.
type Period string

const (
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	PeriodMax Period = "max"
)

// Periods lists every supported lookback window, shortest first.
var Periods = []Period{Period1Mo, Period3Mo, Period6Mo, Period1Y, Period2Y, Period5Y, PeriodMax}

// ParsePeriod validates a period string.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchHistory(symbol string, period Period) ([]model.PricePoint, error)
	FetchQuote(symbol string) (model.Quote, error)
	Name() string
}

// Validate is a cheap pre-flight: it reports whether the provider knows a
// current or last-traded price for the symbol.
func Validate(f Fetcher, symbol string) bool {
	q, err := f.FetchQuote(symbol)
	return err == nil && q.HasPrice()
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	History      []model.PricePoint
	Quote        model.Quote
	HistoryErr   error
	QuoteErr     error
	HistoryCalls int
	QuoteCalls   int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ string, _ Period) ([]model.PricePoint, error) {
	m.HistoryCalls++
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	if m.History != nil {
		return m.History, nil
	}
	return GenerateMockPoints(100, 30), nil
}

func (m *MockFetcher) FetchQuote(symbol string) (model.Quote, error) {
	m.QuoteCalls++
	if m.QuoteErr != nil {
		return model.Quote{}, m.QuoteErr
	}
	if m.Quote.Symbol != "" {
		return m.Quote, nil
	}
	q := model.NewQuote(symbol)
	q.Price = 100
	return q, nil
}

// GenerateMockPoints builds count synthetic daily bars ending yesterday.
func GenerateMockPoints(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		points[i] = model.PricePoint{
			Date:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return points
}

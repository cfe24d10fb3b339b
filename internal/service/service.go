// Package service is the application context consumed by the
// presentation layer. It owns the explicit caches and wires the symbol
// directory, resolver, fetcher, sampler and store together; it exposes no
// server of its own.
package service

import (
	"fmt"
	"log"
	"time"

	"StockDash/internal/cache"
	"StockDash/internal/calculator"
	"StockDash/internal/collector"
	"StockDash/internal/config"
	"StockDash/internal/directory"
	"StockDash/internal/model"
	"StockDash/internal/resolver"
	"StockDash/internal/sampler"
	"StockDash/internal/store"
)

// Service bundles the core components behind one handle.
type Service struct {
	cfg      *config.Config
	fetcher  collector.Fetcher
	dir      *directory.Loader
	resolver *resolver.Resolver
	store    store.Store

	seriesCache *cache.Cache[*model.Series]
	quoteCache  *cache.Cache[model.Quote]
}

// New constructs the application context. Both memo caches are created
// here, once, and shared by reference; nothing in the core keeps hidden
// package-level state.
func New(cfg *config.Config, fetcher collector.Fetcher, st store.Store) *Service {
	dirCache := cache.New[[]model.SymbolRecord](cfg.DirectoryTTL())
	dir := directory.NewLoader(cfg.Cache.SnapshotPath, dirCache)
	return &Service{
		cfg:         cfg,
		fetcher:     fetcher,
		dir:         dir,
		resolver:    resolver.New(dir),
		store:       st,
		seriesCache: cache.New[*model.Series](cfg.SeriesTTL()),
		quoteCache:  cache.New[model.Quote](cfg.SeriesTTL()),
	}
}

// Search resolves a free-form query against the symbol directory.
func (s *Service) Search(query string) []model.MatchResult {
	return s.resolver.Search(query, s.cfg.Search.Limit)
}

// Suggest returns autocomplete strings for a partial query.
func (s *Service) Suggest(query string) []string {
	return s.resolver.Suggest(query, s.cfg.Search.MaxSuggestions)
}

// History fetches the bounded price series for symbol+period, memoized
// for the configured TTL. Concurrent identical requests share one
// upstream fetch. Errors pass through the collector taxonomy unchanged.
func (s *Service) History(symbol string, period collector.Period) (*model.Series, error) {
	key := symbol + "|" + string(period)
	return s.seriesCache.GetOrLoad(key, func() (*model.Series, error) {
		points, err := s.fetcher.FetchHistory(symbol, period)
		if err != nil {
			return nil, err
		}
		points = sampler.Bound(points, s.cfg.Sampling.MaxRows)
		return &model.Series{Symbol: symbol, Points: points, FetchedAt: time.Now()}, nil
	})
}

// ChartPoints thins a series for plotting. The returned slice is
// independent of the series, which stays full-resolution for tables and
// CSV export.
func (s *Service) ChartPoints(series *model.Series) []model.PricePoint {
	return sampler.Decimate(series.Points, s.cfg.Sampling.ChartThreshold, s.cfg.Sampling.ChartTarget)
}

// Quote returns cached provider metadata for symbol.
func (s *Service) Quote(symbol string) (model.Quote, error) {
	return s.quoteCache.GetOrLoad(symbol, func() (model.Quote, error) {
		return s.fetcher.FetchQuote(symbol)
	})
}

// Validate is the cheap pre-flight before a full history fetch.
func (s *Service) Validate(symbol string) bool {
	q, err := s.Quote(symbol)
	return err == nil && q.HasPrice()
}

// View fetches history for a dashboard rendering cycle and records the
// visit: the bounded series is persisted and the view counter bumped.
func (s *Service) View(symbol, company string, period collector.Period) (*model.Series, error) {
	series, err := s.History(symbol, period)
	if err != nil {
		return nil, err
	}
	if err := s.store.ReplaceSeries(symbol, series.Points); err != nil {
		log.Printf("[WARN] persist series %s: %v", symbol, err)
	}
	if err := s.store.RecordView(symbol, company, series.Last().Close, string(period)); err != nil {
		log.Printf("[WARN] record view %s: %v", symbol, err)
	}
	return series, nil
}

// RefreshPortfolioPrices updates the stored current price of every
// portfolio position from fresh quotes. Symbols the provider cannot
// price are skipped with a warning.
func (s *Service) RefreshPortfolioPrices() error {
	positions, err := s.store.Positions()
	if err != nil {
		return fmt.Errorf("load positions: %w", err)
	}
	seen := make(map[string]bool, len(positions))
	for _, p := range positions {
		if seen[p.Symbol] {
			continue
		}
		seen[p.Symbol] = true
		q, err := s.Quote(p.Symbol)
		if err != nil || !q.HasPrice() {
			log.Printf("[WARN] refresh price %s: %v", p.Symbol, err)
			continue
		}
		if err := s.store.UpdatePositionPrice(p.Symbol, q.Price); err != nil {
			return fmt.Errorf("update price %s: %w", p.Symbol, err)
		}
	}
	return nil
}

// RefreshDirectory drops the cached directory snapshot and rebuilds it.
func (s *Service) RefreshDirectory() {
	s.dir.Invalidate()
	s.dir.Load()
}

// InvalidateSeries drops the memoized history and quote for symbol.
func (s *Service) InvalidateSeries(symbol string) {
	for _, p := range collector.Periods {
		s.seriesCache.Invalidate(symbol + "|" + string(p))
	}
	s.quoteCache.Invalidate(symbol)
}

// Store exposes the persistence layer for watchlist/portfolio CRUD.
func (s *Service) Store() store.Store { return s.store }

// Directory exposes the symbol directory loader.
func (s *Service) Directory() *directory.Loader { return s.dir }

// Indicators holds the overlay values for the most recent point of a
// series. Fields that cannot be computed from the available window carry
// model.Unknown.
type Indicators struct {
	MA20       float64
	MA50       float64
	RSI        float64
	BollUpper  float64
	BollMiddle float64
	BollLower  float64
}

// Indicators computes technical overlays for a series, skipping whatever
// the window is too short for.
func (s *Service) Indicators(points []model.PricePoint) Indicators {
	ind := Indicators{
		MA20:       model.Unknown,
		MA50:       model.Unknown,
		RSI:        model.Unknown,
		BollUpper:  model.Unknown,
		BollMiddle: model.Unknown,
		BollLower:  model.Unknown,
	}
	if ma, err := calculator.CalculateMA20(points); err == nil {
		ind.MA20 = ma
	}
	if ma, err := calculator.CalculateMA50(points); err == nil {
		ind.MA50 = ma
	}
	if len(points) >= 15 {
		if rsi, err := calculator.CalculateRSI(points, 14); err == nil {
			ind.RSI = rsi
		}
	}
	if upper, middle, lower, err := calculator.CalculateBollinger(points, 20, 2); err == nil {
		ind.BollUpper = upper
		ind.BollMiddle = middle
		ind.BollLower = lower
	}
	return ind
}

package store

import (
	"path/filepath"
	"testing"
	"time"

	"StockDash/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReplaceSeries_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	points := []model.PricePoint{
		{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 1000},
		{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Open: 10.5, High: 12, Low: 10, Close: 11.5, Volume: 2000},
	}
	if err := s.ReplaceSeries("AAPL", points); err != nil {
		t.Fatal(err)
	}

	got, err := s.Series("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	for i := range points {
		if got[i] != points[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, points[i], got[i])
		}
	}

	// Replace drops the old rows.
	if err := s.ReplaceSeries("AAPL", points[:1]); err != nil {
		t.Fatal(err)
	}
	got, err = s.Series("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("expected replacement, got %d points", len(got))
	}
}

func TestSeries_UnknownSymbolEmpty(t *testing.T) {
	s := newTestStore(t)
	got, err := s.Series("NOPE")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty series, got %d points", len(got))
	}
}

func TestWatchlist_AddRemoveReadd(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddWatch("AAPL", "Apple Inc.", "long term"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddWatch("TSLA", "Tesla Inc.", ""); err != nil {
		t.Fatal(err)
	}

	entries, err := s.Watchlist()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 active entries, got %d", len(entries))
	}

	if err := s.RemoveWatch("AAPL"); err != nil {
		t.Fatal(err)
	}
	entries, err = s.Watchlist()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Symbol != "TSLA" {
		t.Fatalf("expected only TSLA after removal, got %+v", entries)
	}

	// Re-adding reactivates rather than duplicating.
	if err := s.AddWatch("AAPL", "Apple Inc.", "revisit"); err != nil {
		t.Fatal(err)
	}
	entries, err = s.Watchlist()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after re-add, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Symbol == "AAPL" && e.Notes != "revisit" {
			t.Errorf("expected refreshed notes, got %q", e.Notes)
		}
	}
}

func TestPortfolio_CRUDAndTimestamps(t *testing.T) {
	s := newTestStore(t)

	purchase := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	if err := s.AddPosition("MSFT", 10, 300, purchase); err != nil {
		t.Fatal(err)
	}

	positions, err := s.Positions()
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(positions))
	}
	p := positions[0]
	if p.Symbol != "MSFT" || p.Shares != 10 || p.PurchasePrice != 300 {
		t.Errorf("unexpected position: %+v", p)
	}
	if !p.PurchaseDate.Equal(purchase) {
		t.Errorf("purchase date changed: %v", p.PurchaseDate)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("expected write path to set timestamps")
	}
	if p.CurrentPrice != 300 {
		t.Errorf("expected current price seeded from purchase price, got %v", p.CurrentPrice)
	}

	if err := s.UpdatePositionPrice("MSFT", 420); err != nil {
		t.Fatal(err)
	}
	positions, err = s.Positions()
	if err != nil {
		t.Fatal(err)
	}
	if positions[0].CurrentPrice != 420 {
		t.Errorf("expected refreshed price, got %v", positions[0].CurrentPrice)
	}
	if positions[0].GainLoss() != 1200 {
		t.Errorf("expected gain 1200, got %v", positions[0].GainLoss())
	}

	if err := s.RemovePosition(positions[0].ID); err != nil {
		t.Fatal(err)
	}
	positions, err = s.Positions()
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) != 0 {
		t.Errorf("expected empty portfolio, got %d", len(positions))
	}
}

func TestRecordView_UpsertIncrements(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.RecordView("AAPL", "Apple Inc.", 189.5, "1y"); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.RecordView("TSLA", "Tesla Inc.", 250, "max"); err != nil {
		t.Fatal(err)
	}

	views, err := s.RecentViews(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 view rows, got %d", len(views))
	}
	for _, v := range views {
		if v.Symbol == "AAPL" {
			if v.ViewCount != 3 {
				t.Errorf("expected view count 3, got %d", v.ViewCount)
			}
			if v.Period != "1y" {
				t.Errorf("expected last period recorded, got %q", v.Period)
			}
		}
	}

	views, err = s.RecentViews(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 1 {
		t.Errorf("expected limit respected, got %d rows", len(views))
	}
}

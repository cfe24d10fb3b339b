package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockDash/internal/model"
)

// SQLiteStore persists dashboard data to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS stock_data (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol     TEXT NOT NULL,
			date       INTEGER NOT NULL,
			open       REAL,
			high       REAL,
			low        REAL,
			close      REAL,
			volume     INTEGER,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_symbol_date ON stock_data(symbol, date)`,

		`CREATE TABLE IF NOT EXISTS watchlist (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol   TEXT NOT NULL UNIQUE,
			company  TEXT,
			notes    TEXT,
			active   INTEGER NOT NULL DEFAULT 1,
			added_at INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS portfolio (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol         TEXT NOT NULL,
			shares         REAL NOT NULL,
			purchase_price REAL NOT NULL,
			purchase_date  INTEGER NOT NULL,
			current_price  REAL,
			created_at     INTEGER NOT NULL,
			updated_at     INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_portfolio_symbol ON portfolio(symbol)`,

		`CREATE TABLE IF NOT EXISTS view_history (
			symbol      TEXT PRIMARY KEY,
			company     TEXT,
			last_viewed INTEGER NOT NULL,
			view_count  INTEGER NOT NULL DEFAULT 1,
			last_price  REAL,
			period      TEXT
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// ReplaceSeries swaps the stored history for symbol inside one transaction.
func (s *SQLiteStore) ReplaceSeries(symbol string, points []model.PricePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM stock_data WHERE symbol = ?`, symbol); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO stock_data
		(symbol, date, open, high, low, close, volume, created_at)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, p := range points {
		if _, err := stmt.Exec(symbol, p.Date.Unix(), p.Open, p.High, p.Low, p.Close, p.Volume, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Series(symbol string) ([]model.PricePoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT date, open, high, low, close, volume
		FROM stock_data WHERE symbol = ? ORDER BY date ASC`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.PricePoint
	for rows.Next() {
		var p model.PricePoint
		var ts int64
		if err := rows.Scan(&ts, &p.Open, &p.High, &p.Low, &p.Close, &p.Volume); err != nil {
			return nil, err
		}
		p.Date = time.Unix(ts, 0).UTC()
		points = append(points, p)
	}
	return points, rows.Err()
}

// AddWatch inserts a watchlist row, or reactivates it with fresh notes if
// the symbol was watched before.
func (s *SQLiteStore) AddWatch(symbol, company, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO watchlist (symbol, company, notes, active, added_at)
		VALUES (?,?,?,1,?)
		ON CONFLICT(symbol) DO UPDATE SET
			company = excluded.company,
			notes   = excluded.notes,
			active  = 1`,
		symbol, company, notes, time.Now().Unix())
	return err
}

// RemoveWatch deactivates the entry so re-adding restores its history.
func (s *SQLiteStore) RemoveWatch(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`UPDATE watchlist SET active = 0 WHERE symbol = ?`, symbol)
	return err
}

func (s *SQLiteStore) Watchlist() ([]model.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, symbol, company, notes, active, added_at
		FROM watchlist WHERE active = 1 ORDER BY added_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.WatchlistEntry
	for rows.Next() {
		var e model.WatchlistEntry
		var added int64
		if err := rows.Scan(&e.ID, &e.Symbol, &e.Company, &e.Notes, &e.Active, &added); err != nil {
			return nil, err
		}
		e.AddedAt = time.Unix(added, 0).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) AddPosition(symbol string, shares, purchasePrice float64, purchaseDate time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	_, err := s.db.Exec(`INSERT INTO portfolio
		(symbol, shares, purchase_price, purchase_date, current_price, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?)`,
		symbol, shares, purchasePrice, purchaseDate.Unix(), purchasePrice, now, now)
	return err
}

func (s *SQLiteStore) UpdatePositionPrice(symbol string, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`UPDATE portfolio SET current_price = ?, updated_at = ? WHERE symbol = ?`,
		price, time.Now().Unix(), symbol)
	return err
}

func (s *SQLiteStore) RemovePosition(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM portfolio WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) Positions() ([]model.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, symbol, shares, purchase_price, purchase_date,
		current_price, created_at, updated_at
		FROM portfolio ORDER BY symbol ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []model.Position
	for rows.Next() {
		var p model.Position
		var purchased, created, updated int64
		if err := rows.Scan(&p.ID, &p.Symbol, &p.Shares, &p.PurchasePrice,
			&purchased, &p.CurrentPrice, &created, &updated); err != nil {
			return nil, err
		}
		p.PurchaseDate = time.Unix(purchased, 0).UTC()
		p.CreatedAt = time.Unix(created, 0).UTC()
		p.UpdatedAt = time.Unix(updated, 0).UTC()
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (s *SQLiteStore) RecordView(symbol, company string, price float64, period string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO view_history
		(symbol, company, last_viewed, view_count, last_price, period)
		VALUES (?,?,?,1,?,?)
		ON CONFLICT(symbol) DO UPDATE SET
			company     = excluded.company,
			last_viewed = excluded.last_viewed,
			view_count  = view_history.view_count + 1,
			last_price  = excluded.last_price,
			period      = excluded.period`,
		symbol, company, time.Now().Unix(), price, period)
	return err
}

func (s *SQLiteStore) RecentViews(limit int) ([]model.ViewRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT symbol, company, last_viewed, view_count, last_price, period
		FROM view_history ORDER BY last_viewed DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []model.ViewRecord
	for rows.Next() {
		var v model.ViewRecord
		var viewed int64
		if err := rows.Scan(&v.Symbol, &v.Company, &viewed, &v.ViewCount, &v.LastPrice, &v.Period); err != nil {
			return nil, err
		}
		v.LastViewed = time.Unix(viewed, 0).UTC()
		views = append(views, v)
	}
	return views, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}

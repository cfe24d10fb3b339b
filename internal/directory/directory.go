package directory

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"StockDash/internal/cache"
	"StockDash/internal/model"
)

const cacheKey = "directory"

// Loader provides the symbol directory, layering an in-memory TTL cache
// over a CSV snapshot file over the built-in curated list. Load never
// fails: every error path degrades to a usable directory.
type Loader struct {
	snapshotPath string
	cache        *cache.Cache[[]model.SymbolRecord]
}

// NewLoader creates a Loader. The cache is owned by the caller and shared
// explicitly; the loader never keeps package-level state.
func NewLoader(snapshotPath string, c *cache.Cache[[]model.SymbolRecord]) *Loader {
	return &Loader{snapshotPath: snapshotPath, cache: c}
}

// Load returns the symbol directory. Within the cache TTL the same
// snapshot is returned without touching disk.
func (l *Loader) Load() []model.SymbolRecord {
	recs, err := l.cache.GetOrLoad(cacheKey, l.build)
	if err != nil || len(recs) == 0 {
		// build never errors, but keep the caller safe regardless
		log.Printf("[WARN] directory load degraded to fallback: %v", err)
		return Fallback()
	}
	return recs
}

// Invalidate drops the cached snapshot so the next Load rebuilds it.
func (l *Loader) Invalidate() {
	l.cache.Invalidate(cacheKey)
}

func (l *Loader) build() ([]model.SymbolRecord, error) {
	if recs, err := readSnapshot(l.snapshotPath); err == nil && len(recs) > 0 {
		return recs, nil
	} else if err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] read symbol snapshot %s: %v", l.snapshotPath, err)
	}

	recs := Curated()
	if err := writeSnapshot(l.snapshotPath, recs); err != nil {
		log.Printf("[WARN] persist symbol snapshot %s: %v", l.snapshotPath, err)
	}
	return recs, nil
}

// readSnapshot loads (symbol, company) rows from the CSV snapshot file.
func readSnapshot(path string) ([]model.SymbolRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	recs := make([]model.SymbolRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 && row[0] == "Symbol" {
			continue // header
		}
		recs = append(recs, model.SymbolRecord{Symbol: row[0], Company: row[1]})
	}
	return recs, nil
}

// writeSnapshot persists the directory as a CSV snapshot, creating the
// parent directory if needed.
func writeSnapshot(path string, recs []model.SymbolRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Symbol", "Company"}); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := w.Write([]string{rec.Symbol, rec.Company}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

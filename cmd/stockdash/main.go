package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockDash/internal/collector"
	"StockDash/internal/config"
	"StockDash/internal/export"
	"StockDash/internal/format"
	"StockDash/internal/scheduler"
	"StockDash/internal/service"
	"StockDash/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		searchQuery = flag.String("search", "", "search the symbol directory and exit")
		symbol      = flag.String("symbol", "", "ticker symbol to fetch")
		periodFlag  = flag.String("period", "1y", "lookback window: 1mo 3mo 6mo 1y 2y 5y max")
		exportPath  = flag.String("export", "", "write the fetched series to this CSV file")
		watch       = flag.Bool("watch", false, "run the background refresh loop")
	)
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if os.Getenv("DATA_SOURCE") == "mock" {
		fetcher = &collector.MockFetcher{}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Provider.BaseURL, cfg.Provider.QuoteURL, cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			st = store.NewNoopStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewNoopStore()
	}

	svc := service.New(cfg, fetcher, st)

	switch {
	case *searchQuery != "":
		runSearch(svc, *searchQuery)
	case *symbol != "":
		runFetch(svc, *symbol, *periodFlag, *exportPath)
	case *watch:
		runWatch(cfg, svc)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runSearch(svc *service.Service, query string) {
	matches := svc.Search(query)
	if len(matches) == 0 {
		fmt.Printf("no matches for %q\n", query)
		return
	}
	for _, m := range matches {
		fmt.Printf("%4d  %-6s %s\n", m.Score, m.Symbol, m.Company)
	}
}

func runFetch(svc *service.Service, rawSymbol, rawPeriod, exportPath string) {
	period, err := collector.ParsePeriod(rawPeriod)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	sym := rawSymbol
	company := ""
	if matches := svc.Search(sym); len(matches) > 0 && matches[0].Symbol == sym {
		company = matches[0].Company
	}

	if !svc.Validate(sym) {
		log.Fatalf("[FATAL] invalid or unpriceable symbol: %s", sym)
	}

	series, err := svc.View(sym, company, period)
	if err != nil {
		if errors.Is(err, collector.ErrDataUnavailable) {
			log.Fatalf("[FATAL] no data for %s over %s", sym, period)
		}
		log.Fatalf("[FATAL] fetch %s: %v", sym, err)
	}

	if q, err := svc.Quote(sym); err == nil {
		fmt.Printf("%s (%s)\n", q.Symbol, q.ShortName)
		fmt.Printf("  price %s  prev close %s  52w %s - %s\n",
			format.Currency(q.Price), format.Currency(q.PreviousClose),
			format.Currency(q.Low52w), format.Currency(q.High52w))
		fmt.Printf("  mkt cap %s  P/E %s  volume %s\n",
			format.Currency(q.MarketCap), format.Ratio(q.TrailingPE), format.Number(q.Volume))
	}

	ind := svc.Indicators(series.Points)
	fmt.Printf("  MA20 %s  MA50 %s  RSI(14) %s\n",
		format.Currency(ind.MA20), format.Currency(ind.MA50), format.Ratio(ind.RSI))

	fmt.Printf("  %d points, %s through %s\n", series.Len(),
		series.Points[0].Date.Format("2006-01-02"),
		series.Last().Date.Format("2006-01-02"))

	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			log.Fatalf("[FATAL] create export file: %v", err)
		}
		defer f.Close()
		if err := export.WriteSeries(f, series.Points); err != nil {
			log.Fatalf("[FATAL] write csv: %v", err)
		}
		log.Printf("[INFO] exported %d rows to %s", series.Len(), exportPath)
	}
}

func runWatch(cfg *config.Config, svc *service.Service) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, svc)
	if err := sched.RegisterAll(cfg.Watch.PriceCron, cfg.Watch.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing prices now")
		go sched.RunPriceNow()
	}

	log.Println("[INFO] stockdash watch mode running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] stockdash stopped")
}

package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockDash/internal/service"
)

// Scheduler runs the background refresh tasks for watch mode: portfolio
// price updates and periodic directory snapshot rebuilds.
type Scheduler struct {
	Cron    *cron.Cron
	Service *service.Service
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *service.Service) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Service: svc,
		Ctx:     ctx,
	}
}

// RegisterAll registers the price-refresh and directory-refresh tasks.
func (s *Scheduler) RegisterAll(priceCron, refreshCron string) error {
	if _, err := s.Cron.AddFunc(priceCron, s.priceTask); err != nil {
		return fmt.Errorf("register price task: %w", err)
	}
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunPriceNow executes the price-refresh task immediately (for manual
// trigger / RUN_ON_START).
func (s *Scheduler) RunPriceNow() {
	s.priceTask()
}

func (s *Scheduler) priceTask() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] refreshing portfolio prices")
	if err := s.Service.RefreshPortfolioPrices(); err != nil {
		log.Printf("[WARN] portfolio price refresh: %v", err)
	}
}

func (s *Scheduler) refreshTask() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] rebuilding symbol directory snapshot")
	s.Service.RefreshDirectory()
}

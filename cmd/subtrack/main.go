package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"subtrack/internal/config"
	"subtrack/internal/database"
	"subtrack/internal/database/repository"
	"subtrack/internal/domain"
	"subtrack/internal/money"
	"subtrack/internal/service"
	"subtrack/internal/tui"
)

func main() {
	report := flag.Bool("report", false, "print a cost report to stdout instead of starting the UI")
	category := flag.String("category", "", "limit the report to one category")
	currency := flag.String("currency", "", "base currency for the report (overrides config)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	repo := repository.NewSubscriptionRepo(db)
	svc := &service.SubscriptionService{
		Repo:      repo,
		FreeLimit: cfg.Premium.FreeLimit,
		Premium:   cfg.Premium.Enabled,
	}

	rates, err := cfg.RateTable()
	if err != nil {
		log.Fatalf("rates: %v", err)
	}
	base, err := cfg.BaseCurrency()
	if err != nil {
		log.Fatalf("base currency: %v", err)
	}

	if *report {
		if *currency != "" {
			base, err = money.ParseCurrency(*currency)
			if err != nil {
				log.Fatalf("currency: %v", err)
			}
		}
		var filter *domain.Category
		if *category != "" {
			c, err := domain.ParseCategory(*category)
			if err != nil {
				log.Fatalf("category: %v", err)
			}
			filter = &c
		}
		subs, err := svc.List(ctx)
		if err != nil {
			log.Fatalf("list: %v", err)
		}
		if err := printReport(os.Stdout, subs, base, rates, filter); err != nil {
			log.Fatalf("report: %v", err)
		}
		return
	}

	p := tea.NewProgram(tui.New(ctx, cfg, svc, base, rates), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

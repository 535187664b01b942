package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pmcb87/earnings-tv/config"
	"github.com/pmcb87/earnings-tv/internal/earnings"
	"github.com/pmcb87/earnings-tv/internal/httpclient"
	"github.com/pmcb87/earnings-tv/internal/services"
	"github.com/pmcb87/earnings-tv/internal/util"
	"github.com/pmcb87/earnings-tv/internal/yahoo"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	runLog := log.WithField("run_id", uuid.NewString())

	// Interrupt stops the in-flight request; there is nothing to clean up
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One shared client so both upstreams see the same browser identity
	httpClient := httpclient.NewBrowserClient(cfg.UserAgent, cfg.HTTPTimeout)

	// Initialize upstream clients
	earningsClient := earnings.NewClientWithBaseURL(cfg.EarningsURL, httpClient)
	yahooClient := yahoo.NewClient(httpClient,
		yahoo.WithBaseURL(cfg.YahooURL),
		yahoo.WithRateLimit(cfg.LookupRate),
	)

	// Initialize services
	earningsSvc := services.NewEarningsService(earningsClient)
	resolver := services.NewExchangeResolver(yahooClient)
	writer := services.NewWatchlistWriter(cfg.OutputDir)
	watchlistSvc := services.NewWatchlistService(earningsSvc, resolver, writer, cfg.MarketCapThreshold)

	runLog.Info("Building earnings watchlists")
	summary := watchlistSvc.Run(ctx, util.GetWeeks(time.Now()))

	for _, w := range summary.Weeks {
		runLog.WithFields(log.Fields{
			"week_start": w.Week.Start,
			"week_end":   w.Week.End,
			"status":     w.Status,
			"fetched":    w.Fetched,
			"filtered":   w.Filtered,
			"resolved":   w.Resolved,
			"dropped":    len(w.Dropped),
		}).Info("Week finished")
	}
	for _, warning := range summary.Warnings {
		runLog.Debugf("[%s] %s", warning.Code, warning.Message)
	}

	if summary.AllFailed() {
		runLog.Error("No watchlist could be produced for any week")
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	accountmetrics "minibank/internal/account/metrics"
	"minibank/internal/account/models"
	accountservice "minibank/internal/account/service"
	accountstore "minibank/internal/account/store"
	"minibank/internal/cli"
	identitymetrics "minibank/internal/identity/metrics"
	identityservice "minibank/internal/identity/service"
	identitystore "minibank/internal/identity/store"
	"minibank/internal/platform/config"
	"minibank/internal/platform/diag"
	"minibank/internal/platform/logger"
)

// main wires high-level dependencies and keeps the process lifecycle small.
// Business logic lives in the internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing minibank",
		"branch_code", cfg.BranchCode,
		"withdrawal_limit", cfg.WithdrawalLimit.StringFixed(2),
		"max_withdrawals", cfg.MaxWithdrawals,
	)

	registry := identityservice.NewRegistryService(
		identitystore.NewInMemory(),
		identityservice.WithLogger(log),
		identityservice.WithMetrics(identitymetrics.New()),
	)
	ledger := accountservice.NewLedgerService(
		accountstore.NewInMemory(),
		registry,
		cfg.BranchCode,
		models.Limits{PerWithdrawal: cfg.WithdrawalLimit, MaxWithdrawals: cfg.MaxWithdrawals},
		accountservice.WithLogger(log),
		accountservice.WithMetrics(accountmetrics.New()),
	)
	session := cli.NewSession(registry, ledger, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.DiagAddr != "" {
		srv := diag.New(cfg.DiagAddr)
		g.Go(func() error {
			log.Info("starting diagnostics listener", "addr", cfg.DiagAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		// Ending the console session also stops the diagnostics listener.
		defer stop()
		return session.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("session terminated", "error", err)
		os.Exit(1)
	}
	log.Info("session ended")
}

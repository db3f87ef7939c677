package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dayanaadylkhanova/kctf-pow/internal/adapter/quote"
	"github.com/dayanaadylkhanova/kctf-pow/internal/adapter/transport/tcp"
	"github.com/dayanaadylkhanova/kctf-pow/internal/app"
	"github.com/dayanaadylkhanova/kctf-pow/internal/metrics"
	"github.com/dayanaadylkhanova/kctf-pow/internal/service"
	"github.com/dayanaadylkhanova/kctf-pow/pkg/config"
	"github.com/dayanaadylkhanova/kctf-pow/pkg/logger"
)

func main() {
	cfg := config.Parse()

	out := logger.Output(cfg.LogFile, cfg.LogMaxSizeMB)
	defer out.Close()
	log := logger.NewJSONTo(out, logger.LevelFromEnv(cfg.LogLevel))

	var qt tcp.Quote = quote.NewStatic()
	if cfg.QuotesFile != "" {
		q, err := quote.LoadFile(cfg.QuotesFile)
		if err != nil {
			log.Error("load quotes failed", slog.Any("err", err))
			os.Exit(1)
		}
		log.Info("quotes loaded", "file", cfg.QuotesFile, "count", q.Len())
		qt = q
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	pow := service.NewSloth()
	srv := tcp.NewServer(log, cfg.ListenAddr, cfg.PoWTTL, cfg.ShutdownWait, pow, qt, m)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg, log); err != nil {
				log.Error("metrics server stopped with error", slog.Any("err", err))
			}
		}()
	}

	if err := app.New(srv, cfg.PoWDifficulty).RunContext(ctx); err != nil {
		log.Error("server stopped with error", slog.Any("err", err))
	}
}

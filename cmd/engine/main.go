package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"flowerex/config"
	"flowerex/pkg/csvfeed"
	"flowerex/pkg/engine"
	"flowerex/pkg/logging"
)

func main() {
	configPath := "./config/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	logger := logging.NewLogger(logging.INFO)
	ctx := logging.WithRequestID(context.Background(), "")

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal(ctx, "failed to load config", zap.Error(err))
	}

	logger = logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	defer logger.Sync() // nolint

	eng := engine.NewEngine(logger)
	reader := csvfeed.NewReader(logger)
	writer := csvfeed.NewWriter(logger)

	orders, err := reader.ReadFile(ctx, cfg.InputFile)
	if err != nil {
		logger.Fatal(ctx, "failed to read order file", zap.String("input", cfg.InputFile), zap.Error(err))
	}
	logger.Info(ctx, "orders loaded", zap.String("input", cfg.InputFile), zap.Int("orders", len(orders)))

	for _, o := range orders {
		eng.Process(ctx, o)
	}

	path, err := writer.WriteFile(ctx, cfg.OutputDir, time.Now(), eng.Reports().All())
	if err != nil {
		logger.Fatal(ctx, "failed to write execution report", zap.Error(err))
	}

	stats := eng.Stats()
	logger.Info(ctx, "run complete",
		zap.String("service", cfg.ServiceName),
		zap.Int64("orders", stats.Orders),
		zap.Int64("matches", stats.Matches),
		zap.Int64("match_qty", stats.MatchedQty),
		zap.Int64("rejects", stats.Rejects),
		zap.Int("reports", eng.Reports().Len()),
		zap.Strings("instruments", eng.Books().Instruments()),
		zap.String("output", path))
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/infra/blobstore"
	"staybook/internal/pkg/config"
	"staybook/internal/seed"
)

// Generates a fully consistent data file for the server. Text content
// comes from Gemini when GEMINI_API_KEY is set, canned templates
// otherwise, so the tool works offline.
func main() {
	var (
		out         = flag.String("out", "data/db.json", "output path for the generated data file")
		properties  = flag.Int("properties", 100, "number of properties")
		users       = flag.Int("users", 100, "number of users")
		bookings    = flag.Int("bookings", 80, "number of bookings")
		reviews     = flag.Int("reviews", 50, "number of reviews")
		seedValue   = flag.Int64("seed", 1, "random seed for reproducible output")
		horizonDays = flag.Int("horizon", 60, "length of each property's calendar window in days")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	var cw seed.Copywriter
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := seed.NewGeminiCopywriter(ctx, apiKey)
		if err != nil {
			logger.Warn("gemini unavailable, using canned text", "error", err)
		} else {
			cw = gemini
		}
	}

	gen := seed.New(*seedValue, cw, logger)
	agg, err := gen.Generate(ctx, seed.Params{
		Properties:  *properties,
		Users:       *users,
		Bookings:    *bookings,
		Reviews:     *reviews,
		Start:       calendar.DateOf(time.Now()),
		HorizonDays: *horizonDays,
	})
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	blob := blobstore.NewFileStore(config.StoreConfig{Path: *out}, logger)
	if err := blob.Save(ctx, agg); err != nil {
		logger.Error("failed to write data file", "error", err)
		os.Exit(1)
	}

	logger.Info("data file written",
		"path", *out,
		"properties", len(agg.Properties),
		"users", len(agg.Users),
		"bookings", len(agg.Bookings),
		"reviews", len(agg.Reviews),
	)
}

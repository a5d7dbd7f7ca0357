package main

import (
	"context"
	"io"
	"log"

	"guide-images/internal/compression"
	"guide-images/internal/config"
	"guide-images/internal/locate"

	"github.com/cshum/vipsgen/vips"
)

func run(ctx context.Context, out io.Writer) error {
	cfg := config.Load()

	// concurrency libvips default 1, konversi tetap satu per satu
	vips.Startup(&vips.Config{
		ConcurrencyLevel: cfg.VipsConcurrency,
		MaxCacheFiles:    0,
		MaxCacheMem:      0,
		MaxCacheSize:     0,
		ReportLeaks:      false,
		CacheTrace:       false,
		VectorEnabled:    true,
	})
	defer vips.Shutdown()

	dir := locate.NewFinder().Resolve()
	if cfg.Debug {
		log.Printf("Picture dir: %s | vips concurrency: %d", dir, cfg.VipsConcurrency)
	}

	svc := compression.NewService(compression.Config{
		Dir:   dir,
		Debug: cfg.Debug,
	}, compression.NewVipsEncoder(), out)

	_, err := svc.Run(ctx)
	return err
}

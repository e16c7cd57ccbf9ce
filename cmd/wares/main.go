// Copyright 2026 Seekwell Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/seekwell/wares"
	"github.com/seekwell/wares/ai"
	"github.com/seekwell/wares/captcha"
	"github.com/seekwell/wares/reembed"
	"github.com/seekwell/wares/seed"
	"github.com/seekwell/wares/server"
	"github.com/urfave/cli/v2"
)

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "https://api.openai.com/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "text-embedding-ada-002",
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "Embedding service API key",
			EnvVars: []string{"WARES_API_KEY"},
		},
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func main() {
	app := &cli.App{
		Name:  "wares",
		Usage: "Semantic product catalog and search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP search API",
				Action: serveCommand,
				Flags: append([]cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					},
					&cli.StringFlag{
						Name:     "turnstile-secret",
						Usage:    "Cloudflare Turnstile shared secret",
						EnvVars:  []string{"WARES_TURNSTILE_SECRET"},
						Required: true,
					},
				}, embeddingFlags()...),
			},
			{
				Name:   "seed",
				Usage:  "Replace the catalog with the contents of the product feed",
				Action: seedCommand,
				Flags: append([]cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:  "feed-url",
						Usage: "Product feed URL",
						Value: seed.DefaultFeedURL,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent create workers",
					},
				}, embeddingFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Search the catalog from the command line",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: append([]cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "skip",
						Usage: "Number of ranked results to skip",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results (0 = all)",
					},
				}, embeddingFlags()...),
			},
			{
				Name:   "reembed",
				Usage:  "Recompute embeddings for every product",
				Action: reembedCommand,
				Flags: append([]cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of products to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N products",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				}, embeddingFlags()...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(c *cli.Context) (*wares.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithAPIKey(c.String("api-key")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid embedding configuration: %w", err)
	}

	db, err := wares.NewDatabase(c.String("db"), wares.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func serveCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	verifier, err := captcha.NewTurnstile(c.String("turnstile-secret"))
	if err != nil {
		return err
	}

	srv := server.NewServer(searcher, verifier, c.String("addr"))

	// Shut down cleanly on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	}
}

func seedCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := []seed.Option{seed.WithFeedURL(c.String("feed-url"))}
	if c.Int("pool-size") > 0 {
		opts = append(opts, seed.WithPoolSize(c.Int("pool-size")))
	}

	seeder, err := db.NewSeeder(opts...)
	if err != nil {
		return err
	}
	defer seeder.Release()

	created, err := seeder.Run(c.Context)
	if err != nil {
		return fmt.Errorf("seeding failed after creating %d products: %w", created, err)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d products\n", created)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	products, err := searcher.Search(c.Context, query, c.Int("skip"), c.Int("limit"))
	if err != nil {
		return err
	}

	for i, product := range products {
		fmt.Printf("%2d. %s (%s) - %d.%02d\n", i+1, product.Name, product.Category,
			product.Price/100, product.Price%100)
	}
	fmt.Fprintf(os.Stderr, "%d results\n", len(products))
	return nil
}

func reembedCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := db.NewReembedder(config, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(c.Context); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

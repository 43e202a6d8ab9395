package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/waterlily-survey/catalog"
	"github.com/danielhkuo/waterlily-survey/client"
	"github.com/danielhkuo/waterlily-survey/cliparse"
	"github.com/danielhkuo/waterlily-survey/draft"
	"github.com/danielhkuo/waterlily-survey/form"
	"github.com/danielhkuo/waterlily-survey/review"
	"github.com/danielhkuo/waterlily-survey/tui"
)

func main() {
	// Keep info logs out of the prompts
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	cfg, err := cliparse.ParseClientFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "survey must be run from an interactive terminal")
		os.Exit(1)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			slog.Error("catalog load failed", "error", err, "path", cfg.CatalogPath)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(cfg.APIURL)
	drafts := draft.NewFileStore(cfg.DraftDir)
	session := form.NewSession(cat, drafts, api, form.WithBioLimit(cfg.BioLimit))

	id, err := tui.NewRunner(tui.NewSurveyDriver(), session).Run(ctx)
	if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
		fmt.Println("Draft saved.")
		return
	}
	if err != nil {
		slog.Error("survey failed", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	if err := review.Show(ctx, api, cat, id, os.Stdout); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"homeinsight-listings/internal/tui"
	"homeinsight-listings/pkg/config"
	"homeinsight-listings/pkg/listings"
	"homeinsight-listings/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "configs/browse.toml", "path to the browser config file")
	viewName := flag.String("view", "buy", "initial view: buy, rent or admin")
	flag.Parse()

	if err := run(*configPath, *viewName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, viewName string) error {
	cfg, err := config.LoadBrowseConfig(configPath)
	if err != nil {
		return err
	}
	view, err := tui.ParseView(viewName)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger.InitLogger(logFile, cfg.LogLevel)

	client, err := listings.NewClient(cfg.APIURL,
		listings.WithTimeout(cfg.Timeout),
		listings.WithSessionToken(cfg.SessionToken))
	if err != nil {
		return err
	}

	opts := tui.Options{
		Public:   client.Listings(),
		PageSize: cfg.PageSize,
		Debounce: cfg.Debounce,
		View:     view,
		ImageURL: client.ImageURL,
		Detail:   client,
	}
	if cfg.SessionToken != "" {
		opts.Admin = client.AdminListings()
	} else if view == tui.ViewAdmin {
		return fmt.Errorf("the admin view needs a session token (LISTINGS_TOKEN)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.GlobalLogger.Printf("Browsing %s: view=%s, page_size=%d", client.BaseURL(), view, cfg.PageSize)
	model := tui.New(ctx, opts)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("browser exited: %w", err)
	}
	return nil
}

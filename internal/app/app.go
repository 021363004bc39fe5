package app

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/learnaz/internal/backend"
	"github.com/atomicstack/learnaz/internal/catalog"
	"github.com/atomicstack/learnaz/internal/feed"
	"github.com/atomicstack/learnaz/internal/format/table"
	"github.com/atomicstack/learnaz/internal/logging"
	"github.com/atomicstack/learnaz/internal/logging/events"
	"github.com/atomicstack/learnaz/internal/state"
	"github.com/atomicstack/learnaz/internal/store"
	"github.com/atomicstack/learnaz/internal/ui"
)

const reloadDebounce = 300 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	CatalogPath string
	Watch       bool
	StoreKind   string
	DataDir     string
	AssetsDir   string
	Query       string
	Tag         string
}

// Filter is the initial filter state selected on the command line.
func (c Config) Filter() feed.FilterState {
	return feed.FilterState{Query: c.Query, Tag: c.Tag}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	records, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	kind, err := store.ParseKind(cfg.StoreKind)
	if err != nil {
		return err
	}
	kv, err := store.Open(kind, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := kv.Close(); cerr != nil {
			logging.Error(cerr)
		}
	}()

	var watcher *backend.Watcher
	if cfg.Watch && cfg.CatalogPath != "" {
		watcher, err = backend.NewWatcher(cfg.CatalogPath, reloadDebounce)
		if err != nil {
			return fmt.Errorf("watch catalog: %w", err)
		}
		defer watcher.Stop()
	}

	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Catalog:    state.NewCatalogStore(records),
		Watcher:    watcher,
		Store:      kv,
		AssetsDir:  cfg.AssetsDir,
		Filter:     cfg.Filter(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// LoadCatalog reads the catalog at path, or returns the built-in records when
// path is empty.
func LoadCatalog(path string) ([]feed.Record, error) {
	if path == "" {
		records := catalog.Default()
		events.Catalog.Loaded("builtin", len(records))
		return records, nil
	}
	records, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	events.Catalog.Loaded(path, len(records))
	return records, nil
}

// Print writes the feed for the configured filter as an aligned table.
func Print(w io.Writer, cfg Config) error {
	records, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	return PrintFeed(w, records, cfg.Filter())
}

// PrintFeed filters and renders records and writes one row per card, or the
// placeholder when nothing matches.
func PrintFeed(w io.Writer, records []feed.Record, st feed.FilterState) error {
	view := feed.Render(feed.Filter(records, st))
	events.App.Print(len(view.Cards))
	if view.Empty() {
		_, err := fmt.Fprintln(w, view.Placeholder)
		return err
	}
	rows := make([][]string, 0, len(view.Cards)+1)
	rows = append(rows, []string{"DATE", "TAGS", "TITLE"})
	for _, card := range view.Cards {
		date, tags := card.Chips[0], card.Chips[1:]
		rows = append(rows, []string{date, strings.Join(tags, ", "), card.Title})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft})
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

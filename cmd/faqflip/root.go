package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"faqflip/internal/config"
	"faqflip/internal/domain"
	"faqflip/internal/eventbus"
	"faqflip/internal/feed"
	"faqflip/internal/flipcard"
	"faqflip/internal/logger"
	"faqflip/internal/markdown"
	"faqflip/internal/progress"
	"faqflip/internal/ui"
)

type rootFlags struct {
	configPath  string
	url         string
	file        string
	theme       string
	storage     string
	storagePath string
	logPath     string
	reset       bool
	debug       bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "faqflip",
		Short: "Flip through FAQ cards in the terminal",
		Long: `faqflip shows one FAQ question at a time. Reveal the answer, step
through the list and pick up where you left off next time.`,
		Example: `  faqflip
  faqflip --file faq.yaml --theme blocks
  faqflip --url https://example.com/api/faq --reset`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), &flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "config file (default "+config.Dir()+"/config.toml)")
	f.StringVar(&flags.url, "url", "", "FAQ endpoint returning a JSON array of entries")
	f.StringVarP(&flags.file, "file", "f", "", "local .json or .yaml FAQ file, used instead of --url")
	f.StringVarP(&flags.theme, "theme", "t", "", "layout: basic, blocks or sidebar")
	f.StringVar(&flags.storage, "storage", "", "progress backend: file, sqlite or memory")
	f.StringVar(&flags.storagePath, "storage-path", "", "progress file or database (default: per backend in the config dir)")
	f.StringVar(&flags.logPath, "log", "", "log file")
	f.BoolVar(&flags.reset, "reset", false, "forget saved progress and start from the first question")
	f.BoolVar(&flags.debug, "debug", false, "verbose logging")

	return cmd
}

// apply overrides config values with the flags that were given
func (f *rootFlags) apply(cfg *config.Config) {
	if f.url != "" {
		cfg.Feed.URL = f.url
		cfg.Feed.File = ""
	}
	if f.file != "" {
		cfg.Feed.File = f.file
	}
	if f.theme != "" {
		cfg.UI.Theme = f.theme
	}
	if f.storage != "" {
		cfg.Storage.Backend = f.storage
	}
	if f.storagePath != "" {
		cfg.Storage.Path = f.storagePath
	}
	if f.logPath != "" {
		cfg.Log.Path = f.logPath
	}
	if f.debug {
		cfg.Log.Debug = true
	}
}

func run(ctx context.Context, flags *rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.NewConfigServiceWithBus(nil, flags.configPath).Load()
	if err != nil {
		return err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	bus := eventbus.New(log)
	defer bus.Close()
	configSvc := config.NewConfigServiceWithBus(bus, flags.configPath)

	// Subscribe before anything publishes so the UI hears about startup problems
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventProgressRestored,
		eventbus.EventProgressSaveFailed,
		eventbus.EventConfigSaved,
		eventbus.EventError,
		eventbus.EventFeedChanged,
	} {
		defer bus.Subscribe(t, forward)()
	}

	store, err := openStore(cfg, log, bus)
	if err != nil {
		return err
	}
	defer store.Close()

	if flags.reset {
		if err := progress.Reset(store); err != nil {
			return fmt.Errorf("failed to reset progress: %w", err)
		}
		log.Info("progress reset")
	}

	provider := newProvider(cfg, log)
	fetchCtx, cancel := context.WithTimeout(ctx, cfg.Feed.Timeout())
	entries, err := provider.Fetch(fetchCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to load FAQ: %w", err)
	}
	log.Info("FAQ loaded", zap.Int("entries", len(entries)), zap.String("source", provider.Source()))
	bus.Publish(eventbus.EntriesLoadedEvent{Count: len(entries), Source: provider.Source()})

	sched := ui.NewTickScheduler()
	ctrl, err := flipcard.New(entries,
		flipcard.WithStore(store),
		flipcard.WithScheduler(sched),
		flipcard.WithBus(bus),
		flipcard.WithLogger(log),
		flipcard.WithTimings(flipcard.Timings{Swap: cfg.UI.SwapDelay(), Reveal: cfg.UI.RevealDelay()}),
		flipcard.WithLookahead(cfg.UI.Lookahead),
		flipcard.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	model := ui.NewModel(ctrl, sched, markdown.New(cfg.Feed.BaseURL), cfg, configSvc, log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Start forwarding events to UI in background
	stop := make(chan struct{})
	go func() {
		for {
			select {
			case e := <-eventChan:
				p.Send(ui.EventMsg{Event: e})
			case <-stop:
				return
			}
		}
	}()

	// The session keeps its entries; a changed feed is only announced
	watchCtx, stopWatch := context.WithCancel(ctx)
	go feed.Watch(watchCtx, provider, entries, cfg.Feed.Revalidate(), log, func(latest []domain.Entry) {
		bus.Publish(eventbus.FeedChangedEvent{Source: provider.Source(), Count: len(latest)})
	})

	_, err = p.Run()
	stopWatch()
	close(stop)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("UI exited normally")
	return nil
}

// openStore opens the configured progress backend. If a file or database
// cannot be opened, the session keeps progress in memory and the UI is
// told why.
func openStore(cfg *config.Config, log *zap.Logger, bus eventbus.EventBus) (progress.Store, error) {
	backend, err := progress.ParseBackend(cfg.Storage.Backend)
	if err != nil {
		return nil, err
	}

	path := cfg.Storage.ResolvedPath()
	store, err := progress.Open(backend, path)
	if err != nil {
		log.Warn("progress storage unavailable, using memory", zap.String("backend", backend), zap.String("path", path), zap.Error(err))
		bus.Publish(eventbus.ErrorEvent{Message: "Progress can't be saved this session", Err: err})
		return progress.NewMemoryStore(), nil
	}
	return store, nil
}

// newProvider picks the local file when one is configured, otherwise the
// HTTP endpoint behind the revalidating cache
func newProvider(cfg *config.Config, log *zap.Logger) feed.Provider {
	if cfg.Feed.File != "" {
		return feed.NewFileProvider(cfg.Feed.File)
	}
	client := &http.Client{Timeout: cfg.Feed.Timeout()}
	return feed.NewCachedProvider(feed.NewHTTPProvider(cfg.Feed.URL, client, log), cfg.Feed.Revalidate(), log)
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tagbar/internal/config"
	"tagbar/internal/demo"
	"tagbar/internal/discovery"
	"tagbar/internal/domain"
	"tagbar/internal/eventbus"
	"tagbar/internal/logic"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:     "tagbar",
		Short:   "Search with removable tag chips",
		Long:    "tagbar is a terminal search bar demo: type to filter a corpus, turn\nwords into tags and click a tag to remove it.",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", config.DefaultPath(), "Config file")
	flags.String("log", "tagbar.log", "Log file")
	flags.Bool("debug", false, "Log at debug level")

	local := rootCmd.Flags()
	local.String("corpus", "", "Corpus file (one \"title<TAB>body\" per line) or directory of text files")
	local.StringArrayP("tag", "t", nil, "Initial tag (repeatable)")
	local.Bool("no-anim", false, "Disable animations")

	v.SetEnvPrefix("TAGBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"config", "log", "debug"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	for _, name := range []string{"corpus", "tag", "no-anim"} {
		_ = v.BindPFlag(name, local.Lookup(name))
	}

	rootCmd.AddCommand(newConfigCmd(v))
	return rootCmd
}

// newLogger writes to path through tint. bubbletea owns the terminal, so
// nothing is logged to stdout.
func newLogger(path string, debug bool) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(f, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	})
	return slog.New(handler), f, nil
}

// loadConfig reads the config file and applies flag and environment overrides
func loadConfig(v *viper.Viper, bus eventbus.EventBus) (*config.Config, error) {
	cfg, err := config.NewConfigServiceWithBus(v.GetString("config"), bus).Load()
	if err != nil {
		return nil, err
	}

	if v.IsSet("corpus") {
		cfg.Demo.Corpus = v.GetString("corpus")
	}
	if tags := v.GetStringSlice("tag"); len(tags) > 0 {
		cfg.Demo.Tags = tags
	}
	if v.GetBool("no-anim") {
		cfg.Animation.Enabled = false
	}
	return cfg, nil
}

func loadCorpus(ctx context.Context, path string, logger *slog.Logger) ([]domain.Document, error) {
	if path == "" {
		return demo.DefaultCorpus(), nil
	}
	return discovery.NewLoader(logger).Load(ctx, path)
}

func run(ctx context.Context, v *viper.Viper) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	logger, closer, err := newLogger(v.GetString("log"), v.GetBool("debug"))
	if err != nil {
		return err
	}
	defer closer.Close()

	bus := eventbus.New(logger)
	defer bus.Close()

	cfg, err := loadConfig(v, bus)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return err
	}

	docs, err := loadCorpus(ctx, cfg.Demo.Corpus, logger)
	if err != nil {
		logger.Error("failed to load corpus", "error", err)
		return err
	}

	store := logic.NewMemoryDocumentStore(docs...)
	search := logic.NewSearchService(bus, logic.NewEngine(store), logger)
	defer search.Stop()

	model := demo.NewModel(cfg, bus, store.GetAllDocuments(), cfg.Demo.Tags, logger)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCompletedEvent); ok {
			p.Send(demo.ResultsMsg{Seq: event.Seq, Results: event.Results})
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			logger.Error(event.Message, "error", event.Err)
		}
	})
	for _, t := range []eventbus.EventType{
		eventbus.EventTagAdded,
		eventbus.EventTagRemoved,
		eventbus.EventSearchCancelled,
		eventbus.EventEditingBegan,
		eventbus.EventEditingFinished,
		eventbus.EventAppReady,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logger.Info("event", "type", e.Type(), "event", fmt.Sprintf("%+v", e))
		})
	}

	bus.Publish(eventbus.AppReadyEvent{Documents: store.Len()})
	if os.Getenv("TAGBAR_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	logger.Info("starting UI", "documents", store.Len(), "tags", len(cfg.Demo.Tags))
	if _, err := p.Run(); err != nil {
		logger.Error("error running program", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}

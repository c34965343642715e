package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zyxo/showcase/pkg/showcase"
	"github.com/zyxo/showcase/pkg/showcase/chat"
	"github.com/zyxo/showcase/pkg/showcase/config"
	"github.com/zyxo/showcase/pkg/showcase/content"
	"github.com/zyxo/showcase/pkg/showcase/i18n"
	"github.com/zyxo/showcase/pkg/showcase/router"
	"github.com/zyxo/showcase/pkg/showcase/touchscreen"
)

const (
	ScreenPager router.Screen = iota
	ScreenFallback
)

// session is everything built from one configuration. A reload tears it down and builds a
// new one.
type session struct {
	cfg       config.Config
	catalogue *content.Catalogue
	loc       *i18n.Localizer
	client    *chat.Client
	touch     *touchscreen.Reader
}

func loadCatalogue(cfg config.Config) (*content.Catalogue, error) {
	if cfg.ContentPath == "" {
		return content.Default()
	}
	return content.LoadFile(cfg.ContentPath)
}

func newSession(ctx context.Context, cfg config.Config, logger *slog.Logger) (*session, error) {
	catalogue, err := loadCatalogue(cfg)
	if err != nil {
		return nil, err
	}
	loc, err := i18n.New(cfg.Locale)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, catalogue: catalogue, loc: loc}

	if cfg.Chat.Enabled {
		s.client = chat.NewClient(chat.Settings{
			APIKey:            cfg.Chat.APIKey,
			Models:            cfg.Chat.Models,
			SystemPrompt:      chat.SystemPrompt(catalogue),
			Timeout:           cfg.Chat.Timeout.Duration,
			RequestsPerMinute: cfg.Chat.RequestsPerMinute,
			Logger:            logger.With("component", "chat"),
			Messages: func(f chat.Failure) string {
				return loc.T(f.MessageID(), nil)
			},
		})
		if !s.client.Configured() {
			logger.Warn("assistant has no API key", "env", config.EnvAPIKey)
		}
	}

	if dev := cfg.Touchscreen.Device; dev != "" {
		reader, err := touchscreen.Open(dev, logger.With("component", "touchscreen"))
		if err != nil {
			logger.Error("touchscreen unavailable, using SDL touch events", "device", dev, "error", err)
		} else {
			reader.Start(ctx)
			s.touch = reader
		}
	}

	return s, nil
}

func (s *session) close() {
	if s.touch != nil {
		_ = s.touch.Close()
	}
}

func (s *session) pagerSettings(ctx context.Context, updates <-chan config.Config, index int, progress func(int)) showcase.PagerSettings {
	ps := showcase.PagerSettings{
		Catalogue:    s.catalogue,
		Config:       s.cfg,
		Localizer:    s.loc,
		Chat:         s.client,
		DisableChat:  !s.cfg.Chat.Enabled,
		Updates:      updates,
		InitialIndex: index,
		Context:      ctx,
		Progress:     progress,
	}
	if s.touch != nil {
		ps.Touch = s.touch.Contacts()
	}
	return ps
}

// runSession routes between the pager and the fallback screen until the visitor quits or the
// configuration needs a rebuild. It returns the pager result that ended it.
func runSession(ctx context.Context, s *session, updates <-chan config.Config, index int) (*showcase.PagerResult, error) {
	active := index
	progress := func(i int) { active = i }
	var last *showcase.PagerResult

	r := router.New()
	r.Register(ScreenPager, func(input any) (any, error) {
		return showcase.Pager(input.(showcase.PagerSettings))
	})
	r.Register(ScreenFallback, func(input any) (any, error) {
		return showcase.Fallback(input.(showcase.FallbackSettings))
	})

	r.OnError(func(from router.Screen, err error, stack *router.Stack) (router.Screen, any) {
		if from == ScreenFallback || showcase.IsCancelled(err) {
			return router.ScreenExit, nil
		}
		showcase.GetLogger().Error("screen failed", "screen", int(from), "error", err)
		stack.Push(ScreenPager, nil, active)
		return ScreenFallback, showcase.FallbackSettings{Localizer: s.loc, Detail: err.Error()}
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenPager:
			last = result.(*showcase.PagerResult)
			return router.ScreenExit, nil
		case ScreenFallback:
			res := result.(*showcase.FallbackResult)
			entry, ok := stack.Pop()
			if res.Action != showcase.FallbackActionRetry || !ok {
				return router.ScreenExit, nil
			}
			return entry.Screen, s.pagerSettings(ctx, updates, entry.Resume.(int), progress)
		}
		return router.ScreenExit, nil
	})

	err := r.Run(ScreenPager, s.pagerSettings(ctx, updates, index, progress))
	if err != nil && !showcase.IsCancelled(err) {
		return nil, err
	}
	if last == nil {
		last = &showcase.PagerResult{Action: showcase.PagerActionQuit, ActiveIndex: active}
	}
	return last, nil
}

func runShowcase(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	showcase.SetLogPath(cfg.Log.Path)
	showcase.SetRawLogLevel(cfg.Log.Level)
	logger := showcase.GetLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = showcase.Init(showcase.Options{
		WindowTitle: cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		WindowOptions: showcase.WindowOptions{
			Fullscreen: cfg.Window.Fullscreen,
			Borderless: cfg.Window.Borderless,
		},
	})
	if err != nil {
		return err
	}
	defer showcase.Close()

	updates, err := config.Watch(ctx, configPath, logger)
	if err != nil {
		logger.Warn("settings will not reload", "path", configPath, "error", err)
	}

	index := 0
	for {
		s, err := newSession(ctx, cfg, logger)
		if err != nil {
			return err
		}
		if startSection != "" {
			if i := s.catalogue.SectionIndex(startSection); i >= 0 {
				index = i
			} else {
				logger.Warn("unknown start section", "section", startSection)
			}
			startSection = ""
		}

		res, err := runSession(ctx, s, updates, index)
		s.close()
		if err != nil {
			return err
		}
		if res.Action != showcase.PagerActionReloaded {
			return nil
		}

		logger.Info("reloading", "active", res.ActiveIndex)
		cfg, index = res.Config, res.ActiveIndex
		if ctx.Err() != nil {
			return nil
		}
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
